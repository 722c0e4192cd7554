// Command shadow_compare replays read-only dashboard requests against this
// API and the legacy Next.js dashboard backend and reports status and body
// differences. Blob contents are reconciled on read, so both sides are
// expected to converge once they share a store.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"
)

type probe struct {
	Method   string `json:"method"`
	Path     string `json:"path"`
	Critical bool   `json:"critical"`
}

type probeFile struct {
	Probes []probe `json:"probes"`
}

type result struct {
	Probe         probe
	APIStatus     int
	LegacyStatus  int
	StatusMatch   bool
	BodyMatch     bool
	Err           error
	APILatency    time.Duration
	LegacyLatency time.Duration
}

func main() {
	var (
		apiBase    string
		legacyBase string
		probesPath string
		timeout    time.Duration
	)

	flag.StringVar(&apiBase, "api-base", "http://localhost:8080", "staff API base URL")
	flag.StringVar(&legacyBase, "legacy-base", "http://localhost:3000", "legacy dashboard base URL")
	flag.StringVar(&probesPath, "probes", filepath.Join("scripts", "shadow_compare", "probes.json"), "path to JSON probe list")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	probes, err := loadProbes(probesPath)
	if err != nil {
		log.Fatalf("failed to load probes: %v", err)
	}

	client := &http.Client{Timeout: timeout}
	var (
		results  []result
		breaking int
		minor    int
	)

	for _, p := range probes {
		res := runProbe(client, apiBase, legacyBase, p)
		if res.Err != nil || !res.StatusMatch || !res.BodyMatch {
			if p.Critical {
				breaking++
			} else {
				minor++
			}
		}
		results = append(results, res)
	}

	printReport(results)

	fmt.Printf("Breaking diffs: %d, minor diffs: %d\n", breaking, minor)
	if breaking > 0 {
		os.Exit(1)
	}
}

func loadProbes(path string) ([]probe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file probeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Probes) == 0 {
		return nil, fmt.Errorf("no probes defined in %s", path)
	}
	return file.Probes, nil
}

func runProbe(client *http.Client, apiBase, legacyBase string, p probe) result {
	res := result{Probe: p}

	apiBody, apiStatus, apiDur, err := fetch(client, apiBase, p)
	if err != nil {
		res.Err = fmt.Errorf("api request failed: %w", err)
		return res
	}
	legacyBody, legacyStatus, legacyDur, err := fetch(client, legacyBase, p)
	if err != nil {
		res.Err = fmt.Errorf("legacy request failed: %w", err)
		return res
	}

	res.APIStatus = apiStatus
	res.LegacyStatus = legacyStatus
	res.APILatency = apiDur
	res.LegacyLatency = legacyDur
	res.StatusMatch = apiStatus == legacyStatus
	res.BodyMatch = bodiesEqual(apiBody, legacyBody)
	return res
}

func fetch(client *http.Client, base string, p probe) ([]byte, int, time.Duration, error) {
	method := strings.ToUpper(strings.TrimSpace(p.Method))
	if method == "" {
		method = http.MethodGet
	}
	path := p.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	req, err := http.NewRequest(method, strings.TrimRight(base, "/")+path, nil)
	if err != nil {
		return nil, 0, 0, err
	}
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, 0, err
	}
	return body, resp.StatusCode, time.Since(start), nil
}

// bodiesEqual compares JSON payloads structurally. The legacy app returns the
// payload bare while this API wraps it in a data envelope, so the envelope is
// peeled before comparing.
func bodiesEqual(a, b []byte) bool {
	aj := decodeAndPeel(a)
	bj := decodeAndPeel(b)
	if aj == nil || bj == nil {
		return false
	}
	normalize(&aj)
	normalize(&bj)
	return reflect.DeepEqual(aj, bj)
}

func decodeAndPeel(raw []byte) interface{} {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	if m, ok := v.(map[string]interface{}); ok && len(m) == 1 {
		if data, ok := m["data"]; ok {
			return data
		}
	}
	return v
}

func normalize(v *interface{}) {
	switch val := (*v).(type) {
	case map[string]interface{}:
		for k, v2 := range val {
			normalize(&v2)
			val[k] = v2
		}
	case []interface{}:
		for i, v2 := range val {
			normalize(&v2)
			val[i] = v2
		}
	case float64:
		if val == float64(int64(val)) {
			*v = int64(val)
		}
	}
}

func printReport(results []result) {
	fmt.Println("Shadow Compare Report")
	fmt.Println("======================")
	for _, res := range results {
		status := "OK"
		if res.Err != nil {
			status = "ERROR"
		} else if !res.StatusMatch || !res.BodyMatch {
			status = "DIFF"
		}
		fmt.Printf("[%s] %s %s\n", status, res.Probe.Method, res.Probe.Path)
		if res.Err != nil {
			fmt.Printf("  Error: %v\n", res.Err)
			continue
		}
		fmt.Printf("  API: %d (%s) | Legacy: %d (%s)\n", res.APIStatus, res.APILatency, res.LegacyStatus, res.LegacyLatency)
		fmt.Printf("  Status match: %t | Body match: %t | Critical: %t\n", res.StatusMatch, res.BodyMatch, res.Probe.Critical)
	}
}
