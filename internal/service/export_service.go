package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/edupanel/staff-api/internal/models"
	appErrors "github.com/edupanel/staff-api/pkg/errors"
	"github.com/edupanel/staff-api/pkg/export"
)

// ExportFormat identifies a payout report rendering.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

// ExportResult carries rendered bytes plus download metadata.
type ExportResult struct {
	Content  []byte
	MIME     string
	Filename string
}

// ExportService renders the payout derivation as a downloadable report.
type ExportService struct {
	roster    rosterLister
	schedules scheduleReconciler
	payouts   payoutDeriver
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
}

// NewExportService constructs an ExportService.
func NewExportService(roster rosterLister, schedules scheduleReconciler, payouts payoutDeriver) *ExportService {
	return &ExportService{
		roster:    roster,
		schedules: schedules,
		payouts:   payouts,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
	}
}

// PayoutReport renders the current payout derivation in the requested format.
func (s *ExportService) PayoutReport(ctx context.Context, format ExportFormat) (*ExportResult, error) {
	teachers, err := s.roster.List(ctx, models.TeacherFilter{})
	if err != nil {
		return nil, err
	}
	data, err := s.schedules.Reconcile(ctx, teachers)
	if err != nil {
		return nil, err
	}
	report := s.payouts.Derive(teachers, data)
	dataset := payoutDataset(report)

	switch format {
	case FormatCSV:
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv report")
		}
		return &ExportResult{Content: content, MIME: "text/csv", Filename: "payout-report.csv"}, nil
	case FormatPDF:
		content, err := s.pdf.Render(dataset, "Daily Payout Report")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf report")
		}
		return &ExportResult{Content: content, MIME: "application/pdf", Filename: "payout-report.pdf"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported report format %q", format))
	}
}

func payoutDataset(report models.PayoutReport) export.Dataset {
	headers := []string{"Teacher", "Busy Slots", "Busy Hours", "Hourly Rate", "Payout"}
	rows := make([]map[string]string, 0, len(report.PerTeacher)+1)
	for _, p := range report.PerTeacher {
		rows = append(rows, map[string]string{
			"Teacher":     p.Name,
			"Busy Slots":  strconv.Itoa(len(p.BusySlots)),
			"Busy Hours":  formatHours(p.BusyHours),
			"Hourly Rate": formatMoney(p.HourlyRate),
			"Payout":      formatMoney(p.Payout),
		})
	}
	rows = append(rows, map[string]string{
		"Teacher":    "TOTAL",
		"Busy Slots": strconv.Itoa(report.Totals.BusySlots),
		"Busy Hours": formatHours(report.Totals.BusyHours),
		"Payout":     formatMoney(report.Totals.Payout),
	})
	return export.Dataset{Headers: headers, Rows: rows}
}

func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
