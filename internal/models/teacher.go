package models

import "strings"

// TeacherStatus enumerates roster lifecycle states.
type TeacherStatus string

const (
	StatusActive   TeacherStatus = "active"
	StatusInactive TeacherStatus = "inactive"
	StatusOnLeave  TeacherStatus = "on-leave"
)

// Teacher represents a staff roster record. The id is assigned at creation
// and never recomputed; JoinDate is a YYYY-MM-DD calendar date.
type Teacher struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	Subject         string        `json:"subject"`
	Department      string        `json:"department"`
	Experience      int           `json:"experience"`
	Status          TeacherStatus `json:"status"`
	JoinDate        string        `json:"joinDate"`
	Location        string        `json:"location"`
	Rating          float64       `json:"rating"`
	StudentsCount   int           `json:"studentsCount"`
	HourlyRate      float64       `json:"hourlyRate"`
	Bio             string        `json:"bio,omitempty"`
	Qualifications  []string      `json:"qualifications,omitempty"`
	Specializations []string      `json:"specializations,omitempty"`
}

// TeacherPatch carries a partial update. Nil fields keep the stored value;
// slice fields replace the stored list wholesale when present.
type TeacherPatch struct {
	Name            *string        `json:"name,omitempty"`
	Email           *string        `json:"email,omitempty" validate:"omitempty,email"`
	Phone           *string        `json:"phone,omitempty"`
	Subject         *string        `json:"subject,omitempty"`
	Department      *string        `json:"department,omitempty"`
	Experience      *int           `json:"experience,omitempty" validate:"omitempty,gte=0"`
	Status          *TeacherStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive on-leave"`
	Location        *string        `json:"location,omitempty"`
	Rating          *float64       `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	StudentsCount   *int           `json:"studentsCount,omitempty" validate:"omitempty,gte=0"`
	HourlyRate      *float64       `json:"hourlyRate,omitempty" validate:"omitempty,gt=0"`
	Bio             *string        `json:"bio,omitempty"`
	Qualifications  *[]string      `json:"qualifications,omitempty"`
	Specializations *[]string      `json:"specializations,omitempty"`
}

// Apply merges the patch into the teacher record.
func (p TeacherPatch) Apply(t *Teacher) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Email != nil {
		t.Email = *p.Email
	}
	if p.Phone != nil {
		t.Phone = *p.Phone
	}
	if p.Subject != nil {
		t.Subject = *p.Subject
	}
	if p.Department != nil {
		t.Department = *p.Department
	}
	if p.Experience != nil {
		t.Experience = *p.Experience
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Location != nil {
		t.Location = *p.Location
	}
	if p.Rating != nil {
		t.Rating = *p.Rating
	}
	if p.StudentsCount != nil {
		t.StudentsCount = *p.StudentsCount
	}
	if p.HourlyRate != nil {
		t.HourlyRate = *p.HourlyRate
	}
	if p.Bio != nil {
		t.Bio = *p.Bio
	}
	if p.Qualifications != nil {
		t.Qualifications = *p.Qualifications
	}
	if p.Specializations != nil {
		t.Specializations = *p.Specializations
	}
}

// TeacherFilter captures optional roster listing filters.
type TeacherFilter struct {
	Search     string
	Department string
	Status     string
}

// Matches reports whether the teacher satisfies every set filter.
func (f TeacherFilter) Matches(t Teacher) bool {
	if f.Department != "" && f.Department != "all" && t.Department != f.Department {
		return false
	}
	if f.Status != "" && f.Status != "all" && string(t.Status) != f.Status {
		return false
	}
	if f.Search != "" {
		if !containsFold(t.Name, f.Search) && !containsFold(t.Email, f.Search) && !containsFold(t.Subject, f.Search) {
			return false
		}
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
