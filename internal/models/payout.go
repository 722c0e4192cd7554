package models

// TeacherPayout is the derived payout line for one teacher.
type TeacherPayout struct {
	TeacherID  string   `json:"teacherId"`
	Name       string   `json:"name"`
	BusySlots  []string `json:"busySlots"`
	BusyHours  float64  `json:"busyHours"`
	HourlyRate float64  `json:"hourlyRate"`
	Payout     float64  `json:"payout"`
}

// PayoutTotals aggregates slot categories and payout across the roster.
type PayoutTotals struct {
	BusyHours      float64 `json:"busyHours"`
	Payout         float64 `json:"payout"`
	AvailableSlots int     `json:"availableSlots"`
	BusySlots      int     `json:"busySlots"`
}

// PayoutReport is the full derivation returned by the payout endpoint.
type PayoutReport struct {
	PerTeacher []TeacherPayout `json:"perTeacher"`
	Totals     PayoutTotals    `json:"totals"`
}

// TeacherEngagement is the detail-view variant counting activity fields.
type TeacherEngagement struct {
	TeacherID    string  `json:"teacherId"`
	Name         string  `json:"name"`
	EngagedSlots int     `json:"engagedSlots"`
	EngagedHours float64 `json:"engagedHours"`
}

// DepartmentStat counts roster members per department.
type DepartmentStat struct {
	Department string `json:"department"`
	Teachers   int    `json:"teachers"`
}

// DashboardSummary is the composite overview payload.
type DashboardSummary struct {
	TotalTeachers   int              `json:"totalTeachers"`
	ActiveTeachers  int              `json:"activeTeachers"`
	OnLeaveTeachers int              `json:"onLeaveTeachers"`
	TotalStudents   int              `json:"totalStudents"`
	AvgRating       float64          `json:"avgRating"`
	AvgExperience   float64          `json:"avgExperience"`
	Departments     []DepartmentStat `json:"departments"`
	TopPerformers   []Teacher        `json:"topPerformers"`
	RecentlyAdded   []Teacher        `json:"recentlyAdded"`
	Totals          PayoutTotals     `json:"totals"`
}
