package models

// SlotField identifies one of the fixed free-text fields of a ScheduleSlot.
type SlotField string

const (
	FieldAvailability       SlotField = "availability"
	FieldUnavailability     SlotField = "unavailability"
	FieldSchedule           SlotField = "schedule"
	FieldScheduledLessons   SlotField = "scheduled_lessons"
	FieldUnscheduledLessons SlotField = "unscheduled_lessons"
	FieldMeetings           SlotField = "meetings"
	FieldOfficeHours        SlotField = "office_hours"
	FieldBreakTime          SlotField = "break_time"
	FieldComments           SlotField = "comments"
	FieldHistory            SlotField = "history"
)

// SlotFields lists every slot field in canonical column order.
var SlotFields = []SlotField{
	FieldAvailability,
	FieldUnavailability,
	FieldSchedule,
	FieldScheduledLessons,
	FieldUnscheduledLessons,
	FieldMeetings,
	FieldOfficeHours,
	FieldBreakTime,
	FieldComments,
	FieldHistory,
}

// ValidSlotField reports whether the raw key names a slot field.
func ValidSlotField(raw string) bool {
	for _, f := range SlotFields {
		if string(f) == raw {
			return true
		}
	}
	return false
}

// Availability sentinels written by slot fabrication. Any other value is a
// manual edit and is never overwritten by reconciliation.
const (
	AvailabilityAvailable   = "available"
	AvailabilityUnavailable = "unavailable"
	AvailabilityBusy        = "busy"
)

// ScheduleSlot holds one half-hour cell for one teacher. Every field is free
// text; empty strings are legal everywhere.
type ScheduleSlot struct {
	Availability       string `json:"availability"`
	Unavailability     string `json:"unavailability"`
	Schedule           string `json:"schedule"`
	ScheduledLessons   string `json:"scheduled_lessons"`
	UnscheduledLessons string `json:"unscheduled_lessons"`
	Meetings           string `json:"meetings"`
	OfficeHours        string `json:"office_hours"`
	BreakTime          string `json:"break_time"`
	Comments           string `json:"comments"`
	History            string `json:"history"`
}

// Get returns the value of the named field.
func (s ScheduleSlot) Get(field SlotField) string {
	switch field {
	case FieldAvailability:
		return s.Availability
	case FieldUnavailability:
		return s.Unavailability
	case FieldSchedule:
		return s.Schedule
	case FieldScheduledLessons:
		return s.ScheduledLessons
	case FieldUnscheduledLessons:
		return s.UnscheduledLessons
	case FieldMeetings:
		return s.Meetings
	case FieldOfficeHours:
		return s.OfficeHours
	case FieldBreakTime:
		return s.BreakTime
	case FieldComments:
		return s.Comments
	case FieldHistory:
		return s.History
	}
	return ""
}

// Set writes the value of the named field. Unknown fields are ignored.
func (s *ScheduleSlot) Set(field SlotField, value string) {
	switch field {
	case FieldAvailability:
		s.Availability = value
	case FieldUnavailability:
		s.Unavailability = value
	case FieldSchedule:
		s.Schedule = value
	case FieldScheduledLessons:
		s.ScheduledLessons = value
	case FieldUnscheduledLessons:
		s.UnscheduledLessons = value
	case FieldMeetings:
		s.Meetings = value
	case FieldOfficeHours:
		s.OfficeHours = value
	case FieldBreakTime:
		s.BreakTime = value
	case FieldComments:
		s.Comments = value
	case FieldHistory:
		s.History = value
	}
}

// TeacherSchedule maps the canonical time-slot labels to slots for one teacher.
type TeacherSchedule struct {
	TeacherID   string                  `json:"teacherId"`
	TeacherName string                  `json:"teacherName"`
	Schedule    map[string]ScheduleSlot `json:"schedule"`
}

// ScheduleColumn describes one slot field for grid rendering.
type ScheduleColumn struct {
	Key   SlotField `json:"key"`
	Label string    `json:"label"`
	Color string    `json:"color"`
}

// ScheduleData is the aggregate persisted under the schedule blob key.
type ScheduleData struct {
	TimeSlots        []string                   `json:"timeSlots"`
	Columns          []ScheduleColumn           `json:"columns"`
	TeacherSchedules map[string]TeacherSchedule `json:"teacherSchedules"`
}

// TimeSlots is the fixed ordered list of half-hour labels, identical for all
// teachers. Reconciliation always overwrites stored copies with these.
var TimeSlots = []string{
	"08:00", "08:30",
	"09:00", "09:30",
	"10:00", "10:30",
	"11:00", "11:30",
	"12:00", "12:30",
	"13:00", "13:30",
	"14:00", "14:30",
	"15:00", "15:30",
	"16:00", "16:30",
	"17:00", "17:30",
}

// ScheduleColumns is the fixed column metadata, color hints included for the
// consuming grid UI.
var ScheduleColumns = []ScheduleColumn{
	{Key: FieldAvailability, Label: "Availability", Color: "bg-gray-50"},
	{Key: FieldUnavailability, Label: "Unavailability", Color: "bg-red-50"},
	{Key: FieldSchedule, Label: "Schedule", Color: "bg-blue-50"},
	{Key: FieldScheduledLessons, Label: "Scheduled Lessons", Color: "bg-purple-50"},
	{Key: FieldUnscheduledLessons, Label: "Unscheduled Lessons", Color: "bg-yellow-50"},
	{Key: FieldMeetings, Label: "Meetings", Color: "bg-indigo-50"},
	{Key: FieldOfficeHours, Label: "Office Hours", Color: "bg-teal-50"},
	{Key: FieldBreakTime, Label: "Break Time", Color: "bg-orange-50"},
	{Key: FieldComments, Label: "Comments", Color: "bg-gray-50"},
	{Key: FieldHistory, Label: "History", Color: "bg-pink-50"},
}
