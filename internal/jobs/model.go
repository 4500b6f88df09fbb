package jobs

import "time"

// Status is the pipeline stage of an application.
type Status string

const (
	StatusPending      Status = "Pending"
	StatusApplied      Status = "Applied"
	StatusInterviewing Status = "Interviewing"
	StatusOffer        Status = "Offer"
	StatusDeclined     Status = "Declined"
	StatusRejected     Status = "Rejected"
)

// AllStatuses returns every pipeline stage in display order.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusApplied,
		StatusInterviewing,
		StatusOffer,
		StatusDeclined,
		StatusRejected,
	}
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApplied, StatusInterviewing, StatusOffer, StatusDeclined, StatusRejected:
		return true
	}
	return false
}

// Mode is the employment type of a posting.
type Mode string

const (
	ModeFullTime   Mode = "FullTime"
	ModePartTime   Mode = "PartTime"
	ModeInternship Mode = "Internship"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeFullTime, ModePartTime, ModeInternship:
		return true
	}
	return false
}

// Job is a tracked application owned by exactly one user.
type Job struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	JobTitle    string    `json:"jobTitle"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Status      Status    `json:"status"`
	Mode        Mode      `json:"mode"`
	DateApplied time.Time `json:"dateApplied"`
	JobURL      string    `json:"jobUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Fields carries the user-editable subset of a Job for create and update.
type Fields struct {
	JobTitle    string
	Company     string
	Location    string
	Status      Status
	Mode        Mode
	DateApplied time.Time
	JobURL      string
}

// ListFilter narrows List results. Search matches title or company as a
// case-insensitive substring; Status filters exactly unless empty or "all".
type ListFilter struct {
	Search string
	Status string
}

// MonthCount is one bucket of the applications-per-month aggregation.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}
