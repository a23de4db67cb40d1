package applications

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no application matches an id.
var ErrNotFound = errors.New("application not found")

// Status tracks where an application sits in the funnel.
type Status string

const (
	StatusApplied      Status = "Applied"
	StatusInterviewing Status = "Interviewing"
	StatusOffer        Status = "Offer"
	StatusRejected     Status = "Rejected"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusInterviewing, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// AppliedOnLayout is the wire format for application dates.
const AppliedOnLayout = "2006-01-02"

// Application is one tracked job application.
type Application struct {
	ID        string
	AppliedOn time.Time
	Position  string
	Company   string
	Location  string
	Status    Status
	Notes     string
	CreatedAt time.Time
}
