package profile

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when no profile has been saved yet.
var ErrNotFound = errors.New("profile not found")

// DateLayout is the display format for work experience dates.
const DateLayout = "Jan 02, 2006"

// PresentMarker is stored as the end date of an open-ended position.
const PresentMarker = "Present"

// WorkExperience is one entry in the profile's employment history.
// Ordering is insertion order; duplicates are allowed.
type WorkExperience struct {
	JobTitle  string `json:"job_title"`
	Company   string `json:"company"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Current   bool   `json:"current"`
	Duties    string `json:"duties"`
}

// Profile is the single mutable record of the user's common information.
type Profile struct {
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	Email          string           `json:"email"`
	Link           string           `json:"link"`
	Phone          string           `json:"phone"`
	LinkedIn       string           `json:"linkedin"`
	Website        string           `json:"website"`
	GitHub         string           `json:"github"`
	Street         string           `json:"street"`
	City           string           `json:"city"`
	State          string           `json:"state"`
	ZipCode        string           `json:"zip_code"`
	Country        string           `json:"country"`
	WorkExperience []WorkExperience `json:"work_experience"`
	UpdatedAt      time.Time        `json:"updated_at,omitempty"`
}

// FullName joins first and last name for display and signatures.
func (p Profile) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

// ContactLink returns the link used on cover letters, falling back to the
// website field when no dedicated link is set.
func (p Profile) ContactLink() string {
	if link := strings.TrimSpace(p.Link); link != "" {
		return link
	}
	return strings.TrimSpace(p.Website)
}

// Normalize enforces the open-ended marker on current positions.
func (p *Profile) Normalize() {
	for i := range p.WorkExperience {
		if p.WorkExperience[i].Current {
			p.WorkExperience[i].EndDate = PresentMarker
		}
	}
}
