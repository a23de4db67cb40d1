package applications

import "time"

// ApplicationRequest is the create/update body.
type ApplicationRequest struct {
	AppliedOn string `json:"applied_on"`
	Position  string `json:"position"`
	Company   string `json:"company"`
	Location  string `json:"location"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

// ApplicationResponse is the wire shape of one application.
type ApplicationResponse struct {
	ID        string    `json:"id"`
	AppliedOn string    `json:"applied_on"`
	Position  string    `json:"position"`
	Company   string    `json:"company"`
	Location  string    `json:"location"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

func toResponse(app Application) ApplicationResponse {
	return ApplicationResponse{
		ID:        app.ID,
		AppliedOn: app.AppliedOn.Format(AppliedOnLayout),
		Position:  app.Position,
		Company:   app.Company,
		Location:  app.Location,
		Status:    string(app.Status),
		Notes:     app.Notes,
		CreatedAt: app.CreatedAt,
	}
}
