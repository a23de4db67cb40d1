package coverletters

// GenerateRequest is the POST body for a generation run. Title and company
// override the values parsed from the job description when non-blank.
type GenerateRequest struct {
	JobDescription string `json:"job_description"`
	Resume         string `json:"resume"`
	Title          string `json:"title"`
	Company        string `json:"company"`
}

// SessionResponse describes one stored session.
type SessionResponse struct {
	Key       string   `json:"key"`
	Artifacts []string `json:"artifacts"`
}

// ListResponse is the GET collection body, newest session first.
type ListResponse struct {
	Sessions []string `json:"sessions"`
}
