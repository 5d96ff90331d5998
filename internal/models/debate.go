package models

// DebateRequest is the inbound body of a debate turn request.
type DebateRequest struct {
	Topic          string `json:"topic"`
	DebaterType    string `json:"debaterType"`
	DebateLanguage string `json:"debateLanguage"`
	Context        string `json:"context,omitempty"`
}

type DebateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Debater string `json:"debater"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
