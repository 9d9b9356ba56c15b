package models

// RegisterRequest is the JSON body accepted by POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body accepted by POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AnalyzeRequest is the JSON body accepted by POST /api/analyze.
// CandidateLabels is optional; when empty the server falls back to its
// default label set.
type AnalyzeRequest struct {
	Text            string   `json:"text"`
	CandidateLabels []string `json:"candidate_labels,omitempty"`
}
