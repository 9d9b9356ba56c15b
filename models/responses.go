package models

// TokenResponse is the JSON shape returned by the registration and login
// endpoints: a bearer token plus the public fields of the account it is
// bound to.
type TokenResponse struct {
	// AccessToken is the compact signed JWT the client presents on every
	// protected call.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`

	// User carries the public representation of the authenticated account.
	// PasswordHash is excluded by the User JSON tags.
	User User `json:"user"`
}

// HistoryResponse contains the most recent analyses of the requesting user,
// newest first.
type HistoryResponse struct {
	// Analyses is the list of persisted analysis records.
	Analyses []AnalysisLog `json:"analyses"`

	// Length is the total number of entries in Analyses. Provided for
	// convenience so the client can validate the response without
	// iterating the slice.
	Length int `json:"length"`
}
