// Package app contains shared application-layer constants used across the
// hybrid-analyzer server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied username/password
	// combination does not match any existing user record. The wording is
	// identical for unknown users and wrong passwords to prevent account
	// enumeration.
	MsgInvalidLoginPassword = "invalid username/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgUsernameAlreadyExists is returned when a registration attempt is
	// rejected because the requested username is already in use.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgEmailAlreadyExists is returned when a registration attempt is
	// rejected because the requested e-mail address is already in use.
	MsgEmailAlreadyExists = "email already exists"

	// MsgUserAlreadyExists is returned when a registration attempt collides
	// with an existing account but the duplicated field cannot be named.
	MsgUserAlreadyExists = "user already exists"

	// MsgTextTooShort is returned when the analyze endpoint receives a text
	// shorter than the minimum analyzable length.
	MsgTextTooShort = "text is too short to analyze"

	// MsgClassifierWarmingUp is returned when the remote classification
	// model is still loading; the client may retry after a short delay.
	MsgClassifierWarmingUp = "classification model is loading, please retry shortly"

	// MsgAnalysisFailed is returned when the analysis pipeline fails for a
	// reason other than the well-known upstream conditions.
	MsgAnalysisFailed = "analysis failed"

	// MsgNoUserIDProvided is returned when a handler requires a user ID
	// (extracted from the JWT claim) but none is present in the request
	// context.
	MsgNoUserIDProvided = "no user ID provided"
)
