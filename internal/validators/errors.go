package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername = errors.New("username must be between 3 and 50 characters")
	ErrInvalidPassword = errors.New("password must be between 8 and 100 characters")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrTextTooShort    = errors.New("text is too short to analyze")
)
