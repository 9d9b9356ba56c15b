package validators

import (
	"context"
	"strings"

	"github.com/akhetov/hybrid-analyzer/models"
)

const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldText     = "text"
)

// Account policy limits. Registration requests outside these bounds are
// rejected before the service layer is reached.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 8
	MaxPasswordLength = 100
)

// MinAnalyzableTextLength is the shortest text the analysis pipeline accepts.
// Anything shorter carries too little signal for classification.
const MinAnalyzableTextLength = 10

type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.AnalyzeRequest:
		return v.validateAnalyzeRequest(ctx, value, fields...)
	case *models.AnalyzeRequest:
		return v.validateAnalyzeRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegisterRequest(_ context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if len(request.Username) < MinUsernameLength || len(request.Username) > MaxUsernameLength {
				return ErrInvalidUsername
			}
		case FieldEmail:
			if !isPlausibleEmail(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(request.Password) < MinPasswordLength || len(request.Password) > MaxPasswordLength {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateAnalyzeRequest(_ context.Context, request models.AnalyzeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if len(strings.TrimSpace(request.Text)) < MinAnalyzableTextLength {
				return ErrTextTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isPlausibleEmail checks for a local@domain shape with a dot in the domain.
// Exact deliverability is not the server's concern.
func isPlausibleEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && strings.Contains(email[at+1:], ".")
}
