// Package service contains the application's business logic: account
// registration and credential verification, JWT token lifecycle, and the
// two-stage text-analysis pipeline that drives the remote classifier and
// generator clients.
package service

import (
	"context"

	"github.com/akhetov/hybrid-analyzer/models"
)

// AuthService handles account registration, credential verification and JWT
// token lifecycle.
type AuthService interface {
	// RegisterUser creates a new account with the given credentials. The
	// password is hashed before it ever reaches the store. Returns the
	// persisted user or a wrapped store error (duplicate username/email).
	RegisterUser(ctx context.Context, username, email, password string) (models.User, error)

	// Login verifies the credentials against the stored hash. Both an
	// unknown username and a wrong password collapse into
	// [ErrInvalidCredentials] so callers cannot probe for account existence.
	Login(ctx context.Context, username, password string) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates and parses a raw JWT string. An expired token
	// yields [ErrTokenIsExpired]; any other validation failure yields
	// [ErrTokenIsExpiredOrInvalid].
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AnalysisService runs the two-stage analysis pipeline and records the
// outcome.
type AnalysisService interface {
	// Analyze classifies text against the candidate labels and then
	// generates a summary and tone steered by the predicted category.
	// The stages are strictly sequential; the first failure aborts the
	// pipeline and propagates unchanged. Empty labels fall back to the
	// default label set.
	Analyze(ctx context.Context, userID int64, text string, labels []string) (models.AnalysisResult, error)

	// History returns the most recent analyses of the given user,
	// newest first.
	History(ctx context.Context, userID int64) ([]models.AnalysisLog, error)
}
