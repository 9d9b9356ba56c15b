// Package store implements the persistence layer of the application:
// PostgreSQL-backed repositories for user credentials and analysis logs,
// connection management, and mapping of driver-level errors to the
// application's sentinel errors.
package store

import (
	"context"

	"github.com/akhetov/hybrid-analyzer/models"
)

// UserRepository is the credential store consumed by the auth service.
// Username and e-mail uniqueness is enforced by the database itself, so no
// in-process locking is required.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Returns ErrUsernameAlreadyExists or
	// ErrEmailAlreadyExists when the corresponding unique constraint fires.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks up a user by username.
	// Returns ErrNoUserWasFound when no record matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByEmail looks up a user by e-mail address.
	// Returns ErrNoUserWasFound when no record matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// AnalysisLogRepository is the log sink that records completed analyses.
// From the caller's perspective writes are fire-and-forget: a failed insert
// must never mask a successful analysis result.
type AnalysisLogRepository interface {
	// SaveAnalysis persists one analysis record and returns it with the
	// server-assigned identifier and timestamp.
	SaveAnalysis(ctx context.Context, log models.AnalysisLog) (models.AnalysisLog, error)

	// FindAnalysesByUser returns up to limit most recent analyses of the
	// given user, newest first.
	FindAnalysesByUser(ctx context.Context, userID int64, limit int) ([]models.AnalysisLog, error)
}
