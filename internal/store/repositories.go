package store

import "github.com/akhetov/hybrid-analyzer/internal/logger"

// Repositories bundles all persistence-layer implementations for injection
// into the service layer.
type Repositories struct {
	UserRepository        UserRepository
	AnalysisLogRepository AnalysisLogRepository
}

// NewRepositories constructs every repository on top of the shared database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db, logger),
		AnalysisLogRepository: NewAnalysisLogRepository(db, logger),
	}
}
