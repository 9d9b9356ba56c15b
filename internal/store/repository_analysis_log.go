package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akhetov/hybrid-analyzer/internal/logger"
	"github.com/akhetov/hybrid-analyzer/internal/utils"
	"github.com/akhetov/hybrid-analyzer/models"
)

// maxStoredInputLength caps the input_text column. Longer submissions are
// analyzed in full but only the leading slice is persisted.
const maxStoredInputLength = 1000

// analysisLogRepository is the PostgreSQL-backed implementation of
// [AnalysisLogRepository]. It records completed analyses in the
// "analysis_logs" table and serves per-user history queries.
type analysisLogRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAnalysisLogRepository constructs an [AnalysisLogRepository] backed by
// the provided database connection and logger.
func NewAnalysisLogRepository(db *DB, logger *logger.Logger) AnalysisLogRepository {
	logger.Debug().Msg("creating analysis log repository")
	return &analysisLogRepository{
		db:     db,
		logger: logger,
	}
}

// SaveAnalysis persists a completed analysis and returns the record with
// server-assigned fields (LogID, CreatedAt) populated.
//
// InputText is truncated to [maxStoredInputLength] characters before the
// INSERT so oversized submissions never bloat the log table. The returned
// record reflects the truncated text actually stored.
func (r *analysisLogRepository) SaveAnalysis(ctx context.Context, analysisLog models.AnalysisLog) (models.AnalysisLog, error) {
	log := logger.FromContext(ctx)

	analysisLog.InputText = utils.TruncateRunes(analysisLog.InputText, maxStoredInputLength)

	row := r.db.QueryRowContext(ctx, saveAnalysisLog,
		analysisLog.UserID,
		analysisLog.InputText,
		analysisLog.Category,
		analysisLog.ConfidenceScore,
		analysisLog.Summary,
		analysisLog.Tone,
	)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*analysisLogRepository.SaveAnalysis").
			Int64("user_id", analysisLog.UserID).
			Msg("failed to insert analysis log")
		return models.AnalysisLog{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var saved models.AnalysisLog
	if err := row.Scan(
		&saved.LogID,
		&saved.UserID,
		&saved.InputText,
		&saved.Category,
		&saved.ConfidenceScore,
		&saved.Summary,
		&saved.Tone,
		&saved.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AnalysisLog{}, ErrAnalysisLogNotSaved
		}
		log.Err(err).
			Str("func", "*analysisLogRepository.SaveAnalysis").
			Int64("user_id", analysisLog.UserID).
			Msg("failed to scan saved analysis log")
		return models.AnalysisLog{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// FindAnalysesByUser returns up to limit most recent analyses of the given
// user, newest first. An empty slice is returned when the user has no
// history yet.
func (r *analysisLogRepository) FindAnalysesByUser(ctx context.Context, userID int64, limit int) ([]models.AnalysisLog, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.db.QueryContext(ctx, findAnalysesByUser, userID, limit)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "*analysisLogRepository.FindAnalysesByUser").
			Int64("user_id", userID).
			Msg("failed to execute query for user analysis history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	analyses := make([]models.AnalysisLog, 0, limit)

	for rows.Next() {
		var item models.AnalysisLog

		scanErr := rows.Scan(
			&item.LogID,
			&item.UserID,
			&item.InputText,
			&item.Category,
			&item.ConfidenceScore,
			&item.Summary,
			&item.Tone,
			&item.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*analysisLogRepository.FindAnalysesByUser").
				Int64("user_id", userID).
				Msg("failed to scan analysis log row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		analyses = append(analyses, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*analysisLogRepository.FindAnalysesByUser").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return analyses, nil
}
