package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/togglbot/togglbot/internal/logger"
	"github.com/togglbot/togglbot/models"
)

// usageRepository is the SQL-backed implementation of [UsageRepository].
type usageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUsageRepository constructs a [UsageRepository] backed by the provided
// database connection and logger.
func NewUsageRepository(db *DB, logger *logger.Logger) UsageRepository {
	logger.Debug().Msg("creating usage repository")
	return &usageRepository{
		db:     db,
		logger: logger,
	}
}

// RecordUsage increments the per-user message counter. The upsert races with
// itself when a user sends several messages at once, so a transiently failed
// attempt (deadlock, serialization failure) is retried once.
func (r *usageRepository) RecordUsage(ctx context.Context, lineUserID string) error {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, recordUsage, lineUserID, now)
	if err != nil && ClassifyDBError(err) == Retryable {
		log.Warn().Err(err).Str("func", "*usageRepository.RecordUsage").Msg("retrying transient DB error")
		_, err = r.db.ExecContext(ctx, recordUsage, lineUserID, now)
	}
	if err != nil {
		log.Err(err).Str("func", "*usageRepository.RecordUsage").Msg("error executing upsert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListUsage returns usage rows matching the filter, most recent first.
// The query is built dynamically because every filter field is optional.
func (r *usageRepository) ListUsage(ctx context.Context, filter models.UsageFilter) ([]models.Usage, error) {
	log := logger.FromContext(ctx)

	qb := squirrel.Select("line_user_id", "count", "last_used").
		From(models.Usage{}.TableName()).
		OrderBy("last_used DESC").
		PlaceholderFormat(squirrel.Dollar)

	if !filter.Since.IsZero() {
		qb = qb.Where(squirrel.GtOrEq{"last_used": filter.Since})
	}
	if len(filter.LineUserIDs) > 0 {
		qb = qb.Where(squirrel.Eq{"line_user_id": filter.LineUserIDs})
	}
	if filter.Limit > 0 {
		qb = qb.Limit(filter.Limit)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*usageRepository.ListUsage").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*usageRepository.ListUsage").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var all []models.Usage
	for rows.Next() {
		var usage models.Usage
		if err := rows.Scan(&usage.LineUserID, &usage.Count, &usage.LastUsed); err != nil {
			log.Err(err).Str("func", "*usageRepository.ListUsage").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		all = append(all, usage)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return all, nil
}
