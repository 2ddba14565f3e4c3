package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/togglbot/togglbot/internal/logger"
	"github.com/togglbot/togglbot/models"
)

// credentialsRepository is the SQL-backed implementation of
// [CredentialsRepository]. It handles the credentials table shared by the
// webhook command path and the reminder worker.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type credentialsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCredentialsRepository constructs a [CredentialsRepository] backed by the
// provided database connection and logger.
func NewCredentialsRepository(db *DB, logger *logger.Logger) CredentialsRepository {
	logger.Debug().Msg("creating credentials repository")
	return &credentialsRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertCredentials persists the record, overwriting any previous
// registration of the same LINE user, and returns the stored state as read
// back from the database.
func (r *credentialsRepository) UpsertCredentials(ctx context.Context, creds models.Credentials) (models.Credentials, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, upsertCredentials,
		creds.LineUserID, creds.UserName, creds.APITokenCipher, creds.KeySalt, creds.WorkspaceID)
	if err != nil {
		log.Err(err).
			Str("func", "*credentialsRepository.UpsertCredentials").
			Str("pg_code", postgresError(err)).
			Msg("error executing upsert")
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		log.Error().Str("func", "*credentialsRepository.UpsertCredentials").Msg("no rows affected")
		return models.Credentials{}, ErrCredentialsNotSaved
	}

	return r.GetCredentials(ctx, creds.LineUserID)
}

// GetCredentials retrieves the record for the given LINE user.
//
// Error handling:
//   - sql.ErrNoRows → [ErrNoCredentialsFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *credentialsRepository) GetCredentials(ctx context.Context, lineUserID string) (models.Credentials, error) {
	log := logger.FromContext(ctx)

	var creds models.Credentials
	row := r.db.QueryRowContext(ctx, getCredentials, lineUserID)

	if err := row.Scan(&creds.LineUserID, &creds.UserName, &creds.APITokenCipher,
		&creds.KeySalt, &creds.WorkspaceID, &creds.CreatedAt, &creds.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credentials{}, ErrNoCredentialsFound
		}
		log.Err(err).Str("func", "*credentialsRepository.GetCredentials").Msg("error: scanning error")
		return models.Credentials{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return creds, nil
}

// ListCredentials returns every registered user, ordered by LINE user ID so
// the reminder worker scans deterministically.
func (r *credentialsRepository) ListCredentials(ctx context.Context) ([]models.Credentials, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCredentials)
	if err != nil {
		log.Err(err).Str("func", "*credentialsRepository.ListCredentials").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var all []models.Credentials
	for rows.Next() {
		var creds models.Credentials
		if err := rows.Scan(&creds.LineUserID, &creds.UserName, &creds.APITokenCipher,
			&creds.KeySalt, &creds.WorkspaceID, &creds.CreatedAt, &creds.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*credentialsRepository.ListCredentials").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		all = append(all, creds)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return all, nil
}
