package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/togglbot/togglbot/internal/logger"
	"github.com/togglbot/togglbot/models"
)

func newTestUsageRepo(t *testing.T) (*usageRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &usageRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestRecordUsage_Success(t *testing.T) {
	repo, mock, db := newTestUsageRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO usage_log").
		WithArgs("U123", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.RecordUsage(context.Background(), "U123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRecordUsage_RetriesTransientError(t *testing.T) {
	repo, mock, db := newTestUsageRepo(t)
	defer db.Close()

	// deadlock_detected is a retryable class 40 error
	mock.ExpectExec("INSERT INTO usage_log").
		WithArgs("U123", sqlmock.AnyArg()).
		WillReturnError(pgError("40P01"))
	mock.ExpectExec("INSERT INTO usage_log").
		WithArgs("U123", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.RecordUsage(context.Background(), "U123"); err != nil {
		t.Fatalf("unexpected error after retry: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRecordUsage_NonRetryableErrorFailsOnce(t *testing.T) {
	repo, mock, db := newTestUsageRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO usage_log").
		WithArgs("U123", sqlmock.AnyArg()).
		WillReturnError(pgError("42703"))

	err := repo.RecordUsage(context.Background(), "U123")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrExecutingStatement) {
		t.Errorf("expected ErrExecutingStatement, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListUsage_NoFilter(t *testing.T) {
	repo, mock, db := newTestUsageRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"line_user_id", "count", "last_used"}).
		AddRow("U1", int64(3), now).
		AddRow("U2", int64(1), now.Add(-time.Hour))

	mock.ExpectQuery("SELECT line_user_id, count, last_used FROM usage_log").
		WillReturnRows(rows)

	all, err := repo.ListUsage(context.Background(), models.UsageFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(all))
	}
	if all[0].Count != 3 {
		t.Errorf("expected count 3, got %d", all[0].Count)
	}
}

func TestListUsage_WithFilter(t *testing.T) {
	repo, mock, db := newTestUsageRepo(t)
	defer db.Close()

	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"line_user_id", "count", "last_used"}).
		AddRow("U1", int64(5), since.Add(time.Hour))

	mock.ExpectQuery("SELECT line_user_id, count, last_used FROM usage_log").
		WithArgs(since, "U1", "U2").
		WillReturnRows(rows)

	all, err := repo.ListUsage(context.Background(), models.UsageFilter{
		Since:       since,
		LineUserIDs: []string{"U1", "U2"},
		Limit:       10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 row, got %d", len(all))
	}
	if all[0].LineUserID != "U1" {
		t.Errorf("unexpected row: %+v", all[0])
	}
}

func TestListUsage_QueryError(t *testing.T) {
	repo, mock, db := newTestUsageRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT line_user_id, count, last_used FROM usage_log").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ListUsage(context.Background(), models.UsageFilter{})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
