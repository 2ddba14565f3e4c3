// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/togglbot/togglbot/internal/config"
	"github.com/togglbot/togglbot/internal/logger"
	"github.com/togglbot/togglbot/models"
)

func newTestTogglClient(t *testing.T, apiURL, reportsURL string) TogglClient {
	t.Helper()
	return NewTogglClient(config.Toggl{
		BaseURL:        apiURL,
		ReportsURL:     reportsURL,
		RequestTimeout: 5 * time.Second,
	}, logger.NewLogger("test"))
}

func testCreds() models.Credentials {
	return models.Credentials{
		LineUserID:  "U123",
		APIToken:    "secret-token",
		WorkspaceID: "777",
	}
}

// ── GetCurrentEntry ─────────────────────────────────────────────────────────

func TestGetCurrentEntry_Running(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/me/time_entries/current", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "secret-token", user)
		assert.Equal(t, "api_token", pass)

		_ = json.NewEncoder(w).Encode(models.TimeEntry{
			ID:          42,
			Description: "writing docs",
			Start:       time.Now().Add(-time.Hour),
			Duration:    -1,
		})
	}))
	defer srv.Close()

	cli := newTestTogglClient(t, srv.URL, srv.URL)
	entry, err := cli.GetCurrentEntry(context.Background(), testCreds())

	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, int64(42), entry.ID)
	assert.True(t, entry.Running())
}

func TestGetCurrentEntry_Idle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("null"))
	}))
	defer srv.Close()

	cli := newTestTogglClient(t, srv.URL, srv.URL)
	entry, err := cli.GetCurrentEntry(context.Background(), testCreds())

	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestGetCurrentEntry_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	cli := newTestTogglClient(t, srv.URL, srv.URL)
	_, err := cli.GetCurrentEntry(context.Background(), testCreds())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── GetProjects ─────────────────────────────────────────────────────────────

func TestGetProjects_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/workspaces/777/projects", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]models.Project{
			{ID: 1, Name: "Infra"},
			{ID: 2, Name: "Docs"},
		})
	}))
	defer srv.Close()

	cli := newTestTogglClient(t, srv.URL, srv.URL)
	projects, err := cli.GetProjects(context.Background(), testCreds())

	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Infra", projects[0].Name)
}

// ── StartEntry ──────────────────────────────────────────────────────────────

func TestStartEntry_StampsCreatedWith(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/workspaces/777/time_entries", r.URL.Path)

		var req models.StartEntryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "togglbot", req.CreatedWith)
		assert.Equal(t, int64(-1), req.Duration)

		_ = json.NewEncoder(w).Encode(models.TimeEntry{ID: 99, Description: req.Description, Duration: -1})
	}))
	defer srv.Close()

	cli := newTestTogglClient(t, srv.URL, srv.URL)
	entry, err := cli.StartEntry(context.Background(), testCreds(), models.StartEntryRequest{
		WorkspaceID: 777,
		ProjectID:   1,
		Description: "writing docs",
		Start:       time.Now().UTC().Format(time.RFC3339),
		Duration:    -1,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(99), entry.ID)
}

// ── StopEntry ───────────────────────────────────────────────────────────────

func TestStopEntry_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/workspaces/777/time_entries/42/stop", r.URL.Path)

		_ = json.NewEncoder(w).Encode(models.TimeEntry{ID: 42, Duration: 3725})
	}))
	defer srv.Close()

	cli := newTestTogglClient(t, srv.URL, srv.URL)
	stopped, err := cli.StopEntry(context.Background(), testCreds(), models.TimeEntry{ID: 42})

	require.NoError(t, err)
	assert.Equal(t, int64(3725), stopped.Duration)
	assert.False(t, stopped.Running())
}

func TestStopEntry_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	cli := newTestTogglClient(t, srv.URL, srv.URL)
	_, err := cli.StopEntry(context.Background(), testCreds(), models.TimeEntry{ID: 42})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── GetDetailedReport ───────────────────────────────────────────────────────

func TestGetDetailedReport_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/details", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "777", q.Get("workspace_id"))
		assert.Equal(t, "2024-05-01", q.Get("since"))
		assert.Equal(t, "2024-05-07", q.Get("until"))
		assert.Equal(t, "togglbot", q.Get("user_agent"))

		_ = json.NewEncoder(w).Encode(models.DetailedReport{
			Data: []models.ReportEntry{
				{Project: "Infra", Description: "deploy", DurationMS: 3_600_000},
			},
		})
	}))
	defer srv.Close()

	cli := newTestTogglClient(t, srv.URL, srv.URL)
	report, err := cli.GetDetailedReport(context.Background(), testCreds(),
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, report.Data, 1)
	assert.Equal(t, int64(3_600_000), report.Data[0].DurationMS)
}

func TestGetDetailedReport_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	cli := newTestTogglClient(t, srv.URL, srv.URL)
	_, err := cli.GetDetailedReport(context.Background(), testCreds(), time.Now(), time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooManyRequests)
}
