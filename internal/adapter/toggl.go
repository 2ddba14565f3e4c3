// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/togglbot/togglbot/internal/config"
	"github.com/togglbot/togglbot/internal/logger"
	"github.com/togglbot/togglbot/models"
)

// userAgent identifies the bot to the Toggl reports API, which requires the
// parameter on every call.
const userAgent = "togglbot"

// togglClient implements [TogglClient] over the Toggl Track HTTP APIs.
// Time entry operations go to the v9 API, report queries to the detailed
// reports API. Both use HTTP basic auth with the API token as the username
// and the literal string "api_token" as the password.
type togglClient struct {
	api     *resty.Client
	reports *resty.Client

	logger *logger.Logger
}

// NewTogglClient constructs a [TogglClient] from the endpoint configuration.
func NewTogglClient(cfg config.Toggl, logger *logger.Logger) TogglClient {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	api := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout)
	reports := resty.New().
		SetBaseURL(strings.TrimRight(cfg.ReportsURL, "/")).
		SetTimeout(timeout)

	return &togglClient{api: api, reports: reports, logger: logger}
}

// GetCurrentEntry implements [TogglClient]. The v9 API answers
// GET /me/time_entries/current with a JSON null body when nothing is being
// tracked, which is returned as (nil, nil).
func (t *togglClient) GetCurrentEntry(ctx context.Context, creds models.Credentials) (*models.TimeEntry, error) {
	resp, err := t.authedRequest(ctx, creds).Get("/me/time_entries/current")
	if err != nil {
		return nil, fmt.Errorf("current entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, nil
	}

	var entry models.TimeEntry
	if err = json.Unmarshal(body, &entry); err != nil {
		return nil, fmt.Errorf("decode current entry: %w", err)
	}

	return &entry, nil
}

// GetProjects implements [TogglClient].
func (t *togglClient) GetProjects(ctx context.Context, creds models.Credentials) ([]models.Project, error) {
	resp, err := t.authedRequest(ctx, creds).
		Get(fmt.Sprintf("/workspaces/%s/projects", creds.WorkspaceID))
	if err != nil {
		return nil, fmt.Errorf("projects request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var projects []models.Project
	if err = json.Unmarshal(resp.Body(), &projects); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}

	return projects, nil
}

// StartEntry implements [TogglClient]. The caller fills req except
// CreatedWith, which is stamped here.
func (t *togglClient) StartEntry(ctx context.Context, creds models.Credentials, req models.StartEntryRequest) (models.TimeEntry, error) {
	req.CreatedWith = userAgent

	resp, err := t.authedRequest(ctx, creds).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(fmt.Sprintf("/workspaces/%s/time_entries", creds.WorkspaceID))
	if err != nil {
		return models.TimeEntry{}, fmt.Errorf("start entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TimeEntry{}, err
	}

	var entry models.TimeEntry
	if err = json.Unmarshal(resp.Body(), &entry); err != nil {
		return models.TimeEntry{}, fmt.Errorf("decode started entry: %w", err)
	}

	return entry, nil
}

// StopEntry implements [TogglClient].
func (t *togglClient) StopEntry(ctx context.Context, creds models.Credentials, entry models.TimeEntry) (models.TimeEntry, error) {
	resp, err := t.authedRequest(ctx, creds).
		Patch(fmt.Sprintf("/workspaces/%s/time_entries/%d/stop", creds.WorkspaceID, entry.ID))
	if err != nil {
		return models.TimeEntry{}, fmt.Errorf("stop entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TimeEntry{}, err
	}

	var stopped models.TimeEntry
	if err = json.Unmarshal(resp.Body(), &stopped); err != nil {
		return models.TimeEntry{}, fmt.Errorf("decode stopped entry: %w", err)
	}

	return stopped, nil
}

// GetDetailedReport implements [TogglClient]. Dates are sent in the
// YYYY-MM-DD form the reports API expects; only the first page is fetched,
// which covers the ranges the bot asks for.
func (t *togglClient) GetDetailedReport(ctx context.Context, creds models.Credentials, since, until time.Time) (models.DetailedReport, error) {
	resp, err := t.reports.R().
		SetContext(ctx).
		SetBasicAuth(creds.APIToken, "api_token").
		SetQueryParams(map[string]string{
			"workspace_id": creds.WorkspaceID,
			"since":        since.Format("2006-01-02"),
			"until":        until.Format("2006-01-02"),
			"user_agent":   userAgent,
			"page":         "1",
		}).
		Get("/details")
	if err != nil {
		return models.DetailedReport{}, fmt.Errorf("detailed report request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DetailedReport{}, err
	}

	var report models.DetailedReport
	if err = json.Unmarshal(resp.Body(), &report); err != nil {
		return models.DetailedReport{}, fmt.Errorf("decode detailed report: %w", err)
	}

	return report, nil
}

func (t *togglClient) authedRequest(ctx context.Context, creds models.Credentials) *resty.Request {
	return t.api.R().
		SetContext(ctx).
		SetBasicAuth(creds.APIToken, "api_token")
}
