// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/togglbot/togglbot/internal/adapter"
	"github.com/togglbot/togglbot/internal/logger"
	"github.com/togglbot/togglbot/models"
)

const maxDescriptionLen = 255

// jst is the rendering timezone for elapsed times and report day grouping.
// A fixed offset avoids a tzdata dependency; Japan has no DST.
var jst = time.FixedZone("JST", 9*60*60)

// now is the tracking clock; swapped in tests.
var now = time.Now

type trackingService struct {
	toggl adapter.TogglClient

	logger *logger.Logger
}

func NewTrackingService(toggl adapter.TogglClient, logger *logger.Logger) TrackingService {
	return &trackingService{
		toggl:  toggl,
		logger: logger,
	}
}

// Start implements [TrackingService].
func (s *trackingService) Start(ctx context.Context, creds models.Credentials, projectName, description string) (models.TimeEntry, error) {
	projects, err := s.toggl.GetProjects(ctx, creds)
	if err != nil {
		return models.TimeEntry{}, fmt.Errorf("list projects: %w", err)
	}

	var project *models.Project
	for i := range projects {
		if strings.EqualFold(projects[i].Name, projectName) {
			project = &projects[i]
			break
		}
	}
	if project == nil {
		return models.TimeEntry{}, fmt.Errorf("%w: %s", ErrProjectNotFound, projectName)
	}

	workspaceID, err := strconv.ParseInt(creds.WorkspaceID, 10, 64)
	if err != nil {
		return models.TimeEntry{}, fmt.Errorf("%w: %s", ErrInvalidWorkspaceID, creds.WorkspaceID)
	}

	entry, err := s.toggl.StartEntry(ctx, creds, models.StartEntryRequest{
		WorkspaceID: workspaceID,
		ProjectID:   project.ID,
		Description: truncateRunes(description, maxDescriptionLen),
		Start:       now().UTC().Format(time.RFC3339),
		Duration:    -1,
	})
	if err != nil {
		return models.TimeEntry{}, fmt.Errorf("start entry: %w", err)
	}

	return entry, nil
}

// Stop implements [TrackingService].
func (s *trackingService) Stop(ctx context.Context, creds models.Credentials) (*models.TimeEntry, error) {
	current, err := s.toggl.GetCurrentEntry(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("current entry: %w", err)
	}
	if current == nil {
		return nil, nil
	}

	stopped, err := s.toggl.StopEntry(ctx, creds, *current)
	if err != nil {
		return nil, fmt.Errorf("stop entry: %w", err)
	}

	return &stopped, nil
}

// Status implements [TrackingService]. An entry that exists but is no longer
// running counts as idle.
func (s *trackingService) Status(ctx context.Context, creds models.Credentials) (*models.TimeEntry, error) {
	current, err := s.toggl.GetCurrentEntry(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("current entry: %w", err)
	}
	if current == nil || !current.Running() {
		return nil, nil
	}

	return current, nil
}

// Report implements [TrackingService].
func (s *trackingService) Report(ctx context.Context, creds models.Credentials, days int) (models.DetailedReport, error) {
	end := now().In(jst)
	since := end.AddDate(0, 0, -days)

	report, err := s.toggl.GetDetailedReport(ctx, creds, since, end)
	if err != nil {
		return models.DetailedReport{}, fmt.Errorf("detailed report: %w", err)
	}

	return report, nil
}
