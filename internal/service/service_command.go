// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/togglbot/togglbot/internal/i18n"
	"github.com/togglbot/togglbot/internal/logger"
	"github.com/togglbot/togglbot/internal/store"
	"github.com/togglbot/togglbot/models"
)

// maxReportDays caps the report range a single chat command can request.
const maxReportDays = 30

type commandService struct {
	credentials CredentialsService
	tracking    TrackingService

	logger *logger.Logger
}

func NewCommandService(credentials CredentialsService, tracking TrackingService, logger *logger.Logger) CommandService {
	return &commandService{
		credentials: credentials,
		tracking:    tracking,
		logger:      logger,
	}
}

// Execute implements [CommandService]. The command word is matched
// case-insensitively; arguments keep their original casing so project names
// and descriptions pass through untouched.
func (c *commandService) Execute(ctx context.Context, lineUserID, text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return i18n.T("unknown_command")
	}

	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	switch cmd {
	case "help":
		return i18n.T("help")
	case "register":
		return c.register(ctx, lineUserID, args)
	case "start":
		return c.start(ctx, lineUserID, args)
	case "stop":
		return c.stop(ctx, lineUserID)
	case "status":
		return c.status(ctx, lineUserID)
	case "report":
		return c.report(ctx, lineUserID, args)
	default:
		return i18n.T("unknown_command")
	}
}

func (c *commandService) register(ctx context.Context, lineUserID string, args []string) string {
	if len(args) < 3 {
		return i18n.T("register_usage")
	}
	if _, err := strconv.ParseInt(args[2], 10, 64); err != nil {
		return i18n.T("register_workspace_numeric")
	}

	_, err := c.credentials.Register(ctx, models.Credentials{
		LineUserID:  lineUserID,
		UserName:    args[0],
		APIToken:    args[1],
		WorkspaceID: args[2],
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commandService.register").Msg("register failed")
		return i18n.TD("command_error", map[string]any{"Error": err.Error()})
	}

	return i18n.T("register_done")
}

func (c *commandService) start(ctx context.Context, lineUserID string, args []string) string {
	creds, ok, reply := c.resolve(ctx, lineUserID)
	if !ok {
		return reply
	}
	if len(args) == 0 {
		return i18n.T("start_project_required")
	}

	projectName := args[0]
	description := strings.Join(args[1:], " ")

	_, err := c.tracking.Start(ctx, creds, projectName, description)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			return i18n.TD("start_project_not_found", map[string]any{"Project": projectName})
		}
		logger.FromContext(ctx).Err(err).Str("func", "*commandService.start").Msg("start failed")
		return i18n.TD("start_error", map[string]any{"Error": err.Error()})
	}

	return i18n.TD("start_done", map[string]any{"Project": projectName})
}

func (c *commandService) stop(ctx context.Context, lineUserID string) string {
	creds, ok, reply := c.resolve(ctx, lineUserID)
	if !ok {
		return reply
	}

	stopped, err := c.tracking.Stop(ctx, creds)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commandService.stop").Msg("stop failed")
		return i18n.TD("stop_error", map[string]any{"Error": err.Error()})
	}
	if stopped == nil {
		return i18n.T("stop_none")
	}

	return i18n.TD("stop_done", map[string]any{
		"Hours":   stopped.Duration / 3600,
		"Minutes": (stopped.Duration % 3600) / 60,
	})
}

func (c *commandService) status(ctx context.Context, lineUserID string) string {
	creds, ok, reply := c.resolve(ctx, lineUserID)
	if !ok {
		return reply
	}

	entry, err := c.tracking.Status(ctx, creds)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commandService.status").Msg("status failed")
		return i18n.TD("status_error", map[string]any{"Error": err.Error()})
	}
	if entry == nil {
		return i18n.T("status_idle")
	}

	elapsed := now().Sub(entry.Start)
	description := entry.Description
	if description == "" {
		description = i18n.T("not_set")
	}

	return i18n.TD("status_running", map[string]any{
		"Description": description,
		"Hours":       int(elapsed.Hours()),
		"Minutes":     int(elapsed.Minutes()) % 60,
	})
}

func (c *commandService) report(ctx context.Context, lineUserID string, args []string) string {
	creds, ok, reply := c.resolve(ctx, lineUserID)
	if !ok {
		return reply
	}

	days := 1
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return i18n.T("report_days_numeric")
		}
		days = min(parsed, maxReportDays)
	}

	report, err := c.tracking.Report(ctx, creds, days)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commandService.report").Msg("report failed")
		return i18n.TD("report_error", map[string]any{"Error": err.Error()})
	}

	return formatReport(report.Data)
}

// resolve loads credentials and translates the not-registered case into its
// fixed reply. ok is false when the returned reply should be sent as is.
func (c *commandService) resolve(ctx context.Context, lineUserID string) (models.Credentials, bool, string) {
	creds, err := c.credentials.Resolve(ctx, lineUserID)
	if err != nil {
		if errors.Is(err, store.ErrNoCredentialsFound) {
			return models.Credentials{}, false, i18n.T("register_required")
		}
		logger.FromContext(ctx).Err(err).Str("func", "*commandService.resolve").Msg("resolve failed")
		return models.Credentials{}, false, i18n.TD("command_error", map[string]any{"Error": err.Error()})
	}

	return creds, true, ""
}
