package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/togglbot/togglbot/internal/i18n"
	"github.com/togglbot/togglbot/models"
)

// LINE caps a text message around 5000 characters, so the two report blocks
// are truncated independently before assembly.
const (
	maxSummaryLen = 2000
	maxDetailLen  = 3000
	maxDetailRows = 20
)

// formatReport renders the detailed report as a chat message: a per-day
// summary followed by the most recent entries. Days are grouped in JST.
// Durations arrive in milliseconds and are shown as HH:MM.
func formatReport(entries []models.ReportEntry) string {
	dailyTotal := make(map[string]int64)
	var details []string

	notSet := i18n.T("not_set")

	for _, entry := range entries {
		if entry.Start.IsZero() {
			continue
		}
		start := entry.Start.In(jst)
		dailyTotal[start.Format("2006-01-02")] += entry.DurationMS

		project := entry.Project
		if project == "" {
			project = notSet
		}
		description := entry.Description
		if description == "" {
			description = notSet
		}

		details = append(details, fmt.Sprintf("%s | %s | %s | %s",
			start.Format("01/02 15:04"),
			truncateRunes(project, 20),
			truncateRunes(description, 30),
			formatDurationMS(entry.DurationMS)))
	}

	dates := make([]string, 0, len(dailyTotal))
	for date := range dailyTotal {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	summary := make([]string, 0, len(dates))
	for _, date := range dates {
		summary = append(summary, fmt.Sprintf("📅 %s: %s", date, formatDurationMS(dailyTotal[date])))
	}

	if len(details) > maxDetailRows {
		details = details[len(details)-maxDetailRows:]
	}

	var b strings.Builder
	b.WriteString(i18n.T("report_header"))
	b.WriteString("\n")
	b.WriteString(truncateRunes(strings.Join(summary, "\n"), maxSummaryLen))
	b.WriteString("\n\n")
	b.WriteString(i18n.T("report_detail_header"))
	b.WriteString("\n")
	b.WriteString(truncateRunes(strings.Join(details, "\n"), maxDetailLen))
	return b.String()
}

func formatDurationMS(ms int64) string {
	return fmt.Sprintf("%02d:%02d", ms/3_600_000, (ms%3_600_000)/60_000)
}
