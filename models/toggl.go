package models

import "time"

// TimeEntry is a Toggl Track time entry as returned by the v9 API.
//
// A running entry is encoded the way Toggl encodes it: Duration is
// negative (the negative Unix start timestamp) and Stop is empty.
type TimeEntry struct {
	ID          int64     `json:"id"`
	WorkspaceID int64     `json:"workspace_id"`
	ProjectID   int64     `json:"project_id"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	Stop        string    `json:"stop,omitempty"`

	// Duration is in seconds. Negative while the entry is running.
	Duration int64 `json:"duration"`
}

// Running reports whether the entry is still being tracked.
func (e TimeEntry) Running() bool {
	return e.Duration < 0
}

// Project is a Toggl Track project within a workspace.
type Project struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// StartEntryRequest is the payload for creating a running time entry via
// POST /workspaces/{id}/time_entries.
type StartEntryRequest struct {
	CreatedWith string `json:"created_with"`
	WorkspaceID int64  `json:"workspace_id"`
	ProjectID   int64  `json:"project_id"`
	Description string `json:"description"`
	Start       string `json:"start"`

	// Duration must be -1 to mark the entry as running.
	Duration int64 `json:"duration"`
}

// ReportEntry is a single row of the Toggl detailed report.
// Unlike TimeEntry, durations here are in milliseconds.
type ReportEntry struct {
	Start       time.Time `json:"start"`
	Project     string    `json:"project"`
	Description string    `json:"description"`

	// DurationMS is in milliseconds, as the reports API returns it.
	DurationMS int64 `json:"dur"`
}

// DetailedReport is the envelope of the Toggl detailed report response.
type DetailedReport struct {
	Data []ReportEntry `json:"data"`
}
