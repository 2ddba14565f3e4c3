package models

import "time"

// Usage is a per-user counter of bot interactions. A record is updated on
// every inbound text message, before the command is executed, so failed
// commands are counted too.
type Usage struct {
	// LineUserID is the LINE platform user identifier.
	LineUserID string `json:"line_user_id"`

	// Count is the total number of messages received from this user.
	Count int64 `json:"count"`

	// LastUsed is the time of the most recent message.
	LastUsed time.Time `json:"last_used"`
}

// TableName returns the name of the database table
// associated with the Usage model.
func (u Usage) TableName() string {
	return "usage_log"
}

// UsageFilter narrows down the usage listing returned by the usage
// repository. Zero values mean "no restriction".
type UsageFilter struct {
	// Since keeps only records whose LastUsed is at or after this time.
	Since time.Time

	// LineUserIDs keeps only the listed users.
	LineUserIDs []string

	// Limit caps the number of returned rows. Zero means no limit.
	Limit uint64
}
