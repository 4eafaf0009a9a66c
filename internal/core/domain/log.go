package domain

import (
	"errors"
	"time"
)

var ErrLogNotFound = errors.New("log entry not found")

// Action enumerates everything the audit log records.
type Action string

const (
	ActionLogin          Action = "login"
	ActionLogout         Action = "logout"
	ActionLinkClick      Action = "link_click"
	ActionUserRegistered Action = "user_registered"
	ActionLinkAdded      Action = "link_added"
	ActionLinkDeleted    Action = "link_deleted"
	ActionLinkUpdated    Action = "link_updated"
)

// NoActivity is the sentinel lastAction for users with no log entries.
const NoActivity = "No activity"

// LogEntry is one append-only audit record. Writes are best-effort: a failed
// insert never fails the action that produced the entry.
type LogEntry struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Action    Action    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
	IPAddress string    `json:"ipAddress"`
	UserAgent string    `json:"userAgent"`
}
