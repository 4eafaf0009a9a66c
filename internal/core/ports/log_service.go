package ports

import (
	"context"
	"time"

	"github.com/quickaccess/linkdir/internal/core/domain"
)

// Pagination describes one page of audit results.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// LogPage is one page of audit entries plus pagination metadata.
type LogPage struct {
	Logs       []domain.LogEntry `json:"logs"`
	Pagination Pagination        `json:"pagination"`
}

// UserActivity is a user joined with their most recent audit entry. Users
// with no entries fall back to their account creation time and the
// "No activity" sentinel.
type UserActivity struct {
	domain.User
	LastActivity time.Time `json:"lastActivity"`
	LastAction   string    `json:"lastAction"`
}

// LogService is the admin-only audit query surface.
type LogService interface {
	Recent(ctx context.Context, page, limit int) (*LogPage, error)
	ByUser(ctx context.Context, userID string, page, limit int) (*LogPage, error)
	UsersWithActivity(ctx context.Context) ([]UserActivity, error)
}
