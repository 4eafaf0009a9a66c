package ports

import (
	"context"

	"github.com/quickaccess/linkdir/internal/core/domain"
)

// LogRepository defines persistence for the append-only audit log.
type LogRepository interface {
	Insert(ctx context.Context, entry *domain.LogEntry) error
	// Recent returns one page of entries, newest first, plus the total count.
	Recent(ctx context.Context, page, limit int) ([]domain.LogEntry, int64, error)
	// ByUser returns one page of a single user's entries, newest first.
	ByUser(ctx context.Context, userID string, page, limit int) ([]domain.LogEntry, int64, error)
	// LatestByUser returns a user's most recent entry, or ErrLogNotFound.
	LatestByUser(ctx context.Context, userID string) (*domain.LogEntry, error)
}
