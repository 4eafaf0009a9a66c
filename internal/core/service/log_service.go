package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/quickaccess/linkdir/internal/core/domain"
	"github.com/quickaccess/linkdir/internal/core/ports"
)

const (
	defaultRecentLimit = 100
	defaultUserLimit   = 50
)

// LogService implements the admin-only audit query surface.
type LogService struct {
	logs  ports.LogRepository
	users ports.UserRepository
	log   zerolog.Logger
}

func NewLogService(logs ports.LogRepository, users ports.UserRepository, log zerolog.Logger) *LogService {
	return &LogService{logs: logs, users: users, log: log}
}

func (s *LogService) Recent(ctx context.Context, page, limit int) (*ports.LogPage, error) {
	page, limit = normalize(page, limit, defaultRecentLimit)
	entries, total, err := s.logs.Recent(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("recent logs: %w", err)
	}
	return logPage(entries, page, limit, total), nil
}

func (s *LogService) ByUser(ctx context.Context, userID string, page, limit int) (*ports.LogPage, error) {
	page, limit = normalize(page, limit, defaultUserLimit)
	entries, total, err := s.logs.ByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("user logs: %w", err)
	}
	return logPage(entries, page, limit, total), nil
}

// UsersWithActivity joins every user with their most recent audit entry.
// Users without entries fall back to account creation time and the
// "No activity" sentinel.
func (s *LogService) UsersWithActivity(ctx context.Context) ([]ports.UserActivity, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]ports.UserActivity, 0, len(users))
	for _, u := range users {
		activity := ports.UserActivity{
			User:         u,
			LastActivity: u.CreatedAt,
			LastAction:   domain.NoActivity,
		}

		latest, err := s.logs.LatestByUser(ctx, u.ID)
		switch {
		case err == nil:
			activity.LastActivity = latest.Timestamp
			activity.LastAction = string(latest.Action)
		case errors.Is(err, domain.ErrLogNotFound):
			// keep the fallback
		default:
			return nil, fmt.Errorf("latest activity for %s: %w", u.ID, err)
		}

		out = append(out, activity)
	}
	return out, nil
}

func normalize(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

func logPage(entries []domain.LogEntry, page, limit int, total int64) *ports.LogPage {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.LogPage{
		Logs: entries,
		Pagination: ports.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	}
}
