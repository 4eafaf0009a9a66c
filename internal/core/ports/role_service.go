package ports

import (
	"context"

	"github.com/quickaccess/linkdir/internal/core/domain"
)

// RoleService defines registry operations. Roles are immutable after
// creation; there is no update or delete path.
type RoleService interface {
	List(ctx context.Context) ([]domain.Role, error)
	Create(ctx context.Context, name, accent string) (*domain.Role, error)
	// SeedDefaults inserts any missing default role, keyed by slug. Run once
	// at startup; a failure leaves the registry as-is.
	SeedDefaults(ctx context.Context) error
}
