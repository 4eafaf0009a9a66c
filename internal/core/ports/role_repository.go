package ports

import (
	"context"

	"github.com/quickaccess/linkdir/internal/core/domain"
)

// RoleRepository defines role registry persistence.
type RoleRepository interface {
	// List returns every role sorted assignable-first, then by name.
	List(ctx context.Context) ([]domain.Role, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Role, error)
	Create(ctx context.Context, role *domain.Role) error
}
