package ports

import (
	"context"

	"github.com/quickaccess/linkdir/internal/core/domain"
)

// UserRepository defines user persistence. Users are never hard-deleted.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// ExistsByUsernameOrEmail backs the duplicate check on registration.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	// List returns all users, newest first.
	List(ctx context.Context) ([]domain.User, error)
}
