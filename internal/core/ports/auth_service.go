package ports

import (
	"context"

	"github.com/quickaccess/linkdir/internal/core/domain"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// AuthService defines registration, login and user administration.
type AuthService interface {
	// Register creates an account and returns a token for it (self-service
	// bootstrap flow).
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	// RegisterByAdmin creates an account on behalf of the acting admin and
	// audits the creation.
	RegisterByAdmin(ctx context.Context, actor Claims, in RegisterInput, meta RequestMeta) (*domain.User, error)
	Login(ctx context.Context, username, password string, meta RequestMeta) (string, *domain.User, error)
	// Logout only audits; tokens stay valid until expiry.
	Logout(ctx context.Context, actor Claims, meta RequestMeta)
	// ListUsers returns every account, newest first, without password hashes.
	ListUsers(ctx context.Context) ([]domain.User, error)
}
