package ports

import (
	"context"

	"github.com/quickaccess/linkdir/internal/core/domain"
)

// LinkRepository defines link persistence.
type LinkRepository interface {
	Create(ctx context.Context, link *domain.Link) (*domain.Link, error)
	FindByID(ctx context.Context, id string) (*domain.Link, error)
	// ListByCategories returns links whose category is in the given set,
	// newest first.
	ListByCategories(ctx context.Context, categories []string) ([]domain.Link, error)
	Update(ctx context.Context, link *domain.Link) (*domain.Link, error)
	Delete(ctx context.Context, id string) error
}
