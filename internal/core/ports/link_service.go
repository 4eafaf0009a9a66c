package ports

import (
	"context"

	"github.com/quickaccess/linkdir/internal/core/domain"
)

// LinkInput carries the mutable fields of a link. On update, empty fields
// keep the stored value (only category changes are re-validated).
type LinkInput struct {
	Title       string
	URL         string
	Description string
	Logo        string
	Category    string
}

// LinkService defines the role-gated CRUD surface over the directory.
type LinkService interface {
	List(ctx context.Context, actor Claims) ([]domain.Link, error)
	Create(ctx context.Context, actor Claims, in LinkInput, meta RequestMeta) (*domain.Link, error)
	Update(ctx context.Context, actor Claims, id string, in LinkInput, meta RequestMeta) (*domain.Link, error)
	Delete(ctx context.Context, actor Claims, id string, meta RequestMeta) error
	// Click audits a link_click for a link the actor may read.
	Click(ctx context.Context, actor Claims, id string, meta RequestMeta) error
}
