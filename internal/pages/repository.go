package pages

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository stores published pages. The wizard only needs Create; the rest
// serves hosts listing or resolving published pages.
type Repository interface {
	Create(ctx context.Context, page *Page) (*Page, error)
	Update(ctx context.Context, page *Page) (*Page, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Page, error)
	GetBySlug(ctx context.Context, slug string) (*Page, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Page, error)
	List(ctx context.Context) ([]*Page, error)
}

// NewPageRecordRepository creates the raw bun repository for page rows.
func NewPageRecordRepository(db *bun.DB) repository.Repository[*Page] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Page]{
		NewRecord:          func() *Page { return &Page{} },
		GetID:              func(page *Page) uuid.UUID { return page.ID },
		SetID:              func(page *Page, id uuid.UUID) { page.ID = id },
		GetIdentifier:      func() string { return "slug" },
		GetIdentifierValue: func(page *Page) string { return page.Slug },
	})
}
