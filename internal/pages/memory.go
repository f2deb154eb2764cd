package pages

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryPageRepository provides an in-memory implementation of Repository.
type MemoryPageRepository struct {
	mu     sync.RWMutex
	order  []uuid.UUID
	byID   map[uuid.UUID]*Page
	bySlug map[string]uuid.UUID
}

// NewMemoryPageRepository constructs an empty memory-backed page repository.
func NewMemoryPageRepository() *MemoryPageRepository {
	return &MemoryPageRepository{
		byID:   make(map[uuid.UUID]*Page),
		bySlug: make(map[string]uuid.UUID),
	}
}

func (r *MemoryPageRepository) Create(_ context.Context, page *Page) (*Page, error) {
	if page == nil {
		return nil, nil
	}
	cloned := clonePage(page)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[cloned.ID]; !exists {
		r.order = append(r.order, cloned.ID)
	}
	r.byID[cloned.ID] = cloned
	r.bySlug[cloned.Slug] = cloned.ID

	return clonePage(cloned), nil
}

func (r *MemoryPageRepository) Update(_ context.Context, page *Page) (*Page, error) {
	if page == nil {
		return nil, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	previous, ok := r.byID[page.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "page", Key: page.ID.String()}
	}
	if previous.Slug != page.Slug {
		delete(r.bySlug, previous.Slug)
	}

	cloned := clonePage(page)
	r.byID[cloned.ID] = cloned
	r.bySlug[cloned.Slug] = cloned.ID

	return clonePage(cloned), nil
}

func (r *MemoryPageRepository) GetByID(_ context.Context, id uuid.UUID) (*Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "page", Key: id.String()}
	}
	return clonePage(record), nil
}

func (r *MemoryPageRepository) GetBySlug(_ context.Context, slug string) (*Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.bySlug[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "page", Key: slug}
	}
	return clonePage(r.byID[id]), nil
}

func (r *MemoryPageRepository) ListByOwner(_ context.Context, ownerID string) ([]*Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Page, 0)
	for _, id := range r.order {
		if record := r.byID[id]; record != nil && record.OwnerID == ownerID {
			out = append(out, clonePage(record))
		}
	}
	return out, nil
}

func (r *MemoryPageRepository) List(_ context.Context) ([]*Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Page, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, clonePage(r.byID[id]))
	}
	return out, nil
}
