package pages

import (
	"errors"
	"fmt"
	"time"

	"github.com/goliatone/go-biolink/internal/registry"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Page is the persisted record of one published link-in-bio page: the theme
// it was built with, the owner it belongs to, and the normalized content
// payload renderers consume.
type Page struct {
	bun.BaseModel `bun:"table:pages,alias:pg"`

	ID          uuid.UUID         `bun:",pk,type:uuid" json:"id"`
	ThemeID     string            `bun:"theme_id,notnull" json:"theme_id"`
	Category    registry.Category `bun:"category,notnull" json:"category"`
	Slug        string            `bun:"slug,notnull,unique" json:"slug"`
	OwnerID     string            `bun:"owner_id,notnull" json:"owner_id"`
	Content     map[string]any    `bun:"content,type:jsonb,notnull" json:"content"`
	PublishedAt time.Time         `bun:"published_at,nullzero,default:current_timestamp" json:"published_at"`
	UpdatedAt   time.Time         `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

var ErrNotFound = errors.New("pages: not found")

// NotFoundError reports a missing page by whichever key the lookup used.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrNotFound.Error()
	}
	return fmt.Sprintf("%s: %s %q", ErrNotFound.Error(), e.Resource, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func clonePage(page *Page) *Page {
	if page == nil {
		return nil
	}
	cloned := *page
	cloned.Content = cloneContent(page.Content)
	return &cloned
}

func cloneContent(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = cloneContentValue(value)
	}
	return out
}

func cloneContentValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return cloneContent(typed)
	case []any:
		out := make([]any, len(typed))
		for i, entry := range typed {
			out[i] = cloneContentValue(entry)
		}
		return out
	case []string:
		out := make([]string, len(typed))
		copy(out, typed)
		return out
	default:
		return value
	}
}
