package interfaces

import "context"

// ThemeRenderer is the opaque presentation capability looked up by theme id.
// It is invoked identically for wizard preview and for the live published
// page; the core never inspects what it produces.
type ThemeRenderer interface {
	Render(ctx context.Context, content map[string]any) ([]byte, error)
}
