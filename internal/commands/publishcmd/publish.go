package publishcmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-biolink/internal/commands"
	"github.com/goliatone/go-biolink/internal/logging"
	"github.com/goliatone/go-biolink/internal/pages"
	"github.com/goliatone/go-biolink/pkg/interfaces"
)

const publishPageMessageType = "biolink.pages.publish"

// PublishPageCommand requests publication of a normalized content payload for
// an owner and theme. Hosts dispatch it through go-command routers; the
// wizard's own publish path calls the page service directly.
type PublishPageCommand struct {
	OwnerID string         `json:"owner_id"`
	ThemeID string         `json:"theme_id"`
	Slug    string         `json:"slug,omitempty"`
	Content map[string]any `json:"content"`
}

// Type implements command.Message.
func (PublishPageCommand) Type() string { return publishPageMessageType }

// Validate ensures the command carries the required identifiers before it
// reaches a handler. Content shape is validated downstream against the
// theme's schema.
func (m PublishPageCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.OwnerID) == "" {
		errs["owner_id"] = validation.NewError("biolink.pages.publish.owner_required", "owner_id is required")
	}
	if strings.TrimSpace(m.ThemeID) == "" {
		errs["theme_id"] = validation.NewError("biolink.pages.publish.theme_required", "theme_id is required")
	}
	if m.Content == nil {
		errs["content"] = validation.NewError("biolink.pages.publish.content_required", "content is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PublishedFunc observes the page created by a successful publish.
type PublishedFunc func(ctx context.Context, page *pages.Page)

// PublishPageHandler publishes pages via the page service using the shared
// command handler foundation.
type PublishPageHandler struct {
	inner *commands.Handler[PublishPageCommand]
}

// NewPublishPageHandler constructs a handler wired to the provided page
// service. onPublished may be nil.
func NewPublishPageHandler(service pages.Service, logger interfaces.Logger, onPublished PublishedFunc, opts ...commands.HandlerOption[PublishPageCommand]) *PublishPageHandler {
	if service == nil {
		panic(pages.ErrRepositoryRequired)
	}
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg PublishPageCommand) error {
		page, err := service.CreatePage(ctx, pages.CreatePageInput{
			OwnerID: msg.OwnerID,
			ThemeID: msg.ThemeID,
			Slug:    msg.Slug,
			Content: msg.Content,
		})
		if err != nil {
			return err
		}
		if onPublished != nil {
			onPublished(ctx, page)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[PublishPageCommand]{
		commands.WithLogger[PublishPageCommand](baseLogger),
		commands.WithOperation[PublishPageCommand]("pages.publish"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PublishPageHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[PublishPageCommand].Execute.
func (h *PublishPageHandler) Execute(ctx context.Context, msg PublishPageCommand) error {
	return h.inner.Execute(ctx, msg)
}
