package publishcmd

import (
	"context"
	"testing"
	"time"

	"github.com/goliatone/go-biolink/internal/pages"
	"github.com/goliatone/go-biolink/internal/registry"
	"github.com/goliatone/go-biolink/internal/schema"
	goerrors "github.com/goliatone/go-errors"
)

func testPageService(t *testing.T) pages.Service {
	t.Helper()
	reg, err := registry.New([]registry.ThemeDescriptor{
		{
			ID:             "plaincard",
			Category:       registry.CategoryFreelancers,
			RequiredFields: []string{"name"},
			FieldSchema: []schema.FieldSpec{
				{Name: "name", Kind: schema.KindText, Required: true, Label: "Name"},
			},
		},
	})
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	return pages.NewService(
		pages.NewMemoryPageRepository(),
		reg,
		pages.WithNow(func() time.Time { return time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC) }),
	)
}

func TestPublishPageHandlerCreatesPage(t *testing.T) {
	var published *pages.Page
	handler := NewPublishPageHandler(testPageService(t), nil, func(_ context.Context, page *pages.Page) {
		published = page
	})

	err := handler.Execute(context.Background(), PublishPageCommand{
		OwnerID: "user-1",
		ThemeID: "plaincard",
		Content: map[string]any{
			schema.ConfigVersionKey: schema.ConfigVersionV1,
			"name":                  "Ada Lovelace",
		},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if published == nil || published.Slug != "ada-lovelace" {
		t.Fatalf("unexpected published page: %+v", published)
	}
}

func TestPublishPageHandlerValidatesMessage(t *testing.T) {
	handler := NewPublishPageHandler(testPageService(t), nil, nil)

	err := handler.Execute(context.Background(), PublishPageCommand{
		ThemeID: "plaincard",
		Content: map[string]any{},
	})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestPublishPageHandlerTagsExecutionFailures(t *testing.T) {
	handler := NewPublishPageHandler(testPageService(t), nil, nil)

	err := handler.Execute(context.Background(), PublishPageCommand{
		OwnerID: "user-1",
		ThemeID: "missing-theme",
		Content: map[string]any{"name": "Ada"},
	})
	if err == nil {
		t.Fatalf("expected execution error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}
