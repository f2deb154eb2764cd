package pages_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-biolink/internal/pages"
	"github.com/goliatone/go-biolink/internal/registry"
	"github.com/goliatone/go-biolink/internal/schema"
	"github.com/goliatone/go-biolink/pkg/testsupport"
	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

func TestBunPageRepository_WithCache(t *testing.T) {
	ctx := context.Background()

	sqlDB, err := testsupport.NewSQLiteMemoryDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	bunDB := bun.NewDB(sqlDB, sqlitedialect.New())
	bunDB.SetMaxOpenConns(1)

	if _, err := bunDB.NewCreateTable().Model((*pages.Page)(nil)).IfNotExists().Exec(ctx); err != nil {
		t.Fatalf("create table: %v", err)
	}

	cacheCfg := repocache.DefaultConfig()
	cacheCfg.TTL = time.Minute
	cacheSvc, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		t.Fatalf("cache service: %v", err)
	}
	repo := pages.NewBunPageRepositoryWithCache(bunDB, cacheSvc, repocache.NewDefaultKeySerializer())

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

	now := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)
	svc := pages.NewService(repo, reg, pages.WithNow(func() time.Time { return now }))

	page, err := svc.CreatePage(ctx, pages.CreatePageInput{
		OwnerID: "user-1",
		ThemeID: "plaincard",
		Content: map[string]any{
			schema.ConfigVersionKey: schema.ConfigVersionV1,
			"name":                  "Ada Lovelace",
		},
	})
	if err != nil {
		t.Fatalf("create page: %v", err)
	}

	if _, err := svc.GetPage(ctx, page.ID); err != nil {
		t.Fatalf("first get: %v", err)
	}
	if _, err := svc.GetPage(ctx, page.ID); err != nil {
		t.Fatalf("cached get: %v", err)
	}

	bySlug, err := svc.GetPageBySlug(ctx, "ada-lovelace")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if bySlug.Content["name"] != "Ada Lovelace" {
		t.Fatalf("unexpected content round-trip: %#v", bySlug.Content)
	}

	owned, err := repo.ListByOwner(ctx, "user-1")
	if err != nil {
		t.Fatalf("list by owner: %v", err)
	}
	if len(owned) != 1 {
		t.Fatalf("expected 1 owned page, got %d", len(owned))
	}

	if _, err := svc.GetPageBySlug(ctx, "missing"); !errors.Is(err, pages.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
