package di

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-biolink/internal/pages"
	"github.com/goliatone/go-biolink/internal/runtimeconfig"
	"github.com/goliatone/go-biolink/internal/wizard"
	"github.com/goliatone/go-biolink/pkg/interfaces"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-biolink/pkg/testsupport"
)

type stubAuth struct{ id string }

func (a stubAuth) CurrentUserID(context.Context) (string, error) { return a.id, nil }
func (a stubAuth) CurrentProfile(context.Context) (*interfaces.Profile, error) {
	return &interfaces.Profile{UserID: a.id}, nil
}

func TestContainerDefaults(t *testing.T) {
	c := NewContainer(runtimeconfig.DefaultConfig())

	if c.Registry().Len() < 20 {
		t.Fatalf("expected built-in catalog, got %d themes", c.Registry().Len())
	}
	if _, err := c.Registry().RendererFor("quickpitch"); err != nil {
		t.Fatalf("default renderer missing: %v", err)
	}
	if _, ok := c.PageRepository().(*pages.MemoryPageRepository); !ok {
		t.Fatalf("expected memory repository by default, got %T", c.PageRepository())
	}
}

func TestContainerDefaultAuthRejectsSessions(t *testing.T) {
	c := NewContainer(runtimeconfig.DefaultConfig())

	_, err := c.WizardService().StartSession(context.Background())
	if !errors.Is(err, wizard.ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired without a bound auth service, got %v", err)
	}
}

func TestContainerWithAuthStartsSessions(t *testing.T) {
	c := NewContainer(runtimeconfig.DefaultConfig(), WithAuth(stubAuth{id: "user-1"}))

	session, err := c.WizardService().StartSession(context.Background())
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if session.OwnerID() != "user-1" {
		t.Fatalf("unexpected owner: %s", session.OwnerID())
	}
}

func TestContainerWithBunDBUsesBunRepository(t *testing.T) {
	sqlDB, err := testsupport.NewSQLiteMemoryDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	bunDB := bun.NewDB(sqlDB, sqlitedialect.New())

	c := NewContainer(runtimeconfig.DefaultConfig(), WithBunDB(bunDB))
	if _, ok := c.PageRepository().(*pages.BunPageRepository); !ok {
		t.Fatalf("expected bun repository, got %T", c.PageRepository())
	}
}

func TestContainerRespectsRepositoryOverride(t *testing.T) {
	repo := pages.NewMemoryPageRepository()
	c := NewContainer(runtimeconfig.DefaultConfig(), WithPageRepository(repo))

	if c.PageRepository() != pages.Repository(repo) {
		t.Fatalf("repository override ignored")
	}
}
