package biolink_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	biolink "github.com/goliatone/go-biolink"
	"github.com/goliatone/go-biolink/internal/di"
	"github.com/goliatone/go-biolink/internal/wizard"
	"github.com/goliatone/go-biolink/pkg/interfaces"
)

type staticAuth struct{ id string }

func (a staticAuth) CurrentUserID(context.Context) (string, error) { return a.id, nil }
func (a staticAuth) CurrentProfile(context.Context) (*interfaces.Profile, error) {
	return &interfaces.Profile{UserID: a.id}, nil
}

func newModule(t *testing.T) *biolink.Module {
	t.Helper()
	module, err := biolink.New(biolink.DefaultConfig(), di.WithAuth(staticAuth{id: "user-1"}))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	return module
}

func TestFreelancerQuickpitchFlow(t *testing.T) {
	ctx := context.Background()
	module := newModule(t)

	session, err := module.Wizard(ctx)
	if err != nil {
		t.Fatalf("start wizard: %v", err)
	}

	if err := session.SelectCategory("freelancers"); err != nil {
		t.Fatalf("select category: %v", err)
	}
	themes, err := session.Themes()
	if err != nil {
		t.Fatalf("themes: %v", err)
	}
	found := false
	for _, descriptor := range themes {
		if descriptor.ID == "quickpitch" {
			found = true
		}
	}
	if !found {
		t.Fatalf("quickpitch not offered for freelancers")
	}
	if err := session.SelectTheme("quickpitch"); err != nil {
		t.Fatalf("select theme: %v", err)
	}

	// The gate reports every missing required field at once.
	err = session.Next()
	var gateErr *biolink.GateError
	if !errors.As(err, &gateErr) {
		t.Fatalf("expected gate error, got %v", err)
	}
	for _, name := range []string{"headline", "subhead", "email"} {
		if _, ok := gateErr.Fields[name]; !ok {
			t.Fatalf("gate did not flag %s: %v", name, gateErr.Fields)
		}
	}

	if err := session.SetScalar("headline", "I build websites that convert"); err != nil {
		t.Fatalf("set headline: %v", err)
	}
	if err := session.SetScalar("subhead", "Fast, reliable, on budget"); err != nil {
		t.Fatalf("set subhead: %v", err)
	}
	if err := session.SetScalar("email", "ada@example.com"); err != nil {
		t.Fatalf("set email: %v", err)
	}
	if err := session.SetScalar("skills", "design, webflow , seo"); err != nil {
		t.Fatalf("set skills: %v", err)
	}
	index, err := session.AppendArrayItem("services")
	if err != nil {
		t.Fatalf("append service: %v", err)
	}
	if err := session.SetArrayItemField("services", index, "title", "Landing pages"); err != nil {
		t.Fatalf("set service title: %v", err)
	}
	if err := session.SetArrayItemField("services", index, "desc", "From brief to **launch** in two weeks."); err != nil {
		t.Fatalf("set service desc: %v", err)
	}

	if err := session.Next(); err != nil {
		t.Fatalf("advance to preview: %v", err)
	}
	payload, err := session.Preview()
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !reflect.DeepEqual(payload["skills"], []string{"design", "webflow", "seo"}) {
		t.Fatalf("skills not normalized: %#v", payload["skills"])
	}

	rendered, err := session.RenderPreview(ctx)
	if err != nil {
		t.Fatalf("render preview: %v", err)
	}
	html := string(rendered)
	if !strings.Contains(html, "I build websites that convert") {
		t.Fatalf("preview missing headline:\n%s", html)
	}
	if !strings.Contains(html, "<strong>launch</strong>") {
		t.Fatalf("preview should render markdown in descriptions:\n%s", html)
	}

	page, err := session.Publish(ctx)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if session.Step() != wizard.StepPublished {
		t.Fatalf("unexpected step after publish: %s", session.Step())
	}

	stored, err := module.Pages().GetPageBySlug(ctx, page.Slug)
	if err != nil {
		t.Fatalf("lookup published page: %v", err)
	}
	if stored.ThemeID != "quickpitch" || stored.OwnerID != "user-1" {
		t.Fatalf("unexpected stored page: %+v", stored)
	}
	if !reflect.DeepEqual(stored.Content["skills"], payload["skills"]) {
		t.Fatalf("published content differs from preview: %#v", stored.Content["skills"])
	}
}

func TestPortfolioMinimalistCVNormalizesNestedTags(t *testing.T) {
	ctx := context.Background()
	module := newModule(t)

	session, err := module.Wizard(ctx)
	if err != nil {
		t.Fatalf("start wizard: %v", err)
	}
	if err := session.SelectCategory("portfolio"); err != nil {
		t.Fatalf("select category: %v", err)
	}
	if err := session.SelectTheme("minimalistcv"); err != nil {
		t.Fatalf("select theme: %v", err)
	}

	if err := session.SetScalar("name", "Ada Lovelace"); err != nil {
		t.Fatalf("set name: %v", err)
	}
	if err := session.SetScalar("role", "Engine architect"); err != nil {
		t.Fatalf("set role: %v", err)
	}
	index, err := session.AppendArrayItem("experience")
	if err != nil {
		t.Fatalf("append experience: %v", err)
	}
	if err := session.SetArrayItemField("experience", index, "company", "Analytical Engines Ltd"); err != nil {
		t.Fatalf("set company: %v", err)
	}
	if err := session.SetArrayItemField("experience", index, "bullets", "designed the loop, wrote the first program"); err != nil {
		t.Fatalf("set bullets: %v", err)
	}

	if err := session.Next(); err != nil {
		t.Fatalf("advance to preview: %v", err)
	}
	payload, err := session.Preview()
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	experience := payload["experience"].([]any)
	item := experience[0].(map[string]any)
	want := []string{"designed the loop", "wrote the first program"}
	if !reflect.DeepEqual(item["bullets"], want) {
		t.Fatalf("nested bullets not normalized: %#v", item["bullets"])
	}

	// Normalization is idempotent: the published payload re-normalizes to
	// itself.
	fields, err := module.Registry().FieldSchema("minimalistcv")
	if err != nil {
		t.Fatalf("field schema: %v", err)
	}
	again, err := biolink.NormalizeContent(fields, payload)
	if err != nil {
		t.Fatalf("re-normalize: %v", err)
	}
	if !reflect.DeepEqual(again.AsMap(), payload) {
		t.Fatalf("normalization not idempotent:\nonce:  %#v\ntwice: %#v", payload, again.AsMap())
	}

	page, err := session.Publish(ctx)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if page.Slug != "ada-lovelace" {
		t.Fatalf("unexpected slug: %q", page.Slug)
	}
}

func TestAnonymousWizardIsRejected(t *testing.T) {
	module, err := biolink.New(biolink.DefaultConfig())
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	if _, err := module.Wizard(context.Background()); !errors.Is(err, wizard.ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
}
