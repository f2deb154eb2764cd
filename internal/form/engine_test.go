package form

import (
	"errors"
	"reflect"
	"testing"

	"github.com/goliatone/go-biolink/internal/schema"
)

func testFields() []schema.FieldSpec {
	return []schema.FieldSpec{
		{Name: "headline", Kind: schema.KindText, Required: true, Label: "Headline", MaxLength: 20},
		{Name: "skills", Kind: schema.KindTags, Label: "Skills"},
		{
			Name: "services", Kind: schema.KindArray, Label: "Services", MaxItems: 2,
			ItemFields: []schema.FieldSpec{
				{Name: "title", Kind: schema.KindText, Label: "Title"},
				{Name: "desc", Kind: schema.KindTextarea, Label: "Description"},
			},
		},
		{
			Name: "socials", Kind: schema.KindObject, Label: "Socials",
			Fields: []schema.FieldSpec{
				{Name: "twitter", Kind: schema.KindURL, Label: "Twitter"},
			},
		},
	}
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	engine, err := NewEngine(testFields(), NewContentState(), opts...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestNewContentStateCarriesConfigVersion(t *testing.T) {
	state := NewContentState()
	if got := state[schema.ConfigVersionKey]; got != schema.ConfigVersionV1 {
		t.Fatalf("unexpected config version: %v", got)
	}
	if len(state) != 1 {
		t.Fatalf("fresh state should only hold the version marker, got %v", state)
	}
}

func TestSetScalar(t *testing.T) {
	engine := newTestEngine(t)

	if err := engine.SetScalar("headline", "I build sites"); err != nil {
		t.Fatalf("set scalar: %v", err)
	}
	if got := engine.Content()["headline"]; got != "I build sites" {
		t.Fatalf("unexpected value: %v", got)
	}

	if err := engine.SetScalar("services", "nope"); !errors.Is(err, ErrNotScalar) {
		t.Fatalf("expected ErrNotScalar, got %v", err)
	}
	if err := engine.SetScalar("missing", "x"); !errors.Is(err, schema.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestSetScalarOverLimitIsNotBlocked(t *testing.T) {
	engine := newTestEngine(t)

	long := "this headline is clearly longer than twenty runes"
	if err := engine.SetScalar("headline", long); err != nil {
		t.Fatalf("set scalar: %v", err)
	}

	controls, err := engine.Controls()
	if err != nil {
		t.Fatalf("controls: %v", err)
	}
	if controls[0].Remaining >= 0 {
		t.Fatalf("expected negative remaining counter, got %d", controls[0].Remaining)
	}
}

func TestAppendArrayItemPrepopulatesItemFields(t *testing.T) {
	engine := newTestEngine(t)

	index, err := engine.AppendArrayItem("services")
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if index != 0 {
		t.Fatalf("unexpected index %d", index)
	}

	items := engine.Content()["services"].([]any)
	item := items[0].(map[string]any)
	want := map[string]any{"title": "", "desc": ""}
	if !reflect.DeepEqual(item, want) {
		t.Fatalf("unexpected item: %v", item)
	}
}

func TestAppendArrayItemEnforcesMaxItems(t *testing.T) {
	engine := newTestEngine(t)

	for i := 0; i < 2; i++ {
		if _, err := engine.AppendArrayItem("services"); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	if _, err := engine.AppendArrayItem("services"); !errors.Is(err, ErrMaxItemsReached) {
		t.Fatalf("expected ErrMaxItemsReached, got %v", err)
	}
	if got := len(engine.Content()["services"].([]any)); got != 2 {
		t.Fatalf("state changed on rejected append: %d items", got)
	}
}

func TestAppendArrayItemSoftLimitMode(t *testing.T) {
	engine := newTestEngine(t, WithMaxItemsEnforcement(false))

	for i := 0; i < 3; i++ {
		if _, err := engine.AppendArrayItem("services"); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	if got := len(engine.Content()["services"].([]any)); got != 3 {
		t.Fatalf("expected 3 items in soft-limit mode, got %d", got)
	}
}

func TestRemoveArrayItemPreservesOrderAndIgnoresBadIndex(t *testing.T) {
	engine := newTestEngine(t)

	for i := 0; i < 2; i++ {
		if _, err := engine.AppendArrayItem("services"); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := engine.SetArrayItemField("services", 0, "title", "first"); err != nil {
		t.Fatalf("set item field: %v", err)
	}
	if err := engine.SetArrayItemField("services", 1, "title", "second"); err != nil {
		t.Fatalf("set item field: %v", err)
	}

	if err := engine.RemoveArrayItem("services", 0); err != nil {
		t.Fatalf("remove: %v", err)
	}
	items := engine.Content()["services"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if got := items[0].(map[string]any)["title"]; got != "second" {
		t.Fatalf("order not preserved: %v", got)
	}

	if err := engine.RemoveArrayItem("services", 7); err != nil {
		t.Fatalf("out-of-range remove should be a no-op, got %v", err)
	}
}

func TestSetArrayItemFieldIsolation(t *testing.T) {
	engine := newTestEngine(t)

	for i := 0; i < 2; i++ {
		if _, err := engine.AppendArrayItem("services"); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := engine.SetArrayItemField("services", 1, "title", "keep me"); err != nil {
		t.Fatalf("seed sibling: %v", err)
	}
	items := engine.Content()["services"].([]any)
	siblingBefore := cloneValue(items[1])

	if err := engine.SetArrayItemField("services", 0, "title", "X"); err != nil {
		t.Fatalf("set item field: %v", err)
	}

	items = engine.Content()["services"].([]any)
	if !reflect.DeepEqual(items[1], siblingBefore) {
		t.Fatalf("sibling mutated: %v vs %v", items[1], siblingBefore)
	}
	if got := items[0].(map[string]any)["title"]; got != "X" {
		t.Fatalf("target not updated: %v", got)
	}

	if err := engine.SetArrayItemField("services", 5, "title", "X"); !errors.Is(err, ErrItemIndexInvalid) {
		t.Fatalf("expected ErrItemIndexInvalid, got %v", err)
	}
	if err := engine.SetArrayItemField("services", 0, "nope", "X"); !errors.Is(err, schema.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestSetObjectField(t *testing.T) {
	engine := newTestEngine(t)

	if err := engine.SetObjectField("socials", "twitter", "https://x.com/me"); err != nil {
		t.Fatalf("set object field: %v", err)
	}
	socials := engine.Content()["socials"].(map[string]any)
	if socials["twitter"] != "https://x.com/me" {
		t.Fatalf("unexpected value: %v", socials)
	}

	if err := engine.SetObjectField("headline", "x", "y"); !errors.Is(err, ErrNotObject) {
		t.Fatalf("expected ErrNotObject, got %v", err)
	}
	if err := engine.SetObjectField("socials", "mastodon", "y"); !errors.Is(err, schema.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestControlsFailFastOnUnknownKind(t *testing.T) {
	fields := []schema.FieldSpec{{Name: "x", Kind: schema.FieldKind("richtext")}}
	engine := &Engine{fields: fields, content: NewContentState()}

	if _, err := engine.Controls(); !errors.Is(err, schema.ErrUnknownFieldKind) {
		t.Fatalf("expected ErrUnknownFieldKind, got %v", err)
	}
	if err := engine.SetScalar("x", "v"); !errors.Is(err, schema.ErrUnknownFieldKind) {
		t.Fatalf("expected ErrUnknownFieldKind on mutation, got %v", err)
	}
}

func TestControlsDescribeArrayState(t *testing.T) {
	engine := newTestEngine(t)
	if _, err := engine.AppendArrayItem("services"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := engine.AppendArrayItem("services"); err != nil {
		t.Fatalf("append: %v", err)
	}

	controls, err := engine.Controls()
	if err != nil {
		t.Fatalf("controls: %v", err)
	}

	var services Control
	for _, control := range controls {
		if control.Name == "services" {
			services = control
		}
	}
	if len(services.Items) != 2 {
		t.Fatalf("expected 2 item control rows, got %d", len(services.Items))
	}
	if len(services.ItemTemplate) != 2 {
		t.Fatalf("expected template controls for title+desc, got %d", len(services.ItemTemplate))
	}
	if services.CanAppend {
		t.Fatalf("append should be disabled at the cap")
	}
}
