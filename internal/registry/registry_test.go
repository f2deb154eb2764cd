package registry

import (
	"errors"
	"reflect"
	"testing"

	"github.com/goliatone/go-biolink/internal/schema"
)

func testDescriptors() []ThemeDescriptor {
	return []ThemeDescriptor{
		{
			ID: "alpha", Category: CategoryPortfolios, DisplayName: "Alpha",
			RequiredFields: []string{"name"},
			FieldSchema: []schema.FieldSpec{
				{Name: "name", Kind: schema.KindText, Required: true, Label: "Name"},
			},
		},
		{
			ID: "beta", Category: CategoryPortfolios, DisplayName: "Beta",
			FieldSchema: []schema.FieldSpec{
				{Name: "title", Kind: schema.KindText, Label: "Title"},
			},
		},
		{
			ID: "gamma", Category: CategoryProducts, DisplayName: "Gamma",
			FieldSchema: []schema.FieldSpec{
				{Name: "product", Kind: schema.KindText, Label: "Product"},
			},
		},
	}
}

func TestThemesByCategoryKeepsRegistrationOrder(t *testing.T) {
	reg, err := New(testDescriptors())
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}

	ids := func() []string {
		themes := reg.ThemesByCategory(CategoryPortfolios)
		out := make([]string, 0, len(themes))
		for _, theme := range themes {
			out = append(out, theme.ID)
		}
		return out
	}

	first := ids()
	second := ids()
	want := []string{"alpha", "beta"}
	if !reflect.DeepEqual(first, want) {
		t.Fatalf("unexpected order: %v", first)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("lookup not deterministic: %v vs %v", first, second)
	}
}

func TestThemeByIDUnknownIsError(t *testing.T) {
	reg, err := New(testDescriptors())
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}

	if _, err := reg.ThemeByID("does-not-exist"); !errors.Is(err, ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}
	var notFound *ThemeNotFoundError
	_, err = reg.FieldSchema("does-not-exist")
	if !errors.As(err, &notFound) || notFound.ID != "does-not-exist" {
		t.Fatalf("expected typed not-found error, got %v", err)
	}
}

func TestNewRejectsInvalidDescriptors(t *testing.T) {
	base := testDescriptors()

	dup := append(testDescriptors(), base[0])
	if _, err := New(dup); !errors.Is(err, ErrThemeExists) {
		t.Fatalf("expected ErrThemeExists, got %v", err)
	}

	badCategory := testDescriptors()
	badCategory[0].Category = Category("influencers")
	if _, err := New(badCategory); !errors.Is(err, ErrCategoryInvalid) {
		t.Fatalf("expected ErrCategoryInvalid, got %v", err)
	}

	badRequired := testDescriptors()
	badRequired[0].RequiredFields = []string{"missing"}
	if _, err := New(badRequired); !errors.Is(err, schema.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}

	badSchema := testDescriptors()
	badSchema[0].FieldSchema = []schema.FieldSpec{{Name: "x", Kind: schema.FieldKind("nope")}}
	if _, err := New(badSchema); !errors.Is(err, schema.ErrSchemaInvalid) {
		t.Fatalf("expected ErrSchemaInvalid, got %v", err)
	}
}

func TestDefaultCatalogIsValid(t *testing.T) {
	reg, err := New(DefaultCatalog())
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	if reg.Len() < 20 {
		t.Fatalf("expected at least 20 built-in themes, got %d", reg.Len())
	}
	for _, category := range Categories() {
		if len(reg.ThemesByCategory(category)) == 0 {
			t.Fatalf("category %s has no themes", category)
		}
	}
	// Themes the wizard scenarios depend on.
	for _, id := range []string{"quickpitch", "minimalistcv"} {
		if _, err := reg.ThemeByID(id); err != nil {
			t.Fatalf("catalog theme %s: %v", id, err)
		}
	}
}

func TestParseCategory(t *testing.T) {
	cases := map[string]Category{
		"freelancer":  CategoryFreelancers,
		"Freelancers": CategoryFreelancers,
		"portfolio":   CategoryPortfolios,
		"products":    CategoryProducts,
		"business":    CategoryBusinesses,
	}
	for input, want := range cases {
		got, ok := ParseCategory(input)
		if !ok || got != want {
			t.Fatalf("parse %q: got %q ok=%v", input, got, ok)
		}
	}
	if _, ok := ParseCategory("band"); ok {
		t.Fatalf("expected unknown category to fail")
	}
}
