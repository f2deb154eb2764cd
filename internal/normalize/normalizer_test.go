package normalize

import (
	"errors"
	"reflect"
	"testing"

	"github.com/goliatone/go-biolink/internal/form"
	"github.com/goliatone/go-biolink/internal/schema"
)

func testFields() []schema.FieldSpec {
	return []schema.FieldSpec{
		{Name: "headline", Kind: schema.KindText},
		{Name: "skills", Kind: schema.KindTags},
		{
			Name: "experience", Kind: schema.KindArray,
			ItemFields: []schema.FieldSpec{
				{Name: "company", Kind: schema.KindText},
				{Name: "bullets", Kind: schema.KindTags},
			},
		},
		{
			Name: "socials", Kind: schema.KindObject,
			Fields: []schema.FieldSpec{
				{Name: "twitter", Kind: schema.KindURL},
				{Name: "topics", Kind: schema.KindTags},
			},
		},
	}
}

func TestContentSplitsTagStrings(t *testing.T) {
	input := form.ContentState{"skills": "a, b ,c"}

	got, err := Content(testFields(), input)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if !reflect.DeepEqual(got["skills"], []string{"a", "b", "c"}) {
		t.Fatalf("unexpected tags: %#v", got["skills"])
	}
	if input["skills"] != "a, b ,c" {
		t.Fatalf("input mutated: %#v", input["skills"])
	}
}

func TestContentDropsEmptyTagSegments(t *testing.T) {
	got, err := Content(testFields(), form.ContentState{"skills": " , go, ,rust, "})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if !reflect.DeepEqual(got["skills"], []string{"go", "rust"}) {
		t.Fatalf("unexpected tags: %#v", got["skills"])
	}

	got, err = Content(testFields(), form.ContentState{"skills": ""})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if !reflect.DeepEqual(got["skills"], []string{}) {
		t.Fatalf("empty string should normalize to empty slice, got %#v", got["skills"])
	}
}

func TestContentIsIdempotent(t *testing.T) {
	input := form.ContentState{
		"headline": "hi",
		"skills":   "a,b",
		"experience": []any{
			map[string]any{"company": "acme", "bullets": "shipped x, led y"},
		},
		"socials": map[string]any{"twitter": "https://x.com/me", "topics": "go"},
	}

	once, err := Content(testFields(), input)
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}
	twice, err := Content(testFields(), once)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second pass changed the value:\nonce:  %#v\ntwice: %#v", once, twice)
	}
}

func TestContentReachesNestedTags(t *testing.T) {
	input := form.ContentState{
		"experience": []any{
			map[string]any{"company": "acme", "bullets": "shipped x, led y"},
			map[string]any{"company": "beta", "bullets": []string{"kept"}},
		},
		"socials": map[string]any{"topics": "go, sql"},
	}

	got, err := Content(testFields(), input)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	items := got["experience"].([]any)
	first := items[0].(map[string]any)
	if !reflect.DeepEqual(first["bullets"], []string{"shipped x", "led y"}) {
		t.Fatalf("nested tags not normalized: %#v", first["bullets"])
	}
	second := items[1].(map[string]any)
	if !reflect.DeepEqual(second["bullets"], []string{"kept"}) {
		t.Fatalf("already-normalized tags changed: %#v", second["bullets"])
	}

	socials := got["socials"].(map[string]any)
	if !reflect.DeepEqual(socials["topics"], []string{"go", "sql"}) {
		t.Fatalf("object tags not normalized: %#v", socials["topics"])
	}
}

func TestContentLeavesScalarsAndAbsentFieldsAlone(t *testing.T) {
	got, err := Content(testFields(), form.ContentState{"headline": "  spaced  "})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got["headline"] != "  spaced  " {
		t.Fatalf("scalar changed: %#v", got["headline"])
	}
	if _, present := got["skills"]; present {
		t.Fatalf("absent field materialized: %#v", got["skills"])
	}
}

func TestContentRejectsShapeContradictions(t *testing.T) {
	cases := []struct {
		name  string
		input form.ContentState
	}{
		{"scalar in array field", form.ContentState{"experience": "not a list"}},
		{"scalar element in array", form.ContentState{"experience": []any{"not an item"}}},
		{"scalar in object field", form.ContentState{"socials": 12}},
		{"number in tags field", form.ContentState{"skills": 42}},
		{"mixed tags sequence", form.ContentState{"skills": []any{"ok", 3}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Content(testFields(), tc.input)
			if !errors.Is(err, ErrShapeMismatch) {
				t.Fatalf("expected ErrShapeMismatch, got %v", err)
			}
			var shapeErr *ShapeError
			if !errors.As(err, &shapeErr) || shapeErr.Path == "" {
				t.Fatalf("expected typed ShapeError with path, got %v", err)
			}
		})
	}
}
