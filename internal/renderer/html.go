package renderer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/goliatone/go-biolink/internal/schema"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// HTMLRenderer is the generic schema-driven renderer: it walks a theme's
// field schema over a normalized payload and emits one HTML section per
// populated field. Multi-line text runs through markdown; everything else is
// escaped by html/template.
//
// The renderer is stateless after construction and safe for concurrent use.
type HTMLRenderer struct {
	themeID  string
	title    string
	fields   []schema.FieldSpec
	markdown goldmark.Markdown
	tmpl     *template.Template
}

const pageTemplate = `{{define "section" -}}
<section class="field field--{{.Kind}}">
{{- if .Label}}<h2>{{.Label}}</h2>{{end -}}
{{- if .HTML}}<div class="field-body">{{.HTML}}</div>
{{- else if .Tags}}<ul class="tags">{{range .Tags}}<li>{{.}}</li>{{end}}</ul>
{{- else if .Items}}{{range .Items}}<div class="item">{{range .}}{{template "section" .}}{{end}}</div>{{end}}
{{- else if .Fields}}<div class="group">{{range .Fields}}{{template "section" .}}{{end}}</div>
{{- else if eq .Kind "url"}}<p><a href="{{.Value}}" rel="me">{{.Value}}</a></p>
{{- else if eq .Kind "email"}}<p><a href="mailto:{{.Value}}">{{.Value}}</a></p>
{{- else}}<p>{{.Value}}</p>{{end -}}
</section>
{{end -}}
<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body class="theme-{{.ThemeID}}">
<main>
{{- range .Sections}}{{template "section" .}}{{end}}
</main>
</body>
</html>
`

type section struct {
	Kind   string
	Label  string
	Value  string
	HTML   template.HTML
	Tags   []string
	Items  [][]section
	Fields []section
}

type document struct {
	ThemeID  string
	Title    string
	Sections []section
}

// NewHTMLRenderer builds a renderer for one theme's field schema.
func NewHTMLRenderer(themeID, title string, fields []schema.FieldSpec) *HTMLRenderer {
	return &HTMLRenderer{
		themeID: themeID,
		title:   title,
		fields:  fields,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Linkify),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		tmpl: template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// Render produces the full HTML document for a normalized payload.
func (r *HTMLRenderer) Render(_ context.Context, content map[string]any) ([]byte, error) {
	doc := document{
		ThemeID:  r.themeID,
		Title:    r.title,
		Sections: r.buildSections(r.fields, content),
	}
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("renderer: %s: %w", r.themeID, err)
	}
	return buf.Bytes(), nil
}

func (r *HTMLRenderer) buildSections(fields []schema.FieldSpec, values map[string]any) []section {
	out := make([]section, 0, len(fields))
	for _, field := range fields {
		value, ok := values[field.Name]
		if !ok || value == nil {
			continue
		}
		if built, ok := r.buildSection(field, value); ok {
			out = append(out, built)
		}
	}
	return out
}

func (r *HTMLRenderer) buildSection(field schema.FieldSpec, value any) (section, bool) {
	built := section{Kind: string(field.Kind), Label: field.Label}

	switch field.Kind {
	case schema.KindTags:
		tags := tagValues(value)
		if len(tags) == 0 {
			return section{}, false
		}
		built.Tags = tags
	case schema.KindArray:
		items, _ := value.([]any)
		for _, raw := range items {
			itemValues, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			built.Items = append(built.Items, r.buildSections(field.ItemFields, itemValues))
		}
		if len(built.Items) == 0 {
			return section{}, false
		}
	case schema.KindObject:
		nested, _ := value.(map[string]any)
		built.Fields = r.buildSections(field.Fields, nested)
		if len(built.Fields) == 0 {
			return section{}, false
		}
	case schema.KindTextarea:
		text := strings.TrimSpace(fmt.Sprint(value))
		if text == "" {
			return section{}, false
		}
		var buf bytes.Buffer
		if err := r.markdown.Convert([]byte(text), &buf); err != nil {
			built.Value = text
			break
		}
		built.HTML = template.HTML(buf.String())
	case schema.KindBoolean:
		built.Value = boolLabel(value)
	default:
		text := strings.TrimSpace(fmt.Sprint(value))
		if text == "" {
			return section{}, false
		}
		built.Value = text
	}
	return built, true
}

func tagValues(value any) []string {
	switch typed := value.(type) {
	case []string:
		return typed
	case []any:
		out := make([]string, 0, len(typed))
		for _, entry := range typed {
			if text, ok := entry.(string); ok && text != "" {
				out = append(out, text)
			}
		}
		return out
	}
	return nil
}

func boolLabel(value any) string {
	switch typed := value.(type) {
	case bool:
		if typed {
			return "yes"
		}
		return "no"
	case string:
		if typed == "true" || typed == "yes" || typed == "on" {
			return "yes"
		}
		return "no"
	}
	return "no"
}
