package registry

import (
	"strings"

	"github.com/goliatone/go-biolink/internal/schema"
	"github.com/goliatone/go-biolink/pkg/interfaces"
	"github.com/google/uuid"
)

// Category groups themes by the use case a visitor picks first.
type Category string

const (
	CategoryFreelancers Category = "freelancers"
	CategoryPortfolios  Category = "portfolios"
	CategoryProducts    Category = "products"
	CategoryBusinesses  Category = "businesses"
)

// Categories lists the closed set in presentation order.
func Categories() []Category {
	return []Category{CategoryFreelancers, CategoryPortfolios, CategoryProducts, CategoryBusinesses}
}

// Known reports whether the category belongs to the closed set.
func (c Category) Known() bool {
	switch c {
	case CategoryFreelancers, CategoryPortfolios, CategoryProducts, CategoryBusinesses:
		return true
	}
	return false
}

// ParseCategory resolves user-facing category labels, including the singular
// forms the selection screen uses, onto the canonical keys.
func ParseCategory(value string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "freelancer", "freelancers":
		return CategoryFreelancers, true
	case "portfolio", "portfolios":
		return CategoryPortfolios, true
	case "product", "products":
		return CategoryProducts, true
	case "business", "businesses":
		return CategoryBusinesses, true
	}
	return "", false
}

// ThemeDescriptor binds a theme id to its category, human metadata, field
// schema, wizard gate list and render capability. Descriptors are immutable
// once registered.
type ThemeDescriptor struct {
	ID             string
	Category       Category
	DisplayName    string
	Description    string
	RequiredFields []string
	FieldSchema    []schema.FieldSpec
	Renderer       interfaces.ThemeRenderer
}

// UUID derives the descriptor's stable identifier from its id.
func (d ThemeDescriptor) UUID() uuid.UUID {
	return themeUUID(d.ID)
}
