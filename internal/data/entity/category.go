package entity

import "strings"

type ServiceCategory string

const (
	CategoryPlumbing     ServiceCategory = "Plumbing"
	CategoryElectrical   ServiceCategory = "Electrical"
	CategoryCleaning     ServiceCategory = "Cleaning"
	CategoryConstruction ServiceCategory = "Construction/Fundi"
	CategoryTutoring     ServiceCategory = "Tutoring"
	CategoryPhotography  ServiceCategory = "Photography"
	CategoryMechanic     ServiceCategory = "Mechanic"
	CategorySalon        ServiceCategory = "Salon/Barber"
	CategoryOther        ServiceCategory = "Other"
)

// CategoryAll is the filter value meaning "any category".
const CategoryAll = "All"

var categories = []struct {
	value ServiceCategory
	name  string
	icon  string
}{
	{CategoryPlumbing, "PLUMBING", "🚰"},
	{CategoryElectrical, "ELECTRICAL", "⚡"},
	{CategoryCleaning, "CLEANING", "🧹"},
	{CategoryConstruction, "CONSTRUCTION", "🧱"},
	{CategoryTutoring, "TUTORING", "📚"},
	{CategoryPhotography, "PHOTOGRAPHY", "📸"},
	{CategoryMechanic, "MECHANIC", "🔧"},
	{CategorySalon, "SALON", "✂️"},
	{CategoryOther, "OTHER", "✨"},
}

// ServiceCategories lists every category in display order.
func ServiceCategories() []ServiceCategory {
	out := make([]ServiceCategory, len(categories))
	for i, c := range categories {
		out[i] = c.value
	}
	return out
}

// ParseServiceCategory accepts the label ("Construction/Fundi"), the enum
// name ("CONSTRUCTION") or the label's first segment ("construction"),
// ignoring case.
func ParseServiceCategory(s string) (ServiceCategory, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	for _, c := range categories {
		label := string(c.value)
		if strings.EqualFold(s, label) ||
			strings.EqualFold(s, c.name) ||
			strings.EqualFold(s, c.value.Short()) {
			return c.value, true
		}
	}
	return "", false
}

// Label is the human readable name used in listings and text search.
func (c ServiceCategory) Label() string {
	return string(c)
}

// Short is the label up to the first slash, as shown on filter chips.
func (c ServiceCategory) Short() string {
	label, _, _ := strings.Cut(string(c), "/")
	return label
}

func (c ServiceCategory) Icon() string {
	for _, known := range categories {
		if known.value == c {
			return known.icon
		}
	}
	return ""
}

// Valid reports whether c is one of the stored labels.
func (c ServiceCategory) Valid() bool {
	return c.Icon() != ""
}
