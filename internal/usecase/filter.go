package usecase

import (
	"strings"

	"jua-kazi/internal/data/entity"
)

// ListingFilter is the public browse criteria. Empty or "All" means any.
type ListingFilter struct {
	Search   string
	Category string
	Location string
}

// FilterListings keeps the approved listings matching f, in input order.
// Search matches the owner's name, the description or the category label.
func FilterListings(listings []*entity.ProviderListing, f ListingFilter) []*entity.ProviderListing {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	location := strings.TrimSpace(f.Location)

	var category entity.ServiceCategory
	anyCategory := isAny(f.Category)
	if !anyCategory {
		parsed, ok := entity.ParseServiceCategory(f.Category)
		if !ok {
			return []*entity.ProviderListing{}
		}
		category = parsed
	}

	out := make([]*entity.ProviderListing, 0, len(listings))
	for _, l := range listings {
		if l == nil || l.Provider == nil || !l.IsApproved {
			continue
		}
		if search != "" && !matchesSearch(l, search) {
			continue
		}
		if !anyCategory && l.ServiceCategory != category {
			continue
		}
		if !isAny(location) && !strings.EqualFold(strings.TrimSpace(l.Location), location) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func matchesSearch(l *entity.ProviderListing, search string) bool {
	if l.User != nil && strings.Contains(strings.ToLower(l.User.FullName), search) {
		return true
	}
	if strings.Contains(strings.ToLower(l.Description), search) {
		return true
	}
	return strings.Contains(strings.ToLower(l.ServiceCategory.Label()), search)
}

func isAny(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, entity.CategoryAll)
}
