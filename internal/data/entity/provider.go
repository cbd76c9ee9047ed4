package entity

import "github.com/google/uuid"

// Provider is a public service listing. It never copies contact data from
// its owner; see ProviderListing.
type Provider struct {
	BaseSimple
	UserID          uuid.UUID       `json:"user_id"`
	ServiceCategory ServiceCategory `json:"service_category"`
	Location        string          `json:"location"`
	Description     string          `json:"description"`
	PriceRange      *string         `json:"price_range,omitempty"`
	Images          []string        `json:"images"`
	IsFeatured      bool            `json:"is_featured"`
	IsApproved      bool            `json:"is_approved"`
}

// PrimaryImage returns the first image URL, or "" when there is none.
func (p *Provider) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// ProviderListing is a Provider joined with its owning User. User is nil
// when the reference dangles.
type ProviderListing struct {
	*Provider
	User *User
}

// OwnedBy reports whether the listing belongs to userID.
func (l *ProviderListing) OwnedBy(userID uuid.UUID) bool {
	return l.Provider != nil && l.UserID == userID
}
