package response

import (
	"time"

	"jua-kazi/internal/data/entity"
)

type ProviderResponse struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"user_id"`
	ServiceCategory entity.ServiceCategory `json:"service_category"`
	CategoryIcon    string                 `json:"category_icon"`
	Location        string                 `json:"location"`
	Description     string                 `json:"description"`
	PriceRange      *string                `json:"price_range,omitempty"`
	Images          []string               `json:"images"`
	IsFeatured      bool                   `json:"is_featured"`
	IsApproved      bool                   `json:"is_approved"`
	CreatedAt       time.Time              `json:"created_at"`
}

// OwnerResponse is the joined account data shown on a listing.
type OwnerResponse struct {
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	IsVerified  bool   `json:"is_verified"`
}

type ListingResponse struct {
	ProviderResponse
	User *OwnerResponse `json:"user,omitempty"`
}

type ContactResponse struct {
	WhatsAppURL string `json:"whatsapp_url"`
	CallURL     string `json:"call_url"`
	PhoneNumber string `json:"phone_number"`
	Message     string `json:"message"`
}

type CategoryResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

func ProviderToResponse(p *entity.Provider) ProviderResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return ProviderResponse{
		ID:              p.ID.String(),
		UserID:          p.UserID.String(),
		ServiceCategory: p.ServiceCategory,
		CategoryIcon:    p.ServiceCategory.Icon(),
		Location:        p.Location,
		Description:     p.Description,
		PriceRange:      p.PriceRange,
		Images:          images,
		IsFeatured:      p.IsFeatured,
		IsApproved:      p.IsApproved,
		CreatedAt:       p.CreatedAt,
	}
}

func ListingToResponse(l *entity.ProviderListing) ListingResponse {
	resp := ListingResponse{ProviderResponse: ProviderToResponse(l.Provider)}
	if l.User != nil {
		resp.User = &OwnerResponse{
			FullName:    l.User.FullName,
			PhoneNumber: l.User.PhoneNumber,
			IsVerified:  l.User.IsVerified,
		}
	}
	return resp
}

func ListingsToResponse(listings []*entity.ProviderListing) []ListingResponse {
	out := make([]ListingResponse, len(listings))
	for i, l := range listings {
		out[i] = ListingToResponse(l)
	}
	return out
}

func CategoriesToResponse(categories []entity.ServiceCategory) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = CategoryResponse{Value: c.Label(), Label: c.Short(), Icon: c.Icon()}
	}
	return out
}
