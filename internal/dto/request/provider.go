package request

import (
	"jua-kazi/internal/data/entity"
	"jua-kazi/pkg/utils"
)

func init() {
	utils.RegisterValidation("service_category", func(value string) bool {
		_, ok := entity.ParseServiceCategory(value)
		return ok
	})
}

type CreateProfileRequest struct {
	ServiceCategory string   `json:"service_category" validate:"required,service_category"`
	Location        string   `json:"location" validate:"required,min=2,max=100"`
	Description     string   `json:"description" validate:"required,min=10,max=2000"`
	PriceRange      *string  `json:"price_range,omitempty" validate:"omitempty,max=100"`
	Images          []string `json:"images,omitempty" validate:"omitempty,max=10,dive,url"`
}

// UpdateProfileRequest lists the only listing fields an owner may change.
// Approval and promotion flags are admin-only and deliberately absent.
type UpdateProfileRequest struct {
	ServiceCategory *string   `json:"service_category,omitempty" validate:"omitempty,service_category"`
	Location        *string   `json:"location,omitempty" validate:"omitempty,min=2,max=100"`
	Description     *string   `json:"description,omitempty" validate:"omitempty,min=10,max=2000"`
	PriceRange      *string   `json:"price_range,omitempty" validate:"omitempty,max=100"`
	Images          *[]string `json:"images,omitempty" validate:"omitempty,max=10,dive,url"`
}

func (r UpdateProfileRequest) Empty() bool {
	return r.ServiceCategory == nil && r.Location == nil && r.Description == nil &&
		r.PriceRange == nil && r.Images == nil
}

// ListingQuery is the public browse filter.
type ListingQuery struct {
	Search   string
	Category string
	Location string
	PaginatedRequest
}

type SetApprovedRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

type SetFeaturedRequest struct {
	Featured *bool `json:"featured" validate:"required"`
}
