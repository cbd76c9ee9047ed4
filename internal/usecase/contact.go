package usecase

import (
	"fmt"
	"net/url"
	"strings"

	"jua-kazi/internal/data/entity"
	"jua-kazi/internal/dto/response"
	apperrors "jua-kazi/pkg/errors"
	"jua-kazi/pkg/utils"
)

// ContactLinks builds the WhatsApp and call links for a listing from its
// owner's current phone number.
func ContactLinks(listing *entity.ProviderListing) (*response.ContactResponse, error) {
	if listing == nil || listing.Provider == nil || listing.User == nil {
		return nil, fmt.Errorf("contact owner: %w", apperrors.ErrNotFound)
	}

	digits := utils.DigitsOnly(listing.User.PhoneNumber)
	if digits == "" {
		return nil, fmt.Errorf("contact phone for %s: %w", listing.ID, apperrors.ErrNotFound)
	}

	message := fmt.Sprintf("Hello %s, I saw your listing on JuaKazi and I'd like to discuss your %s services.",
		listing.User.FullName, listing.ServiceCategory.Label())

	return &response.ContactResponse{
		WhatsAppURL: "https://wa.me/" + digits + "?text=" + encodeText(message),
		CallURL:     "tel:" + digits,
		PhoneNumber: listing.User.PhoneNumber,
		Message:     message,
	}, nil
}

// encodeText percent-encodes spaces as %20, which wa.me expects.
func encodeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
