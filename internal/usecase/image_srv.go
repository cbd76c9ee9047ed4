package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"jua-kazi/internal/data/entity"
	apperrors "jua-kazi/pkg/errors"
	"jua-kazi/pkg/media"
	"jua-kazi/pkg/utils"

	"go.uber.org/zap"
)

// ErrImagesDisabled is returned when no image storage is configured.
var ErrImagesDisabled = errors.New("image uploads are not configured")

// MaxProviderImages caps the photos on one listing.
const MaxProviderImages = 10

type ImageService interface {
	Enabled() bool
	// AttachImage uploads file and appends its URL to the listing's images
	// through dir.
	AttachImage(ctx context.Context, dir Directory, providerID string, file io.Reader) (*entity.Provider, string, error)
}

type imageService struct {
	uploader media.Uploader
	log      *zap.Logger
}

// NewImageService accepts a nil uploader; the service then reports disabled.
func NewImageService(uploader media.Uploader, log *zap.Logger) ImageService {
	return &imageService{
		uploader: uploader,
		log:      log.With(zap.String("service", "image")),
	}
}

func (s *imageService) Enabled() bool {
	return s.uploader != nil
}

func (s *imageService) AttachImage(ctx context.Context, dir Directory, providerID string, file io.Reader) (*entity.Provider, string, error) {
	if !s.Enabled() {
		return nil, "", ErrImagesDisabled
	}

	listing, err := dir.GetProvider(ctx, providerID)
	if err != nil {
		return nil, "", err
	}
	if len(listing.Images) >= MaxProviderImages {
		return nil, "", fmt.Errorf("%w: a listing holds at most %d images", apperrors.ErrValidation, MaxProviderImages)
	}

	publicID := fmt.Sprintf("%s-%s", listing.ID, utils.GenerateUUID().String()[:8])
	url, err := s.uploader.Upload(ctx, file, publicID)
	if err != nil {
		return nil, "", err
	}

	provider, err := dir.AddProviderImage(ctx, providerID, url)
	if err != nil {
		s.log.Error("Failed to attach uploaded image", zap.Error(err), zap.String("provider_id", providerID))
		return nil, "", err
	}

	s.log.Info("Image attached", zap.String("provider_id", providerID), zap.String("url", url))
	return provider, url, nil
}
