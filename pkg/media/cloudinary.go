package media

import (
	"context"
	"errors"
	"fmt"
	"io"

	"jua-kazi/pkg/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

// Uploader stores an image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, publicID string) (string, error)
}

type cloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
	log    *zap.Logger
}

// NewCloudinaryUploader builds an uploader from the configured credentials.
func NewCloudinaryUploader(cfg utils.CloudinaryConfig, log *zap.Logger) (Uploader, error) {
	if !cfg.Enabled() {
		return nil, errors.New("cloudinary credentials not configured")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}

	return &cloudinaryUploader{
		cld:    cld,
		folder: cfg.Folder,
		log:    log.With(zap.String("component", "cloudinary")),
	}, nil
}

func (u *cloudinaryUploader) Upload(ctx context.Context, file io.Reader, publicID string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: publicID,
		Folder:   u.folder,
	})
	if err != nil {
		u.log.Error("Upload failed", zap.Error(err), zap.String("public_id", publicID))
		return "", fmt.Errorf("upload image: %w", err)
	}
	if resp.SecureURL == "" {
		msg := resp.Error.Message
		u.log.Error("Upload rejected", zap.String("public_id", publicID), zap.String("reason", msg))
		return "", fmt.Errorf("upload image: rejected: %s", msg)
	}

	u.log.Info("Image uploaded", zap.String("public_id", publicID), zap.String("url", resp.SecureURL))
	return resp.SecureURL, nil
}
