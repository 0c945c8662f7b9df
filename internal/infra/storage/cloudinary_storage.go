// Package storage implements external media storage for review images.
package storage

import (
	"context"
	"io"

	"maple/config"
	"maple/internal/domain/service"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// cloudinaryStorage implements service.ImageStorage on Cloudinary.
type cloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage creates an image storage backed by Cloudinary.
func NewCloudinaryStorage(cfg *config.CloudinaryConfig) (service.ImageStorage, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize cloudinary")
	}

	return &cloudinaryStorage{cld: cld}, nil
}

// Upload stores the image and returns its public secure URL.
// Public IDs are random so uploaded filenames never collide or leak
// user-provided names.
func (s *cloudinaryStorage) Upload(ctx context.Context, r io.Reader, folder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       folder,
		PublicID:     uuid.NewString(),
		ResourceType: "image",
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload image")
	}

	return result.SecureURL, nil
}
