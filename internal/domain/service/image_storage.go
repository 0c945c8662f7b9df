package service

import (
	"context"
	"io"
)

// ImageStorage uploads user-submitted images (review photos) to an external
// media store and returns a public URL.
type ImageStorage interface {
	// Upload stores the image and returns its public URL.
	Upload(ctx context.Context, r io.Reader, folder string) (string, error)
}
