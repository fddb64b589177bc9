package upload

import (
	"context"
	"errors"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type Cloudinary struct {
	client *cloudinary.Cloudinary
}

// NewCloudinary builds a provider from a CLOUDINARY_URL-style connection string.
func NewCloudinary(cloudinaryURL string) (*Cloudinary, error) {
	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}
	return &Cloudinary{client: client}, nil
}

func (c *Cloudinary) Upload(ctx context.Context, file io.Reader) (string, error) {
	result, err := c.client.Upload.Upload(ctx, file, uploader.UploadParams{Folder: "uploads"})
	if err != nil {
		return "", err
	}
	if result.Error.Message != "" {
		return "", errors.New(result.Error.Message)
	}
	return result.SecureURL, nil
}
