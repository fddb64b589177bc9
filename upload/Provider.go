package upload

import (
	"context"
	"io"
)

// Provider stores an image somewhere public and returns its URL.
type Provider interface {
	Upload(ctx context.Context, file io.Reader) (string, error)
}
