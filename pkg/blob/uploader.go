package blob

import "context"

// Uploader stores an opaque blob and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}
