package ports

import "context"

// MediaStore uploads image bytes to the external media host and returns the
// public URL of the stored object.
type MediaStore interface {
	Upload(ctx context.Context, folder, contentType string, data []byte) (string, error)
}
