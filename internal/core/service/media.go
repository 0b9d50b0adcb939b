package service

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/ideadrop/content-api/internal/core/domain"
	"github.com/ideadrop/content-api/internal/core/ports"
)

// resolveImage turns a user-supplied image value into a hosted URL:
// http(s) URLs pass through untouched, base64 data URIs are decoded and
// uploaded to the media store, anything else is rejected.
func resolveImage(ctx context.Context, store ports.MediaStore, folder, image string) (string, error) {
	switch {
	case strings.HasPrefix(image, "http://"), strings.HasPrefix(image, "https://"):
		return image, nil
	case strings.HasPrefix(image, "data:image"):
		contentType, data, err := decodeDataURI(image)
		if err != nil {
			return "", err
		}
		return store.Upload(ctx, folder, contentType, data)
	default:
		return "", domain.ErrInvalidImage
	}
}

// decodeDataURI splits a "data:image/<type>;base64,<payload>" string into
// its content type and raw bytes.
func decodeDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, domain.ErrInvalidImage
	}
	contentType, payload, ok := strings.Cut(rest, ";base64,")
	if !ok || !strings.HasPrefix(contentType, "image/") {
		return "", nil, domain.ErrInvalidImage
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, domain.ErrInvalidImage
	}
	return contentType, data, nil
}
