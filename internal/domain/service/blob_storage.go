package service

import (
	"context"
	"errors"
	"io"
)

// ErrBlobNotFound is returned by Open when no object exists under the key.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStorage stores user-uploaded images and hands back public URLs.
type BlobStorage interface {
	// Upload writes data under key and returns the URL clients use to fetch it.
	Upload(ctx context.Context, key, contentType string, data []byte) (url string, err error)

	// Delete removes the object behind a URL previously returned by Upload.
	// Unknown URLs are ignored.
	Delete(ctx context.Context, url string) error

	// Open streams the object stored under key along with its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
}
