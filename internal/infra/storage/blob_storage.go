// Package storage keeps uploaded images in a gocloud.dev bucket (GCS, S3, local files or memory).
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"makan/config"
	"makan/internal/domain/service"
	"makan/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

// Params holds dependencies for the blob storage, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type bucketStorage struct {
	bucket  *blob.Bucket
	baseURL string
}

// New opens the bucket named by blob.bucketUrl and closes it on shutdown.
func New(params Params) (service.BlobStorage, error) {
	bucket, err := blob.OpenBucket(context.Background(), params.Config.Blob.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", params.Config.Blob.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.Close(bucket, "blob bucket")
		},
	})

	params.Logger.Info("Blob storage initialized", slog.String("bucket_url", params.Config.Blob.BucketURL))

	return NewBucketStorage(bucket, params.Config.Blob.PublicBaseURL), nil
}

// NewBucketStorage wraps an already opened bucket. Returned URLs are baseURL + "/" + key.
func NewBucketStorage(bucket *blob.Bucket, baseURL string) service.BlobStorage {
	return &bucketStorage{bucket: bucket, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *bucketStorage) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	return s.baseURL + "/" + key, nil
}

func (s *bucketStorage) Delete(ctx context.Context, url string) error {
	key, ok := s.keyOf(url)
	if !ok {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

func (s *bucketStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrBlobNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to open %s", key)
	}

	return reader, reader.ContentType(), nil
}

func (s *bucketStorage) keyOf(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok || key == "" {
		return "", false
	}

	return key, true
}
