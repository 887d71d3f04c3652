package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/service"
	"makan/internal/usecase"
	"makan/internal/util"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Key prefixes of uploaded images.
const (
	imagePrefixRecipes = "recipes"
	imagePrefixReviews = "reviews"
	imagePrefixAvatars = "avatars"
)

const (
	maxParallelUploads = 4
	cleanupTimeout     = 30 * time.Second
)

var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
	"image/bmp":  "bmp",
}

// imageUploader stores user images and removes them again when the owning write fails.
type imageUploader struct {
	blobs    service.BlobStorage
	maxBytes int64
	logger   *slog.Logger
	// counter keeps keys unique when several uploads share a timestamp.
	counter atomic.Uint64
}

func newImageUploader(blobs service.BlobStorage, maxBytes int64, logger *slog.Logger) *imageUploader {
	return &imageUploader{blobs: blobs, maxBytes: maxBytes, logger: logger}
}

// detectImage sniffs the content type and rejects anything that is not a supported image.
func detectImage(data []byte) (contentType, ext string, err error) {
	if len(data) == 0 {
		return "", "", domainerrors.ErrValidationFailed.WrapMessage("image is empty")
	}

	contentType = http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", "", domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("unsupported image type %q", contentType))
	}

	return contentType, ext, nil
}

func (u *imageUploader) key(prefix, ext string) string {
	n := u.counter.Add(1)

	return fmt.Sprintf("%s/%d-%d.%s", prefix, time.Now().UnixNano(), n, ext)
}

func (u *imageUploader) validate(data []byte) (string, string, error) {
	if u.maxBytes > 0 && int64(len(data)) > u.maxBytes {
		return "", "", domainerrors.ErrImageTooLarge.WrapMessage(
			fmt.Sprintf("image is %s, limit is %s", util.FormatBytes(int64(len(data))), util.FormatBytes(u.maxBytes)))
	}

	return detectImage(data)
}

// UploadOne stores a single image and returns its URL.
func (u *imageUploader) UploadOne(ctx context.Context, prefix string, data []byte) (string, error) {
	contentType, ext, err := u.validate(data)
	if err != nil {
		return "", err
	}

	url, err := u.blobs.Upload(ctx, u.key(prefix, ext), contentType, data)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	return url, nil
}

// UploadAll stores the images in parallel and returns their URLs in input order.
// If any upload fails, the ones that succeeded are deleted before returning.
func (u *imageUploader) UploadAll(ctx context.Context, prefix string, images []usecase.Image) ([]string, error) {
	urls := make([]string, len(images))
	if len(images) == 0 {
		return urls, nil
	}

	for _, img := range images {
		if _, _, err := u.validate(img.Data); err != nil {
			return nil, err
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxParallelUploads)

	for i, img := range images {
		group.Go(func() error {
			url, err := u.UploadOne(groupCtx, prefix, img.Data)
			if err != nil {
				return err
			}
			urls[i] = url

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		u.DeleteAll(ctx, compact(urls))

		return nil, err
	}

	return urls, nil
}

// DeleteAll removes the given images, logging failures instead of returning them.
// It keeps running after the caller's context is cancelled.
func (u *imageUploader) DeleteAll(ctx context.Context, urls []string) {
	if len(urls) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	for _, url := range urls {
		if err := u.blobs.Delete(ctx, url); err != nil {
			u.logger.WarnContext(ctx, "Failed to delete image", slog.String("url", url), slog.Any("error", err))
		}
	}
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}

	return out
}
