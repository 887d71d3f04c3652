package handler

import (
	"net/http"
	"path"
	"strings"

	"makan/internal/delivery/api/response"
	"makan/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ImageHandler streams stored images for buckets that have no public endpoint of their own.
type ImageHandler struct {
	blobs service.BlobStorage
}

// NewImageHandler is the constructor for ImageHandler.
func NewImageHandler(blobs service.BlobStorage) *ImageHandler {
	return &ImageHandler{blobs: blobs}
}

// ServeImage writes the object stored under the wildcard path.
func (h *ImageHandler) ServeImage(c echo.Context) error {
	key := path.Clean(c.Param("*"))
	if key == "." || strings.HasPrefix(key, "..") || strings.HasPrefix(key, "/") {
		return response.NotFound(c, "IMAGE_NOT_FOUND", "Image not found")
	}

	reader, contentType, err := h.blobs.Open(c.Request().Context(), key)
	if err != nil {
		if errors.Is(err, service.ErrBlobNotFound) {
			return response.NotFound(c, "IMAGE_NOT_FOUND", "Image not found")
		}

		return errors.WithStack(err)
	}
	defer reader.Close()

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Stream(http.StatusOK, contentType, reader)
}
