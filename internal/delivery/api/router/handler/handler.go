// Package handler contains the HTTP handlers of the API.
package handler

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"makan/internal/delivery/api/response"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessageResponse is returned by endpoints that have nothing else to report.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the request into req and runs its validate tags.
// It writes the 400 response itself and returns false when the request is unusable.
func bindAndValidate(c echo.Context, req any, invalidMessage string) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", invalidMessage)
	}

	if err := c.Validate(req); err != nil {
		return false, response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	return true, nil
}

func uuidParam(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// queryInt reads an optional integer query parameter.
func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WrapMessage(name + " must be an integer")
	}

	return n, nil
}

// readFile loads one multipart file. At most maxBytes+1 bytes are read so the use case
// can still reject oversized images.
func readFile(fileHeader *multipart.FileHeader, maxBytes int64) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	var reader io.Reader = file
	if maxBytes > 0 {
		reader = io.LimitReader(file, maxBytes+1)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read uploaded file")
	}

	return data, nil
}

// formImage reads the single image uploaded under field.
func formImage(c echo.Context, field string, maxBytes int64) ([]byte, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(field + " file is required")
	}

	return readFile(fileHeader, maxBytes)
}

// formImages reads every image uploaded under field. No files is not an error.
func formImages(c echo.Context, field string, maxBytes int64) ([]usecase.Image, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid multipart form")
	}

	headers := form.File[field]
	images := make([]usecase.Image, 0, len(headers))
	for _, fileHeader := range headers {
		data, err := readFile(fileHeader, maxBytes)
		if err != nil {
			return nil, err
		}
		images = append(images, usecase.Image{Data: data})
	}

	return images, nil
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// bindContent decodes a content upload. Multipart requests carry the JSON body in the "data"
// field next to the "images" files; JSON requests carry no images.
func bindContent(c echo.Context, req any, maxBytes int64) ([]usecase.Image, bool, error) {
	if !isMultipart(c) {
		ok, err := bindAndValidate(c, req, "Invalid content input")

		return nil, ok, err
	}

	if err := json.Unmarshal([]byte(c.FormValue("data")), req); err != nil {
		return nil, false, response.BindingError(c, "INVALID_INPUT", "Invalid data field")
	}
	if err := c.Validate(req); err != nil {
		return nil, false, response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	images, err := formImages(c, "images", maxBytes)
	if err != nil {
		return nil, false, response.HandleAppError(c, err)
	}

	return images, true, nil
}
