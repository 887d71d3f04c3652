package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"makan/internal/delivery/api/middleware"
	"makan/internal/delivery/api/validator"
	"makan/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError

	return e
}

// asAccount stands in for the auth middleware.
func asAccount(id uuid.UUID, roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			middleware.SetAccount(c, id, roles)

			return next(c)
		}
	}
}

func serve(e *echo.Echo, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func serveJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	return serve(e, method, target, strings.NewReader(body), echo.MIMEApplicationJSON)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data any) *envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}

	return &env
}

// multipartBody builds a form with an optional JSON "data" field and files under fileField.
func multipartBody(t *testing.T, data string, fileField string, files ...[]byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if data != "" {
		require.NoError(t, w.WriteField("data", data))
	}
	for i, content := range files {
		part, err := w.CreateFormFile(fileField, "photo"+string(rune('a'+i))+".png")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}
