package middleware

import (
	deliverycontext "makan/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// IdentityCacheMiddleware gives every request its own identity cache so that repeated
// lookups of the same author or counterpart within one response hit the store once.
type IdentityCacheMiddleware struct{}

// NewIdentityCacheMiddleware creates a new identity cache middleware
func NewIdentityCacheMiddleware() *IdentityCacheMiddleware {
	return &IdentityCacheMiddleware{}
}

// Process installs a fresh cache into the request context.
func (m *IdentityCacheMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := deliverycontext.WithIdentityCache(c.Request().Context(), deliverycontext.NewIdentityCache())
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
