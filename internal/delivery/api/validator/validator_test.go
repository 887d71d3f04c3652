package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Platform string `json:"platform" validate:"omitempty,oneof=ios android"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&loginRequest{Email: "aisyah@example.com", Password: "secret1"}))

	err := v.Validate(&loginRequest{Email: "not-an-email", Platform: "web"})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "email must be a valid email")
		assert.Contains(t, err.Error(), "password is required")
		assert.Contains(t, err.Error(), "platform must be one of [ios android]")
	}
}
