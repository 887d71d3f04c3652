package handler

import (
	"log/slog"
	"net/http"

	"makan/internal/delivery/api/middleware"
	"makan/internal/delivery/api/response"
	"makan/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for sign-up, login and password handlers.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterPersonalRequest is the sign-up body of a personal account.
type RegisterPersonalRequest struct {
	FullName      string `json:"full_name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required"`
	ContactNumber string `json:"contact_number"`
}

// RegisterBusinessRequest is the sign-up body of a business account.
type RegisterBusinessRequest struct {
	StallName     string `json:"stall_name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required"`
	Location      string `json:"location"`
	OpeningHours  string `json:"opening_hours"`
	ContactNumber string `json:"contact_number"`
}

// LoginRequest carries email credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest carries the refresh token of a session.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ForgotPasswordRequest asks for a reset mail.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest completes a mailed reset.
type ResetPasswordRequest struct {
	Token           string `json:"token" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// ChangePasswordRequest changes the password of the logged-in account.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	Account      *ProfileResponse `json:"account"`
}

// RegisterPersonal handles personal sign-up.
func (h *AuthHandler) RegisterPersonal(c echo.Context) error {
	var req RegisterPersonalRequest
	if ok, err := bindAndValidate(c, &req, "Invalid registration input"); !ok {
		return err
	}

	output, err := h.authUC.RegisterPersonal(c.Request().Context(), &usecase.RegisterPersonalInput{
		FullName:      req.FullName,
		Email:         req.Email,
		Password:      req.Password,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newProfileResponse(output.Account))
}

// RegisterBusiness handles business sign-up.
func (h *AuthHandler) RegisterBusiness(c echo.Context) error {
	var req RegisterBusinessRequest
	if ok, err := bindAndValidate(c, &req, "Invalid registration input"); !ok {
		return err
	}

	output, err := h.authUC.RegisterBusiness(c.Request().Context(), &usecase.RegisterBusinessInput{
		StallName:     req.StallName,
		Email:         req.Email,
		Password:      req.Password,
		Location:      req.Location,
		OpeningHours:  req.OpeningHours,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newProfileResponse(output.Account))
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindAndValidate(c, &req, "Invalid login input"); !ok {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &LoginResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		Account:      newProfileResponse(output.Account),
	})
}

// RefreshToken issues a new access token for a live session.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if ok, err := bindAndValidate(c, &req, "Invalid refresh token input"); !ok {
		return err
	}

	output, err := h.authUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"access_token": output.AccessToken})
}

// Logout ends the session of the given refresh token.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req RefreshTokenRequest
	if ok, err := bindAndValidate(c, &req, "Invalid logout input"); !ok {
		return err
	}

	if err := h.authUC.Logout(c.Request().Context(), &usecase.LogoutInput{RefreshToken: req.RefreshToken}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &MessageResponse{Message: "Successfully logged out"})
}

// ForgotPassword mails a reset link. The answer is the same whether or not the email is known.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if ok, err := bindAndValidate(c, &req, "Invalid email input"); !ok {
		return err
	}

	if err := h.authUC.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, &MessageResponse{Message: "If the email is registered, a reset link has been sent"})
}

// ResetPassword sets a new password from a mailed token.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if ok, err := bindAndValidate(c, &req, "Invalid reset input"); !ok {
		return err
	}

	err := h.authUC.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Token:           req.Token,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &MessageResponse{Message: "Password has been reset"})
}

// ChangePassword changes the password of the logged-in account.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	accountID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ChangePasswordRequest
	if ok, err := bindAndValidate(c, &req, "Invalid password input"); !ok {
		return err
	}

	err := h.authUC.ChangePassword(c.Request().Context(), accountID, &usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &MessageResponse{Message: "Password changed"})
}
