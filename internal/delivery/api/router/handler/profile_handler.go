package handler

import (
	"log/slog"
	"net/http"
	"time"

	"makan/config"
	"makan/internal/delivery/api/middleware"
	"makan/internal/delivery/api/response"
	"makan/internal/domain/entity"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC  usecase.ProfileUsecase
	IdentityUC usecase.IdentityUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// ProfileHandler serves profiles, account search and the business contact QR.
type ProfileHandler struct {
	profileUC     usecase.ProfileUsecase
	identityUC    usecase.IdentityUsecase
	maxImageBytes int64
	logger        *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC:     params.ProfileUC,
		identityUC:    params.IdentityUC,
		maxImageBytes: params.Config.Blob.MaxImageBytes,
		logger:        params.Logger,
	}
}

// PersonalProfileResponse is the personal variant of a profile.
type PersonalProfileResponse struct {
	FullName            string   `json:"full_name"`
	ContactNumber       string   `json:"contact_number"`
	Gender              string   `json:"gender"`
	DateOfBirth         string   `json:"date_of_birth"`
	AvatarURL           string   `json:"avatar_url"`
	FoodAllergies       []string `json:"food_allergies"`
	FoodPreferences     []string `json:"food_preferences"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
}

// BusinessProfileResponse is the business variant of a profile.
type BusinessProfileResponse struct {
	StallName     string `json:"stall_name"`
	Location      string `json:"location"`
	OpeningHours  string `json:"opening_hours"`
	ContactNumber string `json:"contact_number"`
	AvatarURL     string `json:"avatar_url"`
}

// ProfileResponse is an account as shown to its owner.
type ProfileResponse struct {
	ID        uuid.UUID                `json:"id"`
	Kind      entity.AccountKind       `json:"kind"`
	Email     string                   `json:"email"`
	Personal  *PersonalProfileResponse `json:"personal,omitempty"`
	Business  *BusinessProfileResponse `json:"business,omitempty"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
}

// UpdateProfileRequest carries editable fields of either variant. Fields that do not belong
// to the caller's variant are ignored; absent fields are left unchanged.
type UpdateProfileRequest struct {
	FullName            *string  `json:"full_name"`
	Gender              *string  `json:"gender"`
	DateOfBirth         *string  `json:"date_of_birth"`
	FoodAllergies       []string `json:"food_allergies"`
	FoodPreferences     []string `json:"food_preferences"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	StallName           *string  `json:"stall_name"`
	Location            *string  `json:"location"`
	OpeningHours        *string  `json:"opening_hours"`
	ContactNumber       *string  `json:"contact_number"`
}

func newProfileResponse(account *entity.Account) *ProfileResponse {
	if account == nil {
		return nil
	}

	resp := &ProfileResponse{
		ID:        account.ID,
		Kind:      account.Kind,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
	if p := account.Personal; p != nil {
		resp.Personal = &PersonalProfileResponse{
			FullName:            p.FullName,
			ContactNumber:       p.ContactNumber,
			Gender:              p.Gender,
			DateOfBirth:         p.DateOfBirth,
			AvatarURL:           p.AvatarURL,
			FoodAllergies:       p.FoodAllergies,
			FoodPreferences:     p.FoodPreferences,
			DietaryRestrictions: p.DietaryRestrictions,
		}
	}
	if b := account.Business; b != nil {
		resp.Business = &BusinessProfileResponse{
			StallName:     b.StallName,
			Location:      b.Location,
			OpeningHours:  b.OpeningHours,
			ContactNumber: b.ContactNumber,
			AvatarURL:     b.AvatarURL,
		}
	}

	return resp
}

// GetProfile returns the caller's own profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	account, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(account))
}

// UpdateProfile edits the caller's profile variant, chosen by the role in the access token.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	roles, _ := middleware.GetRoles(c)

	var req UpdateProfileRequest
	if ok, err := bindAndValidate(c, &req, "Invalid profile input"); !ok {
		return err
	}

	ctx := c.Request().Context()

	var (
		account *entity.Account
		err     error
	)
	if roles.Contains(entity.RoleBusiness) {
		account, err = h.profileUC.UpdateBusinessProfile(ctx, userID, &usecase.UpdateBusinessProfileInput{
			StallName:     req.StallName,
			Location:      req.Location,
			OpeningHours:  req.OpeningHours,
			ContactNumber: req.ContactNumber,
		})
	} else {
		account, err = h.profileUC.UpdatePersonalProfile(ctx, userID, &usecase.UpdatePersonalProfileInput{
			FullName:            req.FullName,
			ContactNumber:       req.ContactNumber,
			Gender:              req.Gender,
			DateOfBirth:         req.DateOfBirth,
			FoodAllergies:       req.FoodAllergies,
			FoodPreferences:     req.FoodPreferences,
			DietaryRestrictions: req.DietaryRestrictions,
		})
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(account))
}

// UploadAvatar replaces the caller's avatar with the multipart "image" file.
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	image, err := formImage(c, "image", h.maxImageBytes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.profileUC.UploadAvatar(c.Request().Context(), userID, image)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(account))
}

// SearchAccounts finds people and stalls by name.
func (h *ProfileHandler) SearchAccounts(c echo.Context) error {
	identities, err := h.profileUC.SearchAccounts(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, identities)
}

// GetIdentity returns the display identity of any account identifier.
// Unknown identifiers resolve to the anonymous identity.
func (h *ProfileHandler) GetIdentity(c echo.Context) error {
	accountID, ok := uuidParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid account ID")
	}

	identity, err := h.identityUC.Resolve(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, identity)
}

// ContactQRCode returns the caller's contact QR code as a PNG.
func (h *ProfileHandler) ContactQRCode(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	png, err := h.profileUC.ContactQRCode(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
