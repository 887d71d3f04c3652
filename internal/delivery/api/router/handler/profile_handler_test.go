package handler

import (
	"context"
	"net/http"
	"testing"

	"makan/config"
	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/infra/storage"
	mockUsecase "makan/internal/mocks/usecase"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newProfileTestServer(t *testing.T, accountID uuid.UUID, role entity.Role) (*echo.Echo, *mockUsecase.MockProfileUsecase, *mockUsecase.MockIdentityUsecase) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	identityUC := mockUsecase.NewMockIdentityUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{
		ProfileUC:  profileUC,
		IdentityUC: identityUC,
		Config:     &config.Config{Blob: &config.BlobConfig{MaxImageBytes: 1 << 20}},
	})

	e := newTestEcho()
	g := e.Group("", asAccount(accountID, role))
	g.PUT("/profile", h.UpdateProfile)
	g.POST("/profile/avatar", h.UploadAvatar)
	g.GET("/accounts/:id/identity", h.GetIdentity)
	g.GET("/business/qr", h.ContactQRCode)

	return e, profileUC, identityUC
}

func TestProfileHandler_UpdateProfile_Business(t *testing.T) {
	me := uuid.New()
	e, profileUC, _ := newProfileTestServer(t, me, entity.RoleBusiness)

	profileUC.EXPECT().
		UpdateBusinessProfile(mock.Anything, me, mock.MatchedBy(func(in *usecase.UpdateBusinessProfileInput) bool {
			return in.OpeningHours != nil && *in.OpeningHours == "7am - 2pm" && in.StallName == nil
		})).
		Return(&entity.Account{
			ID:       me,
			Kind:     entity.AccountKindBusiness,
			Business: &entity.BusinessProfile{StallName: "Kopi Tiam", OpeningHours: "7am - 2pm"},
		}, nil)

	rec := serveJSON(e, http.MethodPut, "/profile", `{"opening_hours":"7am - 2pm","food_allergies":["peanut"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile ProfileResponse
	decode(t, rec, &profile)
	assert.Equal(t, "7am - 2pm", profile.Business.OpeningHours)
}

func TestProfileHandler_UpdateProfile_Personal(t *testing.T) {
	me := uuid.New()
	e, profileUC, _ := newProfileTestServer(t, me, entity.RolePersonal)

	profileUC.EXPECT().
		UpdatePersonalProfile(mock.Anything, me, mock.MatchedBy(func(in *usecase.UpdatePersonalProfileInput) bool {
			return len(in.FoodAllergies) == 1 && in.FullName == nil
		})).
		Return(&entity.Account{ID: me, Kind: entity.AccountKindPersonal, Personal: &entity.PersonalProfile{FoodAllergies: []string{"peanut"}}}, nil)

	rec := serveJSON(e, http.MethodPut, "/profile", `{"food_allergies":["peanut"]}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileHandler_UploadAvatar(t *testing.T) {
	me := uuid.New()
	e, profileUC, _ := newProfileTestServer(t, me, entity.RolePersonal)

	profileUC.EXPECT().UploadAvatar(mock.Anything, me, pngHeader).
		Return(&entity.Account{ID: me, Kind: entity.AccountKindPersonal, Personal: &entity.PersonalProfile{AvatarURL: "http://cdn/avatars/1.png"}}, nil)

	body, contentType := multipartBody(t, "", "image", pngHeader)
	rec := serve(e, http.MethodPost, "/profile/avatar", body, contentType)
	require.Equal(t, http.StatusOK, rec.Code)

	missing, missingType := multipartBody(t, "", "other", pngHeader)
	assert.Equal(t, http.StatusBadRequest, serve(e, http.MethodPost, "/profile/avatar", missing, missingType).Code)
}

func TestProfileHandler_GetIdentity(t *testing.T) {
	e, _, identityUC := newProfileTestServer(t, uuid.New(), entity.RolePersonal)
	unknown := uuid.New()

	identityUC.EXPECT().Resolve(mock.Anything, unknown).Return(entity.AnonymousIdentity(unknown), nil)

	rec := serveJSON(e, http.MethodGet, "/accounts/"+unknown.String()+"/identity", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var identity entity.Identity
	decode(t, rec, &identity)
	assert.Equal(t, entity.AnonymousName, identity.DisplayName)
}

func TestProfileHandler_ContactQRCode(t *testing.T) {
	me := uuid.New()
	e, profileUC, _ := newProfileTestServer(t, me, entity.RoleBusiness)

	profileUC.EXPECT().ContactQRCode(mock.Anything, me).Return([]byte("png-bytes"), nil).Once()
	rec := serveJSON(e, http.MethodGet, "/business/qr", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "png-bytes", rec.Body.String())

	profileUC.EXPECT().ContactQRCode(mock.Anything, me).Return(nil, domainerrors.ErrProfileKindMismatch.WrapMessage("not business")).Once()
	assert.Equal(t, http.StatusBadRequest, serveJSON(e, http.MethodGet, "/business/qr", "").Code)
}

func TestImageHandler_ServeImage(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	blobs := storage.NewBucketStorage(bucket, "http://localhost:8080/images")

	_, err := blobs.Upload(context.Background(), "recipes/1-1.png", "image/png", pngHeader)
	require.NoError(t, err)

	e := newTestEcho()
	e.GET("/images/*", NewImageHandler(blobs).ServeImage)

	rec := serveJSON(e, http.MethodGet, "/images/recipes/1-1.png", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, pngHeader, rec.Body.Bytes())

	assert.Equal(t, http.StatusNotFound, serveJSON(e, http.MethodGet, "/images/recipes/missing.png", "").Code)
}
