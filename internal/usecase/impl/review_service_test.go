package impl

import (
	"context"
	"strings"
	"testing"

	"makan/config"
	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/repository"
	mockRepo "makan/internal/mocks/repository"
	mockService "makan/internal/mocks/service"
	mockUsecase "makan/internal/mocks/usecase"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service    usecase.ReviewUsecase
	reviewRepo *mockRepo.MockReviewRepository
	identities *mockUsecase.MockIdentityUsecase
	blobs      *mockService.MockBlobStorage
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	fx := reviewServiceFixtures{
		reviewRepo: mockRepo.NewMockReviewRepository(t),
		identities: mockUsecase.NewMockIdentityUsecase(t),
		blobs:      mockService.NewMockBlobStorage(t),
	}
	fx.service = NewReviewService(ReviewServiceParams{
		ReviewRepo: fx.reviewRepo,
		Identities: fx.identities,
		Blobs:      fx.blobs,
		Config:     &config.Config{Blob: &config.BlobConfig{MaxImageBytes: 1024}},
		Logger:     newDiscardLogger(),
	})

	return fx
}

func validReviewInput() *usecase.CreateReviewInput {
	return &usecase.CreateReviewInput{
		Title:        "Best char kway teow in town",
		StallName:    " Uncle Lim ",
		Location:     "Jalan Alor",
		OpeningHours: "6pm - 2am",
		Experience:   "Smoky wok hei, generous cockles.",
		Images:       []usecase.Image{{Data: pngHeader}},
	}
}

func TestReviewService_CreateReview(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	authorID := uuid.New()

	fx.identities.EXPECT().Resolve(ctx, authorID).Return(&entity.Identity{AccountID: authorID, DisplayName: "Aisyah"}, nil)
	fx.blobs.EXPECT().
		Upload(mock.Anything, mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, "reviews/") }), "image/png", pngHeader).
		Return("http://cdn/reviews/1.png", nil)
	fx.reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)

	review, err := fx.service.CreateReview(ctx, authorID, validReviewInput())
	require.NoError(t, err)
	assert.Equal(t, "Aisyah", review.AuthorName)
	assert.Equal(t, "Uncle Lim", review.StallName)
	assert.Equal(t, []string{"http://cdn/reviews/1.png"}, review.ImageURLs)
}

func TestReviewService_CreateReview_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.CreateReviewInput)
	}{
		{name: "missing title", mutate: func(in *usecase.CreateReviewInput) { in.Title = "" }},
		{name: "missing stall", mutate: func(in *usecase.CreateReviewInput) { in.StallName = "  " }},
		{name: "missing experience", mutate: func(in *usecase.CreateReviewInput) { in.Experience = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReviewService(t)
			input := validReviewInput()
			tt.mutate(input)

			_, err := fx.service.CreateReview(context.Background(), uuid.New(), input)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestReviewService_CreateReview_FailedWriteDeletesUploads(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	authorID := uuid.New()

	fx.identities.EXPECT().Resolve(ctx, authorID).Return(entity.AnonymousIdentity(authorID), nil)
	fx.blobs.EXPECT().Upload(mock.Anything, mock.Anything, "image/png", pngHeader).Return("http://cdn/reviews/x.png", nil)
	fx.reviewRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("connection reset"))
	fx.blobs.EXPECT().Delete(mock.Anything, "http://cdn/reviews/x.png").Return(nil)

	review, err := fx.service.CreateReview(ctx, authorID, validReviewInput())
	assert.Nil(t, review)
	assert.Error(t, err)
}

func TestReviewService_GetReview_NotFound(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.reviewRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrReviewNotFound)

	_, err := fx.service.GetReview(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))
}

func TestReviewService_ListReviews_ClampsLimit(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	authorID := uuid.New()

	fx.reviewRepo.EXPECT().List(ctx, repository.ListOptions{AuthorID: authorID, Limit: maxListLimit}).Return(nil, nil)
	fx.reviewRepo.EXPECT().List(ctx, repository.ListOptions{Limit: defaultListLimit}).Return([]*entity.Review{{ID: uuid.New()}}, nil)

	_, err := fx.service.ListReviews(ctx, authorID, 1000)
	require.NoError(t, err)

	reviews, err := fx.service.ListReviews(ctx, uuid.Nil, 0)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}

func TestReviewService_DeleteReview(t *testing.T) {
	ownerID := uuid.New()
	reviewID := uuid.New()
	stored := &entity.Review{ID: reviewID, AuthorID: ownerID, ImageURLs: []string{"http://cdn/reviews/a.png"}}

	t.Run("owner deletes review and images", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(stored, nil)
		fx.reviewRepo.EXPECT().Delete(ctx, reviewID).Return(nil)
		fx.blobs.EXPECT().Delete(mock.Anything, "http://cdn/reviews/a.png").Return(nil)

		require.NoError(t, fx.service.DeleteReview(ctx, ownerID, reviewID))
	})

	t.Run("other account is rejected", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(stored, nil)

		err := fx.service.DeleteReview(ctx, uuid.New(), reviewID)
		assert.True(t, errors.Is(err, domainerrors.ErrNotContentOwner))
	})
}
