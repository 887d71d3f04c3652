package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"makan/config"
	deliverycontext "makan/internal/delivery/context"
	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/repository"
	"makan/internal/domain/service"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
	identities usecase.IdentityUsecase
	uploader   *imageUploader
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo repository.ReviewRepository
	Identities usecase.IdentityUsecase
	Blobs      service.BlobStorage
	Config     *config.Config
	Logger     *slog.Logger
}

// NewReviewService creates the review use case.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: params.ReviewRepo,
		identities: params.Identities,
		uploader:   newImageUploader(params.Blobs, maxImageBytes(params.Config), params.Logger),
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview uploads the images and stores the review, removing the images if the write fails.
func (srv *reviewService) CreateReview(ctx context.Context, authorID uuid.UUID, input *usecase.CreateReviewInput) (*entity.Review, error) {
	title := strings.TrimSpace(input.Title)
	stallName := strings.TrimSpace(input.StallName)
	switch {
	case title == "":
		return nil, domainerrors.ErrValidationFailed.WrapMessage("title is required")
	case stallName == "":
		return nil, domainerrors.ErrValidationFailed.WrapMessage("stall name is required")
	case strings.TrimSpace(input.Experience) == "":
		return nil, domainerrors.ErrValidationFailed.WrapMessage("experience is required")
	}

	author, err := srv.identities.Resolve(ctx, authorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve review author")
	}

	urls, err := srv.uploader.UploadAll(ctx, imagePrefixReviews, input.Images)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		ID:           uuid.New(),
		Title:        title,
		StallName:    stallName,
		Location:     strings.TrimSpace(input.Location),
		OpeningHours: strings.TrimSpace(input.OpeningHours),
		Experience:   strings.TrimSpace(input.Experience),
		ImageURLs:    urls,
		AuthorID:     authorID,
		AuthorName:   author.DisplayName,
		CreatedAt:    time.Now().UTC(),
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		srv.log(ctx).Error("Failed to store review, removing uploaded images", slog.Any("reviewID", review.ID), slog.Any("error", err))
		srv.uploader.DeleteAll(ctx, urls)

		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.log(ctx).Info("Review created", slog.Any("reviewID", review.ID), slog.Any("authorID", authorID))

	return review, nil
}

// GetReview returns a review by ID.
func (srv *reviewService) GetReview(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, errors.WithStack(domainerrors.ErrReviewNotFound)
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return review, nil
}

// ListReviews returns reviews newest first.
func (srv *reviewService) ListReviews(ctx context.Context, authorID uuid.UUID, limit int) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.List(ctx, repository.ListOptions{AuthorID: authorID, Limit: normalizeLimit(limit)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// DeleteReview removes a review owned by the account and then its images.
func (srv *reviewService) DeleteReview(ctx context.Context, accountID, id uuid.UUID) error {
	review, err := srv.GetReview(ctx, id)
	if err != nil {
		return err
	}

	if review.AuthorID != accountID {
		return errors.WithStack(domainerrors.ErrNotContentOwner)
	}

	if err := srv.reviewRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return errors.WithStack(domainerrors.ErrReviewNotFound)
		}

		return errors.Wrap(err, "failed to delete review")
	}

	srv.uploader.DeleteAll(ctx, review.ImageURLs)

	return nil
}
