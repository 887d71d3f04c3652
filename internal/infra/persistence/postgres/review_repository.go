package postgres

import (
	"context"

	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/repository"
	"makan/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements repository.ReviewRepository.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required review information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

func (repo *reviewRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Review, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var reviewModels []*model.ReviewModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by ids")
	}

	return toReviewDomains(reviewModels), nil
}

func (repo *reviewRepository) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Review, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if opts.AuthorID != uuid.Nil {
		query = query.Where("author_id = ?", opts.AuthorID)
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	var reviewModels []*model.ReviewModel
	if err := query.Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return toReviewDomains(reviewModels), nil
}

func (repo *reviewRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Review, error) {
	pattern := containsPattern(query)

	var reviewModels []*model.ReviewModel
	if err := repo.db.WithContext(ctx).
		Where("title ILIKE ? OR stall_name ILIKE ? OR author_name ILIKE ?", pattern, pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search reviews")
	}

	return toReviewDomains(reviewModels), nil
}

func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ReviewModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toReviewDomains(models []*model.ReviewModel) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(models))
	for _, reviewM := range models {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews
}

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:           data.ID,
		Title:        data.Title,
		StallName:    data.StallName,
		Location:     data.Location,
		OpeningHours: data.OpeningHours,
		Experience:   data.Experience,
		ImageURLs:    data.ImageURLs,
		AuthorID:     data.AuthorID,
		AuthorName:   data.AuthorName,
		CreatedAt:    data.CreatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:           data.ID,
		Title:        data.Title,
		StallName:    data.StallName,
		Location:     data.Location,
		OpeningHours: data.OpeningHours,
		Experience:   data.Experience,
		ImageURLs:    data.ImageURLs,
		AuthorID:     data.AuthorID,
		AuthorName:   data.AuthorName,
		CreatedAt:    data.CreatedAt,
	}
}
