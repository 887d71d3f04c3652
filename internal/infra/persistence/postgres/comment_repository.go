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

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

func (repo *commentRepository) Append(ctx context.Context, comment *entity.Comment) error {
	commentM := &model.CommentModel{
		ID:         comment.ID,
		TargetKind: string(comment.TargetKind),
		TargetID:   comment.TargetID,
		AuthorID:   comment.AuthorID,
		AuthorName: comment.AuthorName,
		Text:       comment.Text,
		CreatedAt:  comment.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

func (repo *commentRepository) ListByTarget(ctx context.Context, kind entity.ItemKind, targetID uuid.UUID) ([]*entity.Comment, error) {
	var commentModels []*model.CommentModel

	if err := repo.db.WithContext(ctx).
		Where("target_kind = ? AND target_id = ?", string(kind), targetID).
		Order("created_at ASC").
		Find(&commentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for _, c := range commentModels {
		comments = append(comments, &entity.Comment{
			ID:         c.ID,
			TargetKind: entity.ItemKind(c.TargetKind),
			TargetID:   c.TargetID,
			AuthorID:   c.AuthorID,
			AuthorName: c.AuthorName,
			Text:       c.Text,
			CreatedAt:  c.CreatedAt,
		})
	}

	return comments, nil
}
