package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "makan/internal/delivery/context"
	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/repository"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type commentService struct {
	commentRepo repository.CommentRepository
	recipeRepo  repository.RecipeRepository
	reviewRepo  repository.ReviewRepository
	identities  usecase.IdentityUsecase
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	CommentRepo repository.CommentRepository
	RecipeRepo  repository.RecipeRepository
	ReviewRepo  repository.ReviewRepository
	Identities  usecase.IdentityUsecase
	Logger      *slog.Logger
}

// NewCommentService creates the comment use case.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo: params.CommentRepo,
		recipeRepo:  params.RecipeRepo,
		reviewRepo:  params.ReviewRepo,
		identities:  params.Identities,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddComment appends a comment under the author's current display name.
func (srv *commentService) AddComment(ctx context.Context, kind entity.ItemKind, targetID, authorID uuid.UUID, text string) (*entity.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.WithStack(domainerrors.ErrEmptyComment)
	}

	if err := srv.ensureTarget(ctx, kind, targetID); err != nil {
		return nil, err
	}

	author, err := srv.identities.Resolve(ctx, authorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve comment author")
	}

	comment := &entity.Comment{
		ID:         uuid.New(),
		TargetKind: kind,
		TargetID:   targetID,
		AuthorID:   authorID,
		AuthorName: author.DisplayName,
		Text:       text,
		CreatedAt:  time.Now().UTC(),
	}

	if err := srv.commentRepo.Append(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to append comment")
	}

	srv.log(ctx).Debug("Comment added", slog.Any("kind", kind), slog.Any("targetID", targetID))

	return comment, nil
}

// ListComments returns the comments of a recipe or review, oldest first.
func (srv *commentService) ListComments(ctx context.Context, kind entity.ItemKind, targetID uuid.UUID) ([]*entity.Comment, error) {
	if err := srv.ensureTarget(ctx, kind, targetID); err != nil {
		return nil, err
	}

	comments, err := srv.commentRepo.ListByTarget(ctx, kind, targetID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

// ensureTarget reports a missing target with the not-found code of its kind.
func (srv *commentService) ensureTarget(ctx context.Context, kind entity.ItemKind, targetID uuid.UUID) error {
	err := ensureContentExists(ctx, srv.recipeRepo, srv.reviewRepo, kind, targetID)
	if err == nil || !errors.Is(err, domainerrors.ErrItemNotFound) {
		return err
	}

	if kind == entity.ItemKindRecipe {
		return errors.WithStack(domainerrors.ErrRecipeNotFound)
	}

	return errors.WithStack(domainerrors.ErrReviewNotFound)
}
