package impl

import (
	"context"
	"log/slog"
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

type savedService struct {
	savedRepo  repository.SavedItemRepository
	recipeRepo repository.RecipeRepository
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// SavedServiceParams holds dependencies for SavedService, injected by Fx.
type SavedServiceParams struct {
	fx.In

	SavedRepo  repository.SavedItemRepository
	RecipeRepo repository.RecipeRepository
	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewSavedService creates the bookmark use case.
func NewSavedService(params SavedServiceParams) usecase.SavedUsecase {
	return &savedService{
		savedRepo:  params.SavedRepo,
		recipeRepo: params.RecipeRepo,
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

func (srv *savedService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Toggle flips the stored state in one store-level atomic step. The target must exist only when
// the toggle ends up saving it.
func (srv *savedService) Toggle(ctx context.Context, accountID uuid.UUID, kind entity.ItemKind, itemID uuid.UUID) (bool, error) {
	if !kind.IsValid() {
		return false, errors.WithStack(domainerrors.ErrInvalidItemKind)
	}

	item := &entity.SavedItem{
		AccountID: accountID,
		ItemKind:  kind,
		ItemID:    itemID,
		SavedAt:   time.Now().UTC(),
	}

	saved, err := srv.savedRepo.Toggle(ctx, item, func(ctx context.Context) error {
		return ensureContentExists(ctx, srv.recipeRepo, srv.reviewRepo, kind, itemID)
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to toggle saved item")
	}
	srv.log(ctx).Debug("Toggled saved item", slog.String("key", item.Key().String()), slog.Bool("saved", saved))

	return saved, nil
}

// Save stores the bookmark unless it already exists.
func (srv *savedService) Save(ctx context.Context, accountID uuid.UUID, kind entity.ItemKind, itemID uuid.UUID) error {
	if !kind.IsValid() {
		return errors.WithStack(domainerrors.ErrInvalidItemKind)
	}

	return srv.insert(ctx, entity.SavedItemKey{AccountID: accountID, ItemKind: kind, ItemID: itemID})
}

// Unsave removes the bookmark if present.
func (srv *savedService) Unsave(ctx context.Context, accountID uuid.UUID, kind entity.ItemKind, itemID uuid.UUID) error {
	if !kind.IsValid() {
		return errors.WithStack(domainerrors.ErrInvalidItemKind)
	}

	key := entity.SavedItemKey{AccountID: accountID, ItemKind: kind, ItemID: itemID}
	if _, err := srv.savedRepo.Delete(ctx, key); err != nil {
		return errors.Wrap(err, "failed to unsave item")
	}

	return nil
}

// IsSaved reports the stored state.
func (srv *savedService) IsSaved(ctx context.Context, accountID uuid.UUID, kind entity.ItemKind, itemID uuid.UUID) (bool, error) {
	if !kind.IsValid() {
		return false, errors.WithStack(domainerrors.ErrInvalidItemKind)
	}

	saved, err := srv.savedRepo.Exists(ctx, entity.SavedItemKey{AccountID: accountID, ItemKind: kind, ItemID: itemID})
	if err != nil {
		return false, errors.Wrap(err, "failed to check saved state")
	}

	return saved, nil
}

func (srv *savedService) insert(ctx context.Context, key entity.SavedItemKey) error {
	if err := ensureContentExists(ctx, srv.recipeRepo, srv.reviewRepo, key.ItemKind, key.ItemID); err != nil {
		return err
	}

	created, err := srv.savedRepo.Insert(ctx, &entity.SavedItem{
		AccountID: key.AccountID,
		ItemKind:  key.ItemKind,
		ItemID:    key.ItemID,
		SavedAt:   time.Now().UTC(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to save item")
	}
	srv.log(ctx).Debug("Saved item", slog.String("key", key.String()), slog.Bool("created", created))

	return nil
}

// ListSaved loads the bookmarked content, newest bookmark first.
func (srv *savedService) ListSaved(ctx context.Context, accountID uuid.UUID) ([]*usecase.SavedEntry, error) {
	items, err := srv.savedRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saved items")
	}

	var recipeIDs, reviewIDs []uuid.UUID
	for _, item := range items {
		switch item.ItemKind {
		case entity.ItemKindRecipe:
			recipeIDs = append(recipeIDs, item.ItemID)
		case entity.ItemKindReview:
			reviewIDs = append(reviewIDs, item.ItemID)
		}
	}

	recipes := make(map[uuid.UUID]*entity.Recipe, len(recipeIDs))
	if len(recipeIDs) > 0 {
		found, err := srv.recipeRepo.FindByIDs(ctx, recipeIDs)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load saved recipes")
		}
		for _, recipe := range found {
			recipes[recipe.ID] = recipe
		}
	}

	reviews := make(map[uuid.UUID]*entity.Review, len(reviewIDs))
	if len(reviewIDs) > 0 {
		found, err := srv.reviewRepo.FindByIDs(ctx, reviewIDs)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load saved reviews")
		}
		for _, review := range found {
			reviews[review.ID] = review
		}
	}

	entries := make([]*usecase.SavedEntry, 0, len(items))
	for _, item := range items {
		entry := &usecase.SavedEntry{Item: item}
		switch item.ItemKind {
		case entity.ItemKindRecipe:
			entry.Recipe = recipes[item.ItemID]
		case entity.ItemKindReview:
			entry.Review = reviews[item.ItemID]
		}
		if entry.Recipe == nil && entry.Review == nil {
			srv.log(ctx).Debug("Skipping saved item whose content is gone", slog.String("key", item.Key().String()))

			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// ensureContentExists returns ErrItemNotFound when the recipe or review is missing.
func ensureContentExists(ctx context.Context, recipes repository.RecipeRepository, reviews repository.ReviewRepository, kind entity.ItemKind, id uuid.UUID) error {
	var err error
	switch kind {
	case entity.ItemKindRecipe:
		_, err = recipes.FindByID(ctx, id)
	case entity.ItemKindReview:
		_, err = reviews.FindByID(ctx, id)
	default:
		return errors.WithStack(domainerrors.ErrInvalidItemKind)
	}

	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrRecipeNotFound), errors.Is(err, repository.ErrReviewNotFound):
		return errors.Wrapf(domainerrors.ErrItemNotFound, "%s %s does not exist", kind, id)
	default:
		return errors.Wrapf(err, "failed to look up %s", kind)
	}
}
