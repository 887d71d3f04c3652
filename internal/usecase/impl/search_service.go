package impl

import (
	"context"
	"log/slog"
	"strings"

	"makan/internal/domain/entity"
	"makan/internal/domain/repository"
	"makan/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const contentSearchLimit = 50

type searchService struct {
	recipeRepo repository.RecipeRepository
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	RecipeRepo repository.RecipeRepository
	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewSearchService creates the content search use case.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		recipeRepo: params.RecipeRepo,
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

// SearchContent queries recipes and reviews concurrently. An empty query matches nothing.
func (srv *searchService) SearchContent(ctx context.Context, query string) (*usecase.SearchResult, error) {
	result := &usecase.SearchResult{
		Recipes: []*entity.Recipe{},
		Reviews: []*entity.Review{},
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return result, nil
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		recipes, err := srv.recipeRepo.Search(groupCtx, query, contentSearchLimit)
		if err != nil {
			return errors.Wrap(err, "failed to search recipes")
		}
		result.Recipes = recipes

		return nil
	})
	group.Go(func() error {
		reviews, err := srv.reviewRepo.Search(groupCtx, query, contentSearchLimit)
		if err != nil {
			return errors.Wrap(err, "failed to search reviews")
		}
		result.Reviews = reviews

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}
