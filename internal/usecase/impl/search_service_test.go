package impl

import (
	"context"
	"testing"

	"makan/internal/domain/entity"
	mockRepo "makan/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSearchService_SearchContent(t *testing.T) {
	recipeRepo := mockRepo.NewMockRecipeRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	service := NewSearchService(SearchServiceParams{RecipeRepo: recipeRepo, ReviewRepo: reviewRepo, Logger: newDiscardLogger()})

	recipes := []*entity.Recipe{{Title: "Laksa Penang"}}
	reviews := []*entity.Review{{StallName: "Laksa Corner"}}
	recipeRepo.EXPECT().Search(mock.Anything, "laksa", contentSearchLimit).Return(recipes, nil)
	reviewRepo.EXPECT().Search(mock.Anything, "laksa", contentSearchLimit).Return(reviews, nil)

	result, err := service.SearchContent(context.Background(), " laksa ")
	require.NoError(t, err)
	assert.Equal(t, recipes, result.Recipes)
	assert.Equal(t, reviews, result.Reviews)
}

func TestSearchService_SearchContent_EmptyQuery(t *testing.T) {
	service := NewSearchService(SearchServiceParams{
		RecipeRepo: mockRepo.NewMockRecipeRepository(t),
		ReviewRepo: mockRepo.NewMockReviewRepository(t),
		Logger:     newDiscardLogger(),
	})

	result, err := service.SearchContent(context.Background(), "  ")
	require.NoError(t, err)
	assert.Empty(t, result.Recipes)
	assert.Empty(t, result.Reviews)
}

func TestSearchService_SearchContent_Error(t *testing.T) {
	recipeRepo := mockRepo.NewMockRecipeRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	service := NewSearchService(SearchServiceParams{RecipeRepo: recipeRepo, ReviewRepo: reviewRepo, Logger: newDiscardLogger()})

	recipeRepo.EXPECT().Search(mock.Anything, "satay", contentSearchLimit).Return(nil, errors.New("boom"))
	reviewRepo.EXPECT().Search(mock.Anything, "satay", contentSearchLimit).Return(nil, nil).Maybe()

	_, err := service.SearchContent(context.Background(), "satay")
	assert.Error(t, err)
}
