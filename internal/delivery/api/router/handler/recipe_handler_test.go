package handler

import (
	"net/http"
	"testing"

	"makan/config"
	"makan/internal/domain/entity"
	mockUsecase "makan/internal/mocks/usecase"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRecipeTestServer(t *testing.T, accountID uuid.UUID) (*echo.Echo, *mockUsecase.MockRecipeUsecase, *mockUsecase.MockCommentUsecase) {
	recipeUC := mockUsecase.NewMockRecipeUsecase(t)
	commentUC := mockUsecase.NewMockCommentUsecase(t)
	h := NewRecipeHandler(RecipeHandlerParams{
		RecipeUC: recipeUC,
		Config:   &config.Config{Blob: &config.BlobConfig{MaxImageBytes: 1 << 20}},
	})
	comments := NewCommentHandler(CommentHandlerParams{CommentUC: commentUC})

	e := newTestEcho()
	g := e.Group("/recipes", asAccount(accountID, entity.RolePersonal))
	g.POST("", h.CreateRecipe)
	g.GET("", h.ListRecipes)
	g.GET("/:id/scaled", h.ScaleRecipe)
	g.POST("/:id/comments", comments.AddComment(entity.ItemKindRecipe))

	return e, recipeUC, commentUC
}

const recipeJSON = `{"title":"Nasi Lemak","servings":2,"ingredients":[{"name":"rice","quantity":2,"unit":"cups"}],"instructions":"Cook."}`

func TestRecipeHandler_CreateRecipe_Multipart(t *testing.T) {
	me := uuid.New()
	e, recipeUC, _ := newRecipeTestServer(t, me)

	recipeUC.EXPECT().
		CreateRecipe(mock.Anything, me, mock.MatchedBy(func(in *usecase.CreateRecipeInput) bool {
			return in.Title == "Nasi Lemak" && in.Servings == 2 && len(in.Ingredients) == 1 &&
				len(in.Images) == 2 && string(in.Images[0].Data) == string(pngHeader)
		})).
		Return(&entity.Recipe{ID: uuid.New(), Title: "Nasi Lemak", AuthorID: me}, nil)

	body, contentType := multipartBody(t, recipeJSON, "images", pngHeader, pngHeader)
	rec := serve(e, http.MethodPost, "/recipes", body, contentType)
	require.Equal(t, http.StatusCreated, rec.Code)

	var recipe entity.Recipe
	decode(t, rec, &recipe)
	assert.Equal(t, "Nasi Lemak", recipe.Title)
}

func TestRecipeHandler_CreateRecipe_JSON(t *testing.T) {
	me := uuid.New()
	e, recipeUC, _ := newRecipeTestServer(t, me)

	recipeUC.EXPECT().
		CreateRecipe(mock.Anything, me, mock.MatchedBy(func(in *usecase.CreateRecipeInput) bool {
			return len(in.Images) == 0
		})).
		Return(&entity.Recipe{ID: uuid.New()}, nil)

	rec := serveJSON(e, http.MethodPost, "/recipes", recipeJSON)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRecipeHandler_CreateRecipe_RequiresIngredients(t *testing.T) {
	e, _, _ := newRecipeTestServer(t, uuid.New())

	rec := serveJSON(e, http.MethodPost, "/recipes", `{"title":"Air","servings":1,"ingredients":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecipeHandler_ListRecipes(t *testing.T) {
	e, recipeUC, _ := newRecipeTestServer(t, uuid.New())
	author := uuid.New()

	recipeUC.EXPECT().ListRecipes(mock.Anything, author, 5).Return([]*entity.Recipe{}, nil)
	recipeUC.EXPECT().ListRecipes(mock.Anything, uuid.Nil, 0).Return([]*entity.Recipe{}, nil)

	assert.Equal(t, http.StatusOK, serveJSON(e, http.MethodGet, "/recipes?author="+author.String()+"&limit=5", "").Code)
	assert.Equal(t, http.StatusOK, serveJSON(e, http.MethodGet, "/recipes", "").Code)
	assert.Equal(t, http.StatusBadRequest, serveJSON(e, http.MethodGet, "/recipes?author=abc", "").Code)
}

func TestRecipeHandler_ScaleRecipe(t *testing.T) {
	e, recipeUC, _ := newRecipeTestServer(t, uuid.New())
	recipeID := uuid.New()

	recipeUC.EXPECT().ScaleRecipe(mock.Anything, recipeID, 4).Return(&entity.Recipe{ID: recipeID, Servings: 4}, nil)

	rec := serveJSON(e, http.MethodGet, "/recipes/"+recipeID.String()+"/scaled?servings=4", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var recipe entity.Recipe
	decode(t, rec, &recipe)
	assert.Equal(t, 4, recipe.Servings)

	assert.Equal(t, http.StatusBadRequest, serveJSON(e, http.MethodGet, "/recipes/"+recipeID.String()+"/scaled?servings=four", "").Code)
}

func TestRecipeHandler_CommentOnRecipe(t *testing.T) {
	me := uuid.New()
	e, _, commentUC := newRecipeTestServer(t, me)
	recipeID := uuid.New()

	commentUC.EXPECT().AddComment(mock.Anything, entity.ItemKindRecipe, recipeID, me, "Sedap!").
		Return(&entity.Comment{ID: uuid.New(), AuthorName: "Siti Aminah", Text: "Sedap!"}, nil)

	rec := serveJSON(e, http.MethodPost, "/recipes/"+recipeID.String()+"/comments", `{"text":"Sedap!"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var comment entity.Comment
	decode(t, rec, &comment)
	assert.Equal(t, "Siti Aminah", comment.AuthorName)
}
