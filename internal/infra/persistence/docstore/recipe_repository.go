package docstore

import (
	"context"
	"strings"

	"makan/internal/domain/entity"
	"makan/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type recipeRepository struct {
	client *firestore.Client
}

// NewRecipeRepository returns a Firestore-backed repository.RecipeRepository.
func NewRecipeRepository(client *firestore.Client) repository.RecipeRepository {
	return &recipeRepository{client: client}
}

func (repo *recipeRepository) col() *firestore.CollectionRef {
	return repo.client.Collection(recipesCollection)
}

func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}

	if _, err := repo.col().Doc(recipe.ID.String()).Create(ctx, toRecipeDoc(recipe)); err != nil {
		return errors.Wrap(err, "failed to create recipe")
	}

	return nil
}

func (repo *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	snap, err := repo.col().Doc(id.String()).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to get recipe")
	}

	var doc recipeDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode recipe")
	}

	return doc.toEntity(snap.Ref.ID), nil
}

func (repo *recipeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Recipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	refs := make([]*firestore.DocumentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, repo.col().Doc(id.String()))
	}

	snaps, err := repo.client.GetAll(ctx, refs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get recipes")
	}

	return decodeRecipes(snaps)
}

func (repo *recipeRepository) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Recipe, error) {
	q := repo.col().OrderBy("created_at", firestore.Desc)
	if opts.AuthorID != uuid.Nil {
		q = q.Where("author_id", "==", opts.AuthorID.String())
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	return decodeRecipes(snaps)
}

func (repo *recipeRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Recipe, error) {
	snaps, err := repo.col().OrderBy("created_at", firestore.Desc).Limit(searchScanLimit).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan recipes")
	}

	recipes, err := decodeRecipes(snaps)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	matched := make([]*entity.Recipe, 0, limit)
	for _, r := range recipes {
		if len(matched) == limit {
			break
		}
		if containsFold(needle, r.Title, r.AuthorName) {
			matched = append(matched, r)
		}
	}

	return matched, nil
}

func (repo *recipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := repo.col().Doc(id.String()).Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrRecipeNotFound
		}

		return errors.Wrap(err, "failed to delete recipe")
	}

	return nil
}

func decodeRecipes(snaps []*firestore.DocumentSnapshot) ([]*entity.Recipe, error) {
	recipes := make([]*entity.Recipe, 0, len(snaps))
	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}

		var doc recipeDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode recipe %s", snap.Ref.ID)
		}
		recipes = append(recipes, doc.toEntity(snap.Ref.ID))
	}

	return recipes, nil
}

// containsFold reports whether any field contains needle, ignoring case. needle must be lower-case.
func containsFold(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}

	return false
}
