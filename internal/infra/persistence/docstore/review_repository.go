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

type reviewRepository struct {
	client *firestore.Client
}

// NewReviewRepository returns a Firestore-backed repository.ReviewRepository.
func NewReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &reviewRepository{client: client}
}

func (repo *reviewRepository) col() *firestore.CollectionRef {
	return repo.client.Collection(reviewsCollection)
}

func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}

	if _, err := repo.col().Doc(review.ID.String()).Create(ctx, toReviewDoc(review)); err != nil {
		return errors.Wrap(err, "failed to create review")
	}

	return nil
}

func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	snap, err := repo.col().Doc(id.String()).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to get review")
	}

	var doc reviewDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode review")
	}

	return doc.toEntity(snap.Ref.ID), nil
}

func (repo *reviewRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Review, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	refs := make([]*firestore.DocumentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, repo.col().Doc(id.String()))
	}

	snaps, err := repo.client.GetAll(ctx, refs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get reviews")
	}

	return decodeReviews(snaps)
}

func (repo *reviewRepository) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Review, error) {
	q := repo.col().OrderBy("created_at", firestore.Desc)
	if opts.AuthorID != uuid.Nil {
		q = q.Where("author_id", "==", opts.AuthorID.String())
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return decodeReviews(snaps)
}

func (repo *reviewRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Review, error) {
	snaps, err := repo.col().OrderBy("created_at", firestore.Desc).Limit(searchScanLimit).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan reviews")
	}

	reviews, err := decodeReviews(snaps)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	matched := make([]*entity.Review, 0, limit)
	for _, r := range reviews {
		if len(matched) == limit {
			break
		}
		if containsFold(needle, r.Title, r.StallName, r.AuthorName) {
			matched = append(matched, r)
		}
	}

	return matched, nil
}

func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := repo.col().Doc(id.String()).Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}

func decodeReviews(snaps []*firestore.DocumentSnapshot) ([]*entity.Review, error) {
	reviews := make([]*entity.Review, 0, len(snaps))
	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}

		var doc reviewDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode review %s", snap.Ref.ID)
		}
		reviews = append(reviews, doc.toEntity(snap.Ref.ID))
	}

	return reviews, nil
}
