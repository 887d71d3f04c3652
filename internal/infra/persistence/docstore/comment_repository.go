package docstore

import (
	"context"

	"makan/internal/domain/entity"
	"makan/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type commentRepository struct {
	client *firestore.Client
}

// NewCommentRepository returns a Firestore-backed repository.CommentRepository.
func NewCommentRepository(client *firestore.Client) repository.CommentRepository {
	return &commentRepository{client: client}
}

func (repo *commentRepository) Append(ctx context.Context, comment *entity.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}

	doc := &commentDoc{
		TargetKind: string(comment.TargetKind),
		TargetID:   comment.TargetID.String(),
		AuthorID:   comment.AuthorID.String(),
		AuthorName: comment.AuthorName,
		Text:       comment.Text,
		CreatedAt:  comment.CreatedAt,
	}
	if _, err := repo.client.Collection(commentsCollection).Doc(comment.ID.String()).Create(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to append comment")
	}

	return nil
}

func (repo *commentRepository) ListByTarget(ctx context.Context, kind entity.ItemKind, targetID uuid.UUID) ([]*entity.Comment, error) {
	snaps, err := repo.client.Collection(commentsCollection).
		Where("target_kind", "==", string(kind)).
		Where("target_id", "==", targetID.String()).
		OrderBy("created_at", firestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(snaps))
	for _, snap := range snaps {
		var doc commentDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode comment %s", snap.Ref.ID)
		}
		comments = append(comments, &entity.Comment{
			ID:         parseID(snap.Ref.ID),
			TargetKind: entity.ItemKind(doc.TargetKind),
			TargetID:   parseID(doc.TargetID),
			AuthorID:   parseID(doc.AuthorID),
			AuthorName: doc.AuthorName,
			Text:       doc.Text,
			CreatedAt:  doc.CreatedAt,
		})
	}

	return comments, nil
}
