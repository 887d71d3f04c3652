package docstore

import (
	"context"

	"makan/internal/domain/entity"
	"makan/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// savedItemRepository keys each bookmark document by "<account>_<kind>_<item>".
type savedItemRepository struct {
	client *firestore.Client
}

// NewSavedItemRepository returns a Firestore-backed repository.SavedItemRepository.
func NewSavedItemRepository(client *firestore.Client) repository.SavedItemRepository {
	return &savedItemRepository{client: client}
}

func (repo *savedItemRepository) doc(key entity.SavedItemKey) *firestore.DocumentRef {
	return repo.client.Collection(savedItemsCollection).Doc(key.String())
}

func newSavedItemDoc(item *entity.SavedItem) *savedItemDoc {
	return &savedItemDoc{
		AccountID: item.AccountID.String(),
		ItemKind:  string(item.ItemKind),
		ItemID:    item.ItemID.String(),
		SavedAt:   item.SavedAt,
	}
}

// Insert uses Create, which fails with AlreadyExists instead of overwriting.
func (repo *savedItemRepository) Insert(ctx context.Context, item *entity.SavedItem) (bool, error) {
	if _, err := repo.doc(item.Key()).Create(ctx, newSavedItemDoc(item)); err != nil {
		if isAlreadyExists(err) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to save item")
	}

	return true, nil
}

func (repo *savedItemRepository) Delete(ctx context.Context, key entity.SavedItemKey) (bool, error) {
	if _, err := repo.doc(key).Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to delete saved item")
	}

	return true, nil
}

// Toggle reads and writes the bookmark document in one transaction. Firestore retries the
// function when a concurrent toggle touched the same document.
func (repo *savedItemRepository) Toggle(ctx context.Context, item *entity.SavedItem, allowInsert func(context.Context) error) (bool, error) {
	ref := repo.doc(item.Key())
	saved := false

	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		saved = false

		_, err := tx.Get(ref)
		switch {
		case err == nil:
			return tx.Delete(ref)
		case !isNotFound(err):
			return errors.Wrap(err, "failed to read saved item")
		}

		if err := allowInsert(ctx); err != nil {
			return err
		}
		saved = true

		return tx.Create(ref, newSavedItemDoc(item))
	})
	if err != nil {
		return false, err
	}

	return saved, nil
}

func (repo *savedItemRepository) Exists(ctx context.Context, key entity.SavedItemKey) (bool, error) {
	if _, err := repo.doc(key).Get(ctx); err != nil {
		if isNotFound(err) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to check saved item")
	}

	return true, nil
}

func (repo *savedItemRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.SavedItem, error) {
	snaps, err := repo.client.Collection(savedItemsCollection).
		Where("account_id", "==", accountID.String()).
		OrderBy("saved_at", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saved items")
	}

	items := make([]*entity.SavedItem, 0, len(snaps))
	for _, snap := range snaps {
		var doc savedItemDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode saved item %s", snap.Ref.ID)
		}
		items = append(items, &entity.SavedItem{
			AccountID: parseID(doc.AccountID),
			ItemKind:  entity.ItemKind(doc.ItemKind),
			ItemID:    parseID(doc.ItemID),
			SavedAt:   doc.SavedAt,
		})
	}

	return items, nil
}
