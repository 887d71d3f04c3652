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
	"gorm.io/gorm/clause"
)

// savedItemRepository stores bookmarks under the (account_id, item_kind, item_id) primary key.
type savedItemRepository struct {
	db *gorm.DB
}

// NewSavedItemRepository is the constructor for savedItemRepository.
func NewSavedItemRepository(db *gorm.DB) repository.SavedItemRepository {
	return &savedItemRepository{db: db}
}

func savedItemModel(item *entity.SavedItem) *model.SavedItemModel {
	return &model.SavedItemModel{
		AccountID: item.AccountID,
		ItemKind:  string(item.ItemKind),
		ItemID:    item.ItemID,
		SavedAt:   item.SavedAt,
	}
}

func byKey(db *gorm.DB, key entity.SavedItemKey) *gorm.DB {
	return db.Where("account_id = ? AND item_kind = ? AND item_id = ?", key.AccountID, string(key.ItemKind), key.ItemID)
}

// Insert relies on ON CONFLICT DO NOTHING so that concurrent saves collapse into one row.
func (repo *savedItemRepository) Insert(ctx context.Context, item *entity.SavedItem) (bool, error) {
	result := repo.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(savedItemModel(item))
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to save item")
	}

	return result.RowsAffected == 1, nil
}

func (repo *savedItemRepository) Delete(ctx context.Context, key entity.SavedItemKey) (bool, error) {
	result := byKey(repo.db.WithContext(ctx), key).Delete(&model.SavedItemModel{})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete saved item")
	}

	return result.RowsAffected > 0, nil
}

// Toggle holds a transaction-scoped advisory lock on the key, so toggles of the same key
// run one after another even while the row is absent.
func (repo *savedItemRepository) Toggle(ctx context.Context, item *entity.SavedItem, allowInsert func(context.Context) error) (bool, error) {
	key := item.Key()
	saved := false

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", key.String()).Error; err != nil {
			return errors.Wrap(err, "failed to lock saved item")
		}

		result := byKey(tx, key).Delete(&model.SavedItemModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete saved item")
		}
		if result.RowsAffected > 0 {
			return nil
		}

		if err := allowInsert(ctx); err != nil {
			return err
		}

		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(savedItemModel(item)).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to save item")
		}
		saved = true

		return nil
	})
	if err != nil {
		return false, err
	}

	return saved, nil
}

func (repo *savedItemRepository) Exists(ctx context.Context, key entity.SavedItemKey) (bool, error) {
	var count int64

	if err := byKey(repo.db.WithContext(ctx).Model(&model.SavedItemModel{}), key).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check saved item")
	}

	return count > 0, nil
}

func (repo *savedItemRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.SavedItem, error) {
	var itemModels []*model.SavedItemModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("saved_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list saved items")
	}

	items := make([]*entity.SavedItem, 0, len(itemModels))
	for _, m := range itemModels {
		items = append(items, &entity.SavedItem{
			AccountID: m.AccountID,
			ItemKind:  entity.ItemKind(m.ItemKind),
			ItemID:    m.ItemID,
			SavedAt:   m.SavedAt,
		})
	}

	return items, nil
}
