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

type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(db *gorm.DB) repository.ChatRepository {
	return &chatRepository{db: db}
}

// CreateOrGet inserts with ON CONFLICT DO NOTHING on the canonical key and falls back to a read
// when another request created the chat first.
func (repo *chatRepository) CreateOrGet(ctx context.Context, chat *entity.Chat) (*entity.Chat, bool, error) {
	chatM := fromChatDomain(chat)

	result := repo.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(chatM)
	if result.Error != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create chat")
	}

	if result.RowsAffected == 1 {
		return toChatDomain(chatM), true, nil
	}

	stored, err := repo.FindByID(ctx, chat.ID)
	if err != nil {
		return nil, false, err
	}

	return stored, false, nil
}

func (repo *chatRepository) FindByID(ctx context.Context, id entity.ChatID) (*entity.Chat, error) {
	var chatM model.ChatModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id.String()).First(&chatM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChatNotFound
		}

		return nil, errors.Wrap(err, "failed to find chat")
	}

	return toChatDomain(&chatM), nil
}

func (repo *chatRepository) ListByParticipant(ctx context.Context, accountID uuid.UUID) ([]*entity.Chat, error) {
	var chatModels []*model.ChatModel

	if err := repo.db.WithContext(ctx).
		Where("participant_a = ? OR participant_b = ?", accountID, accountID).
		Order("COALESCE(last_message_at, created_at) DESC").
		Find(&chatModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list chats")
	}

	chats := make([]*entity.Chat, 0, len(chatModels))
	for _, m := range chatModels {
		chats = append(chats, toChatDomain(m))
	}

	return chats, nil
}

// AppendMessage stores the message and moves last_message_at forward in one transaction.
func (repo *chatRepository) AppendMessage(ctx context.Context, message *entity.Message) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.ChatModel{}).Where("id = ?", message.ChatID.String()).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check chat")
		}
		if count == 0 {
			return repository.ErrChatNotFound
		}

		messageM := &model.MessageModel{
			ID:       message.ID,
			ChatID:   message.ChatID.String(),
			SenderID: message.SenderID,
			Text:     message.Text,
			SentAt:   message.SentAt,
		}
		if err := tx.Create(messageM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to append message")
		}

		if err := tx.Model(&model.ChatModel{}).
			Where("id = ? AND (last_message_at IS NULL OR last_message_at < ?)", message.ChatID.String(), message.SentAt).
			Update("last_message_at", message.SentAt).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to bump chat activity")
		}

		message.ID = messageM.ID

		return nil
	})
}

func (repo *chatRepository) ListMessages(ctx context.Context, id entity.ChatID) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("chat_id = ?", id.String()).
		Order("sent_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, m := range messageModels {
		messages = append(messages, toMessageDomain(m))
	}

	return messages, nil
}

func (repo *chatRepository) LastMessage(ctx context.Context, id entity.ChatID) (*entity.Message, error) {
	var messageM model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("chat_id = ?", id.String()).
		Order("sent_at DESC").
		First(&messageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find last message")
	}

	return toMessageDomain(&messageM), nil
}

// --- Mapper Functions ---

func toChatDomain(data *model.ChatModel) *entity.Chat {
	return &entity.Chat{
		ID:            entity.ChatID(data.ID),
		Participants:  [2]uuid.UUID{data.ParticipantA, data.ParticipantB},
		CreatedAt:     data.CreatedAt,
		LastMessageAt: data.LastMessageAt,
	}
}

func fromChatDomain(data *entity.Chat) *model.ChatModel {
	return &model.ChatModel{
		ID:            data.ID.String(),
		ParticipantA:  data.Participants[0],
		ParticipantB:  data.Participants[1],
		CreatedAt:     data.CreatedAt,
		LastMessageAt: data.LastMessageAt,
	}
}

func toMessageDomain(data *model.MessageModel) *entity.Message {
	return &entity.Message{
		ID:       data.ID,
		ChatID:   entity.ChatID(data.ChatID),
		SenderID: data.SenderID,
		Text:     data.Text,
		SentAt:   data.SentAt,
	}
}
