package docstore

import (
	"context"

	"makan/internal/domain/entity"
	"makan/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// chatRepository stores chats under their canonical key with messages in a subcollection.
type chatRepository struct {
	client *firestore.Client
}

// NewChatRepository returns a Firestore-backed repository.ChatRepository.
func NewChatRepository(client *firestore.Client) repository.ChatRepository {
	return &chatRepository{client: client}
}

func (repo *chatRepository) doc(id entity.ChatID) *firestore.DocumentRef {
	return repo.client.Collection(chatsCollection).Doc(id.String())
}

func (repo *chatRepository) CreateOrGet(ctx context.Context, chat *entity.Chat) (*entity.Chat, bool, error) {
	doc := &chatDoc{
		Participants:   []string{chat.Participants[0].String(), chat.Participants[1].String()},
		CreatedAt:      chat.CreatedAt,
		LastMessageAt:  chat.LastMessageAt,
		LastActivityAt: chat.CreatedAt,
	}

	if _, err := repo.doc(chat.ID).Create(ctx, doc); err != nil {
		if !isAlreadyExists(err) {
			return nil, false, errors.Wrap(err, "failed to create chat")
		}

		stored, err := repo.FindByID(ctx, chat.ID)
		if err != nil {
			return nil, false, err
		}

		return stored, false, nil
	}

	return chat, true, nil
}

func (repo *chatRepository) FindByID(ctx context.Context, id entity.ChatID) (*entity.Chat, error) {
	snap, err := repo.doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrChatNotFound
		}

		return nil, errors.Wrap(err, "failed to get chat")
	}

	var doc chatDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode chat")
	}

	return doc.toEntity(snap.Ref.ID), nil
}

func (repo *chatRepository) ListByParticipant(ctx context.Context, accountID uuid.UUID) ([]*entity.Chat, error) {
	snaps, err := repo.client.Collection(chatsCollection).
		Where("participants", "array-contains", accountID.String()).
		OrderBy("last_activity_at", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chats")
	}

	chats := make([]*entity.Chat, 0, len(snaps))
	for _, snap := range snaps {
		var doc chatDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode chat %s", snap.Ref.ID)
		}
		chats = append(chats, doc.toEntity(snap.Ref.ID))
	}

	return chats, nil
}

// AppendMessage writes the message and advances the chat's activity fields in one transaction.
func (repo *chatRepository) AppendMessage(ctx context.Context, message *entity.Message) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}

	chatRef := repo.doc(message.ChatID)
	messageRef := chatRef.Collection(messagesCollection).Doc(message.ID.String())

	return repo.client.RunTransaction(ctx, func(_ context.Context, t *firestore.Transaction) error {
		snap, err := t.Get(chatRef)
		if err != nil {
			if isNotFound(err) {
				return repository.ErrChatNotFound
			}

			return errors.Wrap(err, "failed to get chat")
		}

		var chat chatDoc
		if err := snap.DataTo(&chat); err != nil {
			return errors.Wrap(err, "failed to decode chat")
		}

		if err := t.Create(messageRef, &messageDoc{
			SenderID: message.SenderID.String(),
			Text:     message.Text,
			SentAt:   message.SentAt,
		}); err != nil {
			return errors.Wrap(err, "failed to append message")
		}

		if chat.LastMessageAt != nil && !chat.LastMessageAt.Before(message.SentAt) {
			return nil
		}

		return t.Update(chatRef, []firestore.Update{
			{Path: "last_message_at", Value: message.SentAt},
			{Path: "last_activity_at", Value: message.SentAt},
		})
	})
}

func (repo *chatRepository) ListMessages(ctx context.Context, id entity.ChatID) ([]*entity.Message, error) {
	snaps, err := repo.doc(id).Collection(messagesCollection).
		OrderBy("sent_at", firestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	return decodeMessages(id, snaps)
}

func (repo *chatRepository) LastMessage(ctx context.Context, id entity.ChatID) (*entity.Message, error) {
	snaps, err := repo.doc(id).Collection(messagesCollection).
		OrderBy("sent_at", firestore.Desc).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get last message")
	}

	messages, err := decodeMessages(id, snaps)
	if err != nil || len(messages) == 0 {
		return nil, err
	}

	return messages[0], nil
}

func decodeMessages(id entity.ChatID, snaps []*firestore.DocumentSnapshot) ([]*entity.Message, error) {
	messages := make([]*entity.Message, 0, len(snaps))
	for _, snap := range snaps {
		var doc messageDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode message %s", snap.Ref.ID)
		}
		messages = append(messages, &entity.Message{
			ID:       parseID(snap.Ref.ID),
			ChatID:   id,
			SenderID: parseID(doc.SenderID),
			Text:     doc.Text,
			SentAt:   doc.SentAt,
		})
	}

	return messages, nil
}
