package impl

import (
	"context"
	"sort"
	"sync"

	"makan/internal/domain/entity"
	"makan/internal/domain/repository"

	"github.com/google/uuid"
)

// memorySavedRepo is a SavedItemRepository with the same conditional-write semantics as the real stores.
type memorySavedRepo struct {
	mu    sync.Mutex
	items map[entity.SavedItemKey]*entity.SavedItem
	// inserts counts every successful insert so tests can detect double writes.
	inserts int
	// beforeToggle runs before Toggle takes the lock.
	beforeToggle func()
}

func newMemorySavedRepo() *memorySavedRepo {
	return &memorySavedRepo{items: make(map[entity.SavedItemKey]*entity.SavedItem)}
}

func (r *memorySavedRepo) Insert(_ context.Context, item *entity.SavedItem) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.Key()]; ok {
		return false, nil
	}
	r.items[item.Key()] = item
	r.inserts++

	return true, nil
}

func (r *memorySavedRepo) Delete(_ context.Context, key entity.SavedItemKey) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[key]; !ok {
		return false, nil
	}
	delete(r.items, key)

	return true, nil
}

func (r *memorySavedRepo) Toggle(ctx context.Context, item *entity.SavedItem, allowInsert func(context.Context) error) (bool, error) {
	if r.beforeToggle != nil {
		r.beforeToggle()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.Key()]; ok {
		delete(r.items, item.Key())

		return false, nil
	}
	if err := allowInsert(ctx); err != nil {
		return false, err
	}
	r.items[item.Key()] = item
	r.inserts++

	return true, nil
}

func (r *memorySavedRepo) Exists(_ context.Context, key entity.SavedItemKey) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.items[key]

	return ok, nil
}

func (r *memorySavedRepo) ListByAccount(_ context.Context, accountID uuid.UUID) ([]*entity.SavedItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.SavedItem
	for _, item := range r.items {
		if item.AccountID == accountID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SavedAt.After(out[j].SavedAt) })

	return out, nil
}

func (r *memorySavedRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.items)
}

// memoryChatRepo keeps chats and messages in maps guarded by one mutex.
type memoryChatRepo struct {
	mu       sync.Mutex
	chats    map[entity.ChatID]*entity.Chat
	messages map[entity.ChatID][]*entity.Message
}

func newMemoryChatRepo() *memoryChatRepo {
	return &memoryChatRepo{
		chats:    make(map[entity.ChatID]*entity.Chat),
		messages: make(map[entity.ChatID][]*entity.Message),
	}
}

func (r *memoryChatRepo) CreateOrGet(_ context.Context, chat *entity.Chat) (*entity.Chat, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stored, ok := r.chats[chat.ID]; ok {
		return stored, false, nil
	}
	r.chats[chat.ID] = chat

	return chat, true, nil
}

func (r *memoryChatRepo) FindByID(_ context.Context, id entity.ChatID) (*entity.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	chat, ok := r.chats[id]
	if !ok {
		return nil, repository.ErrChatNotFound
	}

	return chat, nil
}

func (r *memoryChatRepo) ListByParticipant(_ context.Context, accountID uuid.UUID) ([]*entity.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Chat
	for _, chat := range r.chats {
		if chat.HasParticipant(accountID) {
			out = append(out, chat)
		}
	}

	return out, nil
}

func (r *memoryChatRepo) AppendMessage(_ context.Context, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	chat, ok := r.chats[message.ChatID]
	if !ok {
		return repository.ErrChatNotFound
	}
	sentAt := message.SentAt
	chat.LastMessageAt = &sentAt
	r.messages[message.ChatID] = append(r.messages[message.ChatID], message)

	return nil
}

func (r *memoryChatRepo) ListMessages(_ context.Context, id entity.ChatID) ([]*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*entity.Message(nil), r.messages[id]...), nil
}

func (r *memoryChatRepo) LastMessage(_ context.Context, id entity.ChatID) (*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	messages := r.messages[id]
	if len(messages) == 0 {
		return nil, nil
	}

	return messages[len(messages)-1], nil
}

func (r *memoryChatRepo) chatCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.chats)
}
