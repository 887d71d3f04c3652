package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "makan/internal/delivery/context"
	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/repository"
	"makan/internal/domain/service"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type chatService struct {
	chatRepo    repository.ChatRepository
	accountRepo repository.AccountRepository
	identities  usecase.IdentityUsecase
	qrService   service.QRCodeService
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	ChatRepo    repository.ChatRepository
	AccountRepo repository.AccountRepository
	Identities  usecase.IdentityUsecase
	QRService   service.QRCodeService
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewChatService creates the chat use case.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		chatRepo:    params.ChatRepo,
		accountRepo: params.AccountRepo,
		identities:  params.Identities,
		qrService:   params.QRService,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LocateThread derives the canonical chat key and creates or fetches the chat in one write.
func (srv *chatService) LocateThread(ctx context.Context, accountID, targetID uuid.UUID) (*entity.Chat, bool, error) {
	if accountID == targetID {
		return nil, false, errors.WithStack(domainerrors.ErrChatWithSelf)
	}

	if _, err := srv.accountRepo.FindByID(ctx, targetID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, false, errors.Wrap(domainerrors.ErrUserNotFound, "chat target does not exist")
		}

		return nil, false, errors.Wrap(err, "failed to look up chat target")
	}

	chat, created, err := srv.chatRepo.CreateOrGet(ctx, entity.NewChat(accountID, targetID, time.Now().UTC()))
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to create or get chat")
	}

	srv.log(ctx).Debug("Located chat thread", slog.String("chatID", chat.ID.String()), slog.Bool("created", created))

	return chat, created, nil
}

// StartFromQR opens the thread with the business behind a scanned contact code.
func (srv *chatService) StartFromQR(ctx context.Context, accountID uuid.UUID, qrPayload string) (*entity.Chat, bool, error) {
	businessID, err := srv.qrService.ParseContactQR(qrPayload)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to parse contact QR")
	}

	if _, err := srv.accountRepo.FindBusinessByID(ctx, businessID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, false, errors.Wrap(domainerrors.ErrInvalidQRCode, "QR code does not belong to a business")
		}

		return nil, false, errors.Wrap(err, "failed to look up business account")
	}

	return srv.LocateThread(ctx, accountID, businessID)
}

// SendMessage appends a message with a server timestamp and announces it to the recipient.
func (srv *chatService) SendMessage(ctx context.Context, chatID entity.ChatID, senderID uuid.UUID, text string) (*entity.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.WithStack(domainerrors.ErrEmptyMessage)
	}

	chat, err := srv.participantChat(ctx, chatID, senderID)
	if err != nil {
		return nil, err
	}

	message := &entity.Message{
		ID:       uuid.New(),
		ChatID:   chat.ID,
		SenderID: senderID,
		Text:     text,
		SentAt:   time.Now().UTC(),
	}

	if err := srv.chatRepo.AppendMessage(ctx, message); err != nil {
		if errors.Is(err, repository.ErrChatNotFound) {
			return nil, errors.WithStack(domainerrors.ErrChatNotFound)
		}

		return nil, errors.Wrap(err, "failed to append message")
	}

	srv.publishMessage(ctx, chat, message)

	return message, nil
}

// publishMessage announces a stored message. Failures only get logged: the message is already persisted.
func (srv *chatService) publishMessage(ctx context.Context, chat *entity.Chat, message *entity.Message) {
	senderName := entity.AnonymousName
	if sender, err := srv.identities.Resolve(ctx, message.SenderID); err == nil {
		senderName = sender.DisplayName
	}

	event := &service.MessageEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		ChatID:      chat.ID.String(),
		MessageID:   message.ID.String(),
		SenderID:    message.SenderID.String(),
		SenderName:  senderName,
		RecipientID: chat.Counterpart(message.SenderID).String(),
		Text:        message.Text,
		SentAt:      message.SentAt,
	}

	if err := srv.publisher.PublishMessageEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish message event",
			slog.String("chatID", event.ChatID),
			slog.String("messageID", event.MessageID),
			slog.Any("error", err),
		)
	}
}

// ListMessages returns the history of a chat the account takes part in.
func (srv *chatService) ListMessages(ctx context.Context, chatID entity.ChatID, accountID uuid.UUID) ([]*entity.Message, error) {
	chat, err := srv.participantChat(ctx, chatID, accountID)
	if err != nil {
		return nil, err
	}

	messages, err := srv.chatRepo.ListMessages(ctx, chat.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	return messages, nil
}

// ListThreads returns the account's chats with the counterpart identity and last message.
func (srv *chatService) ListThreads(ctx context.Context, accountID uuid.UUID) ([]*usecase.ThreadSummary, error) {
	chats, err := srv.chatRepo.ListByParticipant(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chats")
	}

	counterparts := make([]uuid.UUID, 0, len(chats))
	for _, chat := range chats {
		counterparts = append(counterparts, chat.Counterpart(accountID))
	}

	identities, err := srv.identities.ResolveMany(ctx, counterparts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve chat counterparts")
	}

	summaries := make([]*usecase.ThreadSummary, 0, len(chats))
	for _, chat := range chats {
		last, err := srv.chatRepo.LastMessage(ctx, chat.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load last message")
		}

		counterpartID := chat.Counterpart(accountID)
		counterpart, ok := identities[counterpartID]
		if !ok {
			counterpart = entity.AnonymousIdentity(counterpartID)
		}

		summaries = append(summaries, &usecase.ThreadSummary{
			Chat:        chat,
			Counterpart: counterpart,
			LastMessage: last,
		})
	}

	return summaries, nil
}

func (srv *chatService) participantChat(ctx context.Context, chatID entity.ChatID, accountID uuid.UUID) (*entity.Chat, error) {
	chat, err := srv.chatRepo.FindByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrChatNotFound) {
			return nil, errors.WithStack(domainerrors.ErrChatNotFound)
		}

		return nil, errors.Wrap(err, "failed to find chat")
	}

	if !chat.HasParticipant(accountID) {
		return nil, errors.WithStack(domainerrors.ErrNotChatParticipant)
	}

	return chat, nil
}
