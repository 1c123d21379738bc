package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"whalebyte.core/internal/domain/entities"
	domainerrors "whalebyte.core/internal/domain/errors"
	"whalebyte.core/internal/domain/repositories"
	"whalebyte.core/pkg/logger"
)

// ChatUsecase handles rooms and messages. Messages with a self-destruct
// instant are treated as inaccessible the moment it passes; SweepExpired
// later makes that durable by clearing their content.
type ChatUsecase struct {
	chatRepo repositories.ChatRepository
	notifier Notifier
}

// NewChatUsecase creates a new chat usecase
func NewChatUsecase(chatRepo repositories.ChatRepository, notifier Notifier) *ChatUsecase {
	return &ChatUsecase{
		chatRepo: chatRepo,
		notifier: notifier,
	}
}

// OpenDirect creates a direct or group room with the given members
func (u *ChatUsecase) OpenDirect(ctx context.Context, name string, memberIDs []uuid.UUID) (*entities.ChatRoom, error) {
	if len(memberIDs) < 2 {
		return nil, domainerrors.NewError("a chat needs at least two members", domainerrors.ErrInvalidInput)
	}

	room := entities.NewChatRoom(name, len(memberIDs) > 2)
	if err := u.chatRepo.CreateRoom(ctx, room); err != nil {
		return nil, err
	}

	now := time.Now()
	for _, id := range memberIDs {
		if err := u.chatRepo.AddMember(ctx, &entities.ChatRoomMember{
			ID:         uuid.New(),
			ChatRoomID: room.ID,
			UserID:     id,
			Role:       entities.ChatRoomRoleMember,
			JoinedAt:   now,
			LastReadAt: now,
		}); err != nil {
			return nil, err
		}
	}
	return room, nil
}

// Send posts a message into a room the sender belongs to
func (u *ChatUsecase) Send(ctx context.Context, roomID, senderID uuid.UUID, content string, mediaURLs []string, selfDestructAt *time.Time) (*entities.Message, error) {
	if content == "" && len(mediaURLs) == 0 {
		return nil, domainerrors.NewError("message content is required", domainerrors.ErrInvalidInput)
	}
	if selfDestructAt != nil && selfDestructAt.Before(time.Now()) {
		return nil, domainerrors.NewError("self-destruct instant is in the past", domainerrors.ErrInvalidInput)
	}

	if _, err := u.chatRepo.GetMember(ctx, roomID, senderID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrNotAMember
		}
		return nil, err
	}

	msg := &entities.Message{
		ID:             uuid.New(),
		ChatRoomID:     roomID,
		SenderID:       senderID,
		Content:        content,
		MediaURLs:      mediaURLs,
		SelfDestructAt: selfDestructAt,
		CreatedAt:      time.Now(),
	}
	if err := u.chatRepo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// History lists a room's messages for a member. Expired and deleted messages
// keep their rows but are handed out content-cleared.
func (u *ChatUsecase) History(ctx context.Context, roomID, userID uuid.UUID, limit, offset int) ([]*entities.Message, error) {
	if _, err := u.chatRepo.GetMember(ctx, roomID, userID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrNotAMember
		}
		return nil, err
	}

	msgs, err := u.chatRepo.ListMessages(ctx, roomID, limit, offset)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for _, m := range msgs {
		if !m.Accessible(now) {
			m.MarkDeleted()
		}
	}
	return msgs, nil
}

// SweepExpired durably clears every message whose self-destruct instant has
// passed. Safe to run repeatedly; already-swept rows are skipped.
func (u *ChatUsecase) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	expired, err := u.chatRepo.ListExpired(ctx, now)
	if err != nil {
		return 0, err
	}
	if len(expired) == 0 {
		return 0, nil
	}

	ids := make([]uuid.UUID, len(expired))
	for i, m := range expired {
		ids[i] = m.ID
	}
	if err := u.chatRepo.MarkMessagesDeleted(ctx, ids); err != nil {
		return 0, err
	}

	logger.Info(ctx, "swept self-destructed messages", zap.Int("count", len(ids)))
	return len(ids), nil
}
