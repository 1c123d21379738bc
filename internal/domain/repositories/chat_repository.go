package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"whalebyte.core/internal/domain/entities"
)

// ChatRepository defines chat room, membership and message data operations
type ChatRepository interface {
	CreateRoom(ctx context.Context, room *entities.ChatRoom) error
	GetRoom(ctx context.Context, id uuid.UUID) (*entities.ChatRoom, error)
	GetSphereRoom(ctx context.Context, sphereID uuid.UUID) (*entities.ChatRoom, error)

	AddMember(ctx context.Context, member *entities.ChatRoomMember) error
	RemoveMember(ctx context.Context, roomID, userID uuid.UUID) error
	GetMember(ctx context.Context, roomID, userID uuid.UUID) (*entities.ChatRoomMember, error)

	CreateMessage(ctx context.Context, msg *entities.Message) error
	ListMessages(ctx context.Context, roomID uuid.UUID, limit, offset int) ([]*entities.Message, error)
	MarkMessagesDeleted(ctx context.Context, ids []uuid.UUID) error
	ListExpired(ctx context.Context, now time.Time) ([]*entities.Message, error)
}
