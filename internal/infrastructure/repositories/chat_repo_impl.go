package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"whalebyte.core/internal/domain/entities"
	domainerrors "whalebyte.core/internal/domain/errors"
	"whalebyte.core/internal/infrastructure/models"
)

// ChatRepository implements chat room, membership and message data operations
type ChatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new chat repository
func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// CreateRoom creates a new chat room
func (r *ChatRepository) CreateRoom(ctx context.Context, room *entities.ChatRoom) error {
	m := &models.ChatRoom{
		ID:           room.ID,
		Name:         null.NewString(room.Name, room.Name != ""),
		IsGroup:      room.IsGroup,
		IsSphereChat: room.IsSphereChat,
		SphereID:     room.SphereID,
		CreatedAt:    room.CreatedAt,
		UpdatedAt:    room.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetRoom gets a chat room by ID
func (r *ChatRepository) GetRoom(ctx context.Context, id uuid.UUID) (*entities.ChatRoom, error) {
	var m models.ChatRoom
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toChatRoomEntity(&m), nil
}

// GetSphereRoom gets the room bound to a sphere
func (r *ChatRepository) GetSphereRoom(ctx context.Context, sphereID uuid.UUID) (*entities.ChatRoom, error) {
	var m models.ChatRoom
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("sphere_id = ?", sphereID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toChatRoomEntity(&m), nil
}

// AddMember adds a membership row
func (r *ChatRepository) AddMember(ctx context.Context, member *entities.ChatRoomMember) error {
	m := &models.ChatRoomMember{
		ID:         member.ID,
		ChatRoomID: member.ChatRoomID,
		UserID:     member.UserID,
		Role:       string(member.Role),
		JoinedAt:   member.JoinedAt,
		LastReadAt: member.LastReadAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// RemoveMember removes a membership row
func (r *ChatRepository) RemoveMember(ctx context.Context, roomID, userID uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Where("chat_room_id = ? AND user_id = ?", roomID, userID).
		Delete(&models.ChatRoomMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// GetMember gets a membership row
func (r *ChatRepository) GetMember(ctx context.Context, roomID, userID uuid.UUID) (*entities.ChatRoomMember, error) {
	var m models.ChatRoomMember
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("chat_room_id = ? AND user_id = ?", roomID, userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.ChatRoomMember{
		ID:         m.ID,
		ChatRoomID: m.ChatRoomID,
		UserID:     m.UserID,
		Role:       entities.ChatRoomRole(m.Role),
		JoinedAt:   m.JoinedAt,
		LastReadAt: m.LastReadAt,
	}, nil
}

// CreateMessage creates a new message
func (r *ChatRepository) CreateMessage(ctx context.Context, msg *entities.Message) error {
	return GetDB(ctx, r.db).WithContext(ctx).Create(toMessageModel(msg)).Error
}

// ListMessages lists a room's messages, newest first
func (r *ChatRepository) ListMessages(ctx context.Context, roomID uuid.UUID, limit, offset int) ([]*entities.Message, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).
		Where("chat_room_id = ?", roomID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var rows []models.Message
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	msgs := make([]*entities.Message, len(rows))
	for i := range rows {
		msgs[i] = toMessageEntity(&rows[i])
	}
	return msgs, nil
}

// MarkMessagesDeleted durably clears expired or user-deleted messages.
// Already-deleted rows are left alone, so the sweep is idempotent.
func (r *ChatRepository) MarkMessagesDeleted(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).WithContext(ctx).Model(&models.Message{}).
		Where("id IN ? AND is_deleted = ?", ids, false).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"content":    "",
			"media_urls": nil,
		}).Error
}

// ListExpired lists live messages whose self-destruct instant has passed
func (r *ChatRepository) ListExpired(ctx context.Context, now time.Time) ([]*entities.Message, error) {
	var rows []models.Message
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("is_deleted = ? AND self_destruct_at IS NOT NULL AND self_destruct_at < ?", false, now).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	msgs := make([]*entities.Message, len(rows))
	for i := range rows {
		msgs[i] = toMessageEntity(&rows[i])
	}
	return msgs, nil
}

func toChatRoomEntity(m *models.ChatRoom) *entities.ChatRoom {
	return &entities.ChatRoom{
		ID:           m.ID,
		Name:         m.Name.String,
		IsGroup:      m.IsGroup,
		IsSphereChat: m.IsSphereChat,
		SphereID:     m.SphereID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toMessageModel(msg *entities.Message) *models.Message {
	return &models.Message{
		ID:                 msg.ID,
		ChatRoomID:         msg.ChatRoomID,
		SenderID:           msg.SenderID,
		Content:            msg.Content,
		MediaURLs:          msg.MediaURLs,
		IsEncrypted:        msg.IsEncrypted,
		EncryptionMetadata: msg.EncryptionMetadata,
		SelfDestructAt:     null.TimeFromPtr(msg.SelfDestructAt),
		IsDeleted:          msg.IsDeleted,
		CreatedAt:          msg.CreatedAt,
	}
}

func toMessageEntity(m *models.Message) *entities.Message {
	return &entities.Message{
		ID:                 m.ID,
		ChatRoomID:         m.ChatRoomID,
		SenderID:           m.SenderID,
		Content:            m.Content,
		MediaURLs:          m.MediaURLs,
		IsEncrypted:        m.IsEncrypted,
		EncryptionMetadata: m.EncryptionMetadata,
		SelfDestructAt:     m.SelfDestructAt.Ptr(),
		IsDeleted:          m.IsDeleted,
		CreatedAt:          m.CreatedAt,
	}
}
