package entities

import (
	"time"

	"github.com/google/uuid"
	domainerrors "whalebyte.core/internal/domain/errors"
)

// ChatRoomRole represents a member's role within a chat room
type ChatRoomRole string

const (
	ChatRoomRoleMember ChatRoomRole = "MEMBER"
	ChatRoomRoleAdmin  ChatRoomRole = "ADMIN"
)

// ChatRoom is a direct/group chat or a sphere-bound chat. IsSphereChat
// implies SphereID is set and membership mirrors SphereMember.
type ChatRoom struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name,omitempty"`
	IsGroup      bool       `json:"isGroup"`
	IsSphereChat bool       `json:"isSphereChat"`
	SphereID     *uuid.UUID `json:"sphereId,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// NewChatRoom constructs a direct or group room.
func NewChatRoom(name string, isGroup bool) *ChatRoom {
	now := time.Now()
	return &ChatRoom{
		ID:        uuid.New(),
		Name:      name,
		IsGroup:   isGroup,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewSphereChatRoom constructs a sphere-bound room; the sphere id is mandatory.
func NewSphereChatRoom(name string, sphereID uuid.UUID) (*ChatRoom, error) {
	if sphereID == uuid.Nil {
		return nil, domainerrors.NewError("sphere chat requires a sphere id", domainerrors.ErrInvalidInput)
	}
	room := NewChatRoom(name, true)
	room.IsSphereChat = true
	room.SphereID = &sphereID
	return room, nil
}

// ChatRoomMember is the join row between a User and a ChatRoom
type ChatRoomMember struct {
	ID         uuid.UUID    `json:"id"`
	ChatRoomID uuid.UUID    `json:"chatRoomId"`
	UserID     uuid.UUID    `json:"userId"`
	Role       ChatRoomRole `json:"role"`
	JoinedAt   time.Time    `json:"joinedAt"`
	LastReadAt time.Time    `json:"lastReadAt"`
}

// Message may self-destruct: once SelfDestructAt passes, the content is
// treated as inaccessible even before the durable IsDeleted flag is set.
// IsDeleted moves false -> true and never back.
type Message struct {
	ID                 uuid.UUID  `json:"id"`
	ChatRoomID         uuid.UUID  `json:"chatRoomId"`
	SenderID           uuid.UUID  `json:"senderId"`
	Content            string     `json:"content,omitempty"`
	MediaURLs          []string   `json:"mediaUrls,omitempty"`
	IsEncrypted        bool       `json:"isEncrypted"`
	EncryptionMetadata string     `json:"encryptionMetadata,omitempty"`
	SelfDestructAt     *time.Time `json:"selfDestructAt,omitempty"`
	IsDeleted          bool       `json:"isDeleted"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// Expired reports whether the message's self-destruct instant has passed.
func (m *Message) Expired(now time.Time) bool {
	return m.SelfDestructAt != nil && now.After(*m.SelfDestructAt)
}

// Accessible reports whether the content may still be shown.
func (m *Message) Accessible(now time.Time) bool {
	return !m.IsDeleted && !m.Expired(now)
}

// MarkDeleted durably clears the message content. Idempotent; never reversed.
func (m *Message) MarkDeleted() {
	m.IsDeleted = true
	m.Content = ""
	m.MediaURLs = nil
}
