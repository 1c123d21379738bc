package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type ChatRoom struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name         null.String `gorm:"type:varchar(100)"`
	IsGroup      bool        `gorm:"not null;default:false"`
	IsSphereChat bool        `gorm:"not null;default:false"`
	SphereID     *uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ChatRoomMember struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChatRoomID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_room_user"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_room_user"`
	Role       string    `gorm:"type:varchar(16);not null;default:'MEMBER'"`
	JoinedAt   time.Time
	LastReadAt time.Time
}

type Message struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChatRoomID         uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Content            string    `gorm:"type:text"`
	MediaURLs          []string  `gorm:"serializer:json"`
	IsEncrypted        bool      `gorm:"not null;default:false"`
	EncryptionMetadata string    `gorm:"type:text"`
	SelfDestructAt     null.Time `gorm:"index"`
	IsDeleted          bool      `gorm:"not null;default:false;index"`
	CreatedAt          time.Time `gorm:"index"`
}
