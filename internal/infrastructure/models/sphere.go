package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type Sphere struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name         string      `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description  string      `gorm:"type:text"`
	Category     string      `gorm:"type:varchar(64);index"`
	IsPrivate    bool        `gorm:"not null;default:false"`
	EntryFee     float64     `gorm:"not null;default:0"`
	CreatorID    uuid.UUID   `gorm:"type:uuid;not null;index"`
	Rules        null.String `gorm:"type:text"`
	MemberCount  int         `gorm:"not null;default:0"`
	ContentCount int         `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type SphereMember struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	SphereID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sphere_user"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sphere_user"`
	Role     string    `gorm:"type:varchar(16);not null;default:'MEMBER'"`
	JoinedAt time.Time
}
