package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type User struct {
	ID                 uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Username           string      `gorm:"type:varchar(64);uniqueIndex;not null"`
	Email              null.String `gorm:"type:varchar(255)"`
	PasswordHash       string      `gorm:"type:varchar(255);not null"`
	WalletAddress      string      `gorm:"type:varchar(64);uniqueIndex;not null"`
	TrustFactor        float64     `gorm:"not null;default:0"`
	Bio                null.String `gorm:"type:text"`
	AvatarURL          null.String `gorm:"type:varchar(512)"`
	Role               string      `gorm:"type:varchar(32);not null;default:'MEMBER'"`
	NotifyTransactions bool        `gorm:"not null;default:true"`
	NotifyMessages     bool        `gorm:"not null;default:true"`
	NotifyContent      bool        `gorm:"not null;default:true"`
	IsActive           bool        `gorm:"not null;default:true"`
	LastLogin          null.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
