package models

import (
	"time"

	"github.com/google/uuid"
)

type Wallet struct {
	Address   string    `gorm:"type:varchar(64);primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Balance   float64   `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Transaction struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SenderAddress    string     `gorm:"type:varchar(64);not null;index"`
	ReceiverAddress  string     `gorm:"type:varchar(64);not null;index"`
	Amount           float64    `gorm:"not null"`
	Type             string     `gorm:"type:varchar(32);not null"`
	Status           string     `gorm:"type:varchar(16);not null;default:'PENDING'"`
	BlockchainTxHash string     `gorm:"type:varchar(128)"`
	RelatedPostID    *uuid.UUID `gorm:"type:uuid;index"`
	RelatedSphereID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt        time.Time  `gorm:"index"`
	UpdatedAt        time.Time
}
