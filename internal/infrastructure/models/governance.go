package models

import (
	"time"

	"github.com/google/uuid"
)

type GovernanceProposal struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	SphereID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:varchar(200);not null"`
	Description  string    `gorm:"type:text"`
	ProposalType string    `gorm:"type:varchar(32);not null"`
	Status       string    `gorm:"type:varchar(16);not null;default:'ACTIVE';index"`
	VotesFor     int       `gorm:"not null;default:0"`
	VotesAgainst int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
	EndsAt       time.Time `gorm:"index"`
}

type GovernanceVote struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProposalID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_proposal_user"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_proposal_user"`
	Vote       bool      `gorm:"not null"`
	CreatedAt  time.Time
}

type Notification struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type              string     `gorm:"type:varchar(32);not null"`
	Content           string     `gorm:"type:text"`
	IsRead            bool       `gorm:"not null;default:false;index"`
	RelatedEntityType string     `gorm:"type:varchar(32)"`
	RelatedEntityID   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time  `gorm:"index"`
}
