package models

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	SphereID     uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Content      string    `gorm:"type:text"`
	MediaURLs    []string  `gorm:"serializer:json"`
	IsPremium    bool      `gorm:"not null;default:false"`
	PremiumCost  float64   `gorm:"not null;default:0"`
	IPFSHash     string    `gorm:"column:ipfs_hash;type:varchar(128)"`
	Upvotes      int       `gorm:"not null;default:0"`
	Downvotes    int       `gorm:"not null;default:0"`
	CommentCount int       `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text"`
	IPFSHash  string    `gorm:"column:ipfs_hash;type:varchar(128)"`
	Upvotes   int       `gorm:"not null;default:0"`
	Downvotes int       `gorm:"not null;default:0"`
	IsDeleted bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Vote struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	PostID    *uuid.UUID `gorm:"type:uuid;index:idx_vote_post"`
	CommentID *uuid.UUID `gorm:"type:uuid;index:idx_vote_comment"`
	VoteType  string     `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time
}

type Report struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ReporterID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReportedPostID    *uuid.UUID `gorm:"type:uuid;index"`
	ReportedCommentID *uuid.UUID `gorm:"type:uuid;index"`
	ReportedUserID    *uuid.UUID `gorm:"type:uuid;index"`
	Reason            string     `gorm:"type:varchar(500);not null"`
	Status            string     `gorm:"type:varchar(16);not null;default:'PENDING';index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
