package entities

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType represents the category a notification belongs to
type NotificationType string

const (
	NotificationTypeTransaction     NotificationType = "TRANSACTION"
	NotificationTypeMessage         NotificationType = "MESSAGE"
	NotificationTypePostInteraction NotificationType = "POST_INTERACTION"
	NotificationTypeReport          NotificationType = "REPORT"
	NotificationTypeGovernance      NotificationType = "GOVERNANCE"
)

// RelatedEntityType identifies the entity a notification points at
type RelatedEntityType string

const (
	RelatedEntityPost        RelatedEntityType = "POST"
	RelatedEntityComment     RelatedEntityType = "COMMENT"
	RelatedEntityTransaction RelatedEntityType = "TRANSACTION"
	RelatedEntityMessage     RelatedEntityType = "MESSAGE"
	RelatedEntityProposal    RelatedEntityType = "PROPOSAL"
)

// Notification is a fire-and-forget record. IsRead toggles false -> true only.
type Notification struct {
	ID                uuid.UUID         `json:"id"`
	UserID            uuid.UUID         `json:"userId"`
	Type              NotificationType  `json:"type"`
	Content           string            `json:"content"`
	IsRead            bool              `json:"isRead"`
	RelatedEntityType RelatedEntityType `json:"relatedEntityType,omitempty"`
	RelatedEntityID   *uuid.UUID        `json:"relatedEntityId,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
}

// MarkRead is one-way; reading a notification twice is a no-op.
func (n *Notification) MarkRead() {
	n.IsRead = true
}
