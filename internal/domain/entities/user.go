package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents user roles within the platform
type UserRole string

const (
	UserRoleMember    UserRole = "MEMBER"
	UserRoleModerator UserRole = "MODERATOR"
	UserRoleAdmin     UserRole = "ADMIN"
)

// NotificationPreferences holds the three independent notification toggles
type NotificationPreferences struct {
	Transactions bool `json:"transactions"`
	Messages     bool `json:"messages"`
	Content      bool `json:"content"`
}

// DefaultNotificationPreferences returns the opt-in defaults for new accounts
func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{Transactions: true, Messages: true, Content: true}
}

// User represents a user identity record. Username and WalletAddress are
// globally unique; a User is never created without its Wallet.
type User struct {
	ID                      uuid.UUID               `json:"id"`
	Username                string                  `json:"username"`
	Email                   string                  `json:"email,omitempty"`
	PasswordHash            string                  `json:"-"`
	WalletAddress           string                  `json:"walletAddress"`
	TrustFactor             float64                 `json:"trustFactor"`
	Bio                     string                  `json:"bio,omitempty"`
	AvatarURL               string                  `json:"avatarUrl,omitempty"`
	Role                    UserRole                `json:"role"`
	NotificationPreferences NotificationPreferences `json:"notificationPreferences"`
	IsActive                bool                    `json:"isActive"`
	CreatedAt               time.Time               `json:"createdAt"`
	LastLogin               *time.Time              `json:"lastLogin,omitempty"`
}

// WantsNotification reports whether the user opted in to the given category
func (u *User) WantsNotification(t NotificationType) bool {
	switch t {
	case NotificationTypeTransaction:
		return u.NotificationPreferences.Transactions
	case NotificationTypeMessage:
		return u.NotificationPreferences.Messages
	default:
		return u.NotificationPreferences.Content
	}
}
