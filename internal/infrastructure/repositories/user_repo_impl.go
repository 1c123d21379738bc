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

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := toUserModel(user)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// GetByUsername gets a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("username = ?", username).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// Update updates the mutable profile fields of a user
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	updates := map[string]interface{}{
		"email":               null.NewString(user.Email, user.Email != ""),
		"bio":                 null.NewString(user.Bio, user.Bio != ""),
		"avatar_url":          null.NewString(user.AvatarURL, user.AvatarURL != ""),
		"role":                string(user.Role),
		"notify_transactions": user.NotificationPreferences.Transactions,
		"notify_messages":     user.NotificationPreferences.Messages,
		"notify_content":      user.NotificationPreferences.Content,
		"is_active":           user.IsActive,
		"updated_at":          time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// AdjustTrustFactor applies a moderation/voting outcome delta
func (r *UserRepository) AdjustTrustFactor(ctx context.Context, id uuid.UUID, delta float64) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		UpdateColumn("trust_factor", gorm.Expr("trust_factor + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// RecordLogin stamps last_login
func (r *UserRepository) RecordLogin(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		UpdateColumn("last_login", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toUserModel(u *entities.User) *models.User {
	return &models.User{
		ID:                 u.ID,
		Username:           u.Username,
		Email:              null.NewString(u.Email, u.Email != ""),
		PasswordHash:       u.PasswordHash,
		WalletAddress:      u.WalletAddress,
		TrustFactor:        u.TrustFactor,
		Bio:                null.NewString(u.Bio, u.Bio != ""),
		AvatarURL:          null.NewString(u.AvatarURL, u.AvatarURL != ""),
		Role:               string(u.Role),
		NotifyTransactions: u.NotificationPreferences.Transactions,
		NotifyMessages:     u.NotificationPreferences.Messages,
		NotifyContent:      u.NotificationPreferences.Content,
		IsActive:           u.IsActive,
		LastLogin:          null.TimeFromPtr(u.LastLogin),
		CreatedAt:          u.CreatedAt,
	}
}

func toUserEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:            m.ID,
		Username:      m.Username,
		Email:         m.Email.String,
		PasswordHash:  m.PasswordHash,
		WalletAddress: m.WalletAddress,
		TrustFactor:   m.TrustFactor,
		Bio:           m.Bio.String,
		AvatarURL:     m.AvatarURL.String,
		Role:          entities.UserRole(m.Role),
		NotificationPreferences: entities.NotificationPreferences{
			Transactions: m.NotifyTransactions,
			Messages:     m.NotifyMessages,
			Content:      m.NotifyContent,
		},
		IsActive:  m.IsActive,
		LastLogin: m.LastLogin.Ptr(),
		CreatedAt: m.CreatedAt,
	}
}
