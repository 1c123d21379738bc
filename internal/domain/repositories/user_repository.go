package repositories

import (
	"context"

	"github.com/google/uuid"
	"whalebyte.core/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	AdjustTrustFactor(ctx context.Context, id uuid.UUID, delta float64) error
	RecordLogin(ctx context.Context, id uuid.UUID) error
}
