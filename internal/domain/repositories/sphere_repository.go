package repositories

import (
	"context"

	"github.com/google/uuid"
	"whalebyte.core/internal/domain/entities"
)

// SphereRepository defines sphere and membership data operations
type SphereRepository interface {
	Create(ctx context.Context, sphere *entities.Sphere) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Sphere, error)
	GetByName(ctx context.Context, name string) (*entities.Sphere, error)
	Update(ctx context.Context, sphere *entities.Sphere) error
	List(ctx context.Context, limit, offset int) ([]*entities.Sphere, int64, error)
	AdjustCounts(ctx context.Context, id uuid.UUID, memberDelta, contentDelta int) error

	AddMember(ctx context.Context, member *entities.SphereMember) error
	RemoveMember(ctx context.Context, sphereID, userID uuid.UUID) error
	GetMember(ctx context.Context, sphereID, userID uuid.UUID) (*entities.SphereMember, error)
	ListMembers(ctx context.Context, sphereID uuid.UUID) ([]*entities.SphereMember, error)
}
