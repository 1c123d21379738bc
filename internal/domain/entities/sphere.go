package entities

import (
	"time"

	"github.com/google/uuid"
	domainerrors "whalebyte.core/internal/domain/errors"
)

// SphereRole represents a member's role within a sphere. Exactly one member
// per sphere holds ROLE_CREATOR and it matches Sphere.CreatorID.
type SphereRole string

const (
	SphereRoleMember    SphereRole = "MEMBER"
	SphereRoleModerator SphereRole = "MODERATOR"
	SphereRoleCreator   SphereRole = "CREATOR"
)

// Sphere represents a community. MemberCount and ContentCount are derived
// counters; every mutation path must keep them equal to the cardinality of
// the member and post sets.
type Sphere struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	IsPrivate    bool      `json:"isPrivate"`
	EntryFee     float64   `json:"entryFee"`
	CreatorID    uuid.UUID `json:"creatorId"`
	Rules        string    `json:"rules,omitempty"`
	MemberCount  int       `json:"memberCount"`
	ContentCount int       `json:"contentCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SphereMember is the join row between a User and a Sphere
type SphereMember struct {
	ID       uuid.UUID  `json:"id"`
	SphereID uuid.UUID  `json:"sphereId"`
	UserID   uuid.UUID  `json:"userId"`
	Role     SphereRole `json:"role"`
	JoinedAt time.Time  `json:"joinedAt"`
}

// CreateSphereInput represents input for creating a sphere
type CreateSphereInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	IsPrivate   bool    `json:"isPrivate"`
	EntryFee    float64 `json:"entryFee"`
	Rules       string  `json:"rules,omitempty"`
}

// Validate checks field constraints before the sphere is created
func (i *CreateSphereInput) Validate() error {
	if i.Name == "" {
		return domainerrors.NewError("sphere name is required", domainerrors.ErrInvalidInput)
	}
	if i.EntryFee < 0 {
		return domainerrors.NewError("entry fee must be non-negative", domainerrors.ErrInvalidInput)
	}
	return nil
}
