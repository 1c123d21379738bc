package repositories

import (
	"context"

	"github.com/google/uuid"
	"whalebyte.core/internal/domain/entities"
)

// GovernanceRepository defines proposal and governance-vote data operations
type GovernanceRepository interface {
	CreateProposal(ctx context.Context, proposal *entities.GovernanceProposal) error
	GetProposal(ctx context.Context, id uuid.UUID) (*entities.GovernanceProposal, error)
	UpdateProposal(ctx context.Context, proposal *entities.GovernanceProposal) error
	ListActive(ctx context.Context, sphereID uuid.UUID) ([]*entities.GovernanceProposal, error)

	SaveVote(ctx context.Context, vote *entities.GovernanceVote) error
	GetVote(ctx context.Context, proposalID, userID uuid.UUID) (*entities.GovernanceVote, error)
	CountVotes(ctx context.Context, proposalID uuid.UUID) (votesFor, votesAgainst int, err error)
}

// NotificationRepository defines notification data operations
type NotificationRepository interface {
	Create(ctx context.Context, notification *entities.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Notification, error)
	ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*entities.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}
