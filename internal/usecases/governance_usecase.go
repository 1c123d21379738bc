package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"whalebyte.core/internal/domain/entities"
	domainerrors "whalebyte.core/internal/domain/errors"
	"whalebyte.core/internal/domain/repositories"
)

// GovernanceUsecase handles sphere-scoped proposals and their votes. The
// proposal's stored tallies are always recomputed from the vote rows inside
// the same unit of work as the vote mutation, keeping the derived counters
// honest.
type GovernanceUsecase struct {
	governanceRepo repositories.GovernanceRepository
	sphereRepo     repositories.SphereRepository
	uow            repositories.UnitOfWork
	notifier       Notifier
}

// NewGovernanceUsecase creates a new governance usecase
func NewGovernanceUsecase(
	governanceRepo repositories.GovernanceRepository,
	sphereRepo repositories.SphereRepository,
	uow repositories.UnitOfWork,
	notifier Notifier,
) *GovernanceUsecase {
	return &GovernanceUsecase{
		governanceRepo: governanceRepo,
		sphereRepo:     sphereRepo,
		uow:            uow,
		notifier:       notifier,
	}
}

// Propose opens a proposal in a sphere the creator belongs to
func (u *GovernanceUsecase) Propose(ctx context.Context, sphereID, creatorID uuid.UUID, title, description string, proposalType entities.ProposalType, voting time.Duration) (*entities.GovernanceProposal, error) {
	if title == "" {
		return nil, domainerrors.NewError("proposal title is required", domainerrors.ErrInvalidInput)
	}
	if voting <= 0 {
		return nil, domainerrors.NewError("voting window must be positive", domainerrors.ErrInvalidInput)
	}

	if _, err := u.sphereRepo.GetMember(ctx, sphereID, creatorID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrNotAMember
		}
		return nil, err
	}

	now := time.Now()
	proposal := &entities.GovernanceProposal{
		ID:          uuid.New(),
		SphereID:    sphereID,
		CreatorID:   creatorID,
		Title:       title,
		Description: description,
		Type:        proposalType,
		Status:      entities.ProposalActive,
		CreatedAt:   now,
		EndsAt:      now.Add(voting),
	}
	if err := u.governanceRepo.CreateProposal(ctx, proposal); err != nil {
		return nil, err
	}
	return proposal, nil
}

// CastVote records a member's yes/no vote on an active proposal. Voting
// again replaces the earlier vote; the tallies follow the vote rows.
func (u *GovernanceUsecase) CastVote(ctx context.Context, proposalID, userID uuid.UUID, voteFor bool) error {
	proposal, err := u.governanceRepo.GetProposal(ctx, proposalID)
	if err != nil {
		return err
	}
	if proposal.Status != entities.ProposalActive {
		return domainerrors.ErrInvalidTransition
	}
	if time.Now().After(proposal.EndsAt) {
		return domainerrors.NewError("voting window has closed", domainerrors.ErrInvalidTransition)
	}

	if _, err := u.sphereRepo.GetMember(ctx, proposal.SphereID, userID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.ErrNotAMember
		}
		return err
	}

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.governanceRepo.SaveVote(txCtx, &entities.GovernanceVote{
			ID:         uuid.New(),
			ProposalID: proposalID,
			UserID:     userID,
			Vote:       voteFor,
			CreatedAt:  time.Now(),
		}); err != nil {
			return err
		}

		votesFor, votesAgainst, err := u.governanceRepo.CountVotes(txCtx, proposalID)
		if err != nil {
			return err
		}
		proposal.VotesFor = votesFor
		proposal.VotesAgainst = votesAgainst
		return u.governanceRepo.UpdateProposal(txCtx, proposal)
	})
}

// Finalize closes a proposal whose voting window has passed, settling it as
// passed or rejected from the final tally. Ties reject.
func (u *GovernanceUsecase) Finalize(ctx context.Context, proposalID uuid.UUID) (*entities.GovernanceProposal, error) {
	proposal, err := u.governanceRepo.GetProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if time.Now().Before(proposal.EndsAt) {
		return nil, domainerrors.NewError("voting window is still open", domainerrors.ErrInvalidTransition)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		votesFor, votesAgainst, err := u.governanceRepo.CountVotes(txCtx, proposalID)
		if err != nil {
			return err
		}
		proposal.VotesFor = votesFor
		proposal.VotesAgainst = votesAgainst
		if err := proposal.Finalize(); err != nil {
			return err
		}
		return u.governanceRepo.UpdateProposal(txCtx, proposal)
	})
	if err != nil {
		return nil, err
	}

	if u.notifier != nil {
		u.notifier.Notify(ctx, proposal.CreatorID, entities.NotificationTypeGovernance,
			"your proposal "+string(proposal.Status), entities.RelatedEntityProposal, &proposal.ID)
	}
	return proposal, nil
}

// MarkImplemented records that a passed proposal has taken effect
func (u *GovernanceUsecase) MarkImplemented(ctx context.Context, proposalID uuid.UUID) error {
	proposal, err := u.governanceRepo.GetProposal(ctx, proposalID)
	if err != nil {
		return err
	}
	if err := proposal.MarkImplemented(); err != nil {
		return err
	}
	return u.governanceRepo.UpdateProposal(ctx, proposal)
}

// ListActive lists a sphere's open proposals
func (u *GovernanceUsecase) ListActive(ctx context.Context, sphereID uuid.UUID) ([]*entities.GovernanceProposal, error) {
	return u.governanceRepo.ListActive(ctx, sphereID)
}
