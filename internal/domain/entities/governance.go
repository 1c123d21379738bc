package entities

import (
	"time"

	"github.com/google/uuid"
	domainerrors "whalebyte.core/internal/domain/errors"
)

// ProposalType represents what a proposal decides
type ProposalType string

const (
	ProposalModeratorElection ProposalType = "MODERATOR_ELECTION"
	ProposalRuleChange        ProposalType = "RULE_CHANGE"
	ProposalOther             ProposalType = "OTHER"
)

// ProposalStatus follows active -> passed | rejected, then passed -> implemented
type ProposalStatus string

const (
	ProposalActive      ProposalStatus = "ACTIVE"
	ProposalPassed      ProposalStatus = "PASSED"
	ProposalRejected    ProposalStatus = "REJECTED"
	ProposalImplemented ProposalStatus = "IMPLEMENTED"
)

// GovernanceProposal is a sphere-scoped vote. VotesFor/VotesAgainst are
// derived counters that must equal the tally of GovernanceVote rows.
type GovernanceProposal struct {
	ID           uuid.UUID      `json:"id"`
	SphereID     uuid.UUID      `json:"sphereId"`
	CreatorID    uuid.UUID      `json:"creatorId"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Type         ProposalType   `json:"proposalType"`
	Status       ProposalStatus `json:"status"`
	VotesFor     int            `json:"votesFor"`
	VotesAgainst int            `json:"votesAgainst"`
	CreatedAt    time.Time      `json:"createdAt"`
	EndsAt       time.Time      `json:"endsAt"`
}

// Finalize closes an active proposal as passed or rejected based on the tally.
func (p *GovernanceProposal) Finalize() error {
	if p.Status != ProposalActive {
		return domainerrors.ErrInvalidTransition
	}
	if p.VotesFor > p.VotesAgainst {
		p.Status = ProposalPassed
	} else {
		p.Status = ProposalRejected
	}
	return nil
}

// MarkImplemented transitions passed -> implemented.
func (p *GovernanceProposal) MarkImplemented() error {
	if p.Status != ProposalPassed {
		return domainerrors.ErrInvalidTransition
	}
	p.Status = ProposalImplemented
	return nil
}

// GovernanceVote is a single yes/no vote; at most one exists per
// (proposal, user) pair.
type GovernanceVote struct {
	ID         uuid.UUID `json:"id"`
	ProposalID uuid.UUID `json:"proposalId"`
	UserID     uuid.UUID `json:"userId"`
	Vote       bool      `json:"vote"` // true = for, false = against
	CreatedAt  time.Time `json:"createdAt"`
}
