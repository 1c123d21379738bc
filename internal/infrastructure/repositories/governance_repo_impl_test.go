package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"whalebyte.core/internal/domain/entities"
	domainerrors "whalebyte.core/internal/domain/errors"
)

func newProposal(sphereID uuid.UUID) *entities.GovernanceProposal {
	now := time.Now()
	return &entities.GovernanceProposal{
		ID:        uuid.New(),
		SphereID:  sphereID,
		CreatorID: uuid.New(),
		Title:     "elect a moderator",
		Type:      entities.ProposalModeratorElection,
		Status:    entities.ProposalActive,
		CreatedAt: now,
		EndsAt:    now.Add(24 * time.Hour),
	}
}

func TestGovernanceRepository_ProposalLifecycle(t *testing.T) {
	db := newTestDB(t)
	createGovernanceTables(t, db)
	repo := NewGovernanceRepository(db)
	ctx := context.Background()

	sphereID := uuid.New()
	p := newProposal(sphereID)
	require.NoError(t, repo.CreateProposal(ctx, p))

	active, err := repo.ListActive(ctx, sphereID)
	require.NoError(t, err)
	require.Len(t, active, 1)

	voterA := uuid.New()
	voterB := uuid.New()
	require.NoError(t, repo.SaveVote(ctx, &entities.GovernanceVote{
		ID: uuid.New(), ProposalID: p.ID, UserID: voterA, Vote: true, CreatedAt: time.Now(),
	}))
	require.NoError(t, repo.SaveVote(ctx, &entities.GovernanceVote{
		ID: uuid.New(), ProposalID: p.ID, UserID: voterB, Vote: false, CreatedAt: time.Now(),
	}))

	// voterB changes their mind; the earlier row is replaced
	require.NoError(t, repo.SaveVote(ctx, &entities.GovernanceVote{
		ID: uuid.New(), ProposalID: p.ID, UserID: voterB, Vote: true, CreatedAt: time.Now(),
	}))

	votesFor, votesAgainst, err := repo.CountVotes(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 2, votesFor)
	require.Equal(t, 0, votesAgainst)

	vb, err := repo.GetVote(ctx, p.ID, voterB)
	require.NoError(t, err)
	require.True(t, vb.Vote)

	p.VotesFor = votesFor
	p.VotesAgainst = votesAgainst
	require.NoError(t, p.Finalize())
	require.NoError(t, repo.UpdateProposal(ctx, p))

	got, err := repo.GetProposal(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, entities.ProposalPassed, got.Status)
	require.Equal(t, 2, got.VotesFor)

	active, err = repo.ListActive(ctx, sphereID)
	require.NoError(t, err)
	require.Empty(t, active)
}

func TestGovernanceRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createGovernanceTables(t, db)
	repo := NewGovernanceRepository(db)
	ctx := context.Background()

	_, err := repo.GetProposal(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetVote(ctx, uuid.New(), uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.UpdateProposal(ctx, newProposal(uuid.New()))
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestNotificationRepository_CRUDAndMarkRead(t *testing.T) {
	db := newTestDB(t)
	createNotificationTable(t, db)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	txID := uuid.New()
	n := &entities.Notification{
		ID:                uuid.New(),
		UserID:            userID,
		Type:              entities.NotificationTypeTransaction,
		Content:           "you received 10 SPH",
		RelatedEntityType: entities.RelatedEntityTransaction,
		RelatedEntityID:   &txID,
		CreatedAt:         time.Now(),
	}
	require.NoError(t, repo.Create(ctx, n))

	unread, err := repo.ListForUser(ctx, userID, true)
	require.NoError(t, err)
	require.Len(t, unread, 1)

	require.NoError(t, repo.MarkRead(ctx, n.ID))
	// marking twice stays a no-op
	require.NoError(t, repo.MarkRead(ctx, n.ID))

	unread, err = repo.ListForUser(ctx, userID, true)
	require.NoError(t, err)
	require.Empty(t, unread)

	all, err := repo.ListForUser(ctx, userID, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.True(t, all[0].IsRead)

	require.ErrorIs(t, repo.MarkRead(ctx, uuid.New()), domainerrors.ErrNotFound)
}
