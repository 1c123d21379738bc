package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"whalebyte.core/internal/domain/entities"
	domainerrors "whalebyte.core/internal/domain/errors"
	"whalebyte.core/internal/domain/repositories"
)

// VoteUsecase handles content voting. A user holds at most one vote per
// target; casting again flips the direction and casting the same direction
// twice is a no-op. Counter deltas and the vote row always move in one unit
// of work.
type VoteUsecase struct {
	voteRepo    repositories.VoteRepository
	contentRepo repositories.ContentRepository
	uow         repositories.UnitOfWork
}

// NewVoteUsecase creates a new vote usecase
func NewVoteUsecase(voteRepo repositories.VoteRepository, contentRepo repositories.ContentRepository, uow repositories.UnitOfWork) *VoteUsecase {
	return &VoteUsecase{
		voteRepo:    voteRepo,
		contentRepo: contentRepo,
		uow:         uow,
	}
}

// CastOnPost records a user's vote on a post
func (u *VoteUsecase) CastOnPost(ctx context.Context, userID, postID uuid.UUID, voteType entities.VoteType) error {
	vote, err := entities.NewVote(userID, &postID, nil, voteType)
	if err != nil {
		return err
	}

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		existing, err := u.voteRepo.GetByUserAndPost(txCtx, userID, postID)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}

		upDelta, downDelta, changed := voteDeltas(existing, voteType)
		if !changed {
			return nil
		}

		if err := u.voteRepo.Save(txCtx, vote); err != nil {
			return err
		}
		return u.contentRepo.AdjustPostVotes(txCtx, postID, upDelta, downDelta)
	})
}

// CastOnComment records a user's vote on a comment
func (u *VoteUsecase) CastOnComment(ctx context.Context, userID, commentID uuid.UUID, voteType entities.VoteType) error {
	vote, err := entities.NewVote(userID, nil, &commentID, voteType)
	if err != nil {
		return err
	}

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		existing, err := u.voteRepo.GetByUserAndComment(txCtx, userID, commentID)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}

		upDelta, downDelta, changed := voteDeltas(existing, voteType)
		if !changed {
			return nil
		}

		if err := u.voteRepo.Save(txCtx, vote); err != nil {
			return err
		}
		return u.contentRepo.AdjustCommentVotes(txCtx, commentID, upDelta, downDelta)
	})
}

// RetractFromPost withdraws a user's vote on a post
func (u *VoteUsecase) RetractFromPost(ctx context.Context, userID, postID uuid.UUID) error {
	return u.uow.Do(ctx, func(txCtx context.Context) error {
		existing, err := u.voteRepo.GetByUserAndPost(txCtx, userID, postID)
		if err != nil {
			return err
		}
		if err := u.voteRepo.Delete(txCtx, existing.ID); err != nil {
			return err
		}
		if existing.Type == entities.VoteUp {
			return u.contentRepo.AdjustPostVotes(txCtx, postID, -1, 0)
		}
		return u.contentRepo.AdjustPostVotes(txCtx, postID, 0, -1)
	})
}

// voteDeltas computes the counter movement for replacing the existing vote
// (possibly none) with the new direction. changed is false when the user
// re-casts the vote they already hold.
func voteDeltas(existing *entities.Vote, voteType entities.VoteType) (upDelta, downDelta int, changed bool) {
	if existing == nil {
		if voteType == entities.VoteUp {
			return 1, 0, true
		}
		return 0, 1, true
	}
	if existing.Type == voteType {
		return 0, 0, false
	}
	if voteType == entities.VoteUp {
		return 1, -1, true
	}
	return -1, 1, true
}
