package entities

import (
	"time"

	"github.com/google/uuid"
	domainerrors "whalebyte.core/internal/domain/errors"
)

// VoteType represents the direction of a vote
type VoteType string

const (
	VoteUp   VoteType = "UPVOTE"
	VoteDown VoteType = "DOWNVOTE"
)

// Vote targets exactly one of a post or a comment. At most one vote exists
// per (user, target) pair; a user changes their vote rather than holding two.
type Vote struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"userId"`
	PostID    *uuid.UUID `json:"postId,omitempty"`
	CommentID *uuid.UUID `json:"commentId,omitempty"`
	Type      VoteType   `json:"voteType"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NewVote rejects construction with both targets, neither target, or an
// unknown vote type.
func NewVote(userID uuid.UUID, postID, commentID *uuid.UUID, voteType VoteType) (*Vote, error) {
	if (postID == nil) == (commentID == nil) {
		return nil, domainerrors.NewError("vote must target exactly one of a post or a comment", domainerrors.ErrInvalidInput)
	}
	if voteType != VoteUp && voteType != VoteDown {
		return nil, domainerrors.NewError("unknown vote type", domainerrors.ErrInvalidInput)
	}
	return &Vote{
		ID:        uuid.New(),
		UserID:    userID,
		PostID:    postID,
		CommentID: commentID,
		Type:      voteType,
		CreatedAt: time.Now(),
	}, nil
}
