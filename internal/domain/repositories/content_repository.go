package repositories

import (
	"context"

	"github.com/google/uuid"
	"whalebyte.core/internal/domain/entities"
)

// ContentRepository defines post and comment data operations
type ContentRepository interface {
	CreatePost(ctx context.Context, post *entities.Post) error
	GetPost(ctx context.Context, id uuid.UUID) (*entities.Post, error)
	ListPosts(ctx context.Context, sphereID uuid.UUID, limit, offset int) ([]*entities.Post, int64, error)
	AdjustPostVotes(ctx context.Context, id uuid.UUID, upDelta, downDelta int) error
	AdjustCommentCount(ctx context.Context, postID uuid.UUID, delta int) error

	CreateComment(ctx context.Context, comment *entities.Comment) error
	GetComment(ctx context.Context, id uuid.UUID) (*entities.Comment, error)
	ListComments(ctx context.Context, postID uuid.UUID) ([]*entities.Comment, error)
	AdjustCommentVotes(ctx context.Context, id uuid.UUID, upDelta, downDelta int) error
	SoftDeleteComment(ctx context.Context, id uuid.UUID) error
}

// VoteRepository defines vote data operations. At most one vote exists per
// (user, target) pair; Save replaces a user's prior vote on the same target.
type VoteRepository interface {
	Save(ctx context.Context, vote *entities.Vote) error
	GetByUserAndPost(ctx context.Context, userID, postID uuid.UUID) (*entities.Vote, error)
	GetByUserAndComment(ctx context.Context, userID, commentID uuid.UUID) (*entities.Vote, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReportRepository defines report data operations
type ReportRepository interface {
	Create(ctx context.Context, report *entities.Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Report, error)
	Update(ctx context.Context, report *entities.Report) error
	ListPending(ctx context.Context) ([]*entities.Report, error)
}
