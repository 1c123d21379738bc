package entities

import (
	"time"

	"github.com/google/uuid"
	domainerrors "whalebyte.core/internal/domain/errors"
)

// Post is a content item owned by (SphereID, UserID). CommentCount must equal
// the number of live comments referencing it.
type Post struct {
	ID           uuid.UUID `json:"id"`
	SphereID     uuid.UUID `json:"sphereId"`
	UserID       uuid.UUID `json:"userId"`
	Content      string    `json:"content"`
	MediaURLs    []string  `json:"mediaUrls,omitempty"`
	IsPremium    bool      `json:"isPremium"`
	PremiumCost  float64   `json:"premiumCost"`
	IPFSHash     string    `json:"ipfsHash,omitempty"`
	Upvotes      int       `json:"upvotes"`
	Downvotes    int       `json:"downvotes"`
	CommentCount int       `json:"commentCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Comment is a reply to a post
type Comment struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"postId"`
	UserID    uuid.UUID `json:"userId"`
	Content   string    `json:"content"`
	IPFSHash  string    `json:"ipfsHash,omitempty"`
	Upvotes   int       `json:"upvotes"`
	Downvotes int       `json:"downvotes"`
	IsDeleted bool      `json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreatePostInput represents input for posting into a sphere
type CreatePostInput struct {
	Content     string   `json:"content"`
	MediaURLs   []string `json:"mediaUrls,omitempty"`
	IsPremium   bool     `json:"isPremium"`
	PremiumCost float64  `json:"premiumCost"`
	IPFSHash    string   `json:"ipfsHash,omitempty"`
}

// Validate enforces the premium gating rule: a premium cost is only allowed
// on premium posts, and premium posts must carry one.
func (i *CreatePostInput) Validate() error {
	if i.Content == "" && i.IPFSHash == "" {
		return domainerrors.NewError("post content is required", domainerrors.ErrInvalidInput)
	}
	if i.IsPremium && i.PremiumCost <= 0 {
		return domainerrors.NewError("premium posts require a positive premium cost", domainerrors.ErrInvalidInput)
	}
	if !i.IsPremium && i.PremiumCost != 0 {
		return domainerrors.NewError("premium cost set on a non-premium post", domainerrors.ErrInvalidInput)
	}
	return nil
}
