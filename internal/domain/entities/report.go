package entities

import (
	"time"

	"github.com/google/uuid"
	domainerrors "whalebyte.core/internal/domain/errors"
)

// ReportStatus follows the one-way pending -> reviewed | actioned | dismissed path
type ReportStatus string

const (
	ReportPending   ReportStatus = "PENDING"
	ReportReviewed  ReportStatus = "REVIEWED"
	ReportActioned  ReportStatus = "ACTIONED"
	ReportDismissed ReportStatus = "DISMISSED"
)

// Report flags exactly one of a post, a comment, or a user.
type Report struct {
	ID                uuid.UUID    `json:"id"`
	ReporterID        uuid.UUID    `json:"reporterId"`
	ReportedPostID    *uuid.UUID   `json:"reportedPostId,omitempty"`
	ReportedCommentID *uuid.UUID   `json:"reportedCommentId,omitempty"`
	ReportedUserID    *uuid.UUID   `json:"reportedUserId,omitempty"`
	Reason            string       `json:"reason"`
	Status            ReportStatus `json:"status"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
}

// NewReport enforces the exactly-one-target rule at construction.
func NewReport(reporterID uuid.UUID, postID, commentID, userID *uuid.UUID, reason string) (*Report, error) {
	targets := 0
	for _, id := range []*uuid.UUID{postID, commentID, userID} {
		if id != nil {
			targets++
		}
	}
	if targets != 1 {
		return nil, domainerrors.NewError("report must target exactly one entity", domainerrors.ErrInvalidInput)
	}
	if reason == "" {
		return nil, domainerrors.NewError("report reason is required", domainerrors.ErrInvalidInput)
	}
	now := time.Now()
	return &Report{
		ID:                uuid.New(),
		ReporterID:        reporterID,
		ReportedPostID:    postID,
		ReportedCommentID: commentID,
		ReportedUserID:    userID,
		Reason:            reason,
		Status:            ReportPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// Resolve transitions pending -> reviewed | actioned | dismissed, one-way.
func (r *Report) Resolve(status ReportStatus) error {
	if r.Status != ReportPending {
		return domainerrors.ErrInvalidTransition
	}
	switch status {
	case ReportReviewed, ReportActioned, ReportDismissed:
		r.Status = status
		r.UpdatedAt = time.Now()
		return nil
	default:
		return domainerrors.ErrInvalidTransition
	}
}
