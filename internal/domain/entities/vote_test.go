package entities_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"whalebyte.core/internal/domain/entities"
	domainerrors "whalebyte.core/internal/domain/errors"
)

func TestNewVote_ExactlyOneTarget(t *testing.T) {
	userID := uuid.New()
	postID := uuid.New()
	commentID := uuid.New()

	v, err := entities.NewVote(userID, &postID, nil, entities.VoteUp)
	assert.NoError(t, err)
	assert.Equal(t, &postID, v.PostID)
	assert.Nil(t, v.CommentID)

	v, err = entities.NewVote(userID, nil, &commentID, entities.VoteDown)
	assert.NoError(t, err)
	assert.Equal(t, &commentID, v.CommentID)

	_, err = entities.NewVote(userID, &postID, &commentID, entities.VoteUp)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = entities.NewVote(userID, nil, nil, entities.VoteUp)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestNewVote_UnknownType(t *testing.T) {
	postID := uuid.New()
	_, err := entities.NewVote(uuid.New(), &postID, nil, entities.VoteType("SIDEWAYS"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestNewReport_ExactlyOneTarget(t *testing.T) {
	postID := uuid.New()
	userID := uuid.New()

	r, err := entities.NewReport(uuid.New(), &postID, nil, nil, "spam")
	assert.NoError(t, err)
	assert.Equal(t, entities.ReportPending, r.Status)

	_, err = entities.NewReport(uuid.New(), &postID, nil, &userID, "spam")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = entities.NewReport(uuid.New(), nil, nil, nil, "spam")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = entities.NewReport(uuid.New(), &postID, nil, nil, "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}
