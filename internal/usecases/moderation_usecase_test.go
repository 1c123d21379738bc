package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"whalebyte.core/internal/domain/entities"
	domainerrors "whalebyte.core/internal/domain/errors"
	"whalebyte.core/internal/usecases"
)

type moderationFixture struct {
	reportRepo *MockReportRepository
	userRepo   *MockUserRepository
	uow        *MockUnitOfWork
	notifier   *MockNotifier
	uc         *usecases.ModerationUsecase
}

func newModerationFixture() *moderationFixture {
	f := &moderationFixture{
		reportRepo: new(MockReportRepository),
		userRepo:   new(MockUserRepository),
		uow:        new(MockUnitOfWork),
		notifier:   new(MockNotifier),
	}
	f.uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	f.uc = usecases.NewModerationUsecase(f.reportRepo, f.userRepo, f.uow, f.notifier)
	return f
}

func moderator() *entities.User {
	return &entities.User{ID: uuid.New(), Username: "mod", Role: entities.UserRoleModerator, IsActive: true}
}

func TestModerationUsecase_File(t *testing.T) {
	f := newModerationFixture()
	reporterID, postID := uuid.New(), uuid.New()

	f.reportRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Report")).Return(nil).Once()

	report, err := f.uc.File(context.Background(), reporterID, &postID, nil, nil, "spam")
	require.NoError(t, err)
	assert.Equal(t, entities.ReportPending, report.Status)
	assert.Equal(t, reporterID, report.ReporterID)
}

func TestModerationUsecase_File_NeedsExactlyOneTarget(t *testing.T) {
	f := newModerationFixture()
	postID, commentID := uuid.New(), uuid.New()

	_, err := f.uc.File(context.Background(), uuid.New(), &postID, &commentID, nil, "spam")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = f.uc.File(context.Background(), uuid.New(), nil, nil, nil, "spam")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestModerationUsecase_Resolve_MemberForbidden(t *testing.T) {
	f := newModerationFixture()
	member := &entities.User{ID: uuid.New(), Role: entities.UserRoleMember}

	f.userRepo.On("GetByID", mock.Anything, member.ID).Return(member, nil).Once()

	err := f.uc.Resolve(context.Background(), member.ID, uuid.New(), entities.ReportActioned)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	f.reportRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestModerationUsecase_Resolve_ActionedMovesTrustBothWays(t *testing.T) {
	f := newModerationFixture()
	mod := moderator()
	reporterID, reportedUserID := uuid.New(), uuid.New()

	report, err := entities.NewReport(reporterID, nil, nil, &reportedUserID, "harassment")
	require.NoError(t, err)

	f.userRepo.On("GetByID", mock.Anything, mod.ID).Return(mod, nil).Once()
	f.reportRepo.On("GetByID", mock.Anything, report.ID).Return(report, nil).Once()
	f.reportRepo.On("Update", mock.Anything, report).Return(nil).Once()
	f.userRepo.On("AdjustTrustFactor", mock.Anything, reportedUserID, -0.1).Return(nil).Once()
	f.userRepo.On("AdjustTrustFactor", mock.Anything, reporterID, 0.05).Return(nil).Once()
	f.notifier.On("Notify", mock.Anything, reporterID, entities.NotificationTypeReport,
		"your report was ACTIONED", mock.Anything, mock.Anything).Once()

	require.NoError(t, f.uc.Resolve(context.Background(), mod.ID, report.ID, entities.ReportActioned))
	assert.Equal(t, entities.ReportActioned, report.Status)
	f.userRepo.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
}

func TestModerationUsecase_Resolve_DismissedDebitsReporter(t *testing.T) {
	f := newModerationFixture()
	mod := moderator()
	reporterID, postID := uuid.New(), uuid.New()

	report, err := entities.NewReport(reporterID, &postID, nil, nil, "spam")
	require.NoError(t, err)

	f.userRepo.On("GetByID", mock.Anything, mod.ID).Return(mod, nil).Once()
	f.reportRepo.On("GetByID", mock.Anything, report.ID).Return(report, nil).Once()
	f.reportRepo.On("Update", mock.Anything, report).Return(nil).Once()
	f.userRepo.On("AdjustTrustFactor", mock.Anything, reporterID, -0.02).Return(nil).Once()
	f.notifier.On("Notify", mock.Anything, reporterID, entities.NotificationTypeReport,
		"your report was DISMISSED", mock.Anything, mock.Anything).Once()

	require.NoError(t, f.uc.Resolve(context.Background(), mod.ID, report.ID, entities.ReportDismissed))
	f.userRepo.AssertExpectations(t)
}

func TestModerationUsecase_Resolve_AlreadyResolved(t *testing.T) {
	f := newModerationFixture()
	mod := moderator()
	postID := uuid.New()

	report, err := entities.NewReport(uuid.New(), &postID, nil, nil, "spam")
	require.NoError(t, err)
	require.NoError(t, report.Resolve(entities.ReportDismissed))

	f.userRepo.On("GetByID", mock.Anything, mod.ID).Return(mod, nil).Once()
	f.reportRepo.On("GetByID", mock.Anything, report.ID).Return(report, nil).Once()

	err = f.uc.Resolve(context.Background(), mod.ID, report.ID, entities.ReportActioned)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	f.reportRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
