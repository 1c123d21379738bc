package usecases

import (
	"context"

	"github.com/google/uuid"
	"whalebyte.core/internal/domain/entities"
	domainerrors "whalebyte.core/internal/domain/errors"
	"whalebyte.core/internal/domain/repositories"
)

// Trust-factor deltas applied when a report is resolved. An actioned report
// penalizes the reported user and credits the reporter; a dismissed report
// costs the reporter a little.
const (
	trustDeltaActionedTarget    = -0.1
	trustDeltaActionedReporter  = 0.05
	trustDeltaDismissedReporter = -0.02
)

// ModerationUsecase handles report filing and resolution
type ModerationUsecase struct {
	reportRepo repositories.ReportRepository
	userRepo   repositories.UserRepository
	uow        repositories.UnitOfWork
	notifier   Notifier
}

// NewModerationUsecase creates a new moderation usecase
func NewModerationUsecase(
	reportRepo repositories.ReportRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
	notifier Notifier,
) *ModerationUsecase {
	return &ModerationUsecase{
		reportRepo: reportRepo,
		userRepo:   userRepo,
		uow:        uow,
		notifier:   notifier,
	}
}

// File creates a report against exactly one of a post, a comment or a user
func (u *ModerationUsecase) File(ctx context.Context, reporterID uuid.UUID, postID, commentID, userID *uuid.UUID, reason string) (*entities.Report, error) {
	report, err := entities.NewReport(reporterID, postID, commentID, userID, reason)
	if err != nil {
		return nil, err
	}
	if err := u.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// Pending lists open reports for a moderator queue
func (u *ModerationUsecase) Pending(ctx context.Context) ([]*entities.Report, error) {
	return u.reportRepo.ListPending(ctx)
}

// Resolve moves a pending report to a terminal status, applies the
// trust-factor consequences in the same unit of work, and tells the reporter
// how it went. Only moderators and admins may resolve.
func (u *ModerationUsecase) Resolve(ctx context.Context, moderatorID, reportID uuid.UUID, status entities.ReportStatus) error {
	moderator, err := u.userRepo.GetByID(ctx, moderatorID)
	if err != nil {
		return err
	}
	if moderator.Role != entities.UserRoleModerator && moderator.Role != entities.UserRoleAdmin {
		return domainerrors.ErrForbidden
	}

	report, err := u.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return err
	}
	if err := report.Resolve(status); err != nil {
		return err
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.reportRepo.Update(txCtx, report); err != nil {
			return err
		}
		switch status {
		case entities.ReportActioned:
			if report.ReportedUserID != nil {
				if err := u.userRepo.AdjustTrustFactor(txCtx, *report.ReportedUserID, trustDeltaActionedTarget); err != nil {
					return err
				}
			}
			return u.userRepo.AdjustTrustFactor(txCtx, report.ReporterID, trustDeltaActionedReporter)
		case entities.ReportDismissed:
			return u.userRepo.AdjustTrustFactor(txCtx, report.ReporterID, trustDeltaDismissedReporter)
		default:
			return nil
		}
	})
	if err != nil {
		return err
	}

	if u.notifier != nil {
		u.notifier.Notify(ctx, report.ReporterID, entities.NotificationTypeReport,
			"your report was "+string(status), "", nil)
	}
	return nil
}
