package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"whalebyte.core/internal/domain/entities"
	domainerrors "whalebyte.core/internal/domain/errors"
	"whalebyte.core/internal/infrastructure/models"
)

// VoteRepository implements vote data operations
type VoteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new vote repository
func NewVoteRepository(db *gorm.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

// Save upserts a user's vote on a target. An existing vote on the same
// target is replaced rather than duplicated.
func (r *VoteRepository) Save(ctx context.Context, vote *entities.Vote) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var existing models.Vote
	query := db.Where("user_id = ?", vote.UserID)
	if vote.PostID != nil {
		query = query.Where("post_id = ?", *vote.PostID)
	} else {
		query = query.Where("comment_id = ?", *vote.CommentID)
	}

	err := query.First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return db.Create(toVoteModel(vote)).Error
	}

	vote.ID = existing.ID
	return db.Model(&models.Vote{}).Where("id = ?", existing.ID).
		Update("vote_type", string(vote.Type)).Error
}

// GetByUserAndPost gets a user's vote on a post
func (r *VoteRepository) GetByUserAndPost(ctx context.Context, userID, postID uuid.UUID) (*entities.Vote, error) {
	var m models.Vote
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toVoteEntity(&m), nil
}

// GetByUserAndComment gets a user's vote on a comment
func (r *VoteRepository) GetByUserAndComment(ctx context.Context, userID, commentID uuid.UUID) (*entities.Vote, error) {
	var m models.Vote
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ? AND comment_id = ?", userID, commentID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toVoteEntity(&m), nil
}

// Delete removes a vote
func (r *VoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).Delete(&models.Vote{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toVoteModel(v *entities.Vote) *models.Vote {
	return &models.Vote{
		ID:        v.ID,
		UserID:    v.UserID,
		PostID:    v.PostID,
		CommentID: v.CommentID,
		VoteType:  string(v.Type),
		CreatedAt: v.CreatedAt,
	}
}

func toVoteEntity(m *models.Vote) *entities.Vote {
	return &entities.Vote{
		ID:        m.ID,
		UserID:    m.UserID,
		PostID:    m.PostID,
		CommentID: m.CommentID,
		Type:      entities.VoteType(m.VoteType),
		CreatedAt: m.CreatedAt,
	}
}

// ReportRepository implements report data operations
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create creates a new report
func (r *ReportRepository) Create(ctx context.Context, report *entities.Report) error {
	return GetDB(ctx, r.db).WithContext(ctx).Create(toReportModel(report)).Error
}

// GetByID gets a report by ID
func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Report, error) {
	var m models.Report
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toReportEntity(&m), nil
}

// Update persists a resolved report. Only pending rows can move; resolved
// rows stay immutable.
func (r *ReportRepository) Update(ctx context.Context, report *entities.Report) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Report{}).
		Where("id = ? AND status = ?", report.ID, string(entities.ReportPending)).
		Updates(map[string]interface{}{
			"status":     string(report.Status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInvalidTransition
	}
	return nil
}

// ListPending lists open reports, oldest first
func (r *ReportRepository) ListPending(ctx context.Context) ([]*entities.Report, error) {
	var rows []models.Report
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("status = ?", string(entities.ReportPending)).
		Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	reports := make([]*entities.Report, len(rows))
	for i := range rows {
		reports[i] = toReportEntity(&rows[i])
	}
	return reports, nil
}

func toReportModel(rep *entities.Report) *models.Report {
	return &models.Report{
		ID:                rep.ID,
		ReporterID:        rep.ReporterID,
		ReportedPostID:    rep.ReportedPostID,
		ReportedCommentID: rep.ReportedCommentID,
		ReportedUserID:    rep.ReportedUserID,
		Reason:            rep.Reason,
		Status:            string(rep.Status),
		CreatedAt:         rep.CreatedAt,
		UpdatedAt:         rep.UpdatedAt,
	}
}

func toReportEntity(m *models.Report) *entities.Report {
	return &entities.Report{
		ID:                m.ID,
		ReporterID:        m.ReporterID,
		ReportedPostID:    m.ReportedPostID,
		ReportedCommentID: m.ReportedCommentID,
		ReportedUserID:    m.ReportedUserID,
		Reason:            m.Reason,
		Status:            entities.ReportStatus(m.Status),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
