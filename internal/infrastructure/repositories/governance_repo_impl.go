package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"whalebyte.core/internal/domain/entities"
	domainerrors "whalebyte.core/internal/domain/errors"
	"whalebyte.core/internal/infrastructure/models"
)

// GovernanceRepository implements proposal and governance-vote data operations
type GovernanceRepository struct {
	db *gorm.DB
}

// NewGovernanceRepository creates a new governance repository
func NewGovernanceRepository(db *gorm.DB) *GovernanceRepository {
	return &GovernanceRepository{db: db}
}

// CreateProposal creates a new proposal
func (r *GovernanceRepository) CreateProposal(ctx context.Context, proposal *entities.GovernanceProposal) error {
	return GetDB(ctx, r.db).WithContext(ctx).Create(toProposalModel(proposal)).Error
}

// GetProposal gets a proposal by ID
func (r *GovernanceRepository) GetProposal(ctx context.Context, id uuid.UUID) (*entities.GovernanceProposal, error) {
	var m models.GovernanceProposal
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toProposalEntity(&m), nil
}

// UpdateProposal persists a proposal's status and tallies
func (r *GovernanceRepository) UpdateProposal(ctx context.Context, proposal *entities.GovernanceProposal) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.GovernanceProposal{}).
		Where("id = ?", proposal.ID).
		Updates(map[string]interface{}{
			"status":        string(proposal.Status),
			"votes_for":     proposal.VotesFor,
			"votes_against": proposal.VotesAgainst,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListActive lists a sphere's open proposals, soonest deadline first
func (r *GovernanceRepository) ListActive(ctx context.Context, sphereID uuid.UUID) ([]*entities.GovernanceProposal, error) {
	var rows []models.GovernanceProposal
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("sphere_id = ? AND status = ?", sphereID, string(entities.ProposalActive)).
		Order("ends_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	proposals := make([]*entities.GovernanceProposal, len(rows))
	for i := range rows {
		proposals[i] = toProposalEntity(&rows[i])
	}
	return proposals, nil
}

// SaveVote upserts a user's vote on a proposal. Changing a vote replaces the
// earlier row so the (proposal, user) pair stays unique.
func (r *GovernanceRepository) SaveVote(ctx context.Context, vote *entities.GovernanceVote) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var existing models.GovernanceVote
	err := db.Where("proposal_id = ? AND user_id = ?", vote.ProposalID, vote.UserID).First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		m := &models.GovernanceVote{
			ID:         vote.ID,
			ProposalID: vote.ProposalID,
			UserID:     vote.UserID,
			Vote:       vote.Vote,
			CreatedAt:  vote.CreatedAt,
		}
		return db.Create(m).Error
	}

	vote.ID = existing.ID
	return db.Model(&models.GovernanceVote{}).Where("id = ?", existing.ID).
		Update("vote", vote.Vote).Error
}

// GetVote gets a user's vote on a proposal
func (r *GovernanceRepository) GetVote(ctx context.Context, proposalID, userID uuid.UUID) (*entities.GovernanceVote, error) {
	var m models.GovernanceVote
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("proposal_id = ? AND user_id = ?", proposalID, userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.GovernanceVote{
		ID:         m.ID,
		ProposalID: m.ProposalID,
		UserID:     m.UserID,
		Vote:       m.Vote,
		CreatedAt:  m.CreatedAt,
	}, nil
}

// CountVotes tallies the vote rows for a proposal. The proposal's stored
// counters are derived from this tally.
func (r *GovernanceRepository) CountVotes(ctx context.Context, proposalID uuid.UUID) (int, int, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.GovernanceVote{})

	var votesFor, votesAgainst int64
	if err := db.Where("proposal_id = ? AND vote = ?", proposalID, true).Count(&votesFor).Error; err != nil {
		return 0, 0, err
	}
	if err := db.Where("proposal_id = ? AND vote = ?", proposalID, false).Count(&votesAgainst).Error; err != nil {
		return 0, 0, err
	}
	return int(votesFor), int(votesAgainst), nil
}

func toProposalModel(p *entities.GovernanceProposal) *models.GovernanceProposal {
	return &models.GovernanceProposal{
		ID:           p.ID,
		SphereID:     p.SphereID,
		CreatorID:    p.CreatorID,
		Title:        p.Title,
		Description:  p.Description,
		ProposalType: string(p.Type),
		Status:       string(p.Status),
		VotesFor:     p.VotesFor,
		VotesAgainst: p.VotesAgainst,
		CreatedAt:    p.CreatedAt,
		EndsAt:       p.EndsAt,
	}
}

func toProposalEntity(m *models.GovernanceProposal) *entities.GovernanceProposal {
	return &entities.GovernanceProposal{
		ID:           m.ID,
		SphereID:     m.SphereID,
		CreatorID:    m.CreatorID,
		Title:        m.Title,
		Description:  m.Description,
		Type:         entities.ProposalType(m.ProposalType),
		Status:       entities.ProposalStatus(m.Status),
		VotesFor:     m.VotesFor,
		VotesAgainst: m.VotesAgainst,
		CreatedAt:    m.CreatedAt,
		EndsAt:       m.EndsAt,
	}
}

// NotificationRepository implements notification data operations
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new notification
func (r *NotificationRepository) Create(ctx context.Context, notification *entities.Notification) error {
	m := &models.Notification{
		ID:                notification.ID,
		UserID:            notification.UserID,
		Type:              string(notification.Type),
		Content:           notification.Content,
		IsRead:            notification.IsRead,
		RelatedEntityType: string(notification.RelatedEntityType),
		RelatedEntityID:   notification.RelatedEntityID,
		CreatedAt:         notification.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a notification by ID
func (r *NotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Notification, error) {
	var m models.Notification
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toNotificationEntity(&m), nil
}

// ListForUser lists a user's notifications, newest first
func (r *NotificationRepository) ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*entities.Notification, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var rows []models.Notification
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	notifications := make([]*entities.Notification, len(rows))
	for i := range rows {
		notifications[i] = toNotificationEntity(&rows[i])
	}
	return notifications, nil
}

// MarkRead flips is_read to true. Re-reading is a no-op, never an error.
func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Notification{}).
		Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toNotificationEntity(m *models.Notification) *entities.Notification {
	return &entities.Notification{
		ID:                m.ID,
		UserID:            m.UserID,
		Type:              entities.NotificationType(m.Type),
		Content:           m.Content,
		IsRead:            m.IsRead,
		RelatedEntityType: entities.RelatedEntityType(m.RelatedEntityType),
		RelatedEntityID:   m.RelatedEntityID,
		CreatedAt:         m.CreatedAt,
	}
}
