package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"whalebyte.core/internal/domain/entities"
	domainerrors "whalebyte.core/internal/domain/errors"
	"whalebyte.core/internal/infrastructure/models"
)

// SphereRepository implements sphere and membership data operations
type SphereRepository struct {
	db *gorm.DB
}

// NewSphereRepository creates a new sphere repository
func NewSphereRepository(db *gorm.DB) *SphereRepository {
	return &SphereRepository{db: db}
}

// Create creates a new sphere
func (r *SphereRepository) Create(ctx context.Context, sphere *entities.Sphere) error {
	m := toSphereModel(sphere)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// GetByID gets a sphere by ID
func (r *SphereRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Sphere, error) {
	var m models.Sphere
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toSphereEntity(&m), nil
}

// GetByName gets a sphere by its unique name
func (r *SphereRepository) GetByName(ctx context.Context, name string) (*entities.Sphere, error) {
	var m models.Sphere
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toSphereEntity(&m), nil
}

// Update updates sphere settings
func (r *SphereRepository) Update(ctx context.Context, sphere *entities.Sphere) error {
	updates := map[string]interface{}{
		"description": sphere.Description,
		"category":    sphere.Category,
		"is_private":  sphere.IsPrivate,
		"entry_fee":   sphere.EntryFee,
		"rules":       null.NewString(sphere.Rules, sphere.Rules != ""),
		"updated_at":  time.Now(),
	}
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Sphere{}).Where("id = ?", sphere.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists spheres ordered by creation time
func (r *SphereRepository) List(ctx context.Context, limit, offset int) ([]*entities.Sphere, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Sphere{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var rows []models.Sphere
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	spheres := make([]*entities.Sphere, len(rows))
	for i := range rows {
		spheres[i] = toSphereEntity(&rows[i])
	}
	return spheres, total, nil
}

// AdjustCounts moves the derived member/content counters. Runs inside the
// same UnitOfWork as the membership/post mutation that justifies it.
func (r *SphereRepository) AdjustCounts(ctx context.Context, id uuid.UUID, memberDelta, contentDelta int) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Sphere{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"member_count":  gorm.Expr("member_count + ?", memberDelta),
			"content_count": gorm.Expr("content_count + ?", contentDelta),
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// AddMember adds a membership row
func (r *SphereRepository) AddMember(ctx context.Context, member *entities.SphereMember) error {
	m := &models.SphereMember{
		ID:       member.ID,
		SphereID: member.SphereID,
		UserID:   member.UserID,
		Role:     string(member.Role),
		JoinedAt: member.JoinedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// RemoveMember removes a membership row
func (r *SphereRepository) RemoveMember(ctx context.Context, sphereID, userID uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Where("sphere_id = ? AND user_id = ?", sphereID, userID).
		Delete(&models.SphereMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// GetMember gets a membership row
func (r *SphereRepository) GetMember(ctx context.Context, sphereID, userID uuid.UUID) (*entities.SphereMember, error) {
	var m models.SphereMember
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("sphere_id = ? AND user_id = ?", sphereID, userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toSphereMemberEntity(&m), nil
}

// ListMembers lists all members of a sphere
func (r *SphereRepository) ListMembers(ctx context.Context, sphereID uuid.UUID) ([]*entities.SphereMember, error) {
	var rows []models.SphereMember
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("sphere_id = ?", sphereID).Order("joined_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	members := make([]*entities.SphereMember, len(rows))
	for i := range rows {
		members[i] = toSphereMemberEntity(&rows[i])
	}
	return members, nil
}

func toSphereModel(s *entities.Sphere) *models.Sphere {
	return &models.Sphere{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		Category:     s.Category,
		IsPrivate:    s.IsPrivate,
		EntryFee:     s.EntryFee,
		CreatorID:    s.CreatorID,
		Rules:        null.NewString(s.Rules, s.Rules != ""),
		MemberCount:  s.MemberCount,
		ContentCount: s.ContentCount,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func toSphereEntity(m *models.Sphere) *entities.Sphere {
	return &entities.Sphere{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		Category:     m.Category,
		IsPrivate:    m.IsPrivate,
		EntryFee:     m.EntryFee,
		CreatorID:    m.CreatorID,
		Rules:        m.Rules.String,
		MemberCount:  m.MemberCount,
		ContentCount: m.ContentCount,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toSphereMemberEntity(m *models.SphereMember) *entities.SphereMember {
	return &entities.SphereMember{
		ID:       m.ID,
		SphereID: m.SphereID,
		UserID:   m.UserID,
		Role:     entities.SphereRole(m.Role),
		JoinedAt: m.JoinedAt,
	}
}
