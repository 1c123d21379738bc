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

// ContentRepository implements post and comment data operations
type ContentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new content repository
func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// CreatePost creates a new post
func (r *ContentRepository) CreatePost(ctx context.Context, post *entities.Post) error {
	return GetDB(ctx, r.db).WithContext(ctx).Create(toPostModel(post)).Error
}

// GetPost gets a post by ID
func (r *ContentRepository) GetPost(ctx context.Context, id uuid.UUID) (*entities.Post, error) {
	var m models.Post
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toPostEntity(&m), nil
}

// ListPosts lists a sphere's posts, newest first
func (r *ContentRepository) ListPosts(ctx context.Context, sphereID uuid.UUID, limit, offset int) ([]*entities.Post, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Post{}).Where("sphere_id = ?", sphereID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var rows []models.Post
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	posts := make([]*entities.Post, len(rows))
	for i := range rows {
		posts[i] = toPostEntity(&rows[i])
	}
	return posts, total, nil
}

// AdjustPostVotes moves the derived vote counters on a post
func (r *ContentRepository) AdjustPostVotes(ctx context.Context, id uuid.UUID, upDelta, downDelta int) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"upvotes":    gorm.Expr("upvotes + ?", upDelta),
			"downvotes":  gorm.Expr("downvotes + ?", downDelta),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// AdjustCommentCount moves the derived live-comment counter on a post
func (r *ContentRepository) AdjustCommentCount(ctx context.Context, postID uuid.UUID, delta int) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Post{}).Where("id = ?", postID).
		Updates(map[string]interface{}{
			"comment_count": gorm.Expr("comment_count + ?", delta),
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

// CreateComment creates a new comment
func (r *ContentRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	return GetDB(ctx, r.db).WithContext(ctx).Create(toCommentModel(comment)).Error
}

// GetComment gets a comment by ID
func (r *ContentRepository) GetComment(ctx context.Context, id uuid.UUID) (*entities.Comment, error) {
	var m models.Comment
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toCommentEntity(&m), nil
}

// ListComments lists a post's live comments in chronological order
func (r *ContentRepository) ListComments(ctx context.Context, postID uuid.UUID) ([]*entities.Comment, error) {
	var rows []models.Comment
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("post_id = ? AND is_deleted = ?", postID, false).
		Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	comments := make([]*entities.Comment, len(rows))
	for i := range rows {
		comments[i] = toCommentEntity(&rows[i])
	}
	return comments, nil
}

// AdjustCommentVotes moves the derived vote counters on a comment
func (r *ContentRepository) AdjustCommentVotes(ctx context.Context, id uuid.UUID, upDelta, downDelta int) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Comment{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"upvotes":    gorm.Expr("upvotes + ?", upDelta),
			"downvotes":  gorm.Expr("downvotes + ?", downDelta),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SoftDeleteComment marks a comment deleted; the post's comment_count must be
// adjusted in the same UnitOfWork by the caller.
func (r *ContentRepository) SoftDeleteComment(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Comment{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{"is_deleted": true, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toPostModel(p *entities.Post) *models.Post {
	return &models.Post{
		ID:           p.ID,
		SphereID:     p.SphereID,
		UserID:       p.UserID,
		Content:      p.Content,
		MediaURLs:    p.MediaURLs,
		IsPremium:    p.IsPremium,
		PremiumCost:  p.PremiumCost,
		IPFSHash:     p.IPFSHash,
		Upvotes:      p.Upvotes,
		Downvotes:    p.Downvotes,
		CommentCount: p.CommentCount,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toPostEntity(m *models.Post) *entities.Post {
	return &entities.Post{
		ID:           m.ID,
		SphereID:     m.SphereID,
		UserID:       m.UserID,
		Content:      m.Content,
		MediaURLs:    m.MediaURLs,
		IsPremium:    m.IsPremium,
		PremiumCost:  m.PremiumCost,
		IPFSHash:     m.IPFSHash,
		Upvotes:      m.Upvotes,
		Downvotes:    m.Downvotes,
		CommentCount: m.CommentCount,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toCommentModel(c *entities.Comment) *models.Comment {
	return &models.Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Content:   c.Content,
		IPFSHash:  c.IPFSHash,
		Upvotes:   c.Upvotes,
		Downvotes: c.Downvotes,
		IsDeleted: c.IsDeleted,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCommentEntity(m *models.Comment) *entities.Comment {
	return &entities.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		UserID:    m.UserID,
		Content:   m.Content,
		IPFSHash:  m.IPFSHash,
		Upvotes:   m.Upvotes,
		Downvotes: m.Downvotes,
		IsDeleted: m.IsDeleted,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
