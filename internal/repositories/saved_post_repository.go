package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"inkwell/internal/models/db_models"
)

type SavedPostRepository interface {
	FindByUserAndPost(ctx context.Context, userID, postID uuid.UUID) (*db_models.SavedPost, error)
	Insert(ctx context.Context, saved *db_models.SavedPost) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListPostsSavedBy(ctx context.Context, userID uuid.UUID) ([]db_models.Post, error)
}

type savedPostRepository struct {
	db *gorm.DB
}

func NewSavedPostRepository(db *gorm.DB) SavedPostRepository {
	return &savedPostRepository{
		db: db,
	}
}

func (r *savedPostRepository) FindByUserAndPost(ctx context.Context, userID, postID uuid.UUID) (*db_models.SavedPost, error) {
	var saved db_models.SavedPost
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&saved).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &saved, nil
}

func (r *savedPostRepository) Insert(ctx context.Context, saved *db_models.SavedPost) error {
	return r.db.WithContext(ctx).Create(saved).Error
}

func (r *savedPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&db_models.SavedPost{}, "id = ?", id).Error
}

// ListPostsSavedBy returns the posts the user bookmarked, most recently
// saved first.
func (r *savedPostRepository) ListPostsSavedBy(ctx context.Context, userID uuid.UUID) ([]db_models.Post, error) {
	var posts []db_models.Post
	err := r.db.WithContext(ctx).
		Joins("JOIN saved_posts ON saved_posts.post_id = posts.id").
		Where("saved_posts.user_id = ? AND saved_posts.deleted_at IS NULL", userID).
		Order("saved_posts.created_at DESC").
		Preload("Author").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return posts, nil
}
