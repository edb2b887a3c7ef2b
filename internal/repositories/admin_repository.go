package repositories

import (
	"context"

	"gorm.io/gorm"

	"inkwell/internal/models/db_models"
)

type UserWithPostCount struct {
	db_models.User
	PostCount int64
}

type AdminRepository interface {
	ListUsersWithPostCount(ctx context.Context) ([]UserWithPostCount, error)
	CountUsers(ctx context.Context) (int64, error)
	CountUsersBySubscription(ctx context.Context, sub db_models.Subscription) (int64, error)
	CountPosts(ctx context.Context) (int64, error)
	CountPostsCreatedSince(ctx context.Context, since int64) (int64, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{
		db: db,
	}
}

func (r *adminRepository) ListUsersWithPostCount(ctx context.Context) ([]UserWithPostCount, error) {
	var rows []UserWithPostCount
	err := r.db.WithContext(ctx).Model(&db_models.User{}).
		Select("users.*, (SELECT count(*) FROM posts WHERE posts.author_id = users.id AND posts.deleted_at IS NULL) AS post_count").
		Order("users.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *adminRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.User{}).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountUsersBySubscription(ctx context.Context, sub db_models.Subscription) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.User{}).
		Where("subscription = ?", sub).
		Count(&count).Error
	return count, err
}

func (r *adminRepository) CountPosts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Post{}).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountPostsCreatedSince(ctx context.Context, since int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Post{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}
