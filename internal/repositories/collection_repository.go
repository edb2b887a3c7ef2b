package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"inkwell/internal/models/db_models"
)

type CollectionWithCount struct {
	db_models.Collection
	PostCount int64
}

type CollectionRepository interface {
	Insert(ctx context.Context, collection *db_models.Collection) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Collection, error)
	FindByIdWithPosts(ctx context.Context, id uuid.UUID) (*db_models.Collection, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]CollectionWithCount, error)
	Update(ctx context.Context, collection *db_models.Collection) error
	Delete(ctx context.Context, collection *db_models.Collection) error
	HasPost(ctx context.Context, collectionID, postID uuid.UUID) (bool, error)
	AddPost(ctx context.Context, collection *db_models.Collection, post *db_models.Post) error
	RemovePost(ctx context.Context, collection *db_models.Collection, post *db_models.Post) error
}

type collectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{
		db: db,
	}
}

func (r *collectionRepository) Insert(ctx context.Context, collection *db_models.Collection) error {
	return r.db.WithContext(ctx).Create(collection).Error
}

func (r *collectionRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Collection, error) {
	var collection db_models.Collection
	err := r.db.WithContext(ctx).First(&collection, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &collection, nil
}

func (r *collectionRepository) FindByIdWithPosts(ctx context.Context, id uuid.UUID) (*db_models.Collection, error) {
	var collection db_models.Collection
	err := r.db.WithContext(ctx).
		Preload("Posts").
		Preload("Posts.Author").
		First(&collection, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &collection, nil
}

func (r *collectionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]CollectionWithCount, error) {
	var rows []CollectionWithCount
	err := r.db.WithContext(ctx).Model(&db_models.Collection{}).
		Select("collections.*, (SELECT count(*) FROM collection_posts WHERE collection_posts.collection_id = collections.id) AS post_count").
		Where("collections.user_id = ?", userID).
		Order("collections.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *collectionRepository) Update(ctx context.Context, collection *db_models.Collection) error {
	return r.db.WithContext(ctx).Save(collection).Error
}

// Delete removes the collection and its membership rows. Member posts
// are untouched; membership is a reference, not ownership.
func (r *collectionRepository) Delete(ctx context.Context, collection *db_models.Collection) error {
	if err := r.db.WithContext(ctx).Model(collection).Association("Posts").Clear(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(collection).Error
}

func (r *collectionRepository) HasPost(ctx context.Context, collectionID, postID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("collection_posts").
		Where("collection_id = ? AND post_id = ?", collectionID, postID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *collectionRepository) AddPost(ctx context.Context, collection *db_models.Collection, post *db_models.Post) error {
	return r.db.WithContext(ctx).Model(collection).Association("Posts").Append(post)
}

func (r *collectionRepository) RemovePost(ctx context.Context, collection *db_models.Collection, post *db_models.Post) error {
	return r.db.WithContext(ctx).Model(collection).Association("Posts").Delete(post)
}
