package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"inkwell/internal/models/db_models"
)

type ListPostsFilter struct {
	Status   string
	AuthorID string
	Limit    int
	Page     int
}

type PostRepository interface {
	Insert(ctx context.Context, post *db_models.Post) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Post, error)
	List(ctx context.Context, filter ListPostsFilter) ([]db_models.Post, int64, error)
	Update(ctx context.Context, post *db_models.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementLikes(ctx context.Context, id uuid.UUID) (*db_models.Post, error)
	UpdateEmbedding(ctx context.Context, id uuid.UUID, vector pgvector.Vector) error
	SearchByEmbedding(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{
		db: db,
	}
}

func (r *postRepository) Insert(ctx context.Context, post *db_models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Post, error) {
	var post db_models.Post
	err := r.db.WithContext(ctx).Preload("Author").First(&post, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &post, nil
}

func (r *postRepository) List(ctx context.Context, filter ListPostsFilter) ([]db_models.Post, int64, error) {
	query := r.db.WithContext(ctx).Model(&db_models.Post{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.AuthorID != "" {
		query = query.Where("author_id = ?", filter.AuthorID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	var posts []db_models.Post
	err := query.Preload("Author").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *postRepository) Update(ctx context.Context, post *db_models.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Post{}, "id = ?", id).Error
}

// IncrementLikes is an unconditional counter bump; repeated likes by the
// same caller are allowed.
func (r *postRepository) IncrementLikes(ctx context.Context, id uuid.UUID) (*db_models.Post, error) {
	res := r.db.WithContext(ctx).Model(&db_models.Post{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindById(ctx, id)
}

func (r *postRepository) UpdateEmbedding(ctx context.Context, id uuid.UUID, vector pgvector.Vector) error {
	return r.db.WithContext(ctx).Model(&db_models.Post{}).
		Where("id = ?", id).
		UpdateColumn("embedding", vector).Error
}

func (r *postRepository) SearchByEmbedding(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.Post, error) {
	if limit <= 0 {
		limit = 10
	}

	var posts []db_models.Post
	err := r.db.WithContext(ctx).Raw(`
        SELECT * FROM posts
        WHERE embedding IS NOT NULL
          AND status = 'published'
          AND deleted_at IS NULL
        ORDER BY embedding <=> $1
        LIMIT $2
    `, vector.String(), limit).Scan(&posts).Error
	if err != nil {
		return nil, err
	}

	return posts, nil
}
