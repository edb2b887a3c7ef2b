package db_models

import (
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

func (s PostStatus) Valid() bool {
	return s == PostStatusDraft || s == PostStatusPublished
}

type Post struct {
	BaseModel
	Title   string `gorm:"not null"`
	Content string `gorm:"type:text"`

	// Excerpt and WordCount are derived from Content on every write,
	// not independently settable.
	Excerpt   string
	WordCount int

	Status PostStatus `gorm:"type:varchar(16);default:draft;index"`
	Likes  int        `gorm:"default:0"`

	// AuthorID never changes after creation.
	AuthorID uuid.UUID `gorm:"type:uuid;index"`
	Author   User      `gorm:"foreignKey:AuthorID"`

	// Filled best-effort after writes; NULL rows are simply not ranked
	// by semantic search.
	Embedding *pgvector.Vector `gorm:"type:vector(1536)"`

	Collections []Collection `gorm:"many2many:collection_posts"`
}
