package db_models

import "github.com/google/uuid"

type Collection struct {
	BaseModel
	Name        string `gorm:"not null"`
	Description string

	UserID uuid.UUID `gorm:"type:uuid;index"`
	User   User      `gorm:"foreignKey:UserID"`

	// Membership is a reference, not ownership: deleting a collection
	// leaves its posts untouched.
	Posts []Post `gorm:"many2many:collection_posts"`
}
