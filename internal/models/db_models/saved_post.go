package db_models

import "github.com/google/uuid"

// SavedPost is the bookmark join row. At most one row exists per
// (user, post) pair; "save" toggles its existence.
type SavedPost struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_saved_posts_user_post"`
	PostID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_saved_posts_user_post"`

	User User `gorm:"foreignKey:UserID"`
	Post Post `gorm:"foreignKey:PostID"`
}
