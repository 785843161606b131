package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like records that a user liked a recipe. The pair is unique; existence of
// the row is the liked state, and recipes carry a denormalized like_count.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_like_user_recipe" json:"user_id"`
	RecipeID  uint      `gorm:"not null;uniqueIndex:idx_like_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	RecipeID  uint           `gorm:"not null;index" json:"recipe_id"`
	Text      string         `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// CommentReport is append-only: reports are never edited or removed through
// the API, moderation handles them out of band.
type CommentReport struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null" json:"user_id"`
	CommentID uint      `gorm:"not null;index" json:"comment_id"`
	RecipeID  uint      `gorm:"not null" json:"recipe_id"`
	Reason    string    `gorm:"type:text;not null" json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}
