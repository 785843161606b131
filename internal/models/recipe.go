package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Moderation status values. A freshly submitted recipe is pending and stays
// invisible to the public listing until approved.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

type Recipe struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	KitchenID     uint           `gorm:"not null" json:"kitchen_id"`
	CategoryID    uint           `gorm:"not null" json:"category_id"`
	UserID        uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	CookingTime   int            `gorm:"not null" json:"cooking_time"`
	CookingMethod string         `gorm:"type:text;not null" json:"cooking_method"`
	Portion       int            `gorm:"not null;default:1" json:"portion"`
	Weight        string         `gorm:"size:32;not null" json:"weight"`
	Rating        float64        `gorm:"not null;default:0" json:"rating"`
	Status        string         `gorm:"size:20;not null;default:'pending'" json:"status"`
	Image         []byte         `gorm:"type:bytea" json:"-"`
	ImageURL      string         `gorm:"size:255" json:"image_url,omitempty"`
	LikeCount     int            `gorm:"not null;default:0" json:"like_count"`

	Kitchen     Kitchen            `gorm:"foreignKey:KitchenID" json:"kitchen,omitempty"`
	Category    Category           `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	User        User               `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Ingredients []RecipeIngredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
}

// RecipeIngredient is the join row between a recipe and an ingredient,
// carrying amount and measure as edge attributes.
type RecipeIngredient struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	RecipeID     uint   `gorm:"not null;index" json:"recipe_id"`
	IngredientID uint   `gorm:"not null" json:"ingredient_id"`
	Amount       string `gorm:"size:32" json:"amount"`
	MeasureID    uint   `gorm:"not null" json:"measure_id"`

	Ingredient Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
	Measure    Measure    `gorm:"foreignKey:MeasureID" json:"measure,omitempty"`
}
