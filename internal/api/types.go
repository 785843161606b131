package api

import (
	"encoding/base64"
	"time"

	"github.com/google/uuid"

	"github.com/platepost/backend/internal/models"
)

// UserResponse is the public view of a user. The profile picture travels
// base64-encoded inside the JSON body; the web client renders it straight
// into a data: URL.
type UserResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	Banned bool      `json:"banned"`
	Image  string    `json:"image,omitempty"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Banned: u.Banned,
		Image:  base64.StdEncoding.EncodeToString(u.Image),
	}
}

// IngredientLineResponse is one resolved ingredient line of a recipe.
type IngredientLineResponse struct {
	IngredientID uint   `json:"ingredient_id"`
	Ingredient   string `json:"ingredient"`
	Amount       string `json:"amount"`
	MeasureID    uint   `json:"measure_id"`
	Measure      string `json:"measure"`
}

// RecipeResponse is the full view of a recipe, with the image blob
// base64-encoded and the like state denormalized for the client.
type RecipeResponse struct {
	ID            uint                     `json:"id"`
	Name          string                   `json:"name"`
	Kitchen       string                   `json:"kitchen"`
	KitchenID     uint                     `json:"kitchen_id"`
	Category      string                   `json:"category"`
	CategoryID    uint                     `json:"category_id"`
	CookingTime   int                      `json:"cooking_time"`
	CookingMethod string                   `json:"cooking_method"`
	Portion       int                      `json:"portion"`
	Weight        string                   `json:"weight"`
	Rating        float64                  `json:"rating"`
	Status        string                   `json:"status"`
	RecipeImage   string                   `json:"recipe_image,omitempty"`
	ImageURL      string                   `json:"image_url,omitempty"`
	LikeCount     int                      `json:"like_count"`
	LikedUserIDs  []uuid.UUID              `json:"liked_user_ids"`
	Ingredients   []IngredientLineResponse `json:"ingredients"`
	UserID        uuid.UUID                `json:"user_id"`
	Author        string                   `json:"author"`
	AuthorImage   string                   `json:"author_image,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
}

func toRecipeResponse(r *models.Recipe, likedUserIDs []uuid.UUID) RecipeResponse {
	lines := make([]IngredientLineResponse, len(r.Ingredients))
	for i, ri := range r.Ingredients {
		lines[i] = IngredientLineResponse{
			IngredientID: ri.IngredientID,
			Ingredient:   ri.Ingredient.Name,
			Amount:       ri.Amount,
			MeasureID:    ri.MeasureID,
			Measure:      ri.Measure.Name,
		}
	}
	if likedUserIDs == nil {
		likedUserIDs = []uuid.UUID{}
	}
	return RecipeResponse{
		ID:            r.ID,
		Name:          r.Name,
		Kitchen:       r.Kitchen.Name,
		KitchenID:     r.KitchenID,
		Category:      r.Category.Name,
		CategoryID:    r.CategoryID,
		CookingTime:   r.CookingTime,
		CookingMethod: r.CookingMethod,
		Portion:       r.Portion,
		Weight:        r.Weight,
		Rating:        r.Rating,
		Status:        r.Status,
		RecipeImage:   base64.StdEncoding.EncodeToString(r.Image),
		ImageURL:      r.ImageURL,
		LikeCount:     r.LikeCount,
		LikedUserIDs:  likedUserIDs,
		Ingredients:   lines,
		UserID:        r.UserID,
		Author:        r.User.Name,
		AuthorImage:   base64.StdEncoding.EncodeToString(r.User.Image),
		CreatedAt:     r.CreatedAt,
	}
}

// CommentResponse is one comment with its author resolved.
type CommentResponse struct {
	ID        uint      `json:"id"`
	RecipeID  uint      `json:"recipe_id"`
	UserID    uuid.UUID `json:"user_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toCommentResponse(c *models.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		RecipeID:  c.RecipeID,
		UserID:    c.UserID,
		Author:    c.User.Name,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
