package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platepost/backend/internal/models"
	"github.com/platepost/backend/internal/types"
)

var ErrRecipeNotFound = errors.New("recipe not found")

// CreateRecipeInput carries the decoded multipart submission.
type CreateRecipeInput struct {
	Name          string
	KitchenID     uint
	CategoryID    uint
	UserID        uuid.UUID
	CookingTime   int
	CookingMethod string
	Portion       int
	Weight        string
	Image         []byte
	ImageURL      string
	Lines         []types.IngredientLine
}

// RecipeService persists submitted recipes and serves them back with their
// ingredient associations and like state.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// Create stores the recipe and one join row per ingredient triple in a
// single transaction. New recipes start pending with a zero rating.
func (s *RecipeService) Create(ctx context.Context, input CreateRecipeInput) (*models.Recipe, error) {
	recipe := models.Recipe{
		Name:          input.Name,
		KitchenID:     input.KitchenID,
		CategoryID:    input.CategoryID,
		UserID:        input.UserID,
		CookingTime:   input.CookingTime,
		CookingMethod: input.CookingMethod,
		Portion:       input.Portion,
		Weight:        input.Weight,
		Rating:        0,
		Status:        models.StatusPending,
		Image:         input.Image,
		ImageURL:      input.ImageURL,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}
		for _, line := range input.Lines {
			row := models.RecipeIngredient{
				RecipeID:     recipe.ID,
				IngredientID: line.IngredientID,
				Amount:       line.Amount,
				MeasureID:    line.Measure,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, recipe.ID)
}

// Get returns one recipe with its ingredients, author and catalogs preloaded.
func (s *RecipeService) Get(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		Preload("Ingredients.Measure").
		Preload("Kitchen").
		Preload("Category").
		Preload("User").
		First(&recipe, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// List returns approved recipes, optionally filtered by a case-insensitive
// title substring. Pending recipes stay private until moderation approves
// them.
func (s *RecipeService) List(ctx context.Context, title string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	q := s.db.WithContext(ctx).
		Preload("Kitchen").
		Preload("Category").
		Where("status = ?", models.StatusApproved)
	if title != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(title)+"%")
	}
	if err := q.Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// LikedUserIDs returns the ids of users who liked the recipe, for the
// client's membership check next to the denormalized counter.
func (s *RecipeService) LikedUserIDs(ctx context.Context, recipeID uint) ([]uuid.UUID, error) {
	var likes []models.Like
	if err := s.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Find(&likes).Error; err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(likes))
	for i, l := range likes {
		ids[i] = l.UserID
	}
	return ids, nil
}
