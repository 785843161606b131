package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/platepost/backend/internal/service"
	"github.com/platepost/backend/internal/types"
)

// RecipeHandler accepts multipart recipe submissions and serves recipes back.
type RecipeHandler struct {
	recipes *service.RecipeService
	images  *service.ImageService
}

func NewRecipeHandler(recipes *service.RecipeService, images *service.ImageService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, images: images}
}

// Create decodes the multipart submission produced by the recipe form. The
// ingredients field carries a JSON array of {ingredient_id, amount, measure}
// triples; the photo arrives as the recipePicture file part. Field problems
// come back as a 422 with an errors map keyed by field name.
func (h *RecipeHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	fieldErrs := gin.H{}

	name := c.PostForm("recipeName")
	if name == "" {
		fieldErrs["recipeName"] = "Recipe name is required."
	}

	kitchenID, err := strconv.ParseUint(c.PostForm("kitchen"), 10, 32)
	if err != nil || kitchenID == 0 {
		fieldErrs["kitchen"] = "Kitchen is required."
	}
	categoryID, err := strconv.ParseUint(c.PostForm("category"), 10, 32)
	if err != nil || categoryID == 0 {
		fieldErrs["category"] = "Category is required."
	}

	cookingTime, err := strconv.Atoi(c.PostForm("cookingTime"))
	if err != nil || cookingTime <= 0 {
		fieldErrs["cookingTime"] = "Cooking time is required."
	}
	portion, err := strconv.Atoi(c.PostForm("portion"))
	if err != nil || portion < 1 {
		fieldErrs["portion"] = "Portion must be a positive number."
	}

	cookingMethod := c.PostForm("cookingMethod")
	if cookingMethod == "" {
		fieldErrs["cookingMethod"] = "Cooking steps are required."
	}
	weight := c.PostForm("weight")
	if weight == "" {
		fieldErrs["weight"] = "Weight is required."
	}

	var lines []types.IngredientLine
	if raw := c.PostForm("ingredients"); raw == "" {
		fieldErrs["ingredients"] = "Ingredients are required."
	} else if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		fieldErrs["ingredients"] = "Ingredients are malformed."
	} else if len(lines) == 0 {
		fieldErrs["ingredients"] = "Ingredients are required."
	}

	image, imageName, err := formFileBytes(c, "recipePicture")
	if err != nil {
		fieldErrs["recipePicture"] = "Recipe photo is required."
	}

	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}

	// S3 is optional; without it the blob stays in the database and the
	// URL is empty.
	imageURL, err := h.images.Store(c.Request.Context(), image, imageName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), service.CreateRecipeInput{
		Name:          name,
		KitchenID:     uint(kitchenID),
		CategoryID:    uint(categoryID),
		UserID:        userID,
		CookingTime:   cookingTime,
		CookingMethod: cookingMethod,
		Portion:       portion,
		Weight:        weight,
		Image:         image,
		ImageURL:      imageURL,
		Lines:         lines,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create recipe"})
		return
	}

	likedUserIDs, err := h.recipes.LikedUserIDs(c.Request.Context(), recipe.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load likes"})
		return
	}
	c.JSON(http.StatusCreated, toRecipeResponse(recipe, likedUserIDs))
}

// Get returns one recipe with its ingredient lines and like state.
func (h *RecipeHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recipe"})
		return
	}

	likedUserIDs, err := h.recipes.LikedUserIDs(c.Request.Context(), recipe.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load likes"})
		return
	}
	c.JSON(http.StatusOK, toRecipeResponse(recipe, likedUserIDs))
}

// List returns approved recipes, optionally filtered by title substring.
func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.recipes.List(c.Request.Context(), c.Query("title"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recipes"})
		return
	}

	out := make([]gin.H, len(recipes))
	for i := range recipes {
		r := &recipes[i]
		out[i] = gin.H{
			"id":           r.ID,
			"name":         r.Name,
			"kitchen":      r.Kitchen.Name,
			"category":     r.Category.Name,
			"cooking_time": r.CookingTime,
			"portion":      r.Portion,
			"rating":       r.Rating,
			"like_count":   r.LikeCount,
			"image_url":    r.ImageURL,
			"created_at":   r.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, out)
}

// currentUserID reads the authenticated user id stored by the auth
// middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// formFileBytes reads one uploaded file part fully into memory.
func formFileBytes(c *gin.Context, field string) ([]byte, string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return nil, "", err
	}
	f, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, file.Filename, nil
}
