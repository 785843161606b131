package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platepost/backend/internal/models"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("comment belongs to another user")
)

// EngagementService records likes and comments against published recipes.
type EngagementService struct {
	db *gorm.DB
}

func NewEngagementService(db *gorm.DB) *EngagementService {
	return &EngagementService{db: db}
}

// ToggleLike flips the like state of (user, recipe) and keeps the recipe's
// denormalized like_count in step, all in one transaction. It returns the
// resulting state.
func (s *EngagementService) ToggleLike(ctx context.Context, userID uuid.UUID, recipeID uint) (liked bool, likeCount int, err error) {
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.First(&recipe, "id = ?", recipeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecipeNotFound
			}
			return err
		}

		var like models.Like
		findErr := tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).First(&like).Error
		switch {
		case findErr == nil:
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			liked = false
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			like = models.Like{UserID: userID, RecipeID: recipeID}
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			liked = true
		default:
			return findErr
		}

		delta := -1
		if liked {
			delta = 1
		}
		if err := tx.Model(&models.Recipe{}).Where("id = ?", recipeID).
			Update("like_count", gorm.Expr("like_count + ?", delta)).Error; err != nil {
			return err
		}

		// Report the stored counter, not one derived from the row as it
		// looked before concurrent toggles committed.
		var updated models.Recipe
		if err := tx.Select("like_count").First(&updated, "id = ?", recipeID).Error; err != nil {
			return err
		}
		likeCount = updated.LikeCount
		return nil
	})
	return liked, likeCount, err
}

// ListComments returns the comments of a recipe, oldest first, with authors
// preloaded.
func (s *EngagementService) ListComments(ctx context.Context, recipeID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("recipe_id = ?", recipeID).
		Order("created_at").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// AddComment appends a comment to a recipe.
func (s *EngagementService) AddComment(ctx context.Context, userID uuid.UUID, recipeID uint, text string) (*models.Comment, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	comment := models.Comment{
		UserID:   userID,
		RecipeID: recipeID,
		Text:     text,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateComment rewrites a comment's text. Only the owner may edit.
func (s *EngagementService) UpdateComment(ctx context.Context, userID uuid.UUID, commentID uint, text string) (*models.Comment, error) {
	comment, err := s.ownedComment(ctx, userID, commentID)
	if err != nil {
		return nil, err
	}
	comment.Text = text
	if err := s.db.WithContext(ctx).Save(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment. Only the owner may delete.
func (s *EngagementService) DeleteComment(ctx context.Context, userID uuid.UUID, commentID uint) error {
	comment, err := s.ownedComment(ctx, userID, commentID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(comment).Error
}

// ReportComment files an append-only report against a comment. Anyone may
// report any comment, including their own.
func (s *EngagementService) ReportComment(ctx context.Context, userID uuid.UUID, commentID, recipeID uint, reason string) (*models.CommentReport, error) {
	var comment models.Comment
	if err := s.db.WithContext(ctx).First(&comment, "id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	report := models.CommentReport{
		UserID:    userID,
		CommentID: commentID,
		RecipeID:  recipeID,
		Reason:    reason,
	}
	if err := s.db.WithContext(ctx).Create(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *EngagementService) ownedComment(ctx context.Context, userID uuid.UUID, commentID uint) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.WithContext(ctx).First(&comment, "id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if comment.UserID != userID {
		return nil, ErrNotCommentOwner
	}
	return &comment, nil
}
