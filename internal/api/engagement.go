package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/platepost/backend/internal/service"
)

// EngagementHandler handles likes, comments and comment reports.
type EngagementHandler struct {
	engagement *service.EngagementService
}

func NewEngagementHandler(engagement *service.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagement: engagement}
}

// likeRequest still carries userId for wire compatibility with the existing
// client, but the authenticated token decides whose like is toggled.
type likeRequest struct {
	UserID   string `json:"userId"`
	RecipeID uint   `json:"recipeId"`
}

type commentRequest struct {
	Text string `json:"text"`
}

type commentRefRequest struct {
	CommentID uint   `json:"comment_id"`
	Text      string `json:"text,omitempty"`
}

type reportRequest struct {
	CommentID uint   `json:"comment_id"`
	RecipeID  uint   `json:"recipe_id"`
	Reason    string `json:"reason"`
}

// ToggleLike flips the caller's like on a recipe and returns the resulting
// state together with the fresh counter.
func (h *EngagementHandler) ToggleLike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RecipeID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipeId is required"})
		return
	}

	liked, likeCount, err := h.engagement.ToggleLike(c.Request.Context(), userID, req.RecipeID)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle like"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"liked":      liked,
		"like_count": likeCount,
	})
}

// ListComments returns a recipe's comments, oldest first.
func (h *EngagementHandler) ListComments(c *gin.Context) {
	recipeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	comments, err := h.engagement.ListComments(c.Request.Context(), uint(recipeID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load comments"})
		return
	}

	out := make([]CommentResponse, len(comments))
	for i := range comments {
		out[i] = toCommentResponse(&comments[i])
	}
	c.JSON(http.StatusOK, out)
}

// AddComment appends the caller's comment to a recipe.
func (h *EngagementHandler) AddComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	recipeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"errors": gin.H{"text": "Comment text is required."},
		})
		return
	}

	comment, err := h.engagement.AddComment(c.Request.Context(), userID, uint(recipeID), req.Text)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add comment"})
		return
	}
	c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// UpdateComment rewrites one of the caller's comments.
func (h *EngagementHandler) UpdateComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req commentRefRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CommentID == 0 || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "comment_id and text are required"})
		return
	}

	comment, err := h.engagement.UpdateComment(c.Request.Context(), userID, req.CommentID, req.Text)
	if err != nil {
		h.commentError(c, err, "failed to update comment")
		return
	}
	c.JSON(http.StatusOK, toCommentResponse(comment))
}

// DeleteComment removes one of the caller's comments.
func (h *EngagementHandler) DeleteComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req commentRefRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CommentID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "comment_id is required"})
		return
	}

	if err := h.engagement.DeleteComment(c.Request.Context(), userID, req.CommentID); err != nil {
		h.commentError(c, err, "failed to delete comment")
		return
	}
	c.Status(http.StatusNoContent)
}

// ReportComment files a moderation report against a comment.
func (h *EngagementHandler) ReportComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CommentID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "comment_id is required"})
		return
	}

	report, err := h.engagement.ReportComment(c.Request.Context(), userID, req.CommentID, req.RecipeID, req.Reason)
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to report comment"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": report.ID})
}

func (h *EngagementHandler) commentError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
	case errors.Is(err, service.ErrNotCommentOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "comment belongs to another user"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
