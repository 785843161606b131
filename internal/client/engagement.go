package client

import (
	"context"
	"fmt"
	"time"
)

func recipePath(id uint) string {
	return fmt.Sprintf("/recipes/%d", id)
}

// LikeState is the locally held like state of one recipe.
type LikeState struct {
	Liked bool
	Count int
}

type likeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

// ToggleLike flips the like optimistically: the local state changes before
// the request goes out, so the UI reacts immediately. When the server
// answers, its state wins; when the request fails, the flip is rolled back.
func (c *Client) ToggleLike(ctx context.Context, recipeID uint, state *LikeState) error {
	prev := *state
	if state.Liked {
		state.Liked = false
		state.Count--
	} else {
		state.Liked = true
		state.Count++
	}

	var resp likeResponse
	err := c.postJSON(ctx, "/like", map[string]interface{}{
		"userId":   c.userID,
		"recipeId": recipeID,
	}, &resp)
	if err != nil {
		*state = prev
		return err
	}

	state.Liked = resp.Liked
	state.Count = resp.LikeCount
	return nil
}

// Comment is one recipe comment as served by the API.
type Comment struct {
	ID        uint      `json:"id"`
	RecipeID  uint      `json:"recipe_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Comments fetches a recipe's comments, oldest first.
func (c *Client) Comments(ctx context.Context, recipeID uint) ([]Comment, error) {
	var comments []Comment
	if err := c.get(ctx, recipePath(recipeID)+"/comments", nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// AddComment posts a new comment on a recipe.
func (c *Client) AddComment(ctx context.Context, recipeID uint, text string) (*Comment, error) {
	var comment Comment
	err := c.postJSON(ctx, recipePath(recipeID)+"/comments", map[string]string{"text": text}, &comment)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateComment rewrites one of the caller's comments.
func (c *Client) UpdateComment(ctx context.Context, commentID uint, text string) (*Comment, error) {
	var comment Comment
	err := c.postJSON(ctx, "/recipes/updateComment", map[string]interface{}{
		"comment_id": commentID,
		"text":       text,
	}, &comment)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes one of the caller's comments.
func (c *Client) DeleteComment(ctx context.Context, commentID uint) error {
	return c.postJSON(ctx, "/recipes/deleteComment", map[string]uint{"comment_id": commentID}, nil)
}

// ReportComment files a moderation report against any comment.
func (c *Client) ReportComment(ctx context.Context, commentID, recipeID uint, reason string) error {
	return c.postJSON(ctx, "/recipes/reportComment", map[string]interface{}{
		"comment_id": commentID,
		"recipe_id":  recipeID,
		"reason":     reason,
	}, nil)
}
