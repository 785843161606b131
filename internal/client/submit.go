package client

import (
	"context"
	"net/http"

	"github.com/platepost/backend/internal/draft"
)

// SubmittedRecipe is the server's view of a freshly created recipe.
type SubmittedRecipe struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// SubmitRecipe validates the draft, encodes it and posts it in one request.
// An invalid draft fails locally with a *draft.ValidationError and nothing
// goes over the wire. On success the draft is reset for the next recipe.
func (c *Client) SubmitRecipe(ctx context.Context, d *draft.Draft, userID string) (*SubmittedRecipe, error) {
	if err := draft.Validate(d); err != nil {
		return nil, err
	}

	payload, err := draft.Encode(d, userID)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/recipes", payload.Body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", payload.ContentType)

	var created SubmittedRecipe
	if err := c.do(req, &created); err != nil {
		return nil, err
	}

	d.Reset()
	return &created, nil
}
