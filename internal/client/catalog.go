package client

import (
	"context"
	"net/url"
	"sync"

	"github.com/platepost/backend/internal/draft"
)

// Kitchens fetches the kitchen option list.
func (c *Client) Kitchens(ctx context.Context) ([]draft.Option, error) {
	var options []draft.Option
	if err := c.get(ctx, "/kitchen", nil, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// Categories fetches the category option list.
func (c *Client) Categories(ctx context.Context) ([]draft.Option, error) {
	var options []draft.Option
	if err := c.get(ctx, "/category", nil, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// Measures fetches the measurement unit option list.
func (c *Client) Measures(ctx context.Context) ([]draft.Option, error) {
	var options []draft.Option
	if err := c.get(ctx, "/measure", nil, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// SearchIngredients fetches ingredients matching the query. An empty query
// returns the full list.
func (c *Client) SearchIngredients(ctx context.Context, query string) ([]draft.Option, error) {
	q := url.Values{}
	if query != "" {
		q.Set("title", query)
	}
	var options []draft.Option
	if err := c.get(ctx, "/ingredients", q, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// IngredientSearcher serializes a stream of ingredient searches so that only
// the newest query's results win. Every keystroke may issue a search; a slow
// response for an old query must never overwrite the results of a newer one.
type IngredientSearcher struct {
	client *Client

	mu  sync.Mutex
	seq uint64
}

func NewIngredientSearcher(client *Client) *IngredientSearcher {
	return &IngredientSearcher{client: client}
}

// Search runs one query. The latest return value reports whether this call
// was still the newest when its response arrived; stale results come back
// with latest=false and must be discarded by the caller.
func (s *IngredientSearcher) Search(ctx context.Context, query string) (options []draft.Option, latest bool, err error) {
	s.mu.Lock()
	s.seq++
	id := s.seq
	s.mu.Unlock()

	options, err = s.client.SearchIngredients(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	if id != s.seq {
		return nil, false, nil
	}
	if err != nil {
		return nil, true, err
	}
	return options, true, nil
}
