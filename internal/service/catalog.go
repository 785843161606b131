package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/platepost/backend/internal/models"
)

// catalogCacheTTL bounds how stale a cached option list may get. The lists
// change rarely, so an hour is plenty.
const catalogCacheTTL = time.Hour

// CatalogOption is one selectable entry of an option list, in the shape the
// form's select components consume.
type CatalogOption struct {
	Value uint   `json:"value"`
	Label string `json:"label"`
}

// CatalogService serves the read-only option catalogs backing the recipe
// submission form.
type CatalogService struct {
	db  *gorm.DB
	rdb *redis.Client
}

// NewCatalogService creates a CatalogService. The redis client is optional;
// without it every read goes to the database.
func NewCatalogService(db *gorm.DB, rdb *redis.Client) *CatalogService {
	return &CatalogService{db: db, rdb: rdb}
}

// Kitchens returns the kitchen option list.
func (s *CatalogService) Kitchens(ctx context.Context) ([]CatalogOption, error) {
	return s.cached(ctx, "kitchen", func() ([]CatalogOption, error) {
		var rows []models.Kitchen
		if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
			return nil, err
		}
		options := make([]CatalogOption, len(rows))
		for i, r := range rows {
			options[i] = CatalogOption{Value: r.ID, Label: r.Name}
		}
		return options, nil
	})
}

// Categories returns the category option list.
func (s *CatalogService) Categories(ctx context.Context) ([]CatalogOption, error) {
	return s.cached(ctx, "category", func() ([]CatalogOption, error) {
		var rows []models.Category
		if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
			return nil, err
		}
		options := make([]CatalogOption, len(rows))
		for i, r := range rows {
			options[i] = CatalogOption{Value: r.ID, Label: r.Name}
		}
		return options, nil
	})
}

// Measures returns the measurement unit option list, including the
// "To taste" sentinel.
func (s *CatalogService) Measures(ctx context.Context) ([]CatalogOption, error) {
	return s.cached(ctx, "measure", func() ([]CatalogOption, error) {
		var rows []models.Measure
		if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
			return nil, err
		}
		options := make([]CatalogOption, len(rows))
		for i, r := range rows {
			options[i] = CatalogOption{Value: r.ID, Label: r.Name}
		}
		return options, nil
	})
}

// SearchIngredients returns ingredients whose name contains the query,
// case-insensitive. An empty query returns the whole list, which is what the
// form shows before the user types.
func (s *CatalogService) SearchIngredients(ctx context.Context, query string) ([]CatalogOption, error) {
	var rows []models.Ingredient
	q := s.db.WithContext(ctx).Order("name")
	if query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	options := make([]CatalogOption, len(rows))
	for i, r := range rows {
		options[i] = CatalogOption{Value: r.ID, Label: r.Name}
	}
	return options, nil
}

// cached serves an option list from redis when possible, falling back to the
// loader and repopulating the cache. Cache failures only cost the round trip.
func (s *CatalogService) cached(ctx context.Context, name string, load func() ([]CatalogOption, error)) ([]CatalogOption, error) {
	key := fmt.Sprintf("catalog:%s", name)

	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, key).Bytes()
		if err == nil {
			var options []CatalogOption
			if err := json.Unmarshal(raw, &options); err == nil {
				return options, nil
			}
		}
	}

	options, err := load()
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		raw, err := json.Marshal(options)
		if err == nil {
			if err := s.rdb.Set(ctx, key, raw, catalogCacheTTL).Err(); err != nil {
				log.Printf("failed to cache %s options: %v", name, err)
			}
		}
	}
	return options, nil
}
