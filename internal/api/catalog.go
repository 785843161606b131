package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platepost/backend/internal/service"
)

// CatalogHandler serves the option lists backing the submission form.
type CatalogHandler struct {
	catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Kitchens returns every kitchen as a value/label pair.
func (h *CatalogHandler) Kitchens(c *gin.Context) {
	options, err := h.catalog.Kitchens(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load kitchens"})
		return
	}
	c.JSON(http.StatusOK, options)
}

// Categories returns every category as a value/label pair.
func (h *CatalogHandler) Categories(c *gin.Context) {
	options, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load categories"})
		return
	}
	c.JSON(http.StatusOK, options)
}

// Measures returns every measurement unit as a value/label pair.
func (h *CatalogHandler) Measures(c *gin.Context) {
	options, err := h.catalog.Measures(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load measures"})
		return
	}
	c.JSON(http.StatusOK, options)
}

// SearchIngredients filters ingredients by the title query parameter. An
// empty query returns the whole list.
func (h *CatalogHandler) SearchIngredients(c *gin.Context) {
	options, err := h.catalog.SearchIngredients(c.Request.Context(), c.Query("title"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search ingredients"})
		return
	}
	c.JSON(http.StatusOK, options)
}
