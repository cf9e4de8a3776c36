package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/catalog"
	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/store"
)

type ProductHandler struct {
	engine *catalog.Engine
	logger *slog.Logger
}

func NewProductHandler(engine *catalog.Engine, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{engine: engine, logger: logger}
}

// GetProducts serves the filtered, sorted, paginated catalog page.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))

	params := catalog.QueryParams{
		Page:      page,
		Limit:     limit,
		Search:    c.Query("search"),
		Store:     c.Query("store"),
		Category:  c.Query("category"),
		Brand:     c.Query("brand"),
		SortBy:    c.Query("sort_by"),
		MinPrice:  floatQuery(c, "min_price"),
		MaxPrice:  floatQuery(c, "max_price"),
		MinRating: floatQuery(c, "min_rating"),
	}

	products, pagination, err := h.engine.Query(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, store.ErrCatalogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product data file not found"})
			return
		}
		h.logger.Error("query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   products,
		"pagination": pagination,
	})
}

// GetStats serves aggregate catalog statistics.
func (h *ProductHandler) GetStats(c *gin.Context) {
	summary, err := h.engine.Stats(c.Request.Context())
	if err != nil {
		if errors.Is(err, store.ErrCatalogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product data file not found"})
			return
		}
		h.logger.Error("stats failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// floatQuery parses an optional float query parameter; absent or
// malformed values mean "no bound".
func floatQuery(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
