// Package catalog is the read side: it loads the persisted catalog,
// applies the serve-time pre-filter, then filters, sorts and paginates
// per request. The stored catalog is never mutated; every
// request-visible transformation happens on copies.
package catalog

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/cache"
	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/models"
	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/store"
)

const defaultLimit = 30

// QueryParams is the full filter/sort/pagination surface. Pointer
// fields distinguish "absent" from a zero bound.
type QueryParams struct {
	Page      int
	Limit     int
	Search    string
	Store     string
	Category  string
	Brand     string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	SortBy    string
}

type Pagination struct {
	Page          int  `json:"page"`
	Limit         int  `json:"limit"`
	TotalProducts int  `json:"total_products"`
	TotalPages    int  `json:"total_pages"`
	HasNext       bool `json:"has_next"`
	HasPrev       bool `json:"has_prev"`
}

type Engine struct {
	store  store.Store
	cache  *cache.Cache
	logger *slog.Logger
}

func NewEngine(st store.Store, c *cache.Cache, logger *slog.Logger) *Engine {
	return &Engine{store: st, cache: c, logger: logger}
}

// Query returns one page of presentation records plus pagination
// metadata. Out-of-range pages yield an empty page, not an error.
func (e *Engine) Query(ctx context.Context, params QueryParams) ([]map[string]any, Pagination, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = defaultLimit
	}

	serve, err := e.snapshot(ctx)
	if err != nil {
		return nil, Pagination{}, err
	}

	matched := applyFilters(serve, params)
	sortRecords(matched, params.SortBy)

	total := len(matched)
	totalPages := (total + params.Limit - 1) / params.Limit

	start := (params.Page - 1) * params.Limit
	end := start + params.Limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	page := make([]map[string]any, 0, end-start)
	for _, p := range matched[start:end] {
		page = append(page, Present(p))
	}

	return page, Pagination{
		Page:          params.Page,
		Limit:         params.Limit,
		TotalProducts: total,
		TotalPages:    totalPages,
		HasNext:       params.Page < totalPages,
		HasPrev:       params.Page > 1,
	}, nil
}

// snapshot loads the serveable catalog, reusing a cached copy as long
// as the store version is unchanged. A catalog replacement changes the
// version, so the next request builds a fresh snapshot.
func (e *Engine) snapshot(ctx context.Context) ([]models.Product, error) {
	version, err := e.store.Version(ctx)
	if err != nil {
		return nil, err
	}

	key := "catalog:" + version
	if cached, ok := e.cache.GetValue(key); ok {
		return cached.([]models.Product), nil
	}

	catalog, err := e.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	serve := prefilter(catalog)

	e.cache.DeleteByPrefix("catalog:")
	e.cache.Set(key, serve)
	e.logger.Debug("catalog snapshot loaded", "version", version, "records", len(serve), "raw", len(catalog))
	return serve, nil
}

// prefilter drops records that cannot be served: unknown categories,
// unnamed listings, missing or non-positive prices, missing images.
func prefilter(catalog []models.Product) []models.Product {
	serve := make([]models.Product, 0, len(catalog))
	for _, p := range catalog {
		if !servedCategory(p.Category) {
			continue
		}
		if strings.TrimSpace(p.ProductName) == "" {
			continue
		}
		if p.Price == nil || *p.Price <= 0 {
			continue
		}
		if p.ImageURL == nil || strings.TrimSpace(*p.ImageURL) == "" {
			continue
		}
		serve = append(serve, p)
	}
	return serve
}

func servedCategory(category string) bool {
	for _, c := range models.Categories {
		if category == c {
			return true
		}
	}
	return false
}

// applyFilters AND-combines every present filter. Substring filters are
// case-insensitive; the store filter is an exact (case-insensitive)
// retailer match.
func applyFilters(serve []models.Product, params QueryParams) []models.Product {
	search := strings.ToLower(params.Search)
	category := strings.ToLower(params.Category)
	brand := strings.ToLower(params.Brand)

	matched := make([]models.Product, 0, len(serve))
	for _, p := range serve {
		if search != "" && !strings.Contains(strings.ToLower(p.ProductName), search) {
			continue
		}
		if params.Store != "" && !strings.EqualFold(p.Retailer, params.Store) {
			continue
		}
		if category != "" && !strings.Contains(strings.ToLower(p.Category), category) {
			continue
		}
		if brand != "" && (p.Brand == nil || !strings.Contains(strings.ToLower(*p.Brand), brand)) {
			continue
		}
		if params.MinPrice != nil && *p.Price < *params.MinPrice {
			continue
		}
		if params.MaxPrice != nil && *p.Price > *params.MaxPrice {
			continue
		}
		if params.MinRating != nil && (p.Rating == nil || *p.Rating < *params.MinRating) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// sortRecords sorts in place, stably, by a single key. Records with a
// nil sort field go last, keeping catalog order among themselves. An
// unrecognized key leaves catalog order untouched.
func sortRecords(matched []models.Product, sortBy string) {
	switch sortBy {
	case "price_asc":
		sort.SliceStable(matched, func(i, j int) bool {
			return *matched[i].Price < *matched[j].Price
		})
	case "price_desc":
		sort.SliceStable(matched, func(i, j int) bool {
			return *matched[i].Price > *matched[j].Price
		})
	case "rating_desc":
		sort.SliceStable(matched, func(i, j int) bool {
			return descNullsLast(matched[i].Rating, matched[j].Rating)
		})
	case "discount_desc":
		sort.SliceStable(matched, func(i, j int) bool {
			return descNullsLast(matched[i].Discount, matched[j].Discount)
		})
	case "name_asc":
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].ProductName < matched[j].ProductName
		})
	}
}

func descNullsLast(a, b *float64) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return *a > *b
}
