package catalog

import (
	"context"
	"sort"

	"github.com/montanaflynn/stats"
)

// Summary aggregates the serveable catalog: counts, the distinct
// store/category/brand sets and the price distribution.
type Summary struct {
	TotalProducts int            `json:"total_products"`
	Stores        []string       `json:"stores"`
	Categories    []string       `json:"categories"`
	Brands        []string       `json:"brands"`
	PriceRange    PriceRange     `json:"price_range"`
	StoreCounts   map[string]int `json:"store_counts"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// Stats computes the summary over the pre-filtered catalog, the same
// record set Query sees before any request filters apply.
func (e *Engine) Stats(ctx context.Context) (*Summary, error) {
	serve, err := e.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalProducts: len(serve),
		Stores:        []string{},
		Categories:    []string{},
		Brands:        []string{},
		StoreCounts:   make(map[string]int),
	}

	seenStore := make(map[string]bool)
	seenCategory := make(map[string]bool)
	seenBrand := make(map[string]bool)
	prices := make([]float64, 0, len(serve))

	for _, p := range serve {
		if !seenStore[p.Retailer] {
			seenStore[p.Retailer] = true
			summary.Stores = append(summary.Stores, p.Retailer)
		}
		if !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			summary.Categories = append(summary.Categories, p.Category)
		}
		if p.Brand != nil && !seenBrand[*p.Brand] {
			seenBrand[*p.Brand] = true
			summary.Brands = append(summary.Brands, *p.Brand)
		}
		summary.StoreCounts[p.Retailer]++
		prices = append(prices, *p.Price)
	}

	sort.Strings(summary.Brands)

	if len(prices) > 0 {
		// montanaflynn/stats only errors on empty input, which is
		// excluded here.
		summary.PriceRange.Min, _ = stats.Min(prices)
		summary.PriceRange.Max, _ = stats.Max(prices)
		summary.PriceRange.Avg, _ = stats.Mean(prices)
	}
	return summary, nil
}
