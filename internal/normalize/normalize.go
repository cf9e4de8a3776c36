// Package normalize turns raw retailer feeds into Canonical Product
// Records: it reconciles each feed's column names, parses its price
// encoding, stamps retailer/category metadata, runs the attribute
// extractor over the title, and projects onto the canonical schema.
package normalize

import (
	"strconv"
	"strings"

	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/config"
	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/extract"
	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/feeds"
	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/models"
	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/parse"
)

// Feed normalizes one raw feed into canonical records, driven entirely
// by the feed descriptor. A missing product-name column is a
// SchemaError; everything else degrades to nil fields.
func Feed(spec config.FeedConfig, columns []string, rows []feeds.Row) ([]models.Product, error) {
	nameCol, err := productNameColumn(spec.Name, columns)
	if err != nil {
		return nil, err
	}

	urlCol, hasURL := findColumn(columns, urlCandidates)
	imgCandidates := imageCandidates
	if len(spec.ImageColumns) > 0 {
		imgCandidates = spec.ImageColumns
	}
	imgCol, hasImg := findColumn(columns, imgCandidates)

	priceCol := spec.PriceColumn
	if priceCol == "" {
		priceCol = "price"
	}

	records := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		p := models.Product{
			Retailer:    spec.Retailer,
			Category:    spec.Category,
			ProductName: strings.TrimSpace(cellString(row[nameCol])),
		}

		if hasURL {
			p.URL = optString(row[urlCol])
		}
		if hasImg {
			p.ImageURL = optString(row[imgCol])
		}

		if spec.PriceMode == "combined" {
			p.Price, p.Discount = parse.PriceAndDiscount(cellString(row[priceCol]))
		} else {
			p.Price = parse.Price(cellString(row[priceCol]))
			if spec.MRPColumn != "" {
				p.MRP = parse.Price(cellString(row[spec.MRPColumn]))
			}
			if spec.DiscountColumn != "" {
				p.Discount = parse.Discount(cellString(row[spec.DiscountColumn]))
			}
		}

		if spec.RatingColumn != "" {
			p.Rating = parse.Number(row[spec.RatingColumn])
		}
		if spec.ReviewsColumn != "" {
			p.Reviews = parse.Integer(row[spec.ReviewsColumn])
		}
		if spec.OfferColumn != "" {
			p.Offer = optString(row[spec.OfferColumn])
		}
		if spec.DeliveryColumn != "" {
			p.Delivery = optString(row[spec.DeliveryColumn])
		}

		attrs := extract.Extract(p.ProductName)
		p.Brand = attrs.Brand
		p.Model = attrs.Model
		p.Storage = attrs.Storage
		p.RAM = attrs.RAM
		p.Color = attrs.Color
		p.Processor = attrs.Processor
		p.ScreenSize = attrs.ScreenSize
		p.OS = attrs.OS
		p.Variants = attrs.Variants

		records = append(records, p)
	}
	return records, nil
}

// cellString renders a raw cell the way it would read in the source
// file. Integral floats from JSON lose the trailing ".0" noise.
func cellString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func optString(value any) *string {
	s := strings.TrimSpace(cellString(value))
	if s == "" {
		return nil
	}
	return &s
}
