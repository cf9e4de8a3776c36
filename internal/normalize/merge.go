package normalize

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/config"
	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/feeds"
	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/models"
)

// FeedRecords is one feed's normalized output, tagged for merge
// diagnostics.
type FeedRecords struct {
	Feed    string
	Records []models.Product
}

// MergeError reports a feed whose record set does not conform to the
// canonical schema. It aborts the whole batch.
type MergeError struct {
	Feed   string
	Reason string
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("merge: feed %s: %s", e.Feed, e.Reason)
}

// Merge concatenates the per-feed record sets in feed order, preserving
// intra-feed row order. A record's identity is its position in the
// merged catalog; no new identity is assigned.
func Merge(sets []FeedRecords) ([]models.Product, error) {
	total := 0
	for _, set := range sets {
		for i, rec := range set.Records {
			if rec.Retailer == "" || rec.Category == "" {
				return nil, &MergeError{
					Feed:   set.Feed,
					Reason: fmt.Sprintf("record %d missing retailer/category stamp", i),
				}
			}
		}
		total += len(set.Records)
	}

	merged := make([]models.Product, 0, total)
	for _, set := range sets {
		merged = append(merged, set.Records...)
	}
	return merged, nil
}

// Run executes the batch phase: read every configured feed, normalize
// it, and merge the results. A SchemaError (or an unreadable file) is
// fatal to that feed only; the remaining feeds still contribute to the
// catalog.
func Run(cfg *config.Config, logger *slog.Logger) ([]models.Product, error) {
	sets := make([]FeedRecords, 0, len(cfg.Feeds))
	for _, spec := range cfg.Feeds {
		reader, err := feeds.ForFormat(spec.Format)
		if err != nil {
			logger.Error("skipping feed", "feed", spec.Name, "error", err)
			continue
		}

		path := filepath.Join(cfg.DataDir, spec.Path)
		columns, rows, err := reader.Read(path)
		if err != nil {
			logger.Error("skipping unreadable feed", "feed", spec.Name, "path", path, "error", err)
			continue
		}

		records, err := Feed(spec, columns, rows)
		if err != nil {
			logger.Error("skipping feed with broken schema", "feed", spec.Name, "error", err)
			continue
		}

		logger.Info("normalized feed", "feed", spec.Name, "records", len(records))
		sets = append(sets, FeedRecords{Feed: spec.Name, Records: records})
	}

	return Merge(sets)
}
