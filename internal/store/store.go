// Package store persists the merged canonical catalog and reads it
// back without schema loss. Two serialized forms exist, a
// record-oriented JSON array and a row-oriented CSV, and they are
// round-trip equivalent. A Mongo-backed store offers the same contract
// for deployments with a database.
package store

import (
	"context"
	"errors"

	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/models"
)

// ErrCatalogNotFound is returned when the query engine is invoked
// before any catalog has been written. Callers report it, they do not
// crash.
var ErrCatalogNotFound = errors.New("product data file not found")

// Store is the durable catalog contract. Save replaces the catalog
// wholesale; Load returns it in stored order; Version changes whenever
// the catalog is replaced, so snapshot caches can invalidate.
type Store interface {
	Save(ctx context.Context, catalog []models.Product) error
	Load(ctx context.Context) ([]models.Product, error)
	Version(ctx context.Context) (string, error)
}
