package storage

import (
	"context"
	"library/pkg/domain"
)

// CatalogStorage gives read access to catalog items.
type CatalogStorage interface {
	// ItemsByIDs returns the items with the given ids, ordered by id. Unknown
	// ids are skipped. Item.Borrowed is derived from the existence of a current
	// loan. Inside a transaction the returned item rows are locked until the
	// transaction ends.
	ItemsByIDs(ctx context.Context, ids []domain.ItemID) ([]domain.Item, error)
}
