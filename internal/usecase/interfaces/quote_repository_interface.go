package interfaces

import (
	"context"

	"orcamentix/internal/domain/entities"
)

// IQuoteRepository abstracts persistence for quotes.
//
// Save replaces the whole entity (items, history and totals) in one write so
// the snapshot-then-merge-then-persist sequence of an update stays atomic.
// Implementations must backfill legacy records on read: nil history becomes
// an empty slice and missing timestamps default to each other or to now.
type IQuoteRepository interface {
	List(ctx context.Context) ([]entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Save(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
}
