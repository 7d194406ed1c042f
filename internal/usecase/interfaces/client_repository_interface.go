package interfaces

import (
	"context"

	"orcamentix/internal/domain/entities"
)

// IClientRepository abstracts persistence for the client registry.
//
// Every mutation persists the record synchronously; uniqueness policy lives
// in the usecase, which works over List.
type IClientRepository interface {
	List(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}
