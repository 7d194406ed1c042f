// Package memory provides in-memory implementations of the repository
// ports. They back the test suites and the offline fallback used when
// DynamoDB is unreachable at startup: the app keeps working, state simply
// does not survive the process.
package memory

import (
	"context"
	"sync"

	"orcamentix/internal/domain/entities"
	"orcamentix/internal/usecase/interfaces"
)

type ClientRepository struct {
	mu    sync.RWMutex
	items []entities.Client
}

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

func NewClientRepository(seed ...entities.Client) *ClientRepository {
	return &ClientRepository{items: append([]entities.Client(nil), seed...)}
}

func (r *ClientRepository) List(_ context.Context) ([]entities.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entities.Client(nil), r.items...), nil
}

func (r *ClientRepository) GetByID(_ context.Context, id string) (entities.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.ID == id {
			return c, nil
		}
	}
	return entities.Client{}, nil
}

func (r *ClientRepository) Create(_ context.Context, c entities.Client) (entities.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, c)
	return c, nil
}

func (r *ClientRepository) Update(_ context.Context, c entities.Client) (entities.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == c.ID {
			r.items[i] = c
			return c, nil
		}
	}
	return entities.Client{}, nil
}

func (r *ClientRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type ServiceRepository struct {
	mu    sync.RWMutex
	items []entities.Service
}

var _ interfaces.IServiceRepository = (*ServiceRepository)(nil)

func NewServiceRepository(seed ...entities.Service) *ServiceRepository {
	return &ServiceRepository{items: append([]entities.Service(nil), seed...)}
}

func (r *ServiceRepository) List(_ context.Context) ([]entities.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entities.Service(nil), r.items...), nil
}

func (r *ServiceRepository) GetByID(_ context.Context, id string) (entities.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.items {
		if s.ID == id {
			return s, nil
		}
	}
	return entities.Service{}, nil
}

func (r *ServiceRepository) Create(_ context.Context, s entities.Service) (entities.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, s)
	return s, nil
}

func (r *ServiceRepository) Update(_ context.Context, s entities.Service) (entities.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == s.ID {
			r.items[i] = s
			return s, nil
		}
	}
	return entities.Service{}, nil
}

func (r *ServiceRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type QuoteRepository struct {
	mu    sync.RWMutex
	items []entities.Quote
}

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func NewQuoteRepository() *QuoteRepository {
	return &QuoteRepository{}
}

func (r *QuoteRepository) List(_ context.Context) ([]entities.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Quote, 0, len(r.items))
	for _, q := range r.items {
		out = append(out, backfill(q.Clone()))
	}
	return out, nil
}

func (r *QuoteRepository) GetByID(_ context.Context, id string) (entities.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, q := range r.items {
		if q.ID == id {
			return backfill(q.Clone()), nil
		}
	}
	return entities.Quote{}, nil
}

func (r *QuoteRepository) Create(_ context.Context, q entities.Quote) (entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, q.Clone())
	return q, nil
}

func (r *QuoteRepository) Save(_ context.Context, q entities.Quote) (entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == q.ID {
			r.items[i] = q.Clone()
			return q, nil
		}
	}
	return entities.Quote{}, nil
}

func (r *QuoteRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// backfill mirrors the durable adapter's legacy-record policy so both
// adapters honor the same read contract.
func backfill(q entities.Quote) entities.Quote {
	if q.History == nil {
		q.History = []entities.QuoteRevision{}
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = q.UpdatedAt
	}
	if q.UpdatedAt.IsZero() {
		q.UpdatedAt = q.CreatedAt
	}
	return q
}

type CatalogRepository struct {
	mu         sync.RWMutex
	units      []string
	categories []string
}

var _ interfaces.ICatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		units:      append([]string(nil), entities.DefaultUnits...),
		categories: append([]string(nil), entities.DefaultCategories...),
	}
}

func (r *CatalogRepository) ListUnits(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.units...), nil
}

func (r *CatalogRepository) AddUnit(_ context.Context, nome string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.units = append(r.units, nome)
	return nil
}

func (r *CatalogRepository) ListCategories(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.categories...), nil
}

func (r *CatalogRepository) AddCategory(_ context.Context, nome string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = append(r.categories, nome)
	return nil
}

type AccountRepository struct {
	mu   sync.RWMutex
	acct entities.Account
}

var _ interfaces.IAccountRepository = (*AccountRepository)(nil)

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

func (r *AccountRepository) Get(_ context.Context) (entities.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.acct, nil
}

func (r *AccountRepository) Save(_ context.Context, a entities.Account) (entities.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.acct = a
	return a, nil
}
