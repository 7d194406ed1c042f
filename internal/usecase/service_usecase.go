package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"orcamentix/internal/domain/entities"
	"orcamentix/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrServiceNameRequired = errors.New("service name is required")
	ErrServiceExists       = errors.New("service already exists for this unit/category")
	ErrServiceLimitReached = errors.New("service limit reached for current plan")
	ErrCatalogNameRequired = errors.New("catalog entry name is required")
)

// IServiceUseCase exposes the service catalog plus the open-ended unit and
// category registries.
//
// Duplicate policy is the composite key NFKC(nome)+unidade+categoria, checked
// on create and update (excluding the record being edited). Prices coerce to
// non-negative numbers on every write.
type IServiceUseCase interface {
	Create(ctx context.Context, input ServiceInput) (entities.Service, error)
	Update(ctx context.Context, id string, input ServiceInput) (entities.Service, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, query string) ([]entities.Service, error)

	ListUnits(ctx context.Context) ([]string, error)
	AddUnit(ctx context.Context, nome string) (string, bool, error)
	ListCategories(ctx context.Context) ([]string, error)
	AddCategory(ctx context.Context, nome string) (string, bool, error)
}

type ServiceInput struct {
	Nome      string
	Preco     float64
	Unidade   string
	Categoria string
}

type ServiceUseCase struct {
	repo        interfaces.IServiceRepository
	catalogRepo interfaces.ICatalogRepository
	accountRepo interfaces.IAccountRepository
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository, catalogRepo interfaces.ICatalogRepository, accountRepo interfaces.IAccountRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, catalogRepo: catalogRepo, accountRepo: accountRepo}
}

func (u *ServiceUseCase) Create(ctx context.Context, input ServiceInput) (entities.Service, error) {
	s, err := u.buildService("", input)
	if err != nil {
		return entities.Service{}, err
	}

	existing, err := u.repo.List(ctx)
	if err != nil {
		return entities.Service{}, err
	}
	if hasServiceDuplicate(existing, s, "") {
		return entities.Service{}, ErrServiceExists
	}

	caps, err := currentCaps(ctx, u.accountRepo)
	if err != nil {
		return entities.Service{}, err
	}
	if !caps.AllowsMoreServices(len(existing)) {
		return entities.Service{}, ErrServiceLimitReached
	}

	s.ID = uuid.NewString()
	return u.repo.Create(ctx, s)
}

func (u *ServiceUseCase) Update(ctx context.Context, id string, input ServiceInput) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrServiceNotFound
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if current.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}

	s, err := u.buildService(id, input)
	if err != nil {
		return entities.Service{}, err
	}

	existing, err := u.repo.List(ctx)
	if err != nil {
		return entities.Service{}, err
	}
	if hasServiceDuplicate(existing, s, id) {
		return entities.Service{}, ErrServiceExists
	}

	return u.repo.Update(ctx, s)
}

func (u *ServiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrServiceNotFound
	}
	return u.repo.Delete(ctx, id)
}

func (u *ServiceUseCase) List(ctx context.Context, query string) ([]entities.Service, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	t := strings.ToLower(strings.TrimSpace(query))
	if t == "" {
		return all, nil
	}
	out := make([]entities.Service, 0, len(all))
	for _, s := range all {
		fields := []string{s.Nome, s.Unidade, s.Categoria}
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), t) {
				out = append(out, s)
				break
			}
		}
	}
	return out, nil
}

func (u *ServiceUseCase) ListUnits(ctx context.Context) ([]string, error) {
	return u.catalogRepo.ListUnits(ctx)
}

// AddUnit registers a new unit value. Adding an existing value is a no-op
// with a warning, never an error: the existing value is returned.
func (u *ServiceUseCase) AddUnit(ctx context.Context, nome string) (string, bool, error) {
	return u.addCatalogEntry(ctx, nome,
		func(ctx context.Context) ([]string, error) { return u.catalogRepo.ListUnits(ctx) },
		func(ctx context.Context, nome string) error { return u.catalogRepo.AddUnit(ctx, nome) },
		"unit")
}

func (u *ServiceUseCase) ListCategories(ctx context.Context) ([]string, error) {
	return u.catalogRepo.ListCategories(ctx)
}

func (u *ServiceUseCase) AddCategory(ctx context.Context, nome string) (string, bool, error) {
	return u.addCatalogEntry(ctx, nome,
		func(ctx context.Context) ([]string, error) { return u.catalogRepo.ListCategories(ctx) },
		func(ctx context.Context, nome string) error { return u.catalogRepo.AddCategory(ctx, nome) },
		"category")
}

func (u *ServiceUseCase) addCatalogEntry(
	ctx context.Context,
	nome string,
	list func(context.Context) ([]string, error),
	add func(context.Context, string) error,
	kind string,
) (string, bool, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return "", false, ErrCatalogNameRequired
	}

	values, err := list(ctx)
	if err != nil {
		return "", false, err
	}
	for _, v := range values {
		if strings.EqualFold(v, nome) {
			log.Printf("[catalog][usecase] %s %q already exists, keeping existing value", kind, v)
			return v, false, nil
		}
	}

	if err := add(ctx, nome); err != nil {
		return "", false, err
	}
	return nome, true, nil
}

func (u *ServiceUseCase) buildService(id string, input ServiceInput) (entities.Service, error) {
	s := entities.Service{
		ID:        id,
		Nome:      strings.TrimSpace(input.Nome),
		Preco:     input.Preco,
		Unidade:   strings.TrimSpace(input.Unidade),
		Categoria: strings.TrimSpace(input.Categoria),
	}
	if s.Nome == "" {
		return entities.Service{}, ErrServiceNameRequired
	}
	if s.Preco < 0 {
		s.Preco = 0
	}
	if s.Unidade == "" {
		s.Unidade = "Outros"
	}
	if s.Categoria == "" {
		s.Categoria = "Outros"
	}
	return s, nil
}

func hasServiceDuplicate(existing []entities.Service, candidate entities.Service, selfID string) bool {
	key := candidate.CompositeKey()
	for _, s := range existing {
		if selfID != "" && s.ID == selfID {
			continue
		}
		if s.CompositeKey() == key {
			return true
		}
	}
	return false
}
