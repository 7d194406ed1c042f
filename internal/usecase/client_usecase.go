package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"orcamentix/internal/domain/entities"
	"orcamentix/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrClientNameRequired = errors.New("client name is required")
	ErrClientEmailInvalid = errors.New("invalid client email")
	ErrClientEmailTaken   = errors.New("client email already registered")
	ErrClientPhoneTaken   = errors.New("client phone already registered")
	ErrClientLimitReached = errors.New("client limit reached for current plan")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IClientUseCase exposes the client registry operations.
//
// Uniqueness policy: no two clients may share the same normalized email OR
// the same normalized phone. Updates exclude the record being edited from
// the collision set.
type IClientUseCase interface {
	Create(ctx context.Context, input ClientInput) (entities.Client, error)
	Update(ctx context.Context, id string, input ClientInput) (entities.Client, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, query string) ([]entities.Client, error)
}

type ClientInput struct {
	Nome     string
	Email    string
	Telefone string
	Empresa  string
}

type ClientUseCase struct {
	repo        interfaces.IClientRepository
	accountRepo interfaces.IAccountRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository, accountRepo interfaces.IAccountRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo, accountRepo: accountRepo}
}

func (u *ClientUseCase) Create(ctx context.Context, input ClientInput) (entities.Client, error) {
	c := entities.Client{
		Nome:     strings.TrimSpace(input.Nome),
		Email:    strings.TrimSpace(input.Email),
		Telefone: strings.TrimSpace(input.Telefone),
		Empresa:  strings.TrimSpace(input.Empresa),
	}
	if c.Nome == "" {
		return entities.Client{}, ErrClientNameRequired
	}
	if c.Email != "" && !emailPattern.MatchString(c.Email) {
		return entities.Client{}, ErrClientEmailInvalid
	}

	existing, err := u.repo.List(ctx)
	if err != nil {
		return entities.Client{}, err
	}
	if err := checkClientCollision(existing, c, ""); err != nil {
		return entities.Client{}, err
	}

	caps, err := currentCaps(ctx, u.accountRepo)
	if err != nil {
		return entities.Client{}, err
	}
	if !caps.AllowsMoreClients(len(existing)) {
		return entities.Client{}, ErrClientLimitReached
	}

	c.ID = uuid.NewString()
	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) Update(ctx context.Context, id string, input ClientInput) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrClientNotFound
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if current.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}

	c := entities.Client{
		ID:       id,
		Nome:     strings.TrimSpace(input.Nome),
		Email:    strings.TrimSpace(input.Email),
		Telefone: strings.TrimSpace(input.Telefone),
		Empresa:  strings.TrimSpace(input.Empresa),
	}
	if c.Nome == "" {
		return entities.Client{}, ErrClientNameRequired
	}
	if c.Email != "" && !emailPattern.MatchString(c.Email) {
		return entities.Client{}, ErrClientEmailInvalid
	}

	existing, err := u.repo.List(ctx)
	if err != nil {
		return entities.Client{}, err
	}
	if err := checkClientCollision(existing, c, id); err != nil {
		return entities.Client{}, err
	}

	return u.repo.Update(ctx, c)
}

// Delete is unconditional: quotes embed client snapshots, so removing a
// client leaves no dangling references.
func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrClientNotFound
	}
	return u.repo.Delete(ctx, id)
}

func (u *ClientUseCase) List(ctx context.Context, query string) ([]entities.Client, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	t := strings.ToLower(strings.TrimSpace(query))
	if t == "" {
		return all, nil
	}
	out := make([]entities.Client, 0, len(all))
	for _, c := range all {
		fields := []string{c.Nome, c.Email, c.Telefone, c.Empresa}
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), t) {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

// checkClientCollision scans the registry for a normalized email or phone
// match, skipping selfID when editing.
func checkClientCollision(existing []entities.Client, candidate entities.Client, selfID string) error {
	email := entities.NormalizeEmail(candidate.Email)
	phone := entities.NormalizePhone(candidate.Telefone)
	for _, c := range existing {
		if selfID != "" && c.ID == selfID {
			continue
		}
		if email != "" && entities.NormalizeEmail(c.Email) == email {
			return ErrClientEmailTaken
		}
		if phone != "" && entities.NormalizePhone(c.Telefone) == phone {
			return ErrClientPhoneTaken
		}
	}
	return nil
}

// currentCaps loads the account and derives a trustworthy capability set.
// Stored caps are used only when complete; anything else is rebuilt from the
// plan so stale records never gate features incorrectly.
func currentCaps(ctx context.Context, accountRepo interfaces.IAccountRepository) (entities.Capabilities, error) {
	if accountRepo == nil {
		return entities.ResolveCaps(string(entities.PlanBasic)), nil
	}
	acct, err := accountRepo.Get(ctx)
	if err != nil {
		return entities.Capabilities{}, err
	}
	if acct.Caps.Complete() {
		return acct.Caps, nil
	}
	return entities.ResolveCaps(acct.Plan), nil
}
