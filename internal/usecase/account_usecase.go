package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"orcamentix/internal/domain/entities"
	"orcamentix/internal/usecase/interfaces"
)

var ErrPlanUnknown = errors.New("unknown plan tier")

// IAccountUseCase manages the single account record: profile, current plan
// and the derived capability set.
//
// Caps are derived state. They are recomputed and persisted atomically with
// every plan change, rebuilt on logout-reset, and revalidated whenever the
// record is loaded so an incomplete stored record never survives a reload.
type IAccountUseCase interface {
	Get(ctx context.Context) (entities.Account, error)
	Update(ctx context.Context, input AccountInput) (entities.Account, error)
	SwitchPlan(ctx context.Context, tier string) (entities.Account, error)
	Reset(ctx context.Context) (entities.Account, error)
}

// AccountInput patches the profile and company blocks. Plan changes go
// through SwitchPlan only, so caps can never desynchronize.
type AccountInput struct {
	Nome     *string
	Email    *string
	Telefone *string
	Company  *entities.Company
}

type AccountUseCase struct {
	repo interfaces.IAccountRepository
}

var _ IAccountUseCase = (*AccountUseCase)(nil)

func NewAccountUseCase(repo interfaces.IAccountRepository) *AccountUseCase {
	return &AccountUseCase{repo: repo}
}

// defaultAccount is the record used before anything has been stored.
func defaultAccount() entities.Account {
	plan := string(entities.PlanBasic)
	return entities.Account{
		Nome:     "Usuário Demo",
		Email:    "usuario@email.com",
		Telefone: "(11) 98765-4321",
		Plan:     plan,
		Caps:     entities.ResolveCaps(plan),
	}
}

func (u *AccountUseCase) Get(ctx context.Context) (entities.Account, error) {
	acct, err := u.repo.Get(ctx)
	if err != nil {
		return entities.Account{}, err
	}
	if acct.Plan == "" {
		return defaultAccount(), nil
	}

	// Reload guard: records persisted by older formats may carry an
	// incomplete caps block. Rebuild from the plan instead of trusting it.
	if !acct.Caps.Complete() {
		log.Printf("[account][usecase] stored caps incomplete, rebuilding from plan=%s", acct.Plan)
		acct.Caps = entities.ResolveCaps(acct.Plan)
		return u.repo.Save(ctx, acct)
	}
	return acct, nil
}

func (u *AccountUseCase) Update(ctx context.Context, input AccountInput) (entities.Account, error) {
	acct, err := u.Get(ctx)
	if err != nil {
		return entities.Account{}, err
	}

	if input.Nome != nil {
		acct.Nome = strings.TrimSpace(*input.Nome)
	}
	if input.Email != nil {
		acct.Email = strings.TrimSpace(*input.Email)
	}
	if input.Telefone != nil {
		acct.Telefone = strings.TrimSpace(*input.Telefone)
	}
	if input.Company != nil {
		acct.Company = *input.Company
	}

	return u.repo.Save(ctx, acct)
}

// SwitchPlan changes the tier and recomputes the capability set in the same
// persisted write. Legacy aliases ("free") normalize; anything else
// unrecognized is rejected rather than silently downgraded, since this is an
// explicit user action.
func (u *AccountUseCase) SwitchPlan(ctx context.Context, tier string) (entities.Account, error) {
	raw := strings.ToLower(strings.TrimSpace(tier))
	switch raw {
	case string(entities.PlanBasic), string(entities.PlanPlus), string(entities.PlanPremium), "free":
	default:
		return entities.Account{}, ErrPlanUnknown
	}

	acct, err := u.Get(ctx)
	if err != nil {
		return entities.Account{}, err
	}

	plan := string(entities.NormalizeTier(raw))
	acct.Plan = plan
	acct.Caps = entities.ResolveCaps(plan)
	acct.UpgradedAt = time.Now().UTC()

	log.Printf("[account][usecase] plan switched to %s", plan)
	return u.repo.Save(ctx, acct)
}

// Reset returns the account to the basic tier (the logout behavior), with
// caps rebuilt accordingly.
func (u *AccountUseCase) Reset(ctx context.Context) (entities.Account, error) {
	acct, err := u.Get(ctx)
	if err != nil {
		return entities.Account{}, err
	}
	plan := string(entities.PlanBasic)
	acct.Plan = plan
	acct.Caps = entities.ResolveCaps(plan)
	return u.repo.Save(ctx, acct)
}
