package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"orcamentix/internal/domain/entities"
	"orcamentix/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound       = errors.New("quote not found")
	ErrQuoteClientRequired = errors.New("quote requires a client")
	ErrQuoteItemsRequired  = errors.New("quote requires at least one item")
	ErrQuoteInvalidStatus  = errors.New("invalid quote status")
	ErrQuoteLimitReached   = errors.New("quote limit reached for current plan")
)

// IQuoteUseCase is the quote engine: CRUD, pricing, revision history,
// duplication and the unsaved-draft check.
type IQuoteUseCase interface {
	Create(ctx context.Context, input QuoteInput) (entities.Quote, error)
	Update(ctx context.Context, id string, patch QuotePatch) (entities.Quote, error)
	Duplicate(ctx context.Context, id string) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	Preview(input QuoteInput) entities.Totals
	Unsaved(ctx context.Context, id string, draft QuoteInput) (bool, error)
}

// QuoteInput is the full form payload used for creation, previews and the
// unsaved-draft comparison.
type QuoteInput struct {
	Status   string
	Cliente  *entities.ClientSnapshot
	Itens    []entities.QuoteItem
	Margem   float64
	Desconto float64
	Obs      string
}

// QuotePatch merges field-by-field into an existing quote; nil fields keep
// their current value. Totals are always recomputed from the merged state.
type QuotePatch struct {
	Status   *string
	Cliente  *entities.ClientSnapshot
	Itens    *[]entities.QuoteItem
	Margem   *float64
	Desconto *float64
	Obs      *string
}

type QuoteUseCase struct {
	repo        interfaces.IQuoteRepository
	accountRepo interfaces.IAccountRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, accountRepo interfaces.IAccountRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, accountRepo: accountRepo}
}

// Create validates the draft, computes totals and persists a fresh rascunho
// with an empty history. Missing client and missing items are reported
// together so the caller can surface every failed condition at once.
func (u *QuoteUseCase) Create(ctx context.Context, input QuoteInput) (entities.Quote, error) {
	var invalid []error
	if input.Cliente == nil {
		invalid = append(invalid, ErrQuoteClientRequired)
	}
	if len(input.Itens) == 0 {
		invalid = append(invalid, ErrQuoteItemsRequired)
	}
	if len(invalid) > 0 {
		return entities.Quote{}, errors.Join(invalid...)
	}

	status := entities.QuoteStatusRascunho
	if input.Status != "" {
		status = entities.QuoteStatus(input.Status)
		if !status.IsValid() {
			return entities.Quote{}, ErrQuoteInvalidStatus
		}
	}

	existing, err := u.repo.List(ctx)
	if err != nil {
		return entities.Quote{}, err
	}
	caps, err := currentCaps(ctx, u.accountRepo)
	if err != nil {
		return entities.Quote{}, err
	}
	if !caps.AllowsMoreQuotes(len(existing)) {
		return entities.Quote{}, ErrQuoteLimitReached
	}

	now := time.Now().UTC()
	totals := entities.ComputeTotals(input.Itens, input.Margem, input.Desconto)
	q := entities.Quote{
		ID:        uuid.NewString(),
		Status:    status,
		Cliente:   *input.Cliente,
		Itens:     entities.CloneItems(input.Itens),
		Margem:    input.Margem,
		Desconto:  input.Desconto,
		Subtotal:  totals.Subtotal,
		Total:     totals.Total,
		Obs:       input.Obs,
		CreatedAt: now,
		UpdatedAt: now,
		History:   []entities.QuoteRevision{},
	}
	return u.repo.Create(ctx, q)
}

// Update snapshots the pre-update state, merges the patch, recomputes totals
// and persists — all in one synchronous body so history can never drift from
// the main fields.
func (u *QuoteUseCase) Update(ctx context.Context, id string, patch QuotePatch) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	now := time.Now().UTC()
	snapshot := q.Snapshot(now)

	if patch.Status != nil {
		status := entities.QuoteStatus(*patch.Status)
		if !status.IsValid() {
			return entities.Quote{}, ErrQuoteInvalidStatus
		}
		q.Status = status
	}
	if patch.Cliente != nil {
		q.Cliente = *patch.Cliente
	}
	if patch.Itens != nil {
		if len(*patch.Itens) == 0 {
			return entities.Quote{}, ErrQuoteItemsRequired
		}
		q.Itens = entities.CloneItems(*patch.Itens)
	}
	if patch.Margem != nil {
		q.Margem = *patch.Margem
	}
	if patch.Desconto != nil {
		q.Desconto = *patch.Desconto
	}
	if patch.Obs != nil {
		q.Obs = *patch.Obs
	}

	totals := q.Totals()
	q.Subtotal = totals.Subtotal
	q.Total = totals.Total
	q.UpdatedAt = now
	q.History = append(q.History, snapshot)

	return u.repo.Save(ctx, q)
}

// Duplicate deep-copies an existing quote into a fresh rascunho with a new
// id, fresh timestamps and an empty history. Duplicates carry no link to
// their origin's revision trail.
func (u *QuoteUseCase) Duplicate(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	src, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if src.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	existing, err := u.repo.List(ctx)
	if err != nil {
		return entities.Quote{}, err
	}
	caps, err := currentCaps(ctx, u.accountRepo)
	if err != nil {
		return entities.Quote{}, err
	}
	if !caps.AllowsMoreQuotes(len(existing)) {
		return entities.Quote{}, ErrQuoteLimitReached
	}

	now := time.Now().UTC()
	clone := src.Clone()
	clone.ID = uuid.NewString()
	clone.Status = entities.QuoteStatusRascunho
	clone.CreatedAt = now
	clone.UpdatedAt = now
	clone.History = []entities.QuoteRevision{}

	return u.repo.Create(ctx, clone)
}

func (u *QuoteUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrQuoteNotFound
	}
	return u.repo.Delete(ctx, id)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}

// Preview recomputes totals for an in-progress draft. Pure: nothing is
// validated or persisted, mirroring the recompute-on-every-render rule.
func (u *QuoteUseCase) Preview(input QuoteInput) entities.Totals {
	return entities.ComputeTotals(input.Itens, input.Margem, input.Desconto)
}

// Unsaved reports whether a draft differs from its persisted baseline. For
// a new draft (empty id) any filled-in field counts as an unsaved change.
func (u *QuoteUseCase) Unsaved(ctx context.Context, id string, draft QuoteInput) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		dirty := draft.Cliente != nil ||
			len(draft.Itens) > 0 ||
			draft.Margem != 0 ||
			draft.Desconto != 0 ||
			strings.TrimSpace(draft.Obs) != ""
		return dirty, nil
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if q.ID == "" {
		return false, ErrQuoteNotFound
	}

	draftClientID := ""
	if draft.Cliente != nil {
		draftClientID = draft.Cliente.ID
	}
	changed := draftClientID != q.Cliente.ID ||
		!reflect.DeepEqual(normalizedItems(draft.Itens), normalizedItems(q.Itens)) ||
		draft.Margem != q.Margem ||
		draft.Desconto != q.Desconto ||
		draft.Obs != q.Obs
	return changed, nil
}

func normalizedItems(itens []entities.QuoteItem) []entities.QuoteItem {
	if len(itens) == 0 {
		return []entities.QuoteItem{}
	}
	return itens
}
