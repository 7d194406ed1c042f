package interfaces

import (
	"context"

	"orcamentix/internal/domain/entities"
)

// IAccountRepository persists the single account record (profile, plan and
// the derived capability set). Get returns a zero Account when nothing has
// been stored yet; the usecase supplies the default profile.
type IAccountRepository interface {
	Get(ctx context.Context) (entities.Account, error)
	Save(ctx context.Context, a entities.Account) (entities.Account, error)
}
