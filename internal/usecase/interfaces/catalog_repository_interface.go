package interfaces

import "context"

// ICatalogRepository persists the open-ended unit and category registries.
// Empty stores answer with the seeded defaults.
type ICatalogRepository interface {
	ListUnits(ctx context.Context) ([]string, error)
	AddUnit(ctx context.Context, nome string) error
	ListCategories(ctx context.Context) ([]string, error)
	AddCategory(ctx context.Context, nome string) error
}
