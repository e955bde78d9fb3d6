package contract

import "context"

// ICategoryRepository manages the admin-editable category vocabulary.
type ICategoryRepository interface {
	ListCategories(ctx context.Context) ([]string, error)
	// AddCategory reports false when name was already present.
	AddCategory(ctx context.Context, name string) (bool, error)
	RemoveCategory(ctx context.Context, name string) error
}
