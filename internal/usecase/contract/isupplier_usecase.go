package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
)

// ISupplierUseCase covers the directory listing and supplier CRUD.
type ISupplierUseCase interface {
	FetchSuppliers(ctx context.Context) ([]entity.Supplier, error)
	// FetchSupplierByID returns nil, nil for unknown ids.
	FetchSupplierByID(ctx context.Context, id string) (*entity.Supplier, error)
	SearchSuppliers(ctx context.Context, filter entity.FilterState) ([]entity.Supplier, error)
	SuggestSuppliers(ctx context.Context, query string) ([]entity.Supplier, error)
	SaveSupplier(ctx context.Context, supplier *entity.Supplier, mapURL string) (*entity.Supplier, error)
	ProposeSupplier(ctx context.Context, actor *entity.User, supplier *entity.Supplier, mapURL string) (*entity.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error
	SubmitReview(ctx context.Context, supplierID string, author *entity.User, rating int, comment string) (*entity.Supplier, error)
}
