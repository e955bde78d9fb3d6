package contract

import (
	"context"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
)

// ISupplierRepository persists directory listings.
type ISupplierRepository interface {
	// ListSuppliers returns every supplier in insertion order.
	ListSuppliers(ctx context.Context) ([]entity.Supplier, error)
	// GetSupplierByID returns nil and no error when the id is unknown.
	GetSupplierByID(ctx context.Context, id string) (*entity.Supplier, error)
	// UpsertSupplier replaces the supplier with the same id or appends it.
	UpsertSupplier(ctx context.Context, supplier *entity.Supplier) error
	// DeleteSupplier removes every supplier with id. Missing ids are not an error.
	DeleteSupplier(ctx context.Context, id string) error
	// AddReview applies review to the supplier atomically and returns the result.
	AddReview(ctx context.Context, supplierID string, review entity.Review) (*entity.Supplier, error)
}
