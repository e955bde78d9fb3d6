package contract

import (
	"context"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
)

// ISupplierCache defines caching operations for suppliers.
type ISupplierCache interface {
	// Detail (by id)
	GetSupplier(ctx context.Context, id string) (*entity.Supplier, bool, error)
	SetSupplier(ctx context.Context, supplier *entity.Supplier) error
	InvalidateSupplier(ctx context.Context, id string) error

	// Full list
	GetSupplierList(ctx context.Context) ([]entity.Supplier, bool, error)
	SetSupplierList(ctx context.Context, suppliers []entity.Supplier) error
	InvalidateSupplierLists(ctx context.Context) error
}
