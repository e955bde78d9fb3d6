package memory

import (
	"context"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/apperror"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/contract"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
)

type SupplierRepository struct {
	store *Store
}

func NewSupplierRepository(store *Store) *SupplierRepository {
	return &SupplierRepository{store: store}
}

var _ contract.ISupplierRepository = (*SupplierRepository)(nil)

func (r *SupplierRepository) ListSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	if err := r.store.wait(ctx, r.store.latency.ListSuppliers); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]entity.Supplier, 0, len(r.store.suppliers))
	for _, s := range r.store.suppliers {
		out = append(out, s.Clone())
	}
	return out, nil
}

func (r *SupplierRepository) GetSupplierByID(ctx context.Context, id string) (*entity.Supplier, error) {
	if err := r.store.wait(ctx, r.store.latency.GetSupplier); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		s := r.store.suppliers[i].Clone()
		return &s, nil
	}
	return nil, nil
}

func (r *SupplierRepository) UpsertSupplier(ctx context.Context, supplier *entity.Supplier) error {
	if err := r.store.wait(ctx, r.store.latency.SaveSupplier); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if i := r.indexOf(supplier.ID); i >= 0 {
		r.store.suppliers[i] = supplier.Clone()
		return nil
	}
	r.store.suppliers = append(r.store.suppliers, supplier.Clone())
	return nil
}

func (r *SupplierRepository) DeleteSupplier(ctx context.Context, id string) error {
	if err := r.store.wait(ctx, r.store.latency.DeleteSupplier); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	kept := r.store.suppliers[:0]
	for _, s := range r.store.suppliers {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	r.store.suppliers = kept
	return nil
}

// AddReview holds the write lock across read-modify-write so concurrent
// reviews never lose an update.
func (r *SupplierRepository) AddReview(ctx context.Context, supplierID string, review entity.Review) (*entity.Supplier, error) {
	if err := r.store.wait(ctx, r.store.latency.AddReview); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	i := r.indexOf(supplierID)
	if i < 0 {
		return nil, apperror.NotFound("supplier", supplierID)
	}
	r.store.suppliers[i].ApplyReview(review)
	s := r.store.suppliers[i].Clone()
	return &s, nil
}

// caller holds the lock
func (r *SupplierRepository) indexOf(id string) int {
	for i, s := range r.store.suppliers {
		if s.ID == id {
			return i
		}
	}
	return -1
}
