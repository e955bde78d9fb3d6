package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/apperror"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/SuppliersEgypt/internal/usecase/contract"
)

type MockSupplierUsecase struct {
	ShouldFailSearch  bool
	ShouldFailSave    bool
	ShouldFailPropose bool
	ShouldFailReview  bool
	ShouldFailDelete  bool

	Suppliers []entity.Supplier

	LastFilter   entity.FilterState
	LastQuery    string
	LastSaved    *entity.Supplier
	LastMapURL   string
	LastReviewer *entity.User
	LastRating   int
}

var _ usecasecontract.ISupplierUseCase = (*MockSupplierUsecase)(nil)

func NewMockSupplierUsecase() *MockSupplierUsecase {
	return &MockSupplierUsecase{
		Suppliers: []entity.Supplier{
			{ID: "1", Name: "مصنع النور", City: "القاهرة", Category: "ملابس", Rating: 4.8, ReviewCount: 120, IsVerified: true},
			{ID: "2", Name: "Delta Textiles", City: "الإسكندرية", Category: "أقمشة", Rating: 4.2, ReviewCount: 40},
		},
	}
}

func (m *MockSupplierUsecase) FetchSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	return m.Suppliers, nil
}

func (m *MockSupplierUsecase) FetchSupplierByID(ctx context.Context, id string) (*entity.Supplier, error) {
	for i := range m.Suppliers {
		if m.Suppliers[i].ID == id {
			s := m.Suppliers[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (m *MockSupplierUsecase) SearchSuppliers(ctx context.Context, filter entity.FilterState) ([]entity.Supplier, error) {
	if m.ShouldFailSearch {
		return nil, errors.New("search failed")
	}
	m.LastFilter = filter
	return m.Suppliers, nil
}

func (m *MockSupplierUsecase) SuggestSuppliers(ctx context.Context, query string) ([]entity.Supplier, error) {
	m.LastQuery = query
	if query == "" {
		return nil, nil
	}
	return m.Suppliers[:1], nil
}

func (m *MockSupplierUsecase) SaveSupplier(ctx context.Context, supplier *entity.Supplier, mapURL string) (*entity.Supplier, error) {
	if m.ShouldFailSave {
		return nil, apperror.Validation("name", "is required")
	}
	m.LastSaved, m.LastMapURL = supplier, mapURL
	saved := *supplier
	if saved.ID == "" {
		saved.ID = "new-id"
	}
	return &saved, nil
}

func (m *MockSupplierUsecase) ProposeSupplier(ctx context.Context, actor *entity.User, supplier *entity.Supplier, mapURL string) (*entity.Supplier, error) {
	if m.ShouldFailPropose {
		return nil, apperror.AuthRejected(apperror.ReasonSupplierCreationClosed, "supplier creation is closed")
	}
	saved := *supplier
	saved.ID = "proposed-id"
	saved.IsVerified = false
	return &saved, nil
}

func (m *MockSupplierUsecase) DeleteSupplier(ctx context.Context, id string) error {
	if m.ShouldFailDelete {
		return errors.New("delete failed")
	}
	return nil
}

func (m *MockSupplierUsecase) SubmitReview(ctx context.Context, supplierID string, author *entity.User, rating int, comment string) (*entity.Supplier, error) {
	if m.ShouldFailReview {
		return nil, apperror.NotFound("supplier", supplierID)
	}
	m.LastReviewer, m.LastRating = author, rating
	s := m.Suppliers[0]
	s.ApplyReview(entity.Review{ID: "r-1", User: author.DisplayName(), Rating: rating, Comment: comment})
	return &s, nil
}
