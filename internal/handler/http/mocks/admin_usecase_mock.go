package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/apperror"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/SuppliersEgypt/internal/usecase/contract"
)

type MockAdminUsecase struct {
	ShouldFailSettings bool
	ShouldFailCategory bool

	Categories []string
	Settings   entity.AppSettings
	Stats      entity.DashboardStats
}

var _ usecasecontract.IAdminUseCase = (*MockAdminUsecase)(nil)

func NewMockAdminUsecase() *MockAdminUsecase {
	return &MockAdminUsecase{
		Categories: []string{"ملابس", "أقمشة"},
		Settings:   entity.DefaultSettings(),
		Stats:      entity.DashboardStats{Suppliers: 4, VerifiedSuppliers: 3, Users: 4, BannedUsers: 1, Categories: 7},
	}
}

func (m *MockAdminUsecase) FetchCategories(ctx context.Context) ([]string, error) {
	return m.Categories, nil
}

func (m *MockAdminUsecase) AddCategory(ctx context.Context, name string) ([]string, error) {
	if m.ShouldFailCategory {
		return nil, apperror.Validation("name", "is required")
	}
	for _, c := range m.Categories {
		if c == name {
			return m.Categories, nil
		}
	}
	m.Categories = append(m.Categories, name)
	return m.Categories, nil
}

func (m *MockAdminUsecase) RemoveCategory(ctx context.Context, name string) ([]string, error) {
	out := m.Categories[:0]
	for _, c := range m.Categories {
		if c != name {
			out = append(out, c)
		}
	}
	m.Categories = out
	return m.Categories, nil
}

func (m *MockAdminUsecase) FetchSettings(ctx context.Context) (entity.AppSettings, error) {
	if m.ShouldFailSettings {
		return entity.AppSettings{}, errors.New("settings unavailable")
	}
	return m.Settings, nil
}

func (m *MockAdminUsecase) UpdateSettings(ctx context.Context, settings entity.AppSettings) (entity.AppSettings, error) {
	m.Settings = settings
	return settings, nil
}

func (m *MockAdminUsecase) DashboardStats(ctx context.Context) (entity.DashboardStats, error) {
	return m.Stats, nil
}
