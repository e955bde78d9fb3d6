package mocks

import (
	"context"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/apperror"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/SuppliersEgypt/internal/usecase/contract"
)

type MockLocationUsecase struct {
	Cities entity.CityData
}

var _ usecasecontract.ILocationUseCase = (*MockLocationUsecase)(nil)

func NewMockLocationUsecase() *MockLocationUsecase {
	return &MockLocationUsecase{
		Cities: entity.CityData{
			{City: "القاهرة", Regions: []string{"مدينة نصر", "المعادي"}},
		},
	}
}

func (m *MockLocationUsecase) FetchCities(ctx context.Context) (entity.CityData, error) {
	return m.Cities.Clone(), nil
}

func (m *MockLocationUsecase) RegisterCity(ctx context.Context, city string) (bool, error) {
	return m.Cities.AddCity(city), nil
}

func (m *MockLocationUsecase) RegisterRegion(ctx context.Context, city, region string) (bool, error) {
	return m.Cities.AddRegion(city, region), nil
}

func (m *MockLocationUsecase) ResolveRegion(ctx context.Context, city, region string) (string, error) {
	return m.Cities.ResolveRegion(city, region), nil
}

func (m *MockLocationUsecase) ValidateLocation(ctx context.Context, city, region string) error {
	if region != "" && !m.Cities.HasRegion(city, region) {
		return apperror.Validation("region", "does not belong to "+city)
	}
	return nil
}

func (m *MockLocationUsecase) ParseMapURL(url string) (*entity.GeoPoint, error) {
	return usecase.ParseMapURL(url)
}
