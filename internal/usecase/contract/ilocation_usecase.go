package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
)

// ILocationUseCase manages cities, regions and map links.
type ILocationUseCase interface {
	FetchCities(ctx context.Context) (entity.CityData, error)
	RegisterCity(ctx context.Context, city string) (bool, error)
	RegisterRegion(ctx context.Context, city, region string) (bool, error)
	ResolveRegion(ctx context.Context, city, region string) (string, error)
	ValidateLocation(ctx context.Context, city, region string) error
	ParseMapURL(url string) (*entity.GeoPoint, error)
}
