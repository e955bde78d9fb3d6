package contract

import (
	"context"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
)

// ICityRepository stores the city to region mapping.
type ICityRepository interface {
	GetCityData(ctx context.Context) (entity.CityData, error)
	// RegisterCity reports false when the city already exists.
	RegisterCity(ctx context.Context, city string) (bool, error)
	// RegisterRegion reports false when the region already exists under city.
	RegisterRegion(ctx context.Context, city, region string) (bool, error)
}
