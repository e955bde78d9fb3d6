package usecase

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/apperror"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/contract"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/SuppliersEgypt/internal/usecase/contract"
)

// LocationUseCase manages the city/region vocabulary.
type LocationUseCase struct {
	cityRepo contract.ICityRepository
	logger   usecasecontract.IAppLogger
}

func NewLocationUseCase(cityRepo contract.ICityRepository, logger usecasecontract.IAppLogger) *LocationUseCase {
	return &LocationUseCase{cityRepo: cityRepo, logger: logger}
}

var _ usecasecontract.ILocationUseCase = (*LocationUseCase)(nil)

func (uc *LocationUseCase) FetchCities(ctx context.Context) (entity.CityData, error) {
	return uc.cityRepo.GetCityData(ctx)
}

func (uc *LocationUseCase) RegisterCity(ctx context.Context, city string) (bool, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return false, apperror.Validation("city", "is required")
	}
	added, err := uc.cityRepo.RegisterCity(ctx, city)
	if err != nil {
		uc.logger.Errorf("failed to register city %q: %v", city, err)
		return false, err
	}
	if added {
		uc.logger.Infof("city registered: %s", city)
	}
	return added, nil
}

// RegisterRegion adds region under city. Duplicates are ignored.
func (uc *LocationUseCase) RegisterRegion(ctx context.Context, city, region string) (bool, error) {
	city = strings.TrimSpace(city)
	region = strings.TrimSpace(region)
	if city == "" {
		return false, apperror.Validation("city", "is required")
	}
	if region == "" {
		return false, apperror.Validation("region", "is required")
	}
	added, err := uc.cityRepo.RegisterRegion(ctx, city, region)
	if err != nil {
		uc.logger.Errorf("failed to register region %q in %q: %v", region, city, err)
		return false, err
	}
	if added {
		uc.logger.Infof("region registered: %s / %s", city, region)
	}
	return added, nil
}

// ResolveRegion returns region when it belongs to city and "" otherwise.
func (uc *LocationUseCase) ResolveRegion(ctx context.Context, city, region string) (string, error) {
	data, err := uc.cityRepo.GetCityData(ctx)
	if err != nil {
		return "", err
	}
	return data.ResolveRegion(city, region), nil
}

// ValidateLocation checks that a non-empty region is registered under city.
func (uc *LocationUseCase) ValidateLocation(ctx context.Context, city, region string) error {
	if region == "" {
		return nil
	}
	data, err := uc.cityRepo.GetCityData(ctx)
	if err != nil {
		return err
	}
	if !data.HasRegion(city, region) {
		return apperror.Validation("region", "does not belong to "+city)
	}
	return nil
}

var mapCoordinatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`@(-?\d+\.\d+),(-?\d+\.\d+)`),
	regexp.MustCompile(`q=(-?\d+\.\d+),(-?\d+\.\d+)`),
	regexp.MustCompile(`!3d(-?\d+\.\d+)!4d(-?\d+\.\d+)`),
}

// ParseMapURL extracts coordinates from a Google Maps link.
func (uc *LocationUseCase) ParseMapURL(url string) (*entity.GeoPoint, error) {
	return ParseMapURL(url)
}

// ParseMapURL understands "@lat,lng", "q=lat,lng" and embed "!3dlat!4dlng" links.
func ParseMapURL(url string) (*entity.GeoPoint, error) {
	for _, re := range mapCoordinatePatterns {
		m := re.FindStringSubmatch(url)
		if m == nil {
			continue
		}
		lat, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		lng, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			return nil, apperror.Validation("mapUrl", "coordinates out of range")
		}
		return &entity.GeoPoint{Lat: lat, Lng: lng}, nil
	}
	return nil, apperror.Validation("mapUrl", "no coordinates found")
}
