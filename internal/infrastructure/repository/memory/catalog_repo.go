package memory

import (
	"context"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/contract"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
)

type CategoryRepository struct {
	store *Store
}

func NewCategoryRepository(store *Store) *CategoryRepository {
	return &CategoryRepository{store: store}
}

var _ contract.ICategoryRepository = (*CategoryRepository)(nil)

func (r *CategoryRepository) ListCategories(ctx context.Context) ([]string, error) {
	if err := r.store.wait(ctx, r.store.latency.Categories); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]string{}, r.store.categories...), nil
}

func (r *CategoryRepository) AddCategory(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, c := range r.store.categories {
		if c == name {
			return false, nil
		}
	}
	r.store.categories = append(r.store.categories, name)
	return true, nil
}

func (r *CategoryRepository) RemoveCategory(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	kept := r.store.categories[:0]
	for _, c := range r.store.categories {
		if c != name {
			kept = append(kept, c)
		}
	}
	r.store.categories = kept
	return nil
}

type SettingsRepository struct {
	store *Store
}

func NewSettingsRepository(store *Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

var _ contract.ISettingsRepository = (*SettingsRepository)(nil)

func (r *SettingsRepository) GetSettings(ctx context.Context) (entity.AppSettings, error) {
	if err := r.store.wait(ctx, r.store.latency.Settings); err != nil {
		return entity.AppSettings{}, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.settings, nil
}

func (r *SettingsRepository) ReplaceSettings(ctx context.Context, settings entity.AppSettings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.settings = settings
	return nil
}

type CityRepository struct {
	store *Store
}

func NewCityRepository(store *Store) *CityRepository {
	return &CityRepository{store: store}
}

var _ contract.ICityRepository = (*CityRepository)(nil)

func (r *CityRepository) GetCityData(ctx context.Context) (entity.CityData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.cities.Clone(), nil
}

func (r *CityRepository) RegisterCity(ctx context.Context, city string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.cities.AddCity(city), nil
}

func (r *CityRepository) RegisterRegion(ctx context.Context, city, region string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.cities.AddRegion(city, region), nil
}
