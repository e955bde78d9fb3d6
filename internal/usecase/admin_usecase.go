package usecase

import (
	"context"
	"strings"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/apperror"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/contract"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/SuppliersEgypt/internal/usecase/contract"
)

// AdminUseCase covers categories, settings and the dashboard counters.
type AdminUseCase struct {
	categoryRepo contract.ICategoryRepository
	settingsRepo contract.ISettingsRepository
	supplierRepo contract.ISupplierRepository
	userRepo     contract.IUserRepository
	logger       usecasecontract.IAppLogger
}

func NewAdminUseCase(
	categoryRepo contract.ICategoryRepository,
	settingsRepo contract.ISettingsRepository,
	supplierRepo contract.ISupplierRepository,
	userRepo contract.IUserRepository,
	logger usecasecontract.IAppLogger,
) *AdminUseCase {
	return &AdminUseCase{
		categoryRepo: categoryRepo,
		settingsRepo: settingsRepo,
		supplierRepo: supplierRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

var _ usecasecontract.IAdminUseCase = (*AdminUseCase)(nil)

func (uc *AdminUseCase) FetchCategories(ctx context.Context) ([]string, error) {
	return uc.categoryRepo.ListCategories(ctx)
}

// AddCategory is a no-op when the category already exists. It returns the
// resulting list.
func (uc *AdminUseCase) AddCategory(ctx context.Context, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.Validation("name", "is required")
	}
	added, err := uc.categoryRepo.AddCategory(ctx, name)
	if err != nil {
		uc.logger.Errorf("failed to add category %q: %v", name, err)
		return nil, err
	}
	if added {
		uc.logger.Infof("category added: %s", name)
	}
	return uc.categoryRepo.ListCategories(ctx)
}

// RemoveCategory drops name from the vocabulary. Suppliers keep their value.
func (uc *AdminUseCase) RemoveCategory(ctx context.Context, name string) ([]string, error) {
	if err := uc.categoryRepo.RemoveCategory(ctx, name); err != nil {
		uc.logger.Errorf("failed to remove category %q: %v", name, err)
		return nil, err
	}
	return uc.categoryRepo.ListCategories(ctx)
}

func (uc *AdminUseCase) FetchSettings(ctx context.Context) (entity.AppSettings, error) {
	return uc.settingsRepo.GetSettings(ctx)
}

// UpdateSettings replaces the whole settings object.
func (uc *AdminUseCase) UpdateSettings(ctx context.Context, settings entity.AppSettings) (entity.AppSettings, error) {
	if err := uc.settingsRepo.ReplaceSettings(ctx, settings); err != nil {
		uc.logger.Errorf("failed to update settings: %v", err)
		return entity.AppSettings{}, err
	}
	uc.logger.Infof("settings updated: %+v", settings)
	return settings, nil
}

func (uc *AdminUseCase) DashboardStats(ctx context.Context) (entity.DashboardStats, error) {
	var stats entity.DashboardStats

	suppliers, err := uc.supplierRepo.ListSuppliers(ctx)
	if err != nil {
		return stats, err
	}
	users, err := uc.userRepo.ListUsers(ctx)
	if err != nil {
		return stats, err
	}
	categories, err := uc.categoryRepo.ListCategories(ctx)
	if err != nil {
		return stats, err
	}

	stats.Suppliers = len(suppliers)
	for _, s := range suppliers {
		if s.IsVerified {
			stats.VerifiedSuppliers++
		}
	}
	stats.Users = len(users)
	for _, u := range users {
		if !u.IsActive {
			stats.BannedUsers++
		}
	}
	stats.Categories = len(categories)
	return stats, nil
}
