package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
)

type IAdminUseCase interface {
	FetchCategories(ctx context.Context) ([]string, error)
	AddCategory(ctx context.Context, name string) ([]string, error)
	RemoveCategory(ctx context.Context, name string) ([]string, error)
	FetchSettings(ctx context.Context) (entity.AppSettings, error)
	UpdateSettings(ctx context.Context, settings entity.AppSettings) (entity.AppSettings, error)
	DashboardStats(ctx context.Context) (entity.DashboardStats, error)
}
