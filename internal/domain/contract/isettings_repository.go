package contract

import (
	"context"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
)

type ISettingsRepository interface {
	GetSettings(ctx context.Context) (entity.AppSettings, error)
	// ReplaceSettings overwrites the whole settings object.
	ReplaceSettings(ctx context.Context, settings entity.AppSettings) error
}
