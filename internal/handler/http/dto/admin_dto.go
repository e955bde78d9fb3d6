package dto

import "github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"

type CategoryRequest struct {
	Name string `json:"name" binding:"required,notblank"`
}

// SettingsRequest requires every flag so a partial body can't silently
// reset the others.
type SettingsRequest struct {
	RegistrationOpen          *bool `json:"registrationOpen" binding:"required"`
	MaintenanceMode           *bool `json:"maintenanceMode" binding:"required"`
	AllowUserSupplierCreation *bool `json:"allowUserSupplierCreation" binding:"required"`
}

func (r SettingsRequest) ToEntity() entity.AppSettings {
	return entity.AppSettings{
		RegistrationOpen:          *r.RegistrationOpen,
		MaintenanceMode:           *r.MaintenanceMode,
		AllowUserSupplierCreation: *r.AllowUserSupplierCreation,
	}
}

type CityRequest struct {
	City string `json:"city" binding:"required,notblank"`
}

type RegionRequest struct {
	Region string `json:"region" binding:"required,notblank"`
}
