package usecasecontract

import "github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"

type IValidator interface {
	ValidateEmail(email string) error
	// ValidateSupplier returns an apperror Validation error naming the first bad field.
	ValidateSupplier(supplier *entity.Supplier) error
}
