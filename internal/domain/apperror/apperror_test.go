package apperror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/apperror"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(apperror.NotFound("supplier", "9")))
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(apperror.Validation("name", "required")))
	assert.Equal(t, apperror.KindUnknown, apperror.KindOf(errors.New("boom")))
	assert.Equal(t, apperror.KindUnknown, apperror.KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("login: %w", apperror.AuthRejected(apperror.ReasonBanned, "account banned"))
	assert.True(t, apperror.IsAuthRejected(err))
	assert.True(t, apperror.HasReason(err, apperror.ReasonBanned))
	assert.False(t, apperror.HasReason(err, apperror.ReasonRegistrationClosed))
	assert.Equal(t, "login: account banned", err.Error())
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, `supplier "9" not found`, apperror.NotFound("supplier", "9").Error())
	assert.Equal(t, "invalid rating: must be between 1 and 5", apperror.Validation("rating", "must be between 1 and 5").Error())
	assert.Equal(t, "authentication rejected: forbidden", apperror.AuthRejected(apperror.ReasonForbidden, "").Error())
}

func TestWrapValidationUnwraps(t *testing.T) {
	inner := errors.New("bad email")
	err := apperror.WrapValidation("email", inner)
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "email", err.Field)
}
