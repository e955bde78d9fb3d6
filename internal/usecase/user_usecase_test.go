package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/apperror"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
)

func TestUpdateUserStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.userUC.UpdateUserStatus(ctx, "u2", false))
	_, _, _, err := f.authUC.LoginUser(ctx, "user@test.com")
	assert.True(t, apperror.HasReason(err, apperror.ReasonBanned))

	require.NoError(t, f.userUC.UpdateUserStatus(ctx, "u2", true))
	_, _, _, err = f.authUC.LoginUser(ctx, "user@test.com")
	assert.NoError(t, err)

	err = f.userUC.UpdateUserStatus(ctx, "ghost", false)
	assert.True(t, apperror.IsNotFound(err))
}

func TestGetUserByID(t *testing.T) {
	f := newFixture(t)
	u, err := f.userUC.GetUserByID(context.Background(), "u3")
	require.NoError(t, err)
	assert.Equal(t, "مصنع النور", u.Name)

	_, err = f.userUC.GetUserByID(context.Background(), "ghost")
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.userUC.DeleteUser(ctx, "u3"))
	require.NoError(t, f.userUC.DeleteUser(ctx, "u3"))

	users, err := f.userUC.FetchUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestUpdateUserProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.user(t, "u2")
	u.Role = entity.UserRoleSupplier
	u.Name = "أحمد"
	saved, err := f.userUC.UpdateUserProfile(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, entity.UserRoleSupplier, saved.Role)
	assert.Equal(t, "أحمد", f.user(t, "u2").Name)

	fresh := &entity.User{ID: "u9", Email: "u9@company.eg", Name: "جديد", Role: entity.UserRoleUser, IsActive: true}
	_, err = f.userUC.UpdateUserProfile(ctx, fresh)
	require.NoError(t, err)
	users, err := f.userUC.FetchUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 5)

	taken := f.user(t, "u3")
	taken.Email = "USER@test.com"
	_, err = f.userUC.UpdateUserProfile(ctx, taken)
	assert.True(t, apperror.IsValidation(err))

	bad := f.user(t, "u3")
	bad.Role = "owner"
	_, err = f.userUC.UpdateUserProfile(ctx, bad)
	assert.True(t, apperror.IsValidation(err))

	_, err = f.userUC.UpdateUserProfile(ctx, &entity.User{Email: "x@y.com", Role: entity.UserRoleUser})
	assert.True(t, apperror.IsValidation(err))
}

func TestUpdateProfile_SelfService(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	updated, err := f.userUC.UpdateProfile(ctx, "u2", map[string]interface{}{
		"name":         " أحمد علي ",
		"phone":        "",
		"company_name": "شركة علي",
		"role":         "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "أحمد علي", updated.Name)
	assert.Nil(t, updated.Phone)
	require.NotNil(t, updated.CompanyName)
	assert.Equal(t, "شركة علي", *updated.CompanyName)
	assert.Equal(t, entity.UserRoleUser, updated.Role)

	_, err = f.userUC.UpdateProfile(ctx, "u2", map[string]interface{}{"name": "  "})
	assert.True(t, apperror.IsValidation(err))

	_, err = f.userUC.UpdateProfile(ctx, "ghost", map[string]interface{}{"name": "x"})
	assert.True(t, apperror.IsNotFound(err))
}
