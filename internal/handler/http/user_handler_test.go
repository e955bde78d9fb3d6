package http_test

import (
	"net/http"
	"testing"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/handler/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCurrentUser(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/me", "user-token", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user@example.com", decode[dto.UserResponse](t, w).Email)
}

func TestGetCurrentUser_Banned(t *testing.T) {
	s := newTestServer(t)
	s.auth.Users["user-token"].IsActive = false

	w := s.do(t, http.MethodGet, "/api/v1/me", "user-token", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "banned", decode[dto.ErrorResponse](t, w).Code)
}

func TestUpdateCurrentUser(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodPut, "/api/v1/me", "user-token", map[string]string{"name": "أحمد", "companyName": "النور"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "أحمد", decode[dto.UserResponse](t, w).Name)
	assert.Equal(t, map[string]interface{}{"name": "أحمد", "company_name": "النور"}, s.users.LastUpdates)
}

func TestUpdateCurrentUser_BlankName(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodPut, "/api/v1/me", "user-token", map[string]string{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListUsers(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/admin/users", "user-token", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/admin/users", "admin-token", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.UserResponse](t, w), 1)

	s.users.ShouldFailFetchUsers = true
	w = s.do(t, http.MethodGet, "/api/v1/admin/users", "admin-token", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetUser(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/api/v1/admin/users/u-9", "admin-token", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u-9", decode[dto.UserResponse](t, w).ID)

	s.users.ShouldFailGetByID = true
	w = s.do(t, http.MethodGet, "/api/v1/admin/users/u-9", "admin-token", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUser(t *testing.T) {
	s := newTestServer(t)
	active := true
	body := dto.UpdateUserRequest{Email: "s@example.com", Name: "Seller", Role: "supplier", IsActive: &active}

	w := s.do(t, http.MethodPut, "/api/v1/admin/users/u-7", "admin-token", body)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.UserResponse](t, w)
	assert.Equal(t, "u-7", resp.ID)
	assert.Equal(t, entity.UserRoleSupplier, entity.UserRole(resp.Role))
}

func TestUpdateUser_InvalidRole(t *testing.T) {
	s := newTestServer(t)
	active := true
	body := dto.UpdateUserRequest{Email: "s@example.com", Name: "Seller", Role: "owner", IsActive: &active}

	w := s.do(t, http.MethodPut, "/api/v1/admin/users/u-7", "admin-token", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUserStatus(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPatch, "/api/v1/admin/users/u-1/status", "admin-token", map[string]bool{"isActive": false})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, s.users.LastStatus)
	assert.False(t, *s.users.LastStatus)

	w = s.do(t, http.MethodPatch, "/api/v1/admin/users/u-1/status", "admin-token", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	s.users.ShouldFailUpdateStatus = true
	w = s.do(t, http.MethodPatch, "/api/v1/admin/users/ghost/status", "admin-token", map[string]bool{"isActive": true})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUser(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodDelete, "/api/v1/admin/users/u-1", "admin-token", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
