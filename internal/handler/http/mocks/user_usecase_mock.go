package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/apperror"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/SuppliersEgypt/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the UserUsecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailFetchUsers    bool
	ShouldFailGetByID       bool
	ShouldFailUpdateStatus  bool
	ShouldFailDeleteUser    bool
	ShouldFailUpdateUser    bool
	ShouldFailUpdateProfile bool

	// Return values
	MockUser entity.User

	// Captured arguments
	LastUpdates map[string]interface{}
	LastStatus  *bool
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:         "mock-user-id",
			Email:      "test@example.com",
			Name:       "Test User",
			Role:       entity.UserRoleUser,
			IsActive:   true,
			JoinedDate: "2024-01-01",
		},
	}
}

func (m *MockUserUsecase) FetchUsers(ctx context.Context) ([]entity.User, error) {
	if m.ShouldFailFetchUsers {
		return nil, errors.New("fetch users failed")
	}
	return []entity.User{m.MockUser}, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, apperror.NotFound("user", userID)
	}
	u := m.MockUser
	u.ID = userID
	return &u, nil
}

func (m *MockUserUsecase) UpdateUserStatus(ctx context.Context, userID string, isActive bool) error {
	if m.ShouldFailUpdateStatus {
		return apperror.NotFound("user", userID)
	}
	m.LastStatus = &isActive
	return nil
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, userID string) error {
	if m.ShouldFailDeleteUser {
		return errors.New("delete failed")
	}
	return nil
}

func (m *MockUserUsecase) UpdateUserProfile(ctx context.Context, user *entity.User) (*entity.User, error) {
	if m.ShouldFailUpdateUser {
		return nil, apperror.Validation("email", "invalid")
	}
	return user, nil
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error) {
	if m.ShouldFailUpdateProfile {
		return nil, errors.New("update profile failed")
	}
	m.LastUpdates = updates
	u := m.MockUser
	u.ID = userID
	if name, ok := updates["name"].(string); ok {
		u.Name = name
	}
	return &u, nil
}
