package dto

import "github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"

// LoginRequest is the passwordless sign-in payload.
type LoginRequest struct {
	Email string `json:"email" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UpdateProfileRequest is what a user may change about themselves.
type UpdateProfileRequest struct {
	Name        *string `json:"name" binding:"omitempty,notblank"`
	Phone       *string `json:"phone"`
	CompanyName *string `json:"companyName"`
}

// ToUpdates keeps only the fields that were sent.
func (r UpdateProfileRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Phone != nil {
		updates["phone"] = *r.Phone
	}
	if r.CompanyName != nil {
		updates["company_name"] = *r.CompanyName
	}
	return updates
}

// UpdateUserRequest is the admin's full replacement of an account.
type UpdateUserRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	Name        string  `json:"name" binding:"required,notblank"`
	Role        string  `json:"role" binding:"required,oneof=admin user supplier"`
	IsActive    *bool   `json:"isActive" binding:"required"`
	JoinedDate  string  `json:"joinedDate"`
	Phone       *string `json:"phone"`
	CompanyName *string `json:"companyName"`
}

func (r UpdateUserRequest) ToEntity(id string) *entity.User {
	return &entity.User{
		ID:          id,
		Email:       r.Email,
		Name:        r.Name,
		Role:        entity.UserRole(r.Role),
		IsActive:    *r.IsActive,
		JoinedDate:  r.JoinedDate,
		Phone:       r.Phone,
		CompanyName: r.CompanyName,
	}
}

type UpdateStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
