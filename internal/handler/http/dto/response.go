package dto

import (
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
)

// UserResponse is the DTO for a user.
type UserResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	IsActive    bool    `json:"isActive"`
	JoinedDate  string  `json:"joinedDate"`
	Phone       *string `json:"phone,omitempty"`
	CompanyName *string `json:"companyName,omitempty"`
}

// LoginResponse is the DTO for a successful login.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// TokenResponse is returned by the refresh endpoint.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Role:        string(user.Role),
		IsActive:    user.IsActive,
		JoinedDate:  user.JoinedDate,
		Phone:       user.Phone,
		CompanyName: user.CompanyName,
	}
}

func ToUserResponses(users []entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}

// SupplierListResponse wraps directory results.
type SupplierListResponse struct {
	Suppliers []entity.Supplier `json:"suppliers"`
	Total     int               `json:"total"`
}

func NewSupplierListResponse(list []entity.Supplier) SupplierListResponse {
	if list == nil {
		list = []entity.Supplier{}
	}
	return SupplierListResponse{Suppliers: list, Total: len(list)}
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type CitiesResponse struct {
	Cities entity.CityData `json:"cities"`
}

type ResolveRegionResponse struct {
	City   string `json:"city"`
	Region string `json:"region"`
}

// AddedResponse reports whether a vocabulary entry was new.
type AddedResponse struct {
	Added bool `json:"added"`
}

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors. Code is the machine readable kind
// or rejection reason; Field names the offending input on validation errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Field string `json:"field,omitempty"`
}
