package entity

import (
	"github.com/golang-jwt/jwt/v5"
)

// User represents an authenticated actor of the directory
type User struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	Email       string   `bson:"email" json:"email"`
	Name        string   `bson:"name" json:"name"`
	Role        UserRole `bson:"role" json:"role"`
	IsActive    bool     `bson:"is_active" json:"isActive"`
	JoinedDate  string   `bson:"joined_date" json:"joinedDate"`
	Phone       *string  `bson:"phone,omitempty" json:"phone,omitempty"`
	CompanyName *string  `bson:"company_name,omitempty" json:"companyName,omitempty"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleUser     UserRole = "user"
	UserRoleSupplier UserRole = "supplier"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleUser, UserRoleSupplier:
		return true
	}
	return false
}

// DisplayName is what gets printed next to a review.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// Claims are the JWT claims issued to a logged-in user.
type Claims struct {
	UserID string   `json:"user_id"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}
