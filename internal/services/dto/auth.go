package dto

import (
	"time"

	"changaya_backend/internal/models"
)

// RegisterRequest is the registration payload. Nothing is persisted until
// the email link is followed.
type RegisterRequest struct {
	Username   string `json:"username" validate:"required,min=3,max=50"`
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"required,max=100"`
	NationalID string `json:"national_id" validate:"required,max=20"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"omitempty,max=30"`
	Password   string `json:"password" validate:"required,min=8"`
	Role       string `json:"role" validate:"required,oneof=worker employer"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is the public shape of an account. The password hash never
// crosses this boundary.
type UserResponse struct {
	ID         string          `json:"id"`
	Username   string          `json:"username"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	NationalID string          `json:"national_id"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Role       models.UserRole `json:"role"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func ToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		NationalID: user.NationalID,
		Email:      user.Email,
		Phone:      user.Phone,
		Role:       user.Role,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}
