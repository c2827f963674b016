package dto

import (
	"github.com/budgettrackr/budget_tracker_app/internal/core/domain"
)

// CreateUserRequest defines the body of POST /auth/register.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=50"`
}

// LoginRequest accepts either username or email in one field, matching the
// frontend's single sign-in box.
type LoginRequest struct {
	EmailOrName string `json:"emailOrName" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// UpdateProfileRequest defines the body of PUT /users/profile.
// Pointers distinguish omitted fields from zero values.
type UpdateProfileRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=50"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

// ChangePasswordRequest defines the body of PUT /users/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6,max=50"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID   string `json:"userID"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
	}
}
