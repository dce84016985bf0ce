package dto

import "civicfix_backend/internal/models"

type RegisterRequest struct {
	FullName     string `json:"full_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	MobileNumber string `json:"mobile_number"`
	Address      string `json:"address"`
	Password     string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID       string          `json:"id"`
	FullName string          `json:"full_name"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}
