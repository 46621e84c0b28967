package request

import (
	"strings"

	"mecanica_gestao/internal/usecase/interfaces"
)

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r SignUpRequest) ToNewUser() interfaces.NewUser {
	return interfaces.NewUser{
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: r.Password,
		Name:     strings.TrimSpace(r.Name),
	}
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

type UserCreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

func (r UserCreateRequest) ToNewUser() interfaces.NewUser {
	return interfaces.NewUser{Email: r.Email, Password: r.Password, Name: r.Name, Role: r.Role}
}

type UserUpdateRequest struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role" binding:"required"`
}
