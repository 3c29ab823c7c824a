package handler

import "github.com/devio/fornecedores-api/internal/core/domain"

type registerRequest struct {
	Email           string `json:"email"           validate:"required,email"`
	Password        string `json:"password"        validate:"required,min=6,max=100"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

// tokenResponse is the fixed payload shape returned after both register and
// login.
type tokenResponse struct {
	Token     string            `json:"token"`
	ExpiresIn int64             `json:"expiresIn"`
	User      tokenUserResponse `json:"user"`
}

type tokenUserResponse struct {
	ID     string         `json:"id"`
	Email  string         `json:"email"`
	Claims []domain.Claim `json:"claims"`
	Roles  []string       `json:"roles"`
}
