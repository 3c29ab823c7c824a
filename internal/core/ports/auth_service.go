package ports

import (
	"context"
	"time"

	"github.com/devio/fornecedores-api/internal/core/domain"
)

// TokenSettings configures both halves of the token contract: the issuer
// signs with it, the auth gate verifies against it. Passed by reference from
// configuration; never global state.
type TokenSettings struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// TokenUser is the normalized view of a user embedded in the token response.
type TokenUser struct {
	ID     string         `json:"id"`
	Email  string         `json:"email"`
	Claims []domain.Claim `json:"claims"`
	Roles  []string       `json:"roles"`
}

// TokenResponse is the payload returned after both register and login.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresIn int64     `json:"expiresIn"`
	User      TokenUser `json:"user"`
}

// AuthService defines the registration and login use cases. Both return a
// freshly issued access token on success.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*TokenResponse, error)
	Login(ctx context.Context, email, password string) (*TokenResponse, error)
}
