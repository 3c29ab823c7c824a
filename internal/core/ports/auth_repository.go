package ports

import (
	"context"
	"time"

	"github.com/devio/fornecedores-api/internal/core/domain"
)

// AuthRepository defines the persistence operations of the credential store.
type AuthRepository interface {
	// Create persists a new user. Returns domain.ErrEmailTaken when the
	// e-mail is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// SaveLockout updates the failed-attempt counter and the lockout-until
	// timestamp for the given account.
	SaveLockout(ctx context.Context, email string, failedAttempts int, lockoutUntil time.Time) error
	// FindRoles resolves role names to full role records including their claims.
	FindRoles(ctx context.Context, names []string) ([]domain.Role, error)
}
