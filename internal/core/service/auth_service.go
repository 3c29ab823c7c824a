package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/devio/fornecedores-api/internal/core/domain"
	"github.com/devio/fornecedores-api/internal/core/ports"
)

// LockoutPolicy tunes the login-failure bookkeeping. All four knobs come from
// configuration; nothing is hard-coded.
type LockoutPolicy struct {
	// MaxAttempts is the number of consecutive failures that opens the
	// lockout window.
	MaxAttempts int
	// Window is how long the account stays locked once the threshold is hit.
	Window time.Duration
	// OnFailure enables lockout bookkeeping at all. When false, failed
	// attempts are not counted.
	OnFailure bool
	// ResetOnSuccess clears the failed-attempt counter after a successful
	// login. When false, the count persists across successful logins.
	ResetOnSuccess bool
}

// LockoutCache is an advisory fast path for lockout checks. Errors are
// tolerated: the user record in the credential store stays authoritative.
type LockoutCache interface {
	IsLocked(ctx context.Context, email string) (bool, error)
	Lock(ctx context.Context, email string, until time.Time) error
}

// AuthService implements registration, login with lockout, and token issuance.
type AuthService struct {
	repo    ports.AuthRepository
	tokens  ports.TokenSettings
	lockout LockoutPolicy
	cache   LockoutCache
	log     zerolog.Logger
}

// NewAuthService wires the credential store, token settings and lockout
// policy together. cache may be nil; lockout then relies on the store alone.
func NewAuthService(repo ports.AuthRepository, tokens ports.TokenSettings, lockout LockoutPolicy, cache LockoutCache, log zerolog.Logger) *AuthService {
	if lockout.MaxAttempts <= 0 {
		lockout.MaxAttempts = 5
	}
	if lockout.Window <= 0 {
		lockout.Window = 5 * time.Minute
	}
	return &AuthService{repo: repo, tokens: tokens, lockout: lockout, cache: cache, log: log}
}

// Register creates the account and issues its first token. The e-mail is
// confirmed automatically: this service has no verification flow.
func (s *AuthService) Register(ctx context.Context, email, password string) (*ports.TokenResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:          normalizeEmail(email),
		PasswordHash:   string(hash),
		EmailConfirmed: true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Msg("user registered")
	return s.issue(ctx, created.Email)
}

// Login verifies the credentials and issues a token. Unknown accounts, wrong
// passwords and unconfirmed e-mails all fail with ErrInvalidCredentials so
// responses never reveal whether the e-mail exists. A locked account fails
// with ErrAccountLocked regardless of password correctness.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenResponse, error) {
	email = normalizeEmail(email)
	now := time.Now().UTC()

	if s.cache != nil {
		locked, err := s.cache.IsLocked(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Msg("lockout cache check failed, falling back to store")
		} else if locked {
			return nil, domain.ErrAccountLocked
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.LockedOut(now) {
		s.cacheLock(ctx, email, user.LockoutUntil)
		return nil, domain.ErrAccountLocked
	}

	if !user.EmailConfirmed {
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, user, now)
		return nil, domain.ErrInvalidCredentials
	}

	if s.lockout.ResetOnSuccess && user.FailedAttempts > 0 {
		if err := s.repo.SaveLockout(ctx, email, 0, time.Time{}); err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("failed to reset lockout state")
		}
	}

	return s.issue(ctx, email)
}

// issue re-derives the fresh user record and its roles by e-mail and mints
// the token. A missing user here is a programming-invariant violation, not a
// user-facing condition: issuance only happens after register or login
// succeeded.
func (s *AuthService) issue(ctx context.Context, email string) (*ports.TokenResponse, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	roles, err := s.repo.FindRoles(ctx, user.Roles)
	if err != nil {
		return nil, err
	}

	return IssueToken(user, roles, s.tokens, time.Now().UTC())
}

// recordFailure increments the failed-attempt counter and opens the lockout
// window once the threshold is reached. Bookkeeping errors are logged, not
// surfaced: the login outcome is already decided.
func (s *AuthService) recordFailure(ctx context.Context, user *domain.User, now time.Time) {
	if !s.lockout.OnFailure {
		return
	}

	attempts := user.FailedAttempts + 1
	until := user.LockoutUntil
	if attempts >= s.lockout.MaxAttempts {
		until = now.Add(s.lockout.Window)
	}

	if err := s.repo.SaveLockout(ctx, user.Email, attempts, until); err != nil {
		s.log.Warn().Err(err).Str("email", user.Email).Msg("failed to persist lockout state")
		return
	}

	if now.Before(until) {
		s.log.Info().Str("email", user.Email).Time("until", until).Msg("account locked")
		s.cacheLock(ctx, user.Email, until)
	}
}

func (s *AuthService) cacheLock(ctx context.Context, email string, until time.Time) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Lock(ctx, email, until); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("failed to cache lockout")
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
