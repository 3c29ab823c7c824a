package domain

import "errors"

var (
	// ErrEmailTaken is returned when registering an e-mail that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers bad password, unknown account and
	// unconfirmed e-mail uniformly, so login failures never disclose whether
	// the e-mail exists.
	ErrInvalidCredentials = errors.New("invalid user or password")
	// ErrAccountLocked is returned while the lockout window is open,
	// regardless of password correctness.
	ErrAccountLocked = errors.New("account temporarily locked")
	// ErrUserNotFound is a store-level miss; the auth service translates it
	// before it reaches a client.
	ErrUserNotFound = errors.New("user not found")

	ErrSupplierNotFound = errors.New("supplier not found")
	// ErrSaveFailed signals that a commit reported zero affected rows. The
	// store gives no reason, so neither do we.
	ErrSaveFailed = errors.New("no rows were saved")
)
