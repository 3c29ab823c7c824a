package domain

import "time"

// ClaimDeleteSupplier is the authorization claim required to remove suppliers.
const ClaimDeleteSupplier = "ExcluirFornecedor"

// Claim is a typed key/value assertion about a principal. Claims attach either
// directly to a user or to a role the user holds.
type Claim struct {
	Type  string `json:"type" bson:"type"`
	Value string `json:"value" bson:"value"`
}

// Role groups claims under a name. Holding a role grants all of its claims
// plus a membership claim carrying the role name itself.
type Role struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Claims []Claim `json:"claims,omitempty"`
}

// User models an account identified by its e-mail address. The lockout fields
// are mutated on failed logins; everything else is write-once at registration.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	EmailConfirmed bool      `json:"email_confirmed"`
	Claims         []Claim   `json:"claims,omitempty"`
	Roles          []string  `json:"roles,omitempty"`
	FailedAttempts int       `json:"-"`
	LockoutUntil   time.Time `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// LockedOut reports whether the account is suspended at the given instant.
func (u *User) LockedOut(now time.Time) bool {
	return !u.LockoutUntil.IsZero() && now.Before(u.LockoutUntil)
}
