package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/devio/fornecedores-api/internal/core/domain"
	"github.com/devio/fornecedores-api/internal/core/ports"
)

// IssueToken builds and signs an access token for an already-authenticated
// user. The claim set is the union of the user's direct claims, the claims of
// every role held, and one role-membership claim per role name; standard
// identity claims (sub, email, jti, iat, nbf, exp, iss, aud) are added on top.
//
// Issuance is a pure function of its arguments: no store access, no shared
// state. Callers re-derive the user record by e-mail right before calling so
// the claims are fresh at issuance time.
func IssueToken(user *domain.User, roles []domain.Role, settings ports.TokenSettings, now time.Time) (*ports.TokenResponse, error) {
	claimSet := domain.AggregateClaims(user.Claims, roles)

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
		"exp":   now.Add(settings.TTL).Unix(),
		"iss":   settings.Issuer,
		"aud":   settings.Audience,
	}
	mergeClaims(claims, claimSet)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(settings.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	roleNames := make([]string, len(roles))
	for i, r := range roles {
		roleNames[i] = r.Name
	}

	return &ports.TokenResponse{
		Token:     signed,
		ExpiresIn: int64(settings.TTL.Seconds()),
		User: ports.TokenUser{
			ID:     user.ID,
			Email:  user.Email,
			Claims: claimSet,
			Roles:  roleNames,
		},
	}, nil
}

// mergeClaims flattens the aggregated claim set into the JWT payload. A claim
// type that appears once maps to its value; repeated types collect into an
// array, mirroring multi-valued claims on the verification side.
func mergeClaims(payload jwt.MapClaims, claims []domain.Claim) {
	for _, c := range claims {
		existing, ok := payload[c.Type]
		if !ok {
			payload[c.Type] = c.Value
			continue
		}
		switch v := existing.(type) {
		case string:
			payload[c.Type] = []string{v, c.Value}
		case []string:
			payload[c.Type] = append(v, c.Value)
		}
	}
}
