package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/devio/fornecedores-api/internal/core/ports"
)

// Context keys populated by Auth for downstream handlers and policies.
const (
	CtxSubject = "sub"
	CtxEmail   = "email"
	CtxClaims  = "claims"
)

// Auth validates the bearer token and injects its claims into the request
// context. Verification is stateless: signature, algorithm, issuer, audience
// and expiry only — the credential store is never consulted, so tokens are
// trusted until they expire.
func Auth(settings ports.TokenSettings) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(settings.Secret), nil
			},
				jwt.WithIssuer(settings.Issuer),
				jwt.WithAudience(settings.Audience),
				jwt.WithExpirationRequired(),
			)
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxSubject, claims["sub"])
			c.Set(CtxEmail, claims["email"])
			c.Set(CtxClaims, claims)

			return next(c)
		}
	}
}
