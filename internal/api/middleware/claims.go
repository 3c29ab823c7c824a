package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// RequireClaim enforces a named claim policy on top of Auth: the token must
// carry a claim of exactly this type with a non-empty, non-false value.
// Routes that only need "any authenticated principal" use Auth alone.
func RequireClaim(claimType string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(CtxClaims).(jwt.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !hasClaim(claims, claimType) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// hasClaim reports whether the claim type is present with a usable value.
// Multi-valued claims arrive as arrays after JSON round-tripping.
func hasClaim(claims jwt.MapClaims, claimType string) bool {
	switch v := claims[claimType].(type) {
	case string:
		return v != "" && v != "false"
	case bool:
		return v
	case []interface{}:
		return len(v) > 0
	case []string:
		return len(v) > 0
	case nil:
		return false
	default:
		return true
	}
}
