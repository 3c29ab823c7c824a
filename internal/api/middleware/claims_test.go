package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/devio/fornecedores-api/internal/core/domain"
)

func runRequireClaim(t *testing.T, claims jwt.MapClaims, claimType string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set(CtxClaims, claims)
	}

	called := false
	mw := RequireClaim(claimType)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusNoContent)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestRequireClaim_Allows(t *testing.T) {
	claims := jwt.MapClaims{domain.ClaimDeleteSupplier: "true"}
	rec, called := runRequireClaim(t, claims, domain.ClaimDeleteSupplier)
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestRequireClaim_MissingClaimIsForbidden(t *testing.T) {
	// authenticated but without the required claim type
	claims := jwt.MapClaims{"sub": "u1", "Relatorios": "ler"}
	rec, called := runRequireClaim(t, claims, domain.ClaimDeleteSupplier)
	if called {
		t.Fatalf("next must not run without the claim")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireClaim_EmptyValueIsForbidden(t *testing.T) {
	claims := jwt.MapClaims{domain.ClaimDeleteSupplier: ""}
	rec, _ := runRequireClaim(t, claims, domain.ClaimDeleteSupplier)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireClaim_FalseValueIsForbidden(t *testing.T) {
	claims := jwt.MapClaims{domain.ClaimDeleteSupplier: "false"}
	rec, _ := runRequireClaim(t, claims, domain.ClaimDeleteSupplier)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireClaim_MultiValuedClaim(t *testing.T) {
	// multi-valued claims arrive as []interface{} after JSON decoding
	claims := jwt.MapClaims{domain.ClaimDeleteSupplier: []interface{}{"a", "b"}}
	rec, called := runRequireClaim(t, claims, domain.ClaimDeleteSupplier)
	if !called || rec.Code != http.StatusNoContent {
		t.Fatalf("expected multi-valued claim to pass, got %d", rec.Code)
	}
}

func TestRequireClaim_NoAuthContext(t *testing.T) {
	rec, called := runRequireClaim(t, nil, domain.ClaimDeleteSupplier)
	if called {
		t.Fatalf("next must not run without auth context")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
