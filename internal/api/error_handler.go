package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devio/fornecedores-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// validationResponse is the envelope for field-level validation failures.
type validationResponse struct {
	Error  string                  `json:"error"`
	Fields []domain.FieldViolation `json:"fields"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation failures with their full field/message list.
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, validationResponse{
				Error:  "dados inválidos",
				Fields: ve.Violations,
			})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. The HTTP contract puts
	// all credential failures at 400 with user-safe generic messages.
	switch {
	case errors.Is(err, domain.ErrAccountLocked):
		return http.StatusBadRequest, "Usuário bloqueado"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, "Usuário ou senha incorretos"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, "E-mail já cadastrado"
	case errors.Is(err, domain.ErrSaveFailed):
		return http.StatusBadRequest, "Não foi possível salvar os dados"
	case errors.Is(err, domain.ErrSupplierNotFound):
		return http.StatusNotFound, "Fornecedor não encontrado"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Usuário não encontrado"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
