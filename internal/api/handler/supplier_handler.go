package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devio/fornecedores-api/internal/api/metrics"
	"github.com/devio/fornecedores-api/internal/core/domain"
	"github.com/devio/fornecedores-api/internal/core/ports"
)

// SupplierHandler handles HTTP requests for supplier operations.
type SupplierHandler struct {
	service ports.SupplierService
}

func NewSupplierHandler(service ports.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: service}
}

// List handles GET /fornecedor.
//
// @Summary      List all suppliers
// @Tags         suppliers
// @Produce      json
// @Success      200  {array}  supplierResponse
// @Router       /fornecedor [get]
func (h *SupplierHandler) List(c echo.Context) error {
	suppliers, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSupplierListResponse(suppliers))
}

// Get handles GET /fornecedor/:id.
//
// @Summary      Get a supplier by id
// @Tags         suppliers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Supplier id"
// @Success      200  {object}  supplierResponse
// @Failure      404  {object}  map[string]string
// @Router       /fornecedor/{id} [get]
func (h *SupplierHandler) Get(c echo.Context) error {
	supplier, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSupplierResponse(supplier))
}

// Create handles POST /fornecedor.
//
// @Summary      Create a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      supplierRequest  true  "Supplier details"
// @Success      201   {object}  supplierResponse
// @Failure      400   {object}  map[string]string
// @Router       /fornecedor [post]
func (h *SupplierHandler) Create(c echo.Context) error {
	var req supplierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.SupplierWritesTotal.WithLabelValues("create", "validation").Inc()
		return err
	}

	supplier, err := h.service.Create(c.Request().Context(), toSupplierInput(req))
	if err != nil {
		metrics.SupplierWritesTotal.WithLabelValues("create", writeResult(err)).Inc()
		return err
	}

	metrics.SupplierWritesTotal.WithLabelValues("create", "ok").Inc()
	c.Response().Header().Set(echo.HeaderLocation, "/fornecedor/"+supplier.ID)
	return c.JSON(http.StatusCreated, toSupplierResponse(supplier))
}

// Update handles PUT /fornecedor/:id. The existence check runs before payload
// validation: an unknown id is a 404 even when the body is invalid.
//
// @Summary      Update a supplier (full replace)
// @Tags         suppliers
// @Accept       json
// @Security     BearerAuth
// @Param        id    path    string           true  "Supplier id"
// @Param        body  body    supplierRequest  true  "Supplier details"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /fornecedor/{id} [put]
func (h *SupplierHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var req supplierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if _, err := h.service.Get(c.Request().Context(), id); err != nil {
		metrics.SupplierWritesTotal.WithLabelValues("update", writeResult(err)).Inc()
		return err
	}
	if err := c.Validate(&req); err != nil {
		metrics.SupplierWritesTotal.WithLabelValues("update", "validation").Inc()
		return err
	}

	if err := h.service.Update(c.Request().Context(), id, toSupplierInput(req)); err != nil {
		metrics.SupplierWritesTotal.WithLabelValues("update", writeResult(err)).Inc()
		return err
	}

	metrics.SupplierWritesTotal.WithLabelValues("update", "ok").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /fornecedor/:id. Routing additionally gates this on
// the delete-supplier claim.
//
// @Summary      Delete a supplier
// @Tags         suppliers
// @Security     BearerAuth
// @Param        id  path  string  true  "Supplier id"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /fornecedor/{id} [delete]
func (h *SupplierHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		metrics.SupplierWritesTotal.WithLabelValues("delete", writeResult(err)).Inc()
		return err
	}

	metrics.SupplierWritesTotal.WithLabelValues("delete", "ok").Inc()
	return c.NoContent(http.StatusNoContent)
}

func writeResult(err error) string {
	if errors.Is(err, domain.ErrSupplierNotFound) {
		return "not_found"
	}
	return "failed"
}
