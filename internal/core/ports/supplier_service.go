package ports

import (
	"context"

	"github.com/devio/fornecedores-api/internal/core/domain"
)

// AddressInput holds a supplier address as received from the transport layer.
type AddressInput struct {
	Street  string
	Number  string
	ZipCode string
	City    string
	State   string
}

// SupplierInput carries all writable supplier fields. The id is never part of
// the payload: create assigns it, update takes it from the route.
type SupplierInput struct {
	Name       string
	DocumentID string
	Active     bool
	Address    AddressInput
}

// SupplierService defines the supplier use cases.
type SupplierService interface {
	List(ctx context.Context) ([]domain.Supplier, error)
	Get(ctx context.Context, id string) (*domain.Supplier, error)
	Create(ctx context.Context, in SupplierInput) (*domain.Supplier, error)
	// Update replaces the record wholesale (full overwrite, not a merge).
	Update(ctx context.Context, id string, in SupplierInput) error
	Delete(ctx context.Context, id string) error
}
