package ports

import (
	"context"

	"github.com/devio/fornecedores-api/internal/core/domain"
)

// SupplierRepository defines persistence operations for suppliers. Every
// write returns the affected-row count reported by the store; the service
// layer treats a zero count as a failed save.
type SupplierRepository interface {
	List(ctx context.Context) ([]domain.Supplier, error)
	// FindByID returns domain.ErrSupplierNotFound when the id is absent.
	// The read is plain (no tracking, no lock); it exists only so callers
	// can check existence before mutating.
	FindByID(ctx context.Context, id string) (*domain.Supplier, error)
	Add(ctx context.Context, s *domain.Supplier) (int64, error)
	// Replace overwrites the stored record wholesale, keyed by s.ID.
	Replace(ctx context.Context, s *domain.Supplier) (int64, error)
	Remove(ctx context.Context, id string) (int64, error)
}
