package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devio/fornecedores-api/internal/core/domain"
	"github.com/devio/fornecedores-api/internal/core/ports"
)

// SupplierService implements the supplier use cases. Every write goes through
// the repository's change-counting operations: a zero affected-row count is
// surfaced as domain.ErrSaveFailed, never as success.
type SupplierService struct {
	repo ports.SupplierRepository
	log  zerolog.Logger
}

func NewSupplierService(repo ports.SupplierRepository, log zerolog.Logger) *SupplierService {
	return &SupplierService{repo: repo, log: log}
}

func (s *SupplierService) List(ctx context.Context) ([]domain.Supplier, error) {
	return s.repo.List(ctx)
}

func (s *SupplierService) Get(ctx context.Context, id string) (*domain.Supplier, error) {
	return s.repo.FindByID(ctx, id)
}

// Create assigns a fresh id and persists the supplier.
func (s *SupplierService) Create(ctx context.Context, in ports.SupplierInput) (*domain.Supplier, error) {
	now := time.Now().UTC()
	supplier := &domain.Supplier{
		ID:         uuid.NewString(),
		Name:       in.Name,
		DocumentID: in.DocumentID,
		Active:     in.Active,
		Address:    toAddress(in.Address),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	count, err := s.repo.Add(ctx, supplier)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, domain.ErrSaveFailed
	}

	s.log.Info().Str("supplier_id", supplier.ID).Msg("supplier created")
	return supplier, nil
}

// Update overwrites the stored record wholesale. The preceding read is an
// existence check only; it takes no lock, so two concurrent updates to the
// same id race with last-write-wins semantics.
func (s *SupplierService) Update(ctx context.Context, id string, in ports.SupplierInput) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	supplier := &domain.Supplier{
		ID:         id,
		Name:       in.Name,
		DocumentID: in.DocumentID,
		Active:     in.Active,
		Address:    toAddress(in.Address),
		CreatedAt:  existing.CreatedAt,
		UpdatedAt:  time.Now().UTC(),
	}

	count, err := s.repo.Replace(ctx, supplier)
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrSaveFailed
	}

	s.log.Info().Str("supplier_id", id).Msg("supplier updated")
	return nil
}

func (s *SupplierService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.Remove(ctx, id)
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrSaveFailed
	}

	s.log.Info().Str("supplier_id", id).Msg("supplier removed")
	return nil
}

func toAddress(a ports.AddressInput) domain.Address {
	return domain.Address{
		Street:  a.Street,
		Number:  a.Number,
		ZipCode: a.ZipCode,
		City:    a.City,
		State:   a.State,
	}
}
