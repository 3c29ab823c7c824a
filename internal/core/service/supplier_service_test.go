package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/devio/fornecedores-api/internal/core/domain"
	"github.com/devio/fornecedores-api/internal/core/ports"
)

type stubSupplierRepo struct {
	suppliers map[string]*domain.Supplier

	addCount     int64
	replaceCount int64
	removeCount  int64

	replaceCalled bool
	removeCalled  bool
	lastReplaced  *domain.Supplier
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{
		suppliers:    make(map[string]*domain.Supplier),
		addCount:     1,
		replaceCount: 1,
		removeCount:  1,
	}
}

func (r *stubSupplierRepo) List(_ context.Context) ([]domain.Supplier, error) {
	out := make([]domain.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id string) (*domain.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, domain.ErrSupplierNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubSupplierRepo) Add(_ context.Context, s *domain.Supplier) (int64, error) {
	if r.addCount > 0 {
		clone := *s
		r.suppliers[s.ID] = &clone
	}
	return r.addCount, nil
}

func (r *stubSupplierRepo) Replace(_ context.Context, s *domain.Supplier) (int64, error) {
	r.replaceCalled = true
	r.lastReplaced = s
	if r.replaceCount > 0 {
		clone := *s
		r.suppliers[s.ID] = &clone
	}
	return r.replaceCount, nil
}

func (r *stubSupplierRepo) Remove(_ context.Context, id string) (int64, error) {
	r.removeCalled = true
	if r.removeCount > 0 {
		delete(r.suppliers, id)
	}
	return r.removeCount, nil
}

func validInput() ports.SupplierInput {
	return ports.SupplierInput{
		Name:       "Fornecedor Um",
		DocumentID: "12345678000190",
		Active:     true,
		Address: ports.AddressInput{
			Street:  "Rua das Flores",
			Number:  "100",
			ZipCode: "01001000",
			City:    "São Paulo",
			State:   "SP",
		},
	}
}

func TestSupplierService_Create_Success(t *testing.T) {
	repo := newStubSupplierRepo()
	svc := NewSupplierService(repo, zerolog.Nop())

	supplier, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if supplier.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if supplier.Name != "Fornecedor Um" {
		t.Fatalf("unexpected supplier: %+v", supplier)
	}
	if _, ok := repo.suppliers[supplier.ID]; !ok {
		t.Fatalf("supplier not persisted")
	}
}

func TestSupplierService_Create_ZeroCountIsSaveFailed(t *testing.T) {
	repo := newStubSupplierRepo()
	repo.addCount = 0
	svc := NewSupplierService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), validInput()); err != domain.ErrSaveFailed {
		t.Fatalf("expected ErrSaveFailed, got %v", err)
	}
}

func TestSupplierService_Update_Success(t *testing.T) {
	repo := newStubSupplierRepo()
	svc := NewSupplierService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	in := validInput()
	in.Name = "Fornecedor Renomeado"
	in.Active = false
	if err := svc.Update(context.Background(), created.ID, in); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	stored := repo.suppliers[created.ID]
	if stored.Name != "Fornecedor Renomeado" || stored.Active {
		t.Fatalf("expected full replace, got %+v", stored)
	}
	if !stored.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("expected creation time to be preserved")
	}
}

func TestSupplierService_Update_NotFoundDoesNotMutate(t *testing.T) {
	repo := newStubSupplierRepo()
	svc := NewSupplierService(repo, zerolog.Nop())

	if err := svc.Update(context.Background(), "missing", validInput()); err != domain.ErrSupplierNotFound {
		t.Fatalf("expected ErrSupplierNotFound, got %v", err)
	}
	if repo.replaceCalled {
		t.Fatalf("replace must not run for a missing id")
	}
}

func TestSupplierService_Update_ZeroCountIsSaveFailed(t *testing.T) {
	repo := newStubSupplierRepo()
	svc := NewSupplierService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), validInput())
	repo.replaceCount = 0

	if err := svc.Update(context.Background(), created.ID, validInput()); err != domain.ErrSaveFailed {
		t.Fatalf("expected ErrSaveFailed, got %v", err)
	}
}

func TestSupplierService_Delete_Success(t *testing.T) {
	repo := newStubSupplierRepo()
	svc := NewSupplierService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), validInput())
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, ok := repo.suppliers[created.ID]; ok {
		t.Fatalf("supplier still present after delete")
	}
}

func TestSupplierService_Delete_NotFound(t *testing.T) {
	repo := newStubSupplierRepo()
	svc := NewSupplierService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing"); err != domain.ErrSupplierNotFound {
		t.Fatalf("expected ErrSupplierNotFound, got %v", err)
	}
	if repo.removeCalled {
		t.Fatalf("remove must not run for a missing id")
	}
}

func TestSupplierService_Delete_ZeroCountIsSaveFailed(t *testing.T) {
	repo := newStubSupplierRepo()
	svc := NewSupplierService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), validInput())
	repo.removeCount = 0

	if err := svc.Delete(context.Background(), created.ID); err != domain.ErrSaveFailed {
		t.Fatalf("expected ErrSaveFailed, got %v", err)
	}
}
