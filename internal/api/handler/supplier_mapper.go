package handler

import (
	"github.com/devio/fornecedores-api/internal/core/domain"
	"github.com/devio/fornecedores-api/internal/core/ports"
)

// --- Request → Service input ---

func toSupplierInput(req supplierRequest) ports.SupplierInput {
	return ports.SupplierInput{
		Name:       req.Name,
		DocumentID: req.DocumentID,
		Active:     req.Active,
		Address: ports.AddressInput{
			Street:  req.Address.Street,
			Number:  req.Address.Number,
			ZipCode: req.Address.ZipCode,
			City:    req.Address.City,
			State:   req.Address.State,
		},
	}
}

// --- Domain → HTTP response ---

func toSupplierResponse(s *domain.Supplier) supplierResponse {
	return supplierResponse{
		ID:         s.ID,
		Name:       s.Name,
		DocumentID: s.DocumentID,
		Active:     s.Active,
		Address: addressResponse{
			Street:  s.Address.Street,
			Number:  s.Address.Number,
			ZipCode: s.Address.ZipCode,
			City:    s.Address.City,
			State:   s.Address.State,
		},
		CreatedAt: s.CreatedAt.UTC(),
		UpdatedAt: s.UpdatedAt.UTC(),
	}
}

func toSupplierListResponse(suppliers []domain.Supplier) []supplierResponse {
	out := make([]supplierResponse, len(suppliers))
	for i := range suppliers {
		out[i] = toSupplierResponse(&suppliers[i])
	}
	return out
}
