package handler

import "time"

// --- Request types ---

type addressRequest struct {
	Street  string `json:"street"  validate:"required,min=2,max=200"`
	Number  string `json:"number"  validate:"required,max=50"`
	ZipCode string `json:"zipCode" validate:"required,len=8"`
	City    string `json:"city"    validate:"required,min=2,max=100"`
	State   string `json:"state"   validate:"required,len=2"`
}

// supplierRequest is the full write payload for create and update. The id is
// never accepted in the body.
type supplierRequest struct {
	Name       string         `json:"name"       validate:"required,min=2,max=100"`
	DocumentID string         `json:"documentId" validate:"required,min=11,max=14"`
	Active     bool           `json:"active"`
	Address    addressRequest `json:"address"    validate:"required"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type addressResponse struct {
	Street  string `json:"street"`
	Number  string `json:"number"`
	ZipCode string `json:"zipCode"`
	City    string `json:"city"`
	State   string `json:"state"`
}

type supplierResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	DocumentID string          `json:"documentId"`
	Active     bool            `json:"active"`
	Address    addressResponse `json:"address"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
