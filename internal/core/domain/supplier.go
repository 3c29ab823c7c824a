package domain

import "time"

// Address is the physical location of a supplier.
type Address struct {
	Street  string `json:"street" bson:"street"`
	Number  string `json:"number" bson:"number"`
	ZipCode string `json:"zipCode" bson:"zip_code"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
}

// Supplier is the protected resource managed by this service. The ID is
// assigned at creation, never changes, and is the sole identity used by
// update and delete.
type Supplier struct {
	ID         string    `json:"id" bson:"_id"`
	Name       string    `json:"name" bson:"name"`
	DocumentID string    `json:"documentId" bson:"document_id"`
	Active     bool      `json:"active" bson:"active"`
	Address    Address   `json:"address" bson:"address"`
	CreatedAt  time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updated_at"`
}
