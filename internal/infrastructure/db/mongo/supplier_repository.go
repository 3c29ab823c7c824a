package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devio/fornecedores-api/internal/core/domain"
)

const suppliersCollection = "suppliers"

// SupplierRepository persists suppliers. Write operations return the
// affected-row count the driver reports; the service layer decides what a
// zero count means.
type SupplierRepository struct {
	col *mongo.Collection
}

func NewSupplierRepository(db *mongo.Database) *SupplierRepository {
	return &SupplierRepository{col: db.Collection(suppliersCollection)}
}

func (r *SupplierRepository) List(ctx context.Context) ([]domain.Supplier, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// Sorted by creation time so the order is stable within a single read.
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer cur.Close(ctx)

	suppliers := []domain.Supplier{}
	if err := cur.All(ctx, &suppliers); err != nil {
		return nil, fmt.Errorf("decode suppliers: %w", err)
	}
	return suppliers, nil
}

func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*domain.Supplier, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Supplier
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSupplierNotFound
		}
		return nil, fmt.Errorf("find supplier: %w", err)
	}
	return &s, nil
}

// Add inserts the supplier and reports one affected row on success. A
// storage-level uniqueness violation yields a zero count without an error:
// the store gives no further reason, and neither do we.
func (r *SupplierRepository) Add(ctx context.Context, s *domain.Supplier) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, s); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("insert supplier: %w", err)
	}
	return 1, nil
}

// Replace overwrites the document keyed by s.ID wholesale. The count is
// MatchedCount, not ModifiedCount: replacing a document with identical
// content still counts as a committed write.
func (r *SupplierRepository) Replace(ctx context.Context, s *domain.Supplier) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return 0, fmt.Errorf("replace supplier: %w", err)
	}
	return res.MatchedCount, nil
}

func (r *SupplierRepository) Remove(ctx context.Context, id string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("delete supplier: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the unique document index on suppliers.
func (r *SupplierRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "document_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
