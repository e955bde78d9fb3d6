package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/apperror"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/contract"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
)

const maxReviewRetries = 5

var supplierOptionalKeys = []string{
	"region", "address", "location", "min_order_value", "founded_year", "email", "website",
}

// SupplierRepository is the MongoDB implementation of ISupplierRepository.
type SupplierRepository struct {
	collection *mongo.Collection
}

func NewSupplierRepository(db *mongo.Database) *SupplierRepository {
	return &SupplierRepository{collection: db.Collection("suppliers")}
}

var _ contract.ISupplierRepository = (*SupplierRepository)(nil)

func (r *SupplierRepository) ListSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, bySeq)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	suppliers := []entity.Supplier{}
	if err := cursor.All(ctx, &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *SupplierRepository) GetSupplierByID(ctx context.Context, id string) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SupplierRepository) UpsertSupplier(ctx context.Context, supplier *entity.Supplier) error {
	return replaceByID(ctx, r.collection, supplier.ID, supplier, supplierOptionalKeys)
}

func (r *SupplierRepository) DeleteSupplier(ctx context.Context, id string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"_id": id})
	return err
}

// AddReview uses review_count as a version guard: the write only lands if no
// other review was applied since the read, otherwise it re-reads and retries.
func (r *SupplierRepository) AddReview(ctx context.Context, supplierID string, review entity.Review) (*entity.Supplier, error) {
	for attempt := 0; attempt < maxReviewRetries; attempt++ {
		current, err := r.GetSupplierByID(ctx, supplierID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, apperror.NotFound("supplier", supplierID)
		}
		prevCount := current.ReviewCount
		current.ApplyReview(review)

		filter := bson.M{"_id": supplierID, "review_count": prevCount}
		update := bson.M{
			"$set": bson.M{
				"rating":       current.Rating,
				"review_count": current.ReviewCount,
			},
			"$push": bson.M{
				"reviews": bson.M{"$each": []entity.Review{review}, "$position": 0},
			},
		}
		res, err := r.collection.UpdateOne(ctx, filter, update)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 1 {
			return current, nil
		}
	}
	return nil, fmt.Errorf("review on supplier %s: too many concurrent updates", supplierID)
}
