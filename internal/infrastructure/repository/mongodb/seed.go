package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/seed"
)

// EnsureIndexes creates the indexes the repositories rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	seqIndex := mongo.IndexModel{Keys: bson.D{{Key: seqField, Value: 1}}}
	for _, name := range []string{"suppliers", "users", "categories", "cities"} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, seqIndex); err != nil {
			return fmt.Errorf("create seq index on %s: %w", name, err)
		}
	}
	emailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetCollation(caseInsensitive),
	}
	if _, err := db.Collection("users").Indexes().CreateOne(ctx, emailIndex); err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

// SeedIfEmpty loads ds into every collection that has no documents yet.
// It returns the names of the collections it filled.
func SeedIfEmpty(ctx context.Context, db *mongo.Database, ds *seed.Dataset) ([]string, error) {
	var seeded []string
	fill := func(name string, n int, insert func(coll *mongo.Collection, i int) error) error {
		coll := db.Collection(name)
		count, err := coll.EstimatedDocumentCount(ctx)
		if err != nil {
			return fmt.Errorf("count %s: %w", name, err)
		}
		if count > 0 || n == 0 {
			return nil
		}
		for i := 0; i < n; i++ {
			if err := insert(coll, i); err != nil {
				return fmt.Errorf("seed %s: %w", name, err)
			}
		}
		seeded = append(seeded, name)
		return nil
	}

	if err := fill("suppliers", len(ds.Suppliers), func(c *mongo.Collection, i int) error {
		return insertWithSeq(ctx, c, ds.Suppliers[i])
	}); err != nil {
		return seeded, err
	}
	if err := fill("users", len(ds.Users), func(c *mongo.Collection, i int) error {
		return insertWithSeq(ctx, c, ds.Users[i])
	}); err != nil {
		return seeded, err
	}
	if err := fill("categories", len(ds.Categories), func(c *mongo.Collection, i int) error {
		return insertWithSeq(ctx, c, categoryDoc{Name: ds.Categories[i]})
	}); err != nil {
		return seeded, err
	}
	if err := fill("cities", len(ds.Cities), func(c *mongo.Collection, i int) error {
		return insertWithSeq(ctx, c, ds.Cities[i])
	}); err != nil {
		return seeded, err
	}
	if ds.Settings != nil {
		if err := fill("settings", 1, func(c *mongo.Collection, _ int) error {
			_, err := c.InsertOne(ctx, bson.M{
				"_id":                          settingsID,
				"registration_open":            ds.Settings.RegistrationOpen,
				"maintenance_mode":             ds.Settings.MaintenanceMode,
				"allow_user_supplier_creation": ds.Settings.AllowUserSupplierCreation,
			})
			return err
		}); err != nil {
			return seeded, err
		}
	}
	return seeded, nil
}
