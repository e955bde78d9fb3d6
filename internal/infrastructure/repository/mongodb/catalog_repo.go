package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/contract"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
)

// CategoryRepository stores one document per category name.
type CategoryRepository struct {
	collection *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{collection: db.Collection("categories")}
}

var _ contract.ICategoryRepository = (*CategoryRepository)(nil)

type categoryDoc struct {
	Name string `bson:"_id"`
}

func (r *CategoryRepository) ListCategories(ctx context.Context) ([]string, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, bySeq)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []categoryDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(docs))
	for _, d := range docs {
		names = append(names, d.Name)
	}
	return names, nil
}

func (r *CategoryRepository) AddCategory(ctx context.Context, name string) (bool, error) {
	err := insertWithSeq(ctx, r.collection, categoryDoc{Name: name})
	if mongo.IsDuplicateKeyError(err) {
		return false, nil
	}
	return err == nil, err
}

func (r *CategoryRepository) RemoveCategory(ctx context.Context, name string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": name})
	return err
}

const settingsID = "app"

// SettingsRepository keeps the settings singleton in a single document.
type SettingsRepository struct {
	collection *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{collection: db.Collection("settings")}
}

var _ contract.ISettingsRepository = (*SettingsRepository)(nil)

// GetSettings falls back to the defaults until an admin saves settings.
func (r *SettingsRepository) GetSettings(ctx context.Context) (entity.AppSettings, error) {
	var s entity.AppSettings
	err := r.collection.FindOne(ctx, bson.M{"_id": settingsID}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entity.DefaultSettings(), nil
	}
	return s, err
}

func (r *SettingsRepository) ReplaceSettings(ctx context.Context, settings entity.AppSettings) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": settingsID}, settings, options.Replace().SetUpsert(true))
	return err
}

// CityRepository stores one document per city holding its region list.
type CityRepository struct {
	collection *mongo.Collection
}

func NewCityRepository(db *mongo.Database) *CityRepository {
	return &CityRepository{collection: db.Collection("cities")}
}

var _ contract.ICityRepository = (*CityRepository)(nil)

func (r *CityRepository) GetCityData(ctx context.Context) (entity.CityData, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, bySeq)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	data := entity.CityData{}
	if err := cursor.All(ctx, &data); err != nil {
		return nil, err
	}
	for i := range data {
		if data[i].Regions == nil {
			data[i].Regions = []string{}
		}
	}
	return data, nil
}

func (r *CityRepository) RegisterCity(ctx context.Context, city string) (bool, error) {
	err := insertWithSeq(ctx, r.collection, entity.CityRegions{City: city, Regions: []string{}})
	if mongo.IsDuplicateKeyError(err) {
		return false, nil
	}
	return err == nil, err
}

// RegisterRegion appends region under city, creating the city when needed.
// When the region is already present the filter misses and the upsert
// collides on _id, which is reported as "not added".
func (r *CityRepository) RegisterRegion(ctx context.Context, city, region string) (bool, error) {
	filter := bson.M{"_id": city, "regions": bson.M{"$ne": region}}
	update := bson.M{
		"$push":        bson.M{"regions": region},
		"$setOnInsert": bson.M{seqField: nextSeq()},
	}
	res, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0 || res.UpsertedCount > 0, nil
}
