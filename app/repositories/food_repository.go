package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/foodcourt/app/models"
	"github.com/shashiranjanraj/foodcourt/pkg/database"
)

// FoodRepository handles the foods collection.
type FoodRepository struct {
	col *mongo.Collection
}

func NewFoodRepository() *FoodRepository {
	return &FoodRepository{col: database.Collection("foods")}
}

// All returns every catalog entry.
func (r *FoodRepository) All(ctx context.Context) ([]models.Food, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("foods: find all: %w", err)
	}
	defer cur.Close(ctx)

	foods := []models.Food{}
	if err := cur.All(ctx, &foods); err != nil {
		return nil, fmt.Errorf("foods: decode: %w", err)
	}
	return foods, nil
}

// FindByID looks up one catalog entry.
func (r *FoodRepository) FindByID(ctx context.Context, id string) (*models.Food, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var food models.Food
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&food)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("foods: find by id: %w", err)
	}
	return &food, nil
}

// Create persists a new catalog entry and fills in its generated ID.
func (r *FoodRepository) Create(ctx context.Context, food *models.Food) error {
	res, err := r.col.InsertOne(ctx, food)
	if err != nil {
		return fmt.Errorf("foods: insert: %w", err)
	}
	food.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Delete removes a catalog entry by ID.
func (r *FoodRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("foods: delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of catalog entries (used by the seeder).
func (r *FoodRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("foods: count: %w", err)
	}
	return n, nil
}
