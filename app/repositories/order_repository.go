package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/foodcourt/app/models"
	"github.com/shashiranjanraj/foodcourt/pkg/database"
)

// OrderRepository handles the orders collection.
type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{col: database.Collection("orders")}
}

// Create persists a new order and fills in its generated ID.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	if order.Status == "" {
		order.Status = models.StatusProcessing
	}
	if order.Date.IsZero() {
		order.Date = time.Now().UTC()
	}

	res, err := r.col.InsertOne(ctx, order)
	if err != nil {
		return fmt.Errorf("orders: insert: %w", err)
	}
	order.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID looks up one order.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var order models.Order
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("orders: find by id: %w", err)
	}
	return &order, nil
}

// All returns every order, newest first (admin view).
func (r *OrderRepository) All(ctx context.Context) ([]models.Order, error) {
	return r.find(ctx, bson.M{})
}

// ByUser returns the orders owned by userID, newest first.
func (r *OrderRepository) ByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("orders: find: %w", err)
	}
	defer cur.Close(ctx)

	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("orders: decode: %w", err)
	}
	return orders, nil
}

// UpdateStatus overwrites the order's status.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.update(ctx, id, bson.M{"$set": bson.M{"status": status}})
}

// SetPayment flips the order's payment flag.
func (r *OrderRepository) SetPayment(ctx context.Context, id string, paid bool) error {
	return r.update(ctx, id, bson.M{"$set": bson.M{"payment": paid}})
}

func (r *OrderRepository) update(ctx context.Context, id string, update bson.M) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("orders: update: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an order (the cancelled-payment path).
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("orders: delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
