package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/foodcourt/app/models"
	"github.com/shashiranjanraj/foodcourt/pkg/database"
)

// UserRepository handles the users collection.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository() *UserRepository {
	return &UserRepository{col: database.Collection("users")}
}

// FindByEmail looks up a user by email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("users: find by email: %w", err)
	}
	return &user, nil
}

// FindByID looks up a user by document ID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("users: find by id: %w", err)
	}
	return &user, nil
}

// Create persists a new user and fills in its generated ID.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.CartData == nil {
		user.CartData = map[string]int64{}
	}
	user.CreatedAt = time.Now().UTC()

	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("users: insert: %w", err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Cart returns the user's cart mapping.
func (r *UserRepository) Cart(ctx context.Context, userID string) (map[string]int64, error) {
	user, err := r.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.CartData == nil {
		return map[string]int64{}, nil
	}
	return user.CartData, nil
}

// IncrementCartItem bumps one cart entry by one in a single atomic update,
// creating the entry at 1 when absent. Concurrent increments cannot lose
// updates because the counter never leaves the database.
func (r *UserRepository) IncrementCartItem(ctx context.Context, userID, itemID string) error {
	oid, err := parseID(userID)
	if err != nil {
		return err
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"cartData." + itemID: 1}},
	)
	if err != nil {
		return fmt.Errorf("users: increment cart item: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DecrementCartItem lowers one cart entry by one, atomically guarded so the
// quantity can never go below zero: the filter only matches while the entry
// is positive, and a non-match is a silent no-op.
func (r *UserRepository) DecrementCartItem(ctx context.Context, userID, itemID string) error {
	oid, err := parseID(userID)
	if err != nil {
		return err
	}

	_, err = r.col.UpdateOne(ctx,
		bson.M{"_id": oid, "cartData." + itemID: bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"cartData." + itemID: -1}},
	)
	if err != nil {
		return fmt.Errorf("users: decrement cart item: %w", err)
	}
	return nil
}

// ClearCart resets the user's cart to an empty mapping.
func (r *UserRepository) ClearCart(ctx context.Context, userID string) error {
	oid, err := parseID(userID)
	if err != nil {
		return err
	}

	_, err = r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"cartData": bson.M{}}},
	)
	if err != nil {
		return fmt.Errorf("users: clear cart: %w", err)
	}
	return nil
}
