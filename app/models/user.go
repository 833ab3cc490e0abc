package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered storefront customer. CartData maps a catalog item ID
// to a quantity; quantities are never negative.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name"          json:"name"`
	Email     string             `bson:"email"         json:"email"`
	Password  string             `bson:"password"      json:"-"` // bcrypt hash, never serialised
	CartData  map[string]int64   `bson:"cartData"      json:"cartData"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
}
