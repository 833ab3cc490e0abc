package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. Any status may be set from any other; the admin console
// is trusted to move orders sensibly.
const (
	StatusProcessing     = "Food Processing"
	StatusOutForDelivery = "Out for delivery"
	StatusDelivered      = "Delivered"
)

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s string) bool {
	return s == StatusProcessing || s == StatusOutForDelivery || s == StatusDelivered
}

// OrderItem is a point-in-time snapshot of a cart line. It is copied from
// the catalog at order time and never updated afterwards, so later catalog
// edits don't rewrite order history.
type OrderItem struct {
	Name     string  `bson:"name"     json:"name"`
	Price    float64 `bson:"price"    json:"price"`
	Quantity int64   `bson:"quantity" json:"quantity"`
}

// Address is the structured delivery address captured at checkout.
type Address struct {
	Name    string `bson:"name"    json:"name"`
	Street  string `bson:"street"  json:"street"`
	City    string `bson:"city"    json:"city"`
	State   string `bson:"state"   json:"state"`
	Zipcode string `bson:"zipcode" json:"zipcode"`
	Phone   string `bson:"phone"   json:"phone"`
}

// Order is a placed order. Payment is false until the gateway confirms the
// charge (cash-on-delivery orders are created with Payment already true).
type Order struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID  string             `bson:"userId"        json:"userId"`
	Items   []OrderItem        `bson:"items"         json:"items"`
	Amount  float64            `bson:"amount"        json:"amount"`
	Address Address            `bson:"address"       json:"address"`
	Status  string             `bson:"status"        json:"status"`
	Payment bool               `bson:"payment"       json:"payment"`
	Date    time.Time          `bson:"date"          json:"date"`
}
