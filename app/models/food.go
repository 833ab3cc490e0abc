package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Food is a catalog entry. Image is the stored filename under the images
// prefix, not a full URL; the storefront builds the URL itself.
type Food struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name"          json:"name"`
	Description string             `bson:"description"   json:"description"`
	Price       float64            `bson:"price"         json:"price"`
	Category    string             `bson:"category"      json:"category"`
	Image       string             `bson:"image"         json:"image"`
}

// Categories is the fixed set the admin console offers.
var Categories = []string{
	"Salad", "Rolls", "Deserts", "Sandwich",
	"Cake", "Pure Veg", "Pasta", "Noodles",
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
