// Package repositories implements the MongoDB persistence layer behind the
// service interfaces. Each repository wraps one collection.
package repositories

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a looked-up document does not exist, or when
// a supplied ID is not a valid ObjectID. Services translate it into their
// own error vocabulary so nothing above this layer knows about MongoDB.
var ErrNotFound = errors.New("repositories: document not found")

// parseID converts a client-supplied hex ID into an ObjectID, folding
// malformed input into ErrNotFound.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}
