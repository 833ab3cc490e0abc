// Package services holds the business logic between the HTTP controllers
// and the persistence layer. Each service receives its collaborators and
// configuration at construction time, so none of them reach into globals
// for secrets or connections.
package services

import "errors"

// Sentinel errors the controllers translate into API failure messages.
var (
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password too weak")
	ErrUserNotFound       = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrFoodNotFound  = errors.New("food not found")
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
)
