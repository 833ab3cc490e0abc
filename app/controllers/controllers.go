// Package controllers maps HTTP requests onto the services. Controllers
// only decode, validate, call one service method and encode the envelope;
// all business rules live a layer down.
package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/shashiranjanraj/foodcourt/app/services"
	"github.com/shashiranjanraj/foodcourt/pkg/logger"
	"github.com/shashiranjanraj/foodcourt/pkg/response"
)

// fail translates a service error into the envelope message the storefront
// matches on. Unknown errors are logged and collapsed to a generic "Error"
// so internals never leak to the client.
func fail(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrDuplicateUser):
		response.Fail(w, "User already exists")
	case errors.Is(err, services.ErrInvalidEmail):
		response.Fail(w, "Please enter a valid email")
	case errors.Is(err, services.ErrWeakPassword):
		response.Fail(w, "Please enter a strong password")
	case errors.Is(err, services.ErrUserNotFound):
		response.Fail(w, "User does not exist")
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Fail(w, "Invalid credentials")
	case errors.Is(err, services.ErrFoodNotFound):
		response.Fail(w, "Food not found")
	case errors.Is(err, services.ErrOrderNotFound):
		response.Fail(w, "Order not found")
	case errors.Is(err, services.ErrInvalidStatus):
		response.Fail(w, "Invalid status")
	default:
		logger.WithCtx(ctx).Error("request failed", "error", err)
		response.Fail(w, "Error")
	}
}
