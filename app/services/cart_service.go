package services

import (
	"context"
	"errors"

	"github.com/shashiranjanraj/foodcourt/app/repositories"
	"github.com/shashiranjanraj/foodcourt/pkg/metrics"
)

// CartStore is the persistence surface CartService needs. All mutations
// are atomic single-document updates, so two concurrent adds for the same
// item both land.
type CartStore interface {
	Cart(ctx context.Context, userID string) (map[string]int64, error)
	IncrementCartItem(ctx context.Context, userID, itemID string) error
	DecrementCartItem(ctx context.Context, userID, itemID string) error
}

// CartService manages the per-user cart mapping of item ID to quantity.
// Item IDs are opaque here; nothing checks them against the catalog.
type CartService struct {
	carts CartStore
}

func NewCartService(carts CartStore) *CartService {
	return &CartService{carts: carts}
}

// Add bumps the quantity of one item by one, starting it at 1 when the
// item is not in the cart yet.
func (s *CartService) Add(ctx context.Context, userID, itemID string) error {
	err := s.carts.IncrementCartItem(ctx, userID, itemID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}
	metrics.CartMutations.WithLabelValues("add").Inc()
	return nil
}

// Remove lowers the quantity of one item by one. Removing an absent item
// or one already at zero is a no-op.
func (s *CartService) Remove(ctx context.Context, userID, itemID string) error {
	err := s.carts.DecrementCartItem(ctx, userID, itemID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}
	metrics.CartMutations.WithLabelValues("remove").Inc()
	return nil
}

// Get returns the user's cart mapping, never nil.
func (s *CartService) Get(ctx context.Context, userID string) (map[string]int64, error) {
	cart, err := s.carts.Cart(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = map[string]int64{}
	}
	return cart, nil
}
