package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/shashiranjanraj/foodcourt/app/models"
	"github.com/shashiranjanraj/foodcourt/app/repositories"
	"github.com/shashiranjanraj/foodcourt/pkg/event"
	"github.com/shashiranjanraj/foodcourt/pkg/metrics"
	"github.com/shashiranjanraj/foodcourt/pkg/payment"
)

// Events fired by OrderService. Payload is the affected *models.Order.
const (
	EventOrderPlaced = "order.placed"
	EventOrderStatus = "order.status"
)

// OrderStore is the persistence surface OrderService needs.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id string) (*models.Order, error)
	All(ctx context.Context) ([]models.Order, error)
	ByUser(ctx context.Context, userID string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	SetPayment(ctx context.Context, id string, paid bool) error
	Delete(ctx context.Context, id string) error
}

// CartClearer empties a user's cart once their order is in.
type CartClearer interface {
	ClearCart(ctx context.Context, userID string) error
}

// OrderConfig carries the order-flow settings resolved at boot.
type OrderConfig struct {
	// FrontendURL is the base the payment gateway redirects back to.
	FrontendURL string
	// DeliveryCharge is added as its own line item on card checkouts.
	DeliveryCharge float64
	// ClearCartOnPayment delays the cart wipe until the payment is
	// confirmed. Off by default: the cart is cleared as soon as the
	// order document is created, even if the checkout is later
	// abandoned.
	ClearCartOnPayment bool
}

// PlaceOrderInput is what the checkout endpoints receive per order.
type PlaceOrderInput struct {
	Items   []models.OrderItem
	Amount  float64
	Address models.Address
}

// OrderService runs the checkout, verification and fulfilment flows.
type OrderService struct {
	orders  OrderStore
	carts   CartClearer
	gateway payment.Gateway
	cfg     OrderConfig
}

func NewOrderService(orders OrderStore, carts CartClearer, gateway payment.Gateway, cfg OrderConfig) *OrderService {
	return &OrderService{orders: orders, carts: carts, gateway: gateway, cfg: cfg}
}

// PlaceOrder creates an unpaid order and returns the hosted checkout URL
// the client should redirect to. The order document exists before the
// payment is attempted; Verify settles or deletes it afterwards.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string, in PlaceOrderInput) (string, error) {
	order := &models.Order{
		UserID:  userID,
		Items:   in.Items,
		Amount:  in.Amount,
		Address: in.Address,
		Payment: false,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return "", err
	}

	if !s.cfg.ClearCartOnPayment {
		if err := s.carts.ClearCart(ctx, userID); err != nil {
			return "", err
		}
	}

	items := make([]payment.LineItem, 0, len(in.Items)+1)
	for _, it := range in.Items {
		items = append(items, payment.LineItem{
			Name:       it.Name,
			UnitAmount: toMinorUnits(it.Price),
			Quantity:   it.Quantity,
		})
	}
	items = append(items, payment.LineItem{
		Name:       "Delivery Charge",
		UnitAmount: toMinorUnits(s.cfg.DeliveryCharge),
		Quantity:   1,
	})

	id := order.ID.Hex()
	successURL := fmt.Sprintf("%s/verify?success=true&orderId=%s", s.cfg.FrontendURL, id)
	cancelURL := fmt.Sprintf("%s/verify?success=false&orderId=%s", s.cfg.FrontendURL, id)

	sess, err := s.gateway.CreateCheckoutSession(ctx, items, successURL, cancelURL)
	if err != nil {
		return "", err
	}

	metrics.OrdersPlaced.WithLabelValues("card").Inc()
	event.FireAsync(EventOrderPlaced, order)
	return sess.URL, nil
}

// PlaceOrderCOD creates an order paid on delivery. No gateway round-trip;
// the order counts as settled immediately.
func (s *OrderService) PlaceOrderCOD(ctx context.Context, userID string, in PlaceOrderInput) error {
	order := &models.Order{
		UserID:  userID,
		Items:   in.Items,
		Amount:  in.Amount,
		Address: in.Address,
		Payment: true,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return err
	}

	if err := s.carts.ClearCart(ctx, userID); err != nil {
		return err
	}

	metrics.OrdersPlaced.WithLabelValues("cod").Inc()
	event.FireAsync(EventOrderPlaced, order)
	return nil
}

// Verify settles the payment outcome reported by the frontend redirect.
// A successful payment marks the order paid; a cancelled one deletes the
// order outright.
func (s *OrderService) Verify(ctx context.Context, orderID string, paid bool) error {
	if !paid {
		err := s.orders.Delete(ctx, orderID)
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrOrderNotFound
		}
		if err != nil {
			return err
		}
		metrics.PaymentsVerified.WithLabelValues("cancelled").Inc()
		return nil
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if err := s.orders.SetPayment(ctx, orderID, true); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	if s.cfg.ClearCartOnPayment {
		if err := s.carts.ClearCart(ctx, order.UserID); err != nil {
			return err
		}
	}

	metrics.PaymentsVerified.WithLabelValues("paid").Inc()
	return nil
}

// List returns every order, newest first (admin view).
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.orders.All(ctx)
}

// UserOrders returns the caller's orders, newest first.
func (s *OrderService) UserOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orders.ByUser(ctx, userID)
}

// UpdateStatus overwrites the order's status with the supplied value.
// Any of the known statuses is accepted in any sequence; there is no
// transition ordering.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) error {
	if !models.ValidStatus(status) {
		return ErrInvalidStatus
	}

	err := s.orders.UpdateStatus(ctx, orderID, status)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err == nil {
		event.FireAsync(EventOrderStatus, order)
	}
	return nil
}

// toMinorUnits converts a major-unit price into the integer minor units
// payment gateways bill in (rupees to paise).
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
