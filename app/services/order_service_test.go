package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/foodcourt/app/models"
)

func testOrderConfig() OrderConfig {
	return OrderConfig{
		FrontendURL:    "http://localhost:5173",
		DeliveryCharge: 50,
	}
}

func testOrderInput() PlaceOrderInput {
	return PlaceOrderInput{
		Items: []models.OrderItem{
			{Name: "Greek Salad", Price: 120, Quantity: 2},
			{Name: "Cheese Pasta", Price: 180.50, Quantity: 1},
		},
		Amount: 470.50,
		Address: models.Address{
			Name: "Asha", Street: "12 MG Road", City: "Pune",
			State: "MH", Zipcode: "411001", Phone: "9876543210",
		},
	}
}

func TestPlaceOrderCreatesUnpaidOrderAndReturnsCheckoutURL(t *testing.T) {
	orders := newFakeOrders()
	carts := newFakeCarts()
	carts.items["food-1"] = 2
	gw := &fakeGateway{}
	svc := NewOrderService(orders, carts, gw, testOrderConfig())

	url, err := svc.PlaceOrder(context.Background(), "u1", testOrderInput())
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.test/cs_test_1", url)

	require.Len(t, orders.orders, 1)
	for id, o := range orders.orders {
		assert.Equal(t, "u1", o.UserID)
		assert.False(t, o.Payment)
		assert.Equal(t, models.StatusProcessing, o.Status)
		assert.Equal(t, "http://localhost:5173/verify?success=true&orderId="+id, gw.successURL)
		assert.Equal(t, "http://localhost:5173/verify?success=false&orderId="+id, gw.cancelURL)
	}
}

func TestPlaceOrderLineItemsIncludeDeliveryCharge(t *testing.T) {
	orders := newFakeOrders()
	gw := &fakeGateway{}
	svc := NewOrderService(orders, newFakeCarts(), gw, testOrderConfig())

	_, err := svc.PlaceOrder(context.Background(), "u1", testOrderInput())
	require.NoError(t, err)

	require.Len(t, gw.items, 3)
	assert.Equal(t, int64(12000), gw.items[0].UnitAmount)
	assert.Equal(t, int64(2), gw.items[0].Quantity)
	assert.Equal(t, int64(18050), gw.items[1].UnitAmount)

	delivery := gw.items[2]
	assert.Equal(t, "Delivery Charge", delivery.Name)
	assert.Equal(t, int64(5000), delivery.UnitAmount)
	assert.Equal(t, int64(1), delivery.Quantity)
}

func TestPlaceOrderClearsCartAtCheckoutByDefault(t *testing.T) {
	orders := newFakeOrders()
	carts := newFakeCarts()
	carts.items["food-1"] = 3
	svc := NewOrderService(orders, carts, &fakeGateway{}, testOrderConfig())

	_, err := svc.PlaceOrder(context.Background(), "u1", testOrderInput())
	require.NoError(t, err)

	assert.Empty(t, carts.items, "cart is emptied before payment completes")
	assert.Equal(t, 1, carts.cleared)
}

func TestPlaceOrderPaymentPolicyDefersCartClear(t *testing.T) {
	orders := newFakeOrders()
	carts := newFakeCarts()
	carts.items["food-1"] = 3
	cfg := testOrderConfig()
	cfg.ClearCartOnPayment = true
	svc := NewOrderService(orders, carts, &fakeGateway{}, cfg)

	_, err := svc.PlaceOrder(context.Background(), "u1", testOrderInput())
	require.NoError(t, err)
	assert.Equal(t, int64(3), carts.items["food-1"], "cart survives until payment confirms")

	var id string
	for k := range orders.orders {
		id = k
	}
	require.NoError(t, svc.Verify(context.Background(), id, true))
	assert.Empty(t, carts.items)
}

func TestPlaceOrderGatewayFailure(t *testing.T) {
	orders := newFakeOrders()
	carts := newFakeCarts()
	carts.items["food-1"] = 1
	gw := &fakeGateway{err: errors.New("stripe down")}
	svc := NewOrderService(orders, carts, gw, testOrderConfig())

	_, err := svc.PlaceOrder(context.Background(), "u1", testOrderInput())
	require.Error(t, err)

	// The order document was already created and the cart already cleared;
	// the abandoned order is what Verify(false) cleans up later.
	assert.Len(t, orders.orders, 1)
	assert.Empty(t, carts.items)
}

func TestPlaceOrderCOD(t *testing.T) {
	orders := newFakeOrders()
	carts := newFakeCarts()
	carts.items["food-1"] = 2
	svc := NewOrderService(orders, carts, &fakeGateway{}, testOrderConfig())

	require.NoError(t, svc.PlaceOrderCOD(context.Background(), "u1", testOrderInput()))

	require.Len(t, orders.orders, 1)
	for _, o := range orders.orders {
		assert.True(t, o.Payment, "cash on delivery counts as settled")
		assert.Equal(t, models.StatusProcessing, o.Status)
	}
	assert.Empty(t, carts.items)
}

func TestVerifyPaidMarksOrder(t *testing.T) {
	orders := newFakeOrders()
	svc := NewOrderService(orders, newFakeCarts(), &fakeGateway{}, testOrderConfig())

	_, err := svc.PlaceOrder(context.Background(), "u1", testOrderInput())
	require.NoError(t, err)

	var id string
	for k := range orders.orders {
		id = k
	}
	require.NoError(t, svc.Verify(context.Background(), id, true))
	assert.True(t, orders.orders[id].Payment)
}

func TestVerifyCancelledDeletesOrder(t *testing.T) {
	orders := newFakeOrders()
	svc := NewOrderService(orders, newFakeCarts(), &fakeGateway{}, testOrderConfig())

	_, err := svc.PlaceOrder(context.Background(), "u1", testOrderInput())
	require.NoError(t, err)

	var id string
	for k := range orders.orders {
		id = k
	}
	require.NoError(t, svc.Verify(context.Background(), id, false))
	assert.Empty(t, orders.orders)
}

func TestVerifyUnknownOrder(t *testing.T) {
	svc := NewOrderService(newFakeOrders(), newFakeCarts(), &fakeGateway{}, testOrderConfig())

	assert.ErrorIs(t, svc.Verify(context.Background(), "missing", true), ErrOrderNotFound)
	assert.ErrorIs(t, svc.Verify(context.Background(), "missing", false), ErrOrderNotFound)
}

func TestUpdateStatusAcceptsAnySequence(t *testing.T) {
	orders := newFakeOrders()
	svc := NewOrderService(orders, newFakeCarts(), &fakeGateway{}, testOrderConfig())

	_, err := svc.PlaceOrder(context.Background(), "u1", testOrderInput())
	require.NoError(t, err)

	var id string
	for k := range orders.orders {
		id = k
	}

	// No transition ordering: any known status may follow any other.
	for _, status := range []string{
		models.StatusDelivered,
		models.StatusProcessing,
		models.StatusOutForDelivery,
	} {
		require.NoError(t, svc.UpdateStatus(context.Background(), id, status))
		assert.Equal(t, status, orders.orders[id].Status)
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	orders := newFakeOrders()
	svc := NewOrderService(orders, newFakeCarts(), &fakeGateway{}, testOrderConfig())

	_, err := svc.PlaceOrder(context.Background(), "u1", testOrderInput())
	require.NoError(t, err)

	var id string
	for k := range orders.orders {
		id = k
	}
	assert.ErrorIs(t, svc.UpdateStatus(context.Background(), id, "Teleported"), ErrInvalidStatus)
}

func TestUserOrdersScopedToCaller(t *testing.T) {
	orders := newFakeOrders()
	svc := NewOrderService(orders, newFakeCarts(), &fakeGateway{}, testOrderConfig())

	_, err := svc.PlaceOrder(context.Background(), "u1", testOrderInput())
	require.NoError(t, err)
	_, err = svc.PlaceOrder(context.Background(), "u2", testOrderInput())
	require.NoError(t, err)

	mine, err := svc.UserOrders(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "u1", mine[0].UserID)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
