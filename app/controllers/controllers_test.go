package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/foodcourt/app/models"
	"github.com/shashiranjanraj/foodcourt/app/repositories"
	"github.com/shashiranjanraj/foodcourt/app/services"
	"github.com/shashiranjanraj/foodcourt/pkg/auth"
	"github.com/shashiranjanraj/foodcourt/pkg/middleware"
	"github.com/shashiranjanraj/foodcourt/pkg/payment"
)

// Minimal in-memory doubles so the controllers run over real services.

type memUsers struct {
	byEmail map[string]*models.User
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return nil, repositories.ErrNotFound
}

func (m *memUsers) Create(_ context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	m.byEmail[user.Email] = user
	return nil
}

type memCarts struct {
	items map[string]int64
}

func (m *memCarts) Cart(context.Context, string) (map[string]int64, error) { return m.items, nil }

func (m *memCarts) IncrementCartItem(_ context.Context, _, itemID string) error {
	m.items[itemID]++
	return nil
}

func (m *memCarts) DecrementCartItem(_ context.Context, _, itemID string) error {
	if m.items[itemID] > 0 {
		m.items[itemID]--
	}
	return nil
}

func (m *memCarts) ClearCart(context.Context, string) error {
	m.items = map[string]int64{}
	return nil
}

type memOrders struct {
	orders map[string]*models.Order
}

func (m *memOrders) Create(_ context.Context, o *models.Order) error {
	o.ID = primitive.NewObjectID()
	if o.Status == "" {
		o.Status = models.StatusProcessing
	}
	if o.Date.IsZero() {
		o.Date = time.Now().UTC()
	}
	m.orders[o.ID.Hex()] = o
	return nil
}

func (m *memOrders) FindByID(_ context.Context, id string) (*models.Order, error) {
	if o, ok := m.orders[id]; ok {
		return o, nil
	}
	return nil, repositories.ErrNotFound
}

func (m *memOrders) All(context.Context) ([]models.Order, error) { return nil, nil }

func (m *memOrders) ByUser(context.Context, string) ([]models.Order, error) { return nil, nil }

func (m *memOrders) UpdateStatus(_ context.Context, id, status string) error {
	o, ok := m.orders[id]
	if !ok {
		return repositories.ErrNotFound
	}
	o.Status = status
	return nil
}

func (m *memOrders) SetPayment(_ context.Context, id string, paid bool) error {
	o, ok := m.orders[id]
	if !ok {
		return repositories.ErrNotFound
	}
	o.Payment = paid
	return nil
}

func (m *memOrders) Delete(_ context.Context, id string) error {
	if _, ok := m.orders[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.orders, id)
	return nil
}

type memGateway struct{}

func (memGateway) CreateCheckoutSession(context.Context, []payment.LineItem, string, string) (*payment.Session, error) {
	return &payment.Session{ID: "cs_1", URL: "https://checkout.test/cs_1"}, nil
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRegisterEnvelope(t *testing.T) {
	users := &memUsers{byEmail: map[string]*models.User{}}
	ctl := NewAuthController(services.NewAuthService(users, auth.NewTokens("s")))

	rec := httptest.NewRecorder()
	ctl.Register(rec, postJSON("/api/user/register",
		`{"name":"Asha","email":"asha@example.com","password":"password123"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])
}

func TestRegisterDuplicateReportsInsideEnvelope(t *testing.T) {
	users := &memUsers{byEmail: map[string]*models.User{}}
	ctl := NewAuthController(services.NewAuthService(users, auth.NewTokens("s")))

	rec := httptest.NewRecorder()
	ctl.Register(rec, postJSON("/api/user/register",
		`{"name":"Asha","email":"asha@example.com","password":"password123"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	ctl.Register(rec, postJSON("/api/user/register",
		`{"name":"Other","email":"asha@example.com","password":"password456"}`))

	// Business failures keep HTTP 200 and flip the success flag.
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "User already exists", body["message"])
}

func TestRegisterValidationMessage(t *testing.T) {
	users := &memUsers{byEmail: map[string]*models.User{}}
	ctl := NewAuthController(services.NewAuthService(users, auth.NewTokens("s")))

	rec := httptest.NewRecorder()
	ctl.Register(rec, postJSON("/api/user/register",
		`{"email":"asha@example.com","password":"password123"}`))

	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "The name field is required.", body["message"])
}

func TestCartAddUsesTokenIdentity(t *testing.T) {
	carts := &memCarts{items: map[string]int64{}}
	ctl := NewCartController(services.NewCartService(carts))

	req := postJSON("/api/cart/add", `{"itemId":"food-1","userId":"spoofed"}`)
	req = req.WithContext(middleware.WithUserID(req.Context(), "real-user"))

	rec := httptest.NewRecorder()
	ctl.Add(rec, req)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Added To Cart", body["message"])
	assert.Equal(t, int64(1), carts.items["food-1"])
}

func newOrderController(orders *memOrders) *OrderController {
	svc := services.NewOrderService(orders, &memCarts{items: map[string]int64{}}, memGateway{},
		services.OrderConfig{FrontendURL: "http://localhost:5173", DeliveryCharge: 50})
	return NewOrderController(svc)
}

func placeTestOrder(t *testing.T, orders *memOrders, ctl *OrderController) string {
	t.Helper()
	req := postJSON("/api/order/place",
		`{"items":[{"name":"Greek Salad","price":120,"quantity":1}],"amount":170,
		  "address":{"name":"Asha","street":"12 MG Road","city":"Pune","state":"MH","zipcode":"411001","phone":"9876543210"}}`)
	req = req.WithContext(middleware.WithUserID(req.Context(), "u1"))

	rec := httptest.NewRecorder()
	ctl.Place(rec, req)
	body := decode(t, rec)
	require.Equal(t, true, body["success"])
	require.Equal(t, "https://checkout.test/cs_1", body["session_url"])

	require.Len(t, orders.orders, 1)
	for id := range orders.orders {
		return id
	}
	return ""
}

func TestVerifyAcceptsStringSuccessFlag(t *testing.T) {
	orders := &memOrders{orders: map[string]*models.Order{}}
	ctl := newOrderController(orders)
	id := placeTestOrder(t, orders, ctl)

	// The storefront forwards the redirect query param as a string.
	rec := httptest.NewRecorder()
	ctl.Verify(rec, postJSON("/api/order/verify", `{"orderId":"`+id+`","success":"true"}`))

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Paid", body["message"])
	assert.True(t, orders.orders[id].Payment)
}

func TestVerifyCancelledDeletesAndReportsNotPaid(t *testing.T) {
	orders := &memOrders{orders: map[string]*models.Order{}}
	ctl := newOrderController(orders)
	id := placeTestOrder(t, orders, ctl)

	rec := httptest.NewRecorder()
	ctl.Verify(rec, postJSON("/api/order/verify", `{"orderId":"`+id+`","success":"false"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Not Paid", body["message"])
	assert.Empty(t, orders.orders)
}

func TestUpdateStatusEnvelope(t *testing.T) {
	orders := &memOrders{orders: map[string]*models.Order{}}
	ctl := newOrderController(orders)
	id := placeTestOrder(t, orders, ctl)

	rec := httptest.NewRecorder()
	ctl.UpdateStatus(rec, postJSON("/api/order/status",
		`{"orderId":"`+id+`","status":"Out for delivery"}`))

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Status Updated", body["message"])
	assert.Equal(t, models.StatusOutForDelivery, orders.orders[id].Status)
}
