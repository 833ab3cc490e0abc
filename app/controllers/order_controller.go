package controllers

import (
	"net/http"
	"strings"

	"github.com/shashiranjanraj/foodcourt/app/models"
	"github.com/shashiranjanraj/foodcourt/app/services"
	"github.com/shashiranjanraj/foodcourt/pkg/bind"
	"github.com/shashiranjanraj/foodcourt/pkg/middleware"
	"github.com/shashiranjanraj/foodcourt/pkg/response"
)

// OrderController handles checkout, payment verification and the admin
// fulfilment endpoints.
type OrderController struct {
	svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{svc: svc}
}

type placeOrderInput struct {
	Items   []models.OrderItem `json:"items"   validate:"required"`
	Amount  float64            `json:"amount"  validate:"required,gt=0"`
	Address models.Address     `json:"address"`
}

func (in placeOrderInput) toService() services.PlaceOrderInput {
	return services.PlaceOrderInput{
		Items:   in.Items,
		Amount:  in.Amount,
		Address: in.Address,
	}
}

// Place handles POST /api/order/place: creates the order and returns the
// hosted checkout URL to redirect the customer to.
func (c *OrderController) Place(w http.ResponseWriter, r *http.Request) {
	var in placeOrderInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		response.Fail(w, bind.First(errs))
		return
	}

	url, err := c.svc.PlaceOrder(r.Context(), middleware.UserID(r.Context()), in.toService())
	if err != nil {
		fail(r.Context(), w, err)
		return
	}
	response.Session(w, url)
}

// PlaceCOD handles POST /api/order/placecod: cash on delivery, no gateway.
func (c *OrderController) PlaceCOD(w http.ResponseWriter, r *http.Request) {
	var in placeOrderInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		response.Fail(w, bind.First(errs))
		return
	}

	if err := c.svc.PlaceOrderCOD(r.Context(), middleware.UserID(r.Context()), in.toService()); err != nil {
		fail(r.Context(), w, err)
		return
	}
	response.OK(w, "Order Placed")
}

// boolish accepts the JSON bool true as well as the strings "true"/"1",
// because the storefront forwards the redirect query parameter verbatim.
type boolish bool

func (b *boolish) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	*b = boolish(s == "true" || s == "1")
	return nil
}

type verifyOrderInput struct {
	OrderID string  `json:"orderId" validate:"required"`
	Success boolish `json:"success"`
}

// Verify handles POST /api/order/verify, the callback the frontend fires
// after the gateway redirect. Cancelled payments delete the order.
func (c *OrderController) Verify(w http.ResponseWriter, r *http.Request) {
	var in verifyOrderInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		response.Fail(w, bind.First(errs))
		return
	}

	if err := c.svc.Verify(r.Context(), in.OrderID, bool(in.Success)); err != nil {
		fail(r.Context(), w, err)
		return
	}

	if in.Success {
		response.OK(w, "Paid")
		return
	}
	response.Fail(w, "Not Paid")
}

// UserOrders handles POST /api/order/userorders: the caller's own orders.
func (c *OrderController) UserOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := c.svc.UserOrders(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		fail(r.Context(), w, err)
		return
	}
	response.Data(w, orders)
}

// List handles GET /api/order/list: every order, for the admin panel.
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	orders, err := c.svc.List(r.Context())
	if err != nil {
		fail(r.Context(), w, err)
		return
	}
	response.Data(w, orders)
}

type updateStatusInput struct {
	OrderID string `json:"orderId" validate:"required"`
	Status  string `json:"status"  validate:"required"`
}

// UpdateStatus handles POST /api/order/status.
func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var in updateStatusInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		response.Fail(w, bind.First(errs))
		return
	}

	if err := c.svc.UpdateStatus(r.Context(), in.OrderID, in.Status); err != nil {
		fail(r.Context(), w, err)
		return
	}
	response.OK(w, "Status Updated")
}
