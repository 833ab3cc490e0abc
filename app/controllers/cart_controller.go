package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/foodcourt/app/services"
	"github.com/shashiranjanraj/foodcourt/pkg/bind"
	"github.com/shashiranjanraj/foodcourt/pkg/middleware"
	"github.com/shashiranjanraj/foodcourt/pkg/response"
)

// CartController handles the authenticated cart endpoints. The acting
// user always comes from the session token, never from the body.
type CartController struct {
	svc *services.CartService
}

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{svc: svc}
}

type cartItemInput struct {
	ItemID string `json:"itemId" validate:"required"`
}

// Add handles POST /api/cart/add.
func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	var in cartItemInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		response.Fail(w, bind.First(errs))
		return
	}

	if err := c.svc.Add(r.Context(), middleware.UserID(r.Context()), in.ItemID); err != nil {
		fail(r.Context(), w, err)
		return
	}
	response.OK(w, "Added To Cart")
}

// Remove handles POST /api/cart/remove.
func (c *CartController) Remove(w http.ResponseWriter, r *http.Request) {
	var in cartItemInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		response.Fail(w, bind.First(errs))
		return
	}

	if err := c.svc.Remove(r.Context(), middleware.UserID(r.Context()), in.ItemID); err != nil {
		fail(r.Context(), w, err)
		return
	}
	response.OK(w, "Removed From Cart")
}

// Get handles POST /api/cart/get.
func (c *CartController) Get(w http.ResponseWriter, r *http.Request) {
	cart, err := c.svc.Get(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		fail(r.Context(), w, err)
		return
	}
	response.Cart(w, cart)
}
