// Package routes declares the API surface. Route names feed the
// `route:list` CLI command.
package routes

import (
	"github.com/shashiranjanraj/foodcourt/app/controllers"
	"github.com/shashiranjanraj/foodcourt/pkg/auth"
	"github.com/shashiranjanraj/foodcourt/pkg/middleware"
	"github.com/shashiranjanraj/foodcourt/pkg/router"
)

// Controllers bundles the handlers Register wires up.
type Controllers struct {
	Auth  *controllers.AuthController
	Cart  *controllers.CartController
	Food  *controllers.FoodController
	Order *controllers.OrderController
}

// Register mounts every API route. The cart and the customer-facing order
// endpoints require a session token; the admin panel endpoints and the
// payment verify callback are open, matching what the panel sends.
func Register(r *router.Router, c Controllers, tokens *auth.Tokens) {
	api := r.Group("/api")
	authed := middleware.Auth(tokens)

	user := api.Group("/user")
	user.Post("/register", "user.register", c.Auth.Register)
	user.Post("/login", "user.login", c.Auth.Login)

	food := api.Group("/food")
	food.Get("/list", "food.list", c.Food.List)
	food.Post("/add", "food.add", c.Food.Add)
	food.Post("/remove", "food.remove", c.Food.Remove)

	cart := api.Group("/cart", authed)
	cart.Post("/add", "cart.add", c.Cart.Add)
	cart.Post("/remove", "cart.remove", c.Cart.Remove)
	cart.Post("/get", "cart.get", c.Cart.Get)

	order := api.Group("/order")
	order.Post("/place", "order.place", c.Order.Place, authed)
	order.Post("/placecod", "order.placecod", c.Order.PlaceCOD, authed)
	order.Post("/userorders", "order.userorders", c.Order.UserOrders, authed)
	order.Post("/verify", "order.verify", c.Order.Verify)
	order.Get("/list", "order.list", c.Order.List)
	order.Post("/status", "order.status", c.Order.UpdateStatus)
}
