// Package server boots the application: configuration, connections,
// dependency wiring, and the HTTP listener with graceful shutdown.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/foodcourt/app/controllers"
	"github.com/shashiranjanraj/foodcourt/app/repositories"
	"github.com/shashiranjanraj/foodcourt/app/routes"
	"github.com/shashiranjanraj/foodcourt/app/services"
	"github.com/shashiranjanraj/foodcourt/config"
	"github.com/shashiranjanraj/foodcourt/internal/kernel"
	"github.com/shashiranjanraj/foodcourt/pkg/auth"
	"github.com/shashiranjanraj/foodcourt/pkg/cache"
	"github.com/shashiranjanraj/foodcourt/pkg/database"
	"github.com/shashiranjanraj/foodcourt/pkg/event"
	"github.com/shashiranjanraj/foodcourt/pkg/logger"
	"github.com/shashiranjanraj/foodcourt/pkg/payment"
	"github.com/shashiranjanraj/foodcourt/pkg/router"
	"github.com/shashiranjanraj/foodcourt/pkg/storage"
	"github.com/shashiranjanraj/foodcourt/pkg/ws"
)

const shutdownTimeout = 10 * time.Second

// Run boots every subsystem and serves HTTP until SIGINT/SIGTERM.
func Run() error {
	if err := config.Load(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.Connect(ctx); err != nil {
		return err
	}
	defer database.Disconnect(context.Background()) //nolint:errcheck

	// Cache is optional: a dead Redis only costs us the catalog cache.
	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable, continuing without it", "error", err)
	}

	storage.Connect()

	r := buildRouter()

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", srv.Addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}

// buildRouter wires repositories, services, controllers and the websocket
// hub into the HTTP router.
func buildRouter() *router.Router {
	tokens := auth.NewTokens(config.JWTSecret())
	gateway := payment.NewStripeGateway(config.StripeSecretKey(), config.Currency())

	userRepo := repositories.NewUserRepository()
	foodRepo := repositories.NewFoodRepository()
	orderRepo := repositories.NewOrderRepository()

	orderCfg := services.OrderConfig{
		FrontendURL:        config.FrontendURL(),
		DeliveryCharge:     config.DeliveryCharge(),
		ClearCartOnPayment: config.CartClearPolicy() == "payment",
	}

	authSvc := services.NewAuthService(userRepo, tokens)
	cartSvc := services.NewCartService(userRepo)
	foodSvc := services.NewFoodService(foodRepo, storage.Use(config.StorageDefault()))
	orderSvc := services.NewOrderService(orderRepo, userRepo, gateway, orderCfg)

	hub := ws.NewHub()
	go hub.Run()
	wireOrderFeed(hub)

	c := routes.Controllers{
		Auth:  controllers.NewAuthController(authSvc),
		Cart:  controllers.NewCartController(cartSvc),
		Food:  controllers.NewFoodController(foodSvc),
		Order: controllers.NewOrderController(orderSvc),
	}

	return kernel.NewRouter(c, tokens, hub)
}

// Routes builds the route table without touching the database or Redis,
// so `route:list` works on a machine with nothing running.
func Routes() []router.RouteInfo {
	_ = config.Load()
	storage.Connect()

	c := routes.Controllers{
		Auth:  controllers.NewAuthController(nil),
		Cart:  controllers.NewCartController(nil),
		Food:  controllers.NewFoodController(nil),
		Order: controllers.NewOrderController(nil),
	}

	r := kernel.NewRouter(c, auth.NewTokens(config.JWTSecret()), ws.NewHub())
	return r.Routes()
}

// wireOrderFeed forwards order events onto the websocket hub so the admin
// console sees placements and status changes live.
func wireOrderFeed(hub *ws.Hub) {
	forward := func(kind string) event.Handler {
		return func(payload interface{}) {
			msg, err := json.Marshal(map[string]interface{}{
				"event": kind,
				"order": payload,
			})
			if err != nil {
				logger.Warn("order feed marshal failed", "error", err)
				return
			}
			select {
			case hub.Broadcast <- msg:
			default: // feed is best-effort, drop when saturated
			}
		}
	}

	event.Listen(services.EventOrderPlaced, forward("order.placed"))
	event.Listen(services.EventOrderStatus, forward("order.status"))
}
