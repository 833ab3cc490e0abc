// Package kernel assembles the HTTP stack: global middleware, the API
// routes, and the non-API mounts (metrics, static images, websocket feed).
package kernel

import (
	"net/http"
	"path/filepath"

	"github.com/shashiranjanraj/foodcourt/app/routes"
	"github.com/shashiranjanraj/foodcourt/pkg/auth"
	"github.com/shashiranjanraj/foodcourt/pkg/metrics"
	"github.com/shashiranjanraj/foodcourt/pkg/middleware"
	"github.com/shashiranjanraj/foodcourt/pkg/reqid"
	"github.com/shashiranjanraj/foodcourt/pkg/router"
	"github.com/shashiranjanraj/foodcourt/pkg/storage"
	"github.com/shashiranjanraj/foodcourt/pkg/ws"
)

// NewRouter builds the application router. Middleware order matters:
// metrics wraps everything, the request ID must exist before the logger
// runs, and recovery sits inside both so panics are still measured and
// logged.
func NewRouter(c routes.Controllers, tokens *auth.Tokens, hub *ws.Hub) *router.Router {
	r := router.New()

	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
	)

	routes.Register(r, c, tokens)

	r.Get("/metrics", "metrics", metrics.Handler())

	// Uploaded dish images, served straight off the local disk.
	if root := storage.LocalRoot(); root != "" {
		imageDir := filepath.Join(root, "images")
		r.Mount("/images", http.StripPrefix("/images", http.FileServer(http.Dir(imageDir))))
	}

	// Live order feed for the admin console.
	r.Get("/ws/orders", "ws.orders", func(w http.ResponseWriter, req *http.Request) {
		ws.Upgrade(w, req, hub)
	})

	return r
}
