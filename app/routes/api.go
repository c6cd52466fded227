// Package routes declares the full route table. It is evaluated once at
// startup; nothing here is re-parsed per request.
package routes

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/foodmart/app/controllers"
	"github.com/shashiranjanraj/foodmart/pkg/metrics"
	"github.com/shashiranjanraj/foodmart/pkg/middleware"
	"github.com/shashiranjanraj/foodmart/pkg/response"
	"github.com/shashiranjanraj/foodmart/pkg/router"
)

// Controllers bundles the handler set the route table mounts.
type Controllers struct {
	Meta    *controllers.MetaController
	Auth    *controllers.AuthController
	Catalog *controllers.CatalogController
	Order   *controllers.OrderController
}

// RegisterAPI mounts every endpoint.
func RegisterAPI(r *router.Router, c Controllers) {
	r.Get("/metrics", "metrics", metrics.Handler())

	api := r.Group("/api")
	api.Get("", "api.root", c.Meta.Root)
	api.Get("/health", "api.health", c.Meta.Health)

	api.Post("/auth/register", "auth.register", c.Auth.Register)
	api.Post("/auth/login", "auth.login", c.Auth.Login)

	api.Get("/products", "products.index", c.Catalog.Products)
	api.Get("/products/featured", "products.featured", c.Catalog.Featured)
	api.Get("/categories", "categories.index", c.Catalog.Categories)

	protected := api.Group("/orders", middleware.Auth)
	protected.Post("", "orders.create", c.Order.Create)
	protected.Get("", "orders.index", c.Order.List)

	r.NotFound(notFound)
}

// notFound reports the unmatched route relative to the /api prefix, the way
// the storefront client expects it.
func notFound(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api")
	if path == "" {
		path = "/"
	}
	response.Fail(w, http.StatusNotFound, fmt.Sprintf("Route %s not found", path))
}
