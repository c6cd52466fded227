package server

import (
	"context"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/shashiranjanraj/foodmart/app/controllers"
	"github.com/shashiranjanraj/foodmart/app/repositories"
	"github.com/shashiranjanraj/foodmart/app/routes"
	"github.com/shashiranjanraj/foodmart/app/services"
	"github.com/shashiranjanraj/foodmart/config"
	"github.com/shashiranjanraj/foodmart/database/seeders"
	"github.com/shashiranjanraj/foodmart/pkg/cache"
	"github.com/shashiranjanraj/foodmart/pkg/database"
	"github.com/shashiranjanraj/foodmart/pkg/logger"
	"github.com/shashiranjanraj/foodmart/pkg/metrics"
	"github.com/shashiranjanraj/foodmart/pkg/middleware"
	"github.com/shashiranjanraj/foodmart/pkg/reqid"
	"github.com/shashiranjanraj/foodmart/pkg/router"
)

// Start wires the application and serves HTTP until the listener fails.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := database.Connect(ctx)
	if err != nil {
		return err
	}

	if config.LogToMongo() {
		sink := logger.NewMongoHandler(store.Logs())
		logger.SetHandler(logger.NewMultiHandler(logger.L.Handler(), sink))
	}

	if err := seeders.Run(ctx, store); err != nil {
		return err
	}

	cache.Connect()

	r := BuildRouter(store)

	addr := ":" + config.AppPort()
	logger.Info("food mart api listening", "addr", addr)
	return http.ListenAndServe(addr, r.Handler())
}

// BuildRouter assembles the middleware chain and route table on top of the
// injected store.
func BuildRouter(store *database.Store) *router.Router {
	catalog := services.NewCatalogService(
		repositories.NewProductRepository(store),
		repositories.NewCategoryRepository(store),
	)
	auth := services.NewAuthService(repositories.NewUserRepository(store))
	orders := services.NewOrderService(repositories.NewOrderRepository(store))

	r := router.New()
	r.Use(chimw.StripSlashes) // "/api/" and "/api" are the same endpoint
	r.Use(reqid.Middleware())
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))

	routes.RegisterAPI(r, routes.Controllers{
		Meta:    controllers.NewMetaController(),
		Auth:    controllers.NewAuthController(auth),
		Catalog: controllers.NewCatalogController(catalog),
		Order:   controllers.NewOrderController(orders),
	})

	return r
}
