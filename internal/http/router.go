package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/grocery-tracker/grocery-tracker/internal/auth"
	"github.com/grocery-tracker/grocery-tracker/internal/http/handlers"
	"github.com/grocery-tracker/grocery-tracker/internal/http/ratelimit"
)

func NewRouter(guard *auth.Guard) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", handlers.HealthHandler)
	r.Get("/swagger/*", httpSwagger.Handler())

	r.Group(func(r chi.Router) {
		r.Use(ratelimit.Limit)
		r.Post("/register", handlers.RegisterHandler)
		r.Post("/login", handlers.LoginHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(guard))

		r.Get("/products", handlers.GetProductsHandler)
		r.Get("/products/low-stock", handlers.GetLowStockProductsHandler)
		r.Post("/products", handlers.CreateProductHandler)
		r.Put("/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)
		r.Post("/products/import", handlers.ImportProductsHandler)

		r.Post("/sales", handlers.CreateSaleHandler)
		r.Get("/sales", handlers.GetSalesHandler)

		r.Get("/dashboard/stats", handlers.GetDashboardStatsHandler)
	})

	return r
}
