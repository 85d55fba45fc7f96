package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/smartstock/stock-ledger/internal/http/handlers"
	"github.com/smartstock/stock-ledger/internal/http/rate_limiter"
)

// NewRouter builds the HTTP surface. Reads are public; everything that
// mutates the ledger or catalog requires a bearer token.
func NewRouter(limiter *rate_limiter.Registry) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(RateLimitMiddleware(limiter))

	r.Post("/register", handlers.RegisterUserHandler)
	r.Post("/login", handlers.LoginHandler)

	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Get("/products/{id}/transactions", handlers.ProductTransactionsHandler)

	r.Get("/categories", handlers.GetCategoriesHandler)
	r.Get("/categories/{id}", handlers.GetCategoryByIDHandler)

	r.Get("/inventory", handlers.GetInventoryHandler)
	r.Get("/inventory/{id}", handlers.GetInventoryByIDHandler)

	r.Get("/transactions/recent", handlers.RecentTransactionsHandler)

	r.Get("/views/inventory", handlers.InventoryViewHandler)
	r.Get("/views/low-stock", handlers.LowStockHandler)
	r.Get("/views/out-of-stock", handlers.OutOfStockHandler)
	r.Get("/views/valuation", handlers.ValuationHandler)

	r.Get("/settings", handlers.GetSettingsHandler)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)

		r.Post("/products", handlers.CreateProductHandler)
		r.Put("/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)

		r.Post("/categories", handlers.CreateCategoryHandler)
		r.Delete("/categories/{id}", handlers.DeleteCategoryHandler)

		r.Post("/inventory", handlers.CreateInventoryHandler)

		r.Post("/products/{id}/stock-in", handlers.StockInHandler)
		r.Post("/products/{id}/stock-out", handlers.StockOutHandler)
		r.Post("/products/{id}/adjust", handlers.AdjustHandler)

		r.Put("/settings/{id}", handlers.PutSettingHandler)

		r.Get("/backup", handlers.ExportBackupHandler)
		r.Post("/restore", handlers.RestoreBackupHandler)
	})

	return r
}
