package productcatalog

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/product/create"
	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/product/health"
	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/product/history"
	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/product/index"
	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/product/list"
	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/product/read"
	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/product/remove"
	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/product/update"
	"github.com/magabrotheeeer/product-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/product-catalog/internal/lib/jwt"
	productservice "github.com/magabrotheeeer/product-catalog/internal/services/product"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, productService *productservice.ProductService, jwtMaker jwt.Maker) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", health.New(logger).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/products", list.New(logger, productService).ServeHTTP)
			r.Get("/products/all", index.New(logger, productService).ServeHTTP)
			r.Post("/products", create.New(logger, productService).ServeHTTP)
			r.Get("/products/{id}", read.New(logger, productService).ServeHTTP)
			r.Put("/products/{id}", update.New(logger, productService).ServeHTTP)
			r.Patch("/products/{id}", update.New(logger, productService).ServeHTTP)
			r.Delete("/products/{id}", remove.New(logger, productService).ServeHTTP)
			r.Get("/products/{id}/history", history.New(logger, productService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
