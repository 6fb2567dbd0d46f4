// Package index реализует HTTP-обработчик для получения всех товаров каталога
// без пагинации.
package index

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/product-catalog/internal/http/response"
	"github.com/magabrotheeeer/product-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/product-catalog/internal/models"
)

// Handler обрабатывает запросы на получение полного списка товаров.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения всех товаров.
type Service interface {
	ReadAll(ctx context.Context) ([]*models.Product, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Все товары
// @Description Возвращает все товары каталога без пагинации.
// @Tags Products
// @Produce  json
// @Success 200 {object} response.Response "Список всех товаров"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при получении товаров"
// @Security BearerAuth
// @Router /products/all [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.index"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	products, err := h.service.ReadAll(r.Context())
	if err != nil {
		log.Error("failed to read all products", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(http.StatusInternalServerError, "could not read products"))
		return
	}

	log.Info("success to read all products", slog.Int("count", len(products)))
	render.JSON(w, r, response.OK(map[string]any{
		"products_count": len(products),
		"products":       products,
	}))
}
