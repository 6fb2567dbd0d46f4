// Package list реализует HTTP-обработчик для постраничного списка товаров.
//
// Handler читает параметры фильтрации и номер страницы из query-строки,
// вызывает бизнес-логику выборки и возвращает страницу товаров вместе
// с метаданными пагинации в JSON-формате.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/product-catalog/internal/http/response"
	"github.com/magabrotheeeer/product-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/product-catalog/internal/models"
)

// Handler обрабатывает запросы на получение страницы товаров.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выборки товаров.
type Service interface {
	List(ctx context.Context, filter models.ProductFilter, page int) ([]*models.Product, models.Pagination, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список товаров
// @Description Возвращает страницу товаров с фильтрацией по названию и владельцу. Размер страницы фиксированный.
// @Tags Products
// @Produce  json
// @Param name query string false "Фильтр по подстроке названия"
// @Param person query string false "Фильтр по имени владельца"
// @Param page query int false "Номер страницы (по умолчанию 1)"
// @Success 200 {object} response.Response "Страница товаров с пагинацией"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при получении списка"
// @Security BearerAuth
// @Router /products [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page <= 0 {
		page = 1
	}

	filter := models.ProductFilter{
		Name:   r.URL.Query().Get("name"),
		Person: r.URL.Query().Get("person"),
	}

	products, pagination, err := h.service.List(r.Context(), filter, page)
	if err != nil {
		log.Error("failed to list products", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(http.StatusInternalServerError, "could not list products"))
		return
	}

	log.Info("success to list products", slog.Int("count", len(products)), slog.Int("page", pagination.Page))
	render.JSON(w, r, response.OK(map[string]any{
		"products":   products,
		"pagination": pagination,
	}))
}
