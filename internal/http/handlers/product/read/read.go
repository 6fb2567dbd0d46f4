// Package read реализует HTTP-обработчик для получения товара по ID.
//
// Handler извлекает ID из URL-параметров, вызывает бизнес-логику чтения товара
// и возвращает данные товара в JSON-формате.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/product-catalog/internal/http/response"
	"github.com/magabrotheeeer/product-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/product-catalog/internal/models"
	"github.com/magabrotheeeer/product-catalog/internal/storage/repository"
)

// Handler обрабатывает запросы на получение товара по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения товара.
type Service interface {
	Read(ctx context.Context, id int64) (*models.Product, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить товар
// @Description Возвращает товар по его идентификатору.
// @Tags Products
// @Produce  json
// @Param id path int true "ID товара"
// @Success 200 {object} response.Response "Данные товара"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Товар не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении товара"
// @Security BearerAuth
// @Router /products/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(http.StatusBadRequest, "invalid product id"))
		return
	}

	product, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			log.Error("product not found", slog.Int64("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(http.StatusNotFound, "product not found"))
			return
		}
		log.Error("failed to read product", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(http.StatusInternalServerError, "could not read product"))
		return
	}

	log.Info("success to read product", slog.Int64("id", id))
	render.JSON(w, r, response.OK(map[string]any{
		"product": product,
	}))
}
