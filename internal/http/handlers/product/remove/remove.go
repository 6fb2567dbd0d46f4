// Package remove реализует HTTP-обработчик для удаления товара по ID.
//
// Handler извлекает ID из URL-параметров, вызывает бизнес-логику удаления
// и возвращает подтверждение в JSON-формате. Записи аудита удаляются
// каскадом вместе с товаром.
package remove

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
	"github.com/magabrotheeeer/product-catalog/internal/storage/repository"
)

// Handler обрабатывает запросы на удаление товара.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления товара.
type Service interface {
	Remove(ctx context.Context, id int64) error
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить товар
// @Description Удаляет товар по ID вместе с его историей.
// @Tags Products
// @Produce  json
// @Param id path int true "ID товара"
// @Success 200 {object} response.Response "Товар успешно удален"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Товар не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при удалении товара"
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.remove"
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

	if err := h.service.Remove(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			log.Error("product not found", slog.Int64("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(http.StatusNotFound, "product not found"))
			return
		}
		log.Error("failed to remove product", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(http.StatusInternalServerError, "could not remove product"))
		return
	}

	log.Info("success to remove product", slog.Int64("id", id))
	render.JSON(w, r, response.OKWithMessage("product deleted"))
}
