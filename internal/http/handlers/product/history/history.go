// Package history реализует HTTP-обработчик для чтения истории товара.
//
// Handler извлекает ID из URL-параметров, вызывает бизнес-логику чтения
// записей аудита и возвращает их в JSON-формате, отсортированными
// от новых к старым.
package history

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

// Handler обрабатывает запросы на чтение истории товара.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения истории товара.
type Service interface {
	History(ctx context.Context, id int64) ([]*models.ProductHistory, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary История товара
// @Description Возвращает записи аудита товара от новых к старым.
// @Tags Products
// @Produce  json
// @Param id path int true "ID товара"
// @Success 200 {object} response.Response "Записи истории товара"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Товар не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении истории"
// @Security BearerAuth
// @Router /products/{id}/history [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.history"
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

	records, err := h.service.History(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			log.Error("product not found", slog.Int64("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(http.StatusNotFound, "product not found"))
			return
		}
		log.Error("failed to read product history", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(http.StatusInternalServerError, "could not read product history"))
		return
	}

	log.Info("success to read product history", slog.Int64("id", id), slog.Int("count", len(records)))
	render.JSON(w, r, response.OK(map[string]any{
		"history": records,
	}))
}
