// Package update реализует HTTP-обработчик для изменения товара по ID.
//
// Handler извлекает ID из URL-параметров, валидирует тело запроса,
// вызывает бизнес-логику обновления и возвращает обновленный товар
// в JSON-формате.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/product-catalog/internal/http/response"
	"github.com/magabrotheeeer/product-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/product-catalog/internal/models"
	"github.com/magabrotheeeer/product-catalog/internal/storage/repository"
)

// Handler обрабатывает запросы на обновление товара.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики обновления товара.
type Service interface {
	Update(ctx context.Context, id int64, req models.DummyProduct) (*models.Product, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновить товар
// @Description Перезаписывает поля товара по ID. Непереданные статус и тип сохраняют текущие значения.
// @Tags Products
// @Accept  json
// @Produce  json
// @Param id path int true "ID товара"
// @Param request body models.DummyProduct true "Новые данные товара"
// @Success 200 {object} response.Response "Товар успешно обновлен"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ID"
// @Failure 404 {object} response.ErrorResponse "Товар не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при обновлении товара"
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.update"
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

	var req models.DummyProduct
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(http.StatusBadRequest, "invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	product, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			log.Error("product not found", slog.Int64("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(http.StatusNotFound, "product not found"))
		case errors.Is(err, repository.ErrProductNameTaken):
			log.Error("product name is already taken", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.FieldErrors(map[string]string{
				"name": "has already been taken",
			}))
		default:
			log.Error("failed to update product", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(http.StatusInternalServerError, "could not update product"))
		}
		return
	}

	log.Info("success to update product", slog.Int64("id", id))
	render.JSON(w, r, response.OK(map[string]any{
		"product": product,
	}))
}
