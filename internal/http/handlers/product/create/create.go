// Package create реализует HTTP-обработчик для добавления товара в каталог.
//
// Handler принимает JSON-запрос с данными товара, валидирует их, извлекает UID
// пользователя из контекста, вызывает бизнес-логику создания товара через сервис
// и возвращает созданный товар в JSON-формате.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/product-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/product-catalog/internal/http/response"
	"github.com/magabrotheeeer/product-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/product-catalog/internal/models"
	"github.com/magabrotheeeer/product-catalog/internal/storage/repository"
)

// Handler управляет HTTP-запросами на добавление товаров.
//
// Использует логгер для записи операций и ошибок,
// сервис бизнес-логики для создания товара,
// а также валидатор для проверки структуры входных данных.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для создания товаров
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания товара.
type Service interface {
	Create(ctx context.Context, userUID string, req models.DummyProduct) (*models.Product, error)
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
// @Summary Добавить новый товар
// @Description Создает новый товар в каталоге от имени текущего пользователя. Возвращает созданный товар.
// @Tags Products
// @Accept  json
// @Produce  json
// @Param request body models.DummyProduct true "Данные нового товара"
// @Success 200 {object} response.Response "Товар успешно создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании товара"
// @Security BearerAuth
// @Router /products [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

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

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error(http.StatusUnauthorized, "unauthorized"))
		return
	}
	username, _ := r.Context().Value(middlewarectx.User).(string)

	product, err := h.service.Create(r.Context(), userUID, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNameTaken):
			log.Error("product name is already taken", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.FieldErrors(map[string]string{
				"name": "has already been taken",
			}))
		case errors.Is(err, repository.ErrUserNotFound):
			log.Error("product owner not found", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.FieldErrors(map[string]string{
				"user_id": "owner does not exist",
			}))
		default:
			log.Error("failed to create product", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(http.StatusInternalServerError, "could not create product"))
		}
		return
	}

	log.Info("success to create product",
		slog.Int64("id", product.ID),
		slog.String("username", username))
	render.JSON(w, r, response.OK(map[string]any{
		"product": product,
	}))
}
