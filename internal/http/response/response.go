// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков. Пакет упрощает возврат
// успешных ответов, ошибок и сообщений валидации в едином формате.
//
// Все функции возвращают новое значение Response: обработчики не разделяют
// изменяемое состояние, поэтому два последовательных вызова не могут
// повлиять друг на друга.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator"
)

// Response описывает стандартную структуру JSON‑ответа сервера.
// Поле Success — признак успешности запроса.
// Поле Message — человеко‑читаемое сообщение.
// Поле Status — HTTP-статус, продублированный в теле.
// Поле Errors — ошибки валидации по полям (опционально).
// Поле Data — данные ответа (опционально, при успехе).
type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Status  int               `json:"status"`
	Errors  map[string]string `json:"errors,omitempty"`
	Data    any               `json:"data,omitempty"`
}

// ErrorResponse — структура ошибки для Swagger-документации.
// Используется в аннотациях @Failure как возвращаемый тип ошибки.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"could not create product"`
	Status  int    `json:"status" example:"500"`
}

// OK возвращает успешный Response с переданными данными.
// Данные предварительно очищаются от пустых полей.
func OK(data any) Response {
	return Response{
		Success: true,
		Message: "OK",
		Status:  http.StatusOK,
		Data:    Clean(data),
	}
}

// OKWithMessage возвращает успешный Response без данных, только с сообщением.
func OKWithMessage(msg string) Response {
	return Response{
		Success: true,
		Message: msg,
		Status:  http.StatusOK,
	}
}

// Error возвращает Response с ошибкой, переданным статусом и сообщением.
func Error(status int, msg string) Response {
	return Response{
		Success: false,
		Message: msg,
		Status:  status,
	}
}

// FieldErrors возвращает Response со статусом 422 и картой ошибок по полям.
// Используется, когда ошибка валидации обнаружена бизнес-логикой,
// например при нарушении уникальности названия товара.
func FieldErrors(errs map[string]string) Response {
	return Response{
		Success: false,
		Message: "validation failed",
		Status:  http.StatusUnprocessableEntity,
		Errors:  errs,
	}
}

// ValidationError формирует Response со статусом 422 на основе ошибок валидации.
// Каждое нарушение преобразуется в человеко‑читаемый текст, привязанный к полю.
func ValidationError(errs validator.ValidationErrors) Response {
	errsMap := make(map[string]string, len(errs))

	for _, err := range errs {
		field := err.Field()
		switch err.ActualTag() {
		case "required":
			errsMap[field] = fmt.Sprintf("field %s is a required field", field)
		case "max":
			errsMap[field] = fmt.Sprintf("field %s must not exceed %s characters", field, err.Param())
		case "gte":
			errsMap[field] = fmt.Sprintf("field %s must be greater than or equal to %s", field, err.Param())
		case "oneof":
			errsMap[field] = fmt.Sprintf("field %s must be one of: %s", field, err.Param())
		default:
			errsMap[field] = fmt.Sprintf("field %s is not valid", field)
		}
	}
	return FieldErrors(errsMap)
}

// Clean убирает из данных пустые поля: nil, пустые строки, пустые коллекции.
// Структуры приводятся к map через JSON, срезы очищаются поэлементно.
// Скалярные значения возвращаются без изменений.
func Clean(data any) any {
	if data == nil {
		return nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return data
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return data
	}

	return cleanValue(decoded)
}

func cleanValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			cleaned := cleanValue(item)
			if isEmpty(cleaned) {
				continue
			}
			out[k] = cleaned
		}
		return out
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			out = append(out, cleanValue(item))
		}
		return out
	default:
		return v
	}
}

func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case map[string]any:
		return len(val) == 0
	case []any:
		return len(val) == 0
	default:
		return false
	}
}
