// Package models содержит доменные структуры, описывающие товар,
// а также вспомогательные типы для приёма данных из внешних источников (например, JSON-запросы).
package models

import "time"

// Статусы и типы товара, допустимые в системе.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"

	TypeItem    = "item"
	TypeService = "service"
)

// Product представляет собой основную модель товара,
// используемую в бизнес-логике и хранилище.
type Product struct {
	ID        int64     `json:"id"`         // Уникальный идентификатор товара
	Name      string    `json:"name"`       // Название товара (уникальное)
	Price     float64   `json:"price"`      // Цена товара
	Status    string    `json:"status"`     // Статус: active или inactive
	Type      string    `json:"type"`       // Тип: item или service
	UserUID   string    `json:"user_uid"`   // UID пользователя-владельца
	CreatedAt time.Time `json:"created_at"` // Дата создания записи
	UpdatedAt time.Time `json:"updated_at"` // Дата последнего обновления
}

// DummyProduct используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Product.
// Цена приходит указателем, чтобы нулевая цена проходила проверку required.
type DummyProduct struct {
	Name   string   `json:"name" validate:"required,max=255"`                  // Название товара
	Price  *float64 `json:"price" validate:"required,gte=0"`                   // Цена (>= 0)
	Status string   `json:"status" validate:"omitempty,oneof=active inactive"` // Статус (опционально)
	Type   string   `json:"type" validate:"omitempty,oneof=item service"`      // Тип (опционально)
}

// ApplyDefaults подставляет значения статуса и типа по умолчанию,
// если они не были переданы в запросе.
func (d *DummyProduct) ApplyDefaults() {
	if d.Status == "" {
		d.Status = StatusActive
	}
	if d.Type == "" {
		d.Type = TypeItem
	}
}
