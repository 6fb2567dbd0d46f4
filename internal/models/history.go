package models

import "time"

// ProductHistory представляет запись аудита о статусе товара в момент записи.
// Записи только добавляются: хранилище никогда не изменяет и не удаляет их напрямую,
// они исчезают только каскадно вместе с товаром.
type ProductHistory struct {
	ID        int64     `json:"id"`         // Уникальный идентификатор записи
	UserUID   string    `json:"user_uid"`   // UID пользователя, выполнившего операцию
	ProductID int64     `json:"product_id"` // Идентификатор товара
	Status    string    `json:"status"`     // Статус товара на момент записи
	CreatedAt time.Time `json:"created_at"` // Дата создания записи
	UpdatedAt time.Time `json:"updated_at"` // Дата обновления записи
}
