package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID       string    `json:"uid"`      // Уникальный идентификатор пользователя
	Username  string    `json:"username"` // Имя пользователя (уникальное)
	Email     string    `json:"email"`    // Электронная почта
	CreatedAt time.Time `json:"-"`        // Дата создания учётной записи
}
