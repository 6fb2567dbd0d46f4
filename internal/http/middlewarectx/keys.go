// Package middlewarectx содержит middleware HTTP-сервера и ключи контекста,
// через которые обработчикам передаются данные аутентифицированного пользователя.
package middlewarectx

// ContextKey — тип ключей контекста запроса.
type ContextKey string

// Ключи контекста, заполняемые JWT middleware.
const (
	// User — имя аутентифицированного пользователя.
	User ContextKey = "username"
	// UserUID — UID аутентифицированного пользователя.
	UserUID ContextKey = "user_uid"
)
