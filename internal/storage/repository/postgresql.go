// Package repository реализует хранилище данных на основе PostgreSQL
// для управления товарами и записями аудита. Предоставляет методы
// создания, чтения, обновления и удаления товаров, постраничного
// поиска, а также чтения пользователей и истории статусов.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки уровня хранилища, которые бизнес-логика различает через errors.Is.
var (
	// ErrProductNotFound возвращается, когда товар с заданным ID отсутствует.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductNameTaken возвращается при нарушении уникальности названия товара.
	ErrProductNameTaken = errors.New("product name already taken")
	// ErrUserNotFound возвращается, когда пользователь-владелец не найден.
	ErrUserNotFound = errors.New("user not found")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с товарами, историей и пользователями.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'products'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table products missing or query error: %w", err)
	}
	return nil
}

// isUniqueViolation определяет, является ли ошибка нарушением
// ограничения уникальности на уровне PostgreSQL.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// isForeignKeyViolation определяет нарушение внешнего ключа,
// например вставку товара с несуществующим владельцем.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}
