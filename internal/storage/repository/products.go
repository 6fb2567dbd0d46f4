package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/product-catalog/internal/models"
)

// CreateProduct вставляет новый товар и запись аудита в одной транзакции.
// Либо сохраняются обе записи, либо ни одной: при любой ошибке транзакция
// откатывается. Возвращает товар с заполненными ID и временными метками.
func (s *Storage) CreateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	const op = "storage.CreateProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `INSERT INTO products (name, price, status, type, user_uid)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at, updated_at`
	err = tx.QueryRowContext(ctx, query,
		product.Name, product.Price, product.Status, product.Type, product.UserUID).
		Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrProductNameTaken)
		}
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = s.addHistoryTx(ctx, tx, product.UserUID, product.ID, product.Status); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &product, nil
}

// ReadProduct возвращает данные товара по его ID.
func (s *Storage) ReadProduct(ctx context.Context, id int64) (*models.Product, error) {
	const op = "storage.ReadProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, price, status, type, user_uid, created_at, updated_at
			  FROM products WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Product
	if err := row.Scan(&result.ID, &result.Name, &result.Price, &result.Status,
		&result.Type, &result.UserUID, &result.CreatedAt, &result.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrProductNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// UpdateProduct перезаписывает название, цену, статус и тип товара по его ID.
func (s *Storage) UpdateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	const op = "storage.UpdateProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE products
			  SET name = $1, price = $2, status = $3, type = $4, updated_at = now()
			  WHERE id = $5
			  RETURNING user_uid, created_at, updated_at`
	err := s.DB.QueryRowContext(ctx, query,
		product.Name, product.Price, product.Status, product.Type, product.ID).
		Scan(&product.UserUID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrProductNotFound)
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrProductNameTaken)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &product, nil
}

// RemoveProduct удаляет товар по ID. Записи истории удаляются каскадно
// на уровне базы данных, приложение их не трогает.
func (s *Storage) RemoveProduct(ctx context.Context, id int64) error {
	const op = "storage.RemoveProduct"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM products WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrProductNotFound)
	}
	return nil
}

// ListProducts возвращает страницу товаров по фильтру, отсортированную
// по дате создания по убыванию. Фильтры по подстроке названия товара
// и имени владельца применяются, только если заданы.
func (s *Storage) ListProducts(ctx context.Context, filter models.ProductFilter, limit, offset int) ([]*models.Product, error) {
	const op = "storage.ListProducts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT p.id, p.name, p.price, p.status, p.type, p.user_uid, p.created_at, p.updated_at
			  FROM products p
			  JOIN users u ON u.uid = p.user_uid
			  WHERE ($1 = '' OR p.name LIKE '%' || $1 || '%')
			    AND ($2 = '' OR u.username LIKE '%' || $2 || '%')
			  ORDER BY p.created_at DESC
			  LIMIT $3 OFFSET $4`
	rows, err := s.DB.QueryContext(ctx, query, filter.Name, filter.Person, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Product
	for rows.Next() {
		var item models.Product
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Status,
			&item.Type, &item.UserUID, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountProducts подсчитывает общее количество товаров по фильтру.
func (s *Storage) CountProducts(ctx context.Context, filter models.ProductFilter) (int, error) {
	const op = "storage.CountProducts"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COUNT(*)
			  FROM products p
			  JOIN users u ON u.uid = p.user_uid
			  WHERE ($1 = '' OR p.name LIKE '%' || $1 || '%')
			    AND ($2 = '' OR u.username LIKE '%' || $2 || '%')`
	var total int
	if err := s.DB.QueryRowContext(ctx, query, filter.Name, filter.Person).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

// ListAllProducts возвращает все товары без пагинации.
func (s *Storage) ListAllProducts(ctx context.Context) ([]*models.Product, error) {
	const op = "storage.ListAllProducts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, price, status, type, user_uid, created_at, updated_at
			  FROM products
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Product
	for rows.Next() {
		var item models.Product
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Status,
			&item.Type, &item.UserUID, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ProductNameExists проверяет занятость названия товара.
// excludeID исключает из проверки сам обновляемый товар; при создании
// передаётся 0.
func (s *Storage) ProductNameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	const op = "storage.ProductNameExists"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT EXISTS (
			      SELECT 1 FROM products WHERE name = $1 AND id <> $2
			  )`
	var exists bool
	if err := s.DB.QueryRowContext(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}
