package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/product-catalog/internal/models"
)

// addHistoryTx добавляет запись аудита о статусе товара внутри транзакции
// создания. Вызывается ровно один раз на каждое создание товара, до коммита:
// если запись не удалась, транзакция откатывается вместе с товаром.
// Обновление и удаление товара записей не добавляют.
func (s *Storage) addHistoryTx(ctx context.Context, tx *sql.Tx, userUID string, productID int64, status string) error {
	const op = "storage.addHistoryTx"

	query := `INSERT INTO product_history (user_uid, product_id, status)
			  VALUES ($1, $2, $3)`
	if _, err := tx.ExecContext(ctx, query, userUID, productID, status); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListProductHistory возвращает записи аудита товара, новые первыми.
func (s *Storage) ListProductHistory(ctx context.Context, productID int64) ([]*models.ProductHistory, error) {
	const op = "storage.ListProductHistory"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, product_id, status, created_at, updated_at
			  FROM product_history
			  WHERE product_id = $1
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.ProductHistory
	for rows.Next() {
		var item models.ProductHistory
		if err := rows.Scan(&item.ID, &item.UserUID, &item.ProductID,
			&item.Status, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
