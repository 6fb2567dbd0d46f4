package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/product-catalog/internal/models"
)

func TestStorage_CheckDatabaseReady(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	t.Run("после миграций база готова", func(t *testing.T) {
		require.NoError(t, CheckDatabaseReady(storage))
	})

	t.Run("без таблицы товаров база не готова", func(t *testing.T) {
		_, err := storage.DB.Exec(`ALTER TABLE products RENAME TO products_hidden`)
		require.NoError(t, err)
		defer func() {
			_, err := storage.DB.Exec(`ALTER TABLE products_hidden RENAME TO products`)
			require.NoError(t, err)
		}()

		assert.Error(t, CheckDatabaseReady(storage))
	})
}

func TestStorage_CreateProduct(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	ctx := context.Background()

	userUID := NewTestUserUID()
	factory.CreateUser(t, userUID, "testuser", "test@example.com")

	t.Run("создание товара добавляет ровно одну запись аудита", func(t *testing.T) {
		created, err := storage.CreateProduct(ctx, models.Product{
			Name:    "Chair",
			Price:   49.99,
			Status:  models.StatusActive,
			Type:    models.TypeItem,
			UserUID: userUID,
		})
		require.NoError(t, err)
		require.NotZero(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())

		assert.Equal(t, 1, factory.CountHistory(t, created.ID))

		records, err := storage.ListProductHistory(ctx, created.ID)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, userUID, records[0].UserUID)
		assert.Equal(t, models.StatusActive, records[0].Status)
	})

	t.Run("повторное название не сохраняет ни товар, ни запись аудита", func(t *testing.T) {
		_, err := storage.CreateProduct(ctx, models.Product{
			Name:    "Chair",
			Price:   10,
			Status:  models.StatusActive,
			Type:    models.TypeItem,
			UserUID: userUID,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrProductNameTaken)
		assert.Equal(t, 1, factory.CountProducts(t, "Chair"))
	})

	t.Run("несуществующий владелец", func(t *testing.T) {
		_, err := storage.CreateProduct(ctx, models.Product{
			Name:    "Table",
			Price:   10,
			Status:  models.StatusActive,
			Type:    models.TypeItem,
			UserUID: NewTestUserUID(),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Equal(t, 0, factory.CountProducts(t, "Table"))
	})
}

func TestStorage_ReadUpdateRemove(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	ctx := context.Background()

	userUID := NewTestUserUID()
	factory.CreateUser(t, userUID, "testuser", "test@example.com")

	id := factory.CreateProduct(t, "Chair", 49.99, models.StatusActive, models.TypeItem, userUID)
	factory.CreateHistory(t, userUID, id, models.StatusActive)

	t.Run("чтение существующего товара", func(t *testing.T) {
		product, err := storage.ReadProduct(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Chair", product.Name)
		assert.InDelta(t, 49.99, product.Price, 0.001)
		assert.Equal(t, userUID, product.UserUID)
	})

	t.Run("чтение несуществующего товара", func(t *testing.T) {
		_, err := storage.ReadProduct(ctx, 99999)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("обновление сохраняет владельца и дату создания", func(t *testing.T) {
		updated, err := storage.UpdateProduct(ctx, models.Product{
			ID:     id,
			Name:   "Chair Deluxe",
			Price:  99.99,
			Status: models.StatusInactive,
			Type:   models.TypeItem,
		})
		require.NoError(t, err)
		assert.Equal(t, userUID, updated.UserUID)
		assert.Equal(t, models.StatusInactive, updated.Status)
	})

	t.Run("обновление несуществующего товара", func(t *testing.T) {
		_, err := storage.UpdateProduct(ctx, models.Product{
			ID: 99999, Name: "Ghost", Price: 1, Status: models.StatusActive, Type: models.TypeItem,
		})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("удаление товара каскадно удаляет историю", func(t *testing.T) {
		require.NoError(t, storage.RemoveProduct(ctx, id))
		assert.Equal(t, 0, factory.CountHistory(t, id))

		err := storage.RemoveProduct(ctx, id)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestStorage_ListProducts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	ctx := context.Background()

	aliceUID := NewTestUserUID()
	bobUID := NewTestUserUID()
	factory.CreateUser(t, aliceUID, "alice", "alice@example.com")
	factory.CreateUser(t, bobUID, "bob", "bob@example.com")

	factory.CreateProduct(t, "Office Chair", 49.99, models.StatusActive, models.TypeItem, aliceUID)
	factory.CreateProduct(t, "Office Table", 99.99, models.StatusActive, models.TypeItem, aliceUID)
	factory.CreateProduct(t, "Delivery", 5, models.StatusActive, models.TypeService, bobUID)

	t.Run("фильтр по подстроке названия", func(t *testing.T) {
		products, err := storage.ListProducts(ctx, models.ProductFilter{Name: "Office"}, 10, 0)
		require.NoError(t, err)
		assert.Len(t, products, 2)

		total, err := storage.CountProducts(ctx, models.ProductFilter{Name: "Office"})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("фильтр по имени владельца", func(t *testing.T) {
		products, err := storage.ListProducts(ctx, models.ProductFilter{Person: "bob"}, 10, 0)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Delivery", products[0].Name)
	})

	t.Run("пустой фильтр возвращает все товары, новые первыми", func(t *testing.T) {
		products, err := storage.ListProducts(ctx, models.ProductFilter{}, 10, 0)
		require.NoError(t, err)
		require.Len(t, products, 3)
		for i := 1; i < len(products); i++ {
			assert.False(t, products[i-1].CreatedAt.Before(products[i].CreatedAt))
		}
	})

	t.Run("limit и offset ограничивают выборку", func(t *testing.T) {
		page, err := storage.ListProducts(ctx, models.ProductFilter{}, 2, 2)
		require.NoError(t, err)
		assert.Len(t, page, 1)
	})

	t.Run("все товары без пагинации", func(t *testing.T) {
		products, err := storage.ListAllProducts(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 3)
	})
}

func TestStorage_ProductNameExists(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	ctx := context.Background()

	userUID := NewTestUserUID()
	factory.CreateUser(t, userUID, "testuser", "test@example.com")
	id := factory.CreateProduct(t, "Chair", 49.99, models.StatusActive, models.TypeItem, userUID)

	t.Run("занятое название", func(t *testing.T) {
		exists, err := storage.ProductNameExists(ctx, "Chair", 0)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("проверка при обновлении исключает сам товар", func(t *testing.T) {
		exists, err := storage.ProductNameExists(ctx, "Chair", id)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("свободное название", func(t *testing.T) {
		exists, err := storage.ProductNameExists(ctx, "Table", 0)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestStorage_GetUser(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	ctx := context.Background()

	userUID := NewTestUserUID()
	factory.CreateUser(t, userUID, "testuser", "test@example.com")

	t.Run("чтение пользователя по UID", func(t *testing.T) {
		user, err := storage.GetUser(ctx, userUID)
		require.NoError(t, err)
		assert.Equal(t, "testuser", user.Username)
		assert.Equal(t, "test@example.com", user.Email)
	})

	t.Run("чтение пользователя по username", func(t *testing.T) {
		user, err := storage.GetUserByUsername(ctx, "testuser")
		require.NoError(t, err)
		assert.Equal(t, userUID, user.UID)
	})

	t.Run("несуществующий пользователь", func(t *testing.T) {
		_, err := storage.GetUser(ctx, NewTestUserUID())
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
