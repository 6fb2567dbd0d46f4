// Package services содержит бизнес-логику для управления товарами,
// аудитом и кешированием.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/product-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/product-catalog/internal/models"
	"github.com/magabrotheeeer/product-catalog/internal/storage/repository"
)

// PageSize — фиксированный размер страницы списка товаров.
const PageSize = 10

// cacheTTL — время жизни товара в кеше.
const cacheTTL = time.Hour

// ProductRepository определяет методы для работы с товарами в хранилище.
type ProductRepository interface {
	// CreateProduct добавляет товар вместе с записью аудита в одной транзакции.
	CreateProduct(ctx context.Context, product models.Product) (*models.Product, error)
	// ReadProduct возвращает товар по ID.
	ReadProduct(ctx context.Context, id int64) (*models.Product, error)
	// UpdateProduct перезаписывает поля товара по ID.
	UpdateProduct(ctx context.Context, product models.Product) (*models.Product, error)
	// RemoveProduct удаляет товар по ID.
	RemoveProduct(ctx context.Context, id int64) error
	// ListProducts возвращает страницу товаров по фильтру.
	ListProducts(ctx context.Context, filter models.ProductFilter, limit, offset int) ([]*models.Product, error)
	// CountProducts подсчитывает количество товаров по фильтру.
	CountProducts(ctx context.Context, filter models.ProductFilter) (int, error)
	// ListAllProducts возвращает все товары без пагинации.
	ListAllProducts(ctx context.Context) ([]*models.Product, error)
	// ProductNameExists проверяет занятость названия, исключая excludeID.
	ProductNameExists(ctx context.Context, name string, excludeID int64) (bool, error)
	// ListProductHistory возвращает записи аудита товара.
	ListProductHistory(ctx context.Context, productID int64) ([]*models.ProductHistory, error)
	// GetUser возвращает пользователя по UID.
	GetUser(ctx context.Context, userUID string) (*models.User, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// Notifier описывает хук уведомления о созданном товаре.
// Вызывается после коммита транзакции; его ошибка не влияет
// на сохранённый товар.
type Notifier interface {
	NotifyNewProduct(product models.Product, owner models.User) error
}

// ProductService реализует бизнес-логику работы с товарами,
// включая аудит, кеширование и уведомления.
type ProductService struct {
	repo     ProductRepository
	cache    Cache
	notifier Notifier
	log      *slog.Logger
}

// NewProductService создает новый экземпляр ProductService.
func NewProductService(repo ProductRepository, cache Cache, notifier Notifier, log *slog.Logger) *ProductService {
	return &ProductService{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		log:      log,
	}
}

func cacheKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

// Create создает новый товар от имени пользователя userUID.
// Проверяет уникальность названия, находит владельца, сохраняет товар
// вместе с записью аудита и после коммита отправляет уведомление владельцу.
func (s *ProductService) Create(ctx context.Context, userUID string, req models.DummyProduct) (*models.Product, error) {
	req.ApplyDefaults()

	taken, err := s.repo.ProductNameExists(ctx, req.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("name %q: %w", req.Name, repository.ErrProductNameTaken)
	}

	owner, err := s.repo.GetUser(ctx, userUID)
	if err != nil {
		return nil, err
	}

	product := models.Product{
		Name:    req.Name,
		Price:   *req.Price,
		Status:  req.Status,
		Type:    req.Type,
		UserUID: owner.UID,
	}

	created, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new product", slog.Int64("id", created.ID))

	key := cacheKey(created.ID)
	if err := s.cache.Set(key, created, cacheTTL); err != nil {
		s.log.Warn("failed to cache product", slog.String("key", key), sl.Err(err))
	}

	if err := s.notifier.NotifyNewProduct(*created, *owner); err != nil {
		s.log.Warn("failed to notify product owner", slog.Int64("id", created.ID), sl.Err(err))
	}

	return created, nil
}

// List возвращает страницу товаров по фильтру и метаданные пагинации.
func (s *ProductService) List(ctx context.Context, filter models.ProductFilter, page int) ([]*models.Product, models.Pagination, error) {
	if page <= 0 {
		page = 1
	}

	total, err := s.repo.CountProducts(ctx, filter)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	offset := (page - 1) * PageSize
	products, err := s.repo.ListProducts(ctx, filter, PageSize, offset)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	return products, models.NewPagination(page, PageSize, total), nil
}

// Read возвращает товар по ID, используя кеш или репозиторий.
func (s *ProductService) Read(ctx context.Context, id int64) (*models.Product, error) {
	var result *models.Product
	key := cacheKey(id)
	found, err := s.cache.Get(key, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", key), sl.Err(err))
	}
	if found && result != nil {
		return result, nil
	}

	result, err = s.repo.ReadProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(key, result, cacheTTL); err != nil {
		s.log.Warn("failed to cache product", slog.String("key", key), sl.Err(err))
	}
	return result, nil
}

// ReadAll возвращает все товары без пагинации.
func (s *ProductService) ReadAll(ctx context.Context) ([]*models.Product, error) {
	return s.repo.ListAllProducts(ctx)
}

// Update перезаписывает поля товара по ID и обновляет кеш.
// Непереданные статус и тип сохраняют текущие значения товара.
// Проверка уникальности названия исключает сам обновляемый товар.
func (s *ProductService) Update(ctx context.Context, id int64, req models.DummyProduct) (*models.Product, error) {
	existing, err := s.repo.ReadProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.ProductNameExists(ctx, req.Name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("name %q: %w", req.Name, repository.ErrProductNameTaken)
	}

	if req.Status == "" {
		req.Status = existing.Status
	}
	if req.Type == "" {
		req.Type = existing.Type
	}

	product := models.Product{
		ID:     id,
		Name:   req.Name,
		Price:  *req.Price,
		Status: req.Status,
		Type:   req.Type,
	}

	updated, err := s.repo.UpdateProduct(ctx, product)
	if err != nil {
		return nil, err
	}
	s.log.Info("updated product", slog.Int64("id", id))

	key := cacheKey(id)
	if err := s.cache.Set(key, updated, cacheTTL); err != nil {
		s.log.Warn("failed to cache product", slog.String("key", key), sl.Err(err))
	}
	return updated, nil
}

// Remove удаляет товар по ID и инвалидирует кеш.
// Записи аудита удаляются каскадом на уровне базы данных.
func (s *ProductService) Remove(ctx context.Context, id int64) error {
	key := cacheKey(id)
	if err := s.cache.Invalidate(key); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", key), sl.Err(err))
	}

	return s.repo.RemoveProduct(ctx, id)
}

// History возвращает записи аудита существующего товара.
func (s *ProductService) History(ctx context.Context, id int64) ([]*models.ProductHistory, error) {
	if _, err := s.repo.ReadProduct(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListProductHistory(ctx, id)
}
