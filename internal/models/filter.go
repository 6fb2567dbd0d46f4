package models

// ProductFilter представляет параметры фильтрации списка товаров,
// которые передаются в слой доступа к данным.
// Пустая строка означает отсутствие фильтра по соответствующему полю.
type ProductFilter struct {
	Name   string // Подстрока названия товара
	Person string // Подстрока имени пользователя-владельца
}

// Pagination содержит метаданные постраничного вывода списка товаров.
type Pagination struct {
	Total     int `json:"total"`      // Общее количество записей по фильтру
	Page      int `json:"page"`       // Номер текущей страницы (с 1)
	PerPage   int `json:"per_page"`   // Размер страницы
	PageCount int `json:"page_count"` // Количество страниц
}

// NewPagination вычисляет метаданные пагинации.
func NewPagination(page, perPage, total int) Pagination {
	if page <= 0 {
		page = 1
	}
	pageCount := total / perPage
	if total%perPage != 0 {
		pageCount++
	}
	return Pagination{
		Total:     total,
		Page:      page,
		PerPage:   perPage,
		PageCount: pageCount,
	}
}
