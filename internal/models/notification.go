package models

// ProductNotification — сообщение о созданном товаре, публикуемое в RabbitMQ
// после коммита транзакции и доставляемое пользователю по почте.
type ProductNotification struct {
	Email       string  `json:"email"`        // Почта владельца товара
	Username    string  `json:"username"`     // Имя владельца товара
	ProductName string  `json:"product_name"` // Название созданного товара
	Price       float64 `json:"price"`        // Цена созданного товара
}
