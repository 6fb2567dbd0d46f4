// Package notifier реализует хук уведомления о созданных товарах
// поверх RabbitMQ: событие публикуется в exchange уведомлений
// и доставляется пользователю отдельным сервисом notification-sender.
package notifier

import (
	"log/slog"

	"github.com/streadway/amqp"

	librabbitmq "github.com/magabrotheeeer/product-catalog/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/product-catalog/internal/models"
	"github.com/magabrotheeeer/product-catalog/internal/rabbitmq"
)

// AMQPNotifier публикует уведомления о созданных товарах в RabbitMQ.
type AMQPNotifier struct {
	ch  *amqp.Channel
	log *slog.Logger
}

// New создает новый AMQPNotifier поверх открытого канала.
func New(ch *amqp.Channel, log *slog.Logger) *AMQPNotifier {
	return &AMQPNotifier{ch: ch, log: log}
}

// NotifyNewProduct публикует событие о созданном товаре, адресованное владельцу.
// Вызывается после коммита транзакции создания: ошибка публикации
// логируется вызывающей стороной и не откатывает товар.
func (n *AMQPNotifier) NotifyNewProduct(product models.Product, owner models.User) error {
	message := models.ProductNotification{
		Email:       owner.Email,
		Username:    owner.Username,
		ProductName: product.Name,
		Price:       product.Price,
	}

	if err := librabbitmq.PublishMessage(n.ch, rabbitmq.NotificationsExchange,
		rabbitmq.ProductCreatedKey, message); err != nil {
		return err
	}

	n.log.Info("published product notification",
		slog.Int64("product_id", product.ID),
		slog.String("username", owner.Username))
	return nil
}
