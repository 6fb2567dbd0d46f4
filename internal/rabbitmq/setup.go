package rabbitmq

import (
	"fmt"

	"github.com/streadway/amqp"
)

// Exchange и очередь уведомлений о созданных товарах.
const (
	NotificationsExchange = "notifications"
	ProductCreatedQueue   = "notifications.product.created"
	ProductCreatedKey     = "product.created"
)

// SetupChannel открывает канал и объявляет exchange, очередь и привязку
// для уведомлений о созданных товарах.
func SetupChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	const op = "rabbitmq.SetupChannel"
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := ch.Qos(10, 0, false); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	err = ch.ExchangeDeclare(
		NotificationsExchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	_, err = ch.QueueDeclare(
		ProductCreatedQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	err = ch.QueueBind(ProductCreatedQueue, ProductCreatedKey, NotificationsExchange, false, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ch, err
}
