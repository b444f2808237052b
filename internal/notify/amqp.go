package notify

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName    = "ex.crm.alerts"
	QuotaRoutingKey = "k.quota"
)

// publisher — подмножество *amqp.Channel, нужное для публикации.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPNotifier публикует отчёт в exchange ExchangeName.
type AMQPNotifier struct {
	conn *amqp.Connection
	ch   publisher
}

// NewAMQPNotifier подключается к брокеру и объявляет exchange.
func NewAMQPNotifier(url string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(ExchangeName, "topic", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AMQPNotifier{conn: conn, ch: ch}, nil
}

func (n *AMQPNotifier) NotifyQuota(ctx context.Context, report QuotaReport) error {
	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal quota report: %w", err)
	}

	err = n.ch.PublishWithContext(ctx,
		ExchangeName,
		QuotaRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    report.RunID,
			Timestamp:    report.GeneratedAt,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish quota report: %w", err)
	}
	return nil
}

// Close закрывает соединение с брокером.
func (n *AMQPNotifier) Close() error {
	if n.conn == nil {
		return nil
	}
	return n.conn.Close()
}
