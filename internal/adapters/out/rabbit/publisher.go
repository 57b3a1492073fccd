// Package rabbit implements the notification publisher port on top of
// RabbitMQ. Lifecycle events go to a topic exchange with the event kind as
// the routing key, so downstream consumers (push delivery, history,
// statistics) can bind to the kinds they care about.
package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/rabbitmq/amqp091-go"

	"pedidos/internal/core/ports"
)

// ExchangeName is the topic exchange carrying order lifecycle events.
const ExchangeName = "order.events"

// channel is the subset of amqp091.Channel the publisher needs.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// Publisher implements ports.NotificationPublisher over an AMQP channel.
type Publisher struct {
	ch     channel
	logger *slog.Logger
}

// NewPublisher declares the lifecycle exchange and returns a publisher
// bound to it.
func NewPublisher(ch channel, logger *slog.Logger) (*Publisher, error) {
	err := ch.ExchangeDeclare(
		ExchangeName,
		"topic",
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", ExchangeName, err)
	}

	return &Publisher{
		ch:     ch,
		logger: logger.With("component", "rabbit_publisher"),
	}, nil
}

// Publish sends one lifecycle event. The event kind doubles as the routing
// key and the payload is the event serialized as JSON.
func (p *Publisher) Publish(ctx context.Context, event ports.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.Kind(), err)
	}

	err = p.ch.PublishWithContext(ctx,
		ExchangeName,
		event.Kind(),
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish event %s: %w", event.Kind(), err)
	}

	p.logger.Debug("published lifecycle event", "kind", event.Kind())
	return nil
}
