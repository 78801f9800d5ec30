package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"artiste_site/internal/lib/logger/sl"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	RoutingOrderCreated       = "order.created"
	RoutingOrderStatusChanged = "order.status_changed"
)

// Publisher отправляет доменные события; ошибки логируются и возвращаются вызывающему
type Publisher interface {
	Publish(ctx context.Context, routingKey string, event interface{}) error
}

// AMQPPublisher открывает соединение на каждую публикацию
type AMQPPublisher struct {
	log      *slog.Logger
	url      string
	exchange string
}

// NewPublisher returns a no-op publisher when url is empty.
func NewPublisher(log *slog.Logger, url, exchange string) Publisher {
	if url == "" {
		return NoopPublisher{}
	}
	return &AMQPPublisher{log: log, url: url, exchange: exchange}
}

func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, event interface{}) error {
	const op = "queue.AMQPPublisher.Publish"

	log := p.log.With(
		slog.String("op", op),
		slog.String("routing_key", routingKey),
	)

	body, err := json.Marshal(event)
	if err != nil {
		log.Error("marshal event failed", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Error("dial failed", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Error("channel open failed", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.ExchangeDeclare(p.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		log.Error("exchange declare failed", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := ch.QueueDeclare(routingKey, true, false, false, false, nil); err != nil {
		log.Error("queue declare failed", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := ch.QueueBind(routingKey, routingKey, p.exchange, false, nil); err != nil {
		log.Error("queue bind failed", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg); err != nil {
		log.Error("publish failed", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Debug("event published")

	return nil
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, interface{}) error {
	return nil
}
