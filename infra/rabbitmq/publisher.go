package rabbitmq

import (
	"blessindo/pkg/events"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	dialAttempts   = 5
	confirmTimeout = 5 * time.Second
)

var ErrNotAcknowledged = errors.New("message was not acknowledged by broker")

type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

type confirmingChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishConfirmed(ctx context.Context, exchange, key string, msg amqp.Publishing) (confirmation, error)
	Close() error
}

// amqpChannel hands out one deferred confirmation per published message.
type amqpChannel struct {
	*amqp.Channel
}

func (c amqpChannel) PublishConfirmed(ctx context.Context, exchange, key string, msg amqp.Publishing) (confirmation, error) {
	dc, err := c.PublishWithDeferredConfirmWithContext(ctx, exchange, key, false, false, msg)
	if err != nil {
		return nil, err
	}
	if dc == nil {
		return nil, errors.New("channel is not in confirm mode")
	}
	return dc, nil
}

// CatalogPublisher publishes catalog events to a topic exchange and waits
// for the broker confirm of every message.
type CatalogPublisher struct {
	mu             sync.Mutex
	conn           *amqp.Connection
	channel        confirmingChannel
	service        string
	declared       map[string]bool
	confirmTimeout time.Duration
}

func NewCatalogPublisher(ctx context.Context, url, service string) (*CatalogPublisher, error) {
	conn, err := dial(ctx, url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := channel.Confirm(false); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to enable publisher confirms: %w", err)
	}

	zap.L().Info("RabbitMQ publisher connected", zap.String("service", service))

	return &CatalogPublisher{
		conn:           conn,
		channel:        amqpChannel{channel},
		service:        service,
		declared:       map[string]bool{},
		confirmTimeout: confirmTimeout,
	}, nil
}

func dial(ctx context.Context, url string) (*amqp.Connection, error) {
	var err error
	for attempt := 1; attempt <= dialAttempts; attempt++ {
		var conn *amqp.Connection
		conn, err = amqp.Dial(url)
		if err == nil {
			return conn, nil
		}

		zap.L().Warn("Failed to connect to RabbitMQ, retrying",
			zap.Int("attempt", attempt),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * time.Second):
		}
	}

	return nil, fmt.Errorf("failed to connect to RabbitMQ after %d attempts: %w", dialAttempts, err)
}

// Publish sends event to exchange and blocks until the broker confirms that
// message. A confirm arriving after the timeout is dropped with its message.
func (p *CatalogPublisher) Publish(ctx context.Context, exchange string, event *events.Event, headers events.Headers) error {
	msg, err := buildMessage(event, headers, p.service)
	if err != nil {
		return err
	}

	if err := p.declare(exchange); err != nil {
		return err
	}

	publishCtx, cancel := context.WithTimeout(ctx, p.confirmTimeout)
	defer cancel()

	routingKey := event.GetRoutingKey()
	confirm, err := p.channel.PublishConfirmed(publishCtx, exchange, routingKey, msg)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	acked, err := confirm.WaitContext(publishCtx)
	if err != nil {
		return fmt.Errorf("publish confirmation: %w", err)
	}
	if !acked {
		return ErrNotAcknowledged
	}

	zap.L().Debug("Event published",
		zap.String("exchange", exchange),
		zap.String("routingKey", routingKey),
		zap.String("traceId", headers.TraceID),
	)

	return nil
}

func (p *CatalogPublisher) declare(exchange string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.declared[exchange] {
		return nil
	}

	if err := p.channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	p.declared[exchange] = true
	return nil
}

func buildMessage(event *events.Event, headers events.Headers, service string) (amqp.Publishing, error) {
	body, err := event.ToJSON()
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to serialize event: %w", err)
	}

	if headers.Service != "" {
		service = headers.Service
	}

	return amqp.Publishing{
		ContentType:   "application/json",
		Body:          body,
		DeliveryMode:  amqp.Persistent,
		Timestamp:     event.Timestamp,
		MessageId:     headers.TraceID,
		CorrelationId: headers.CorrelationID,
		Type:          event.Event,
		Headers: amqp.Table{
			"x-trace-id":       headers.TraceID,
			"x-correlation-id": headers.CorrelationID,
			"x-service":        service,
		},
	}, nil
}

func (p *CatalogPublisher) Close() error {
	if err := p.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		zap.L().Error("Failed to close channel", zap.Error(err))
	}
	if err := p.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		return fmt.Errorf("close connection: %w", err)
	}

	zap.L().Info("RabbitMQ publisher closed")
	return nil
}
