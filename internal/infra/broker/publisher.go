package broker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"booking-engine/internal/pkg/config"
	"booking-engine/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sony/gobreaker"
)

var ErrPublisherClosed = errs.New("publisher is closed")

// Publisher sends outbox events to a durable direct exchange. Publishes go
// through a circuit breaker so a broker outage fails fast and the relay can
// reschedule jobs instead of blocking on dial timeouts.
type Publisher struct {
	url      string
	exchange string
	queue    string
	timeout  time.Duration
	breaker  *gobreaker.CircuitBreaker

	mu     sync.Mutex
	conn   *amqp.Connection
	ch     *amqp.Channel
	closed bool
}

func NewPublisher(cfg config.AMQPConfig) *Publisher {
	p := &Publisher{
		url:      cfg.URL,
		exchange: cfg.Exchange,
		queue:    cfg.Queue,
		timeout:  cfg.PublishTimeout,
	}
	p.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "amqp-publisher",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})
	return p
}

// Publish routes payload by topic. The topic doubles as the routing key.
func (p *Publisher) Publish(ctx context.Context, topic string, payload []byte) error {
	_, err := p.breaker.Execute(func() (any, error) {
		return nil, p.publish(ctx, topic, payload)
	})
	if err != nil {
		return errs.Wrap(err, "failed to publish "+topic)
	}
	return nil
}

func (p *Publisher) publish(ctx context.Context, topic string, payload []byte) error {
	ch, err := p.channel()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return ch.PublishWithContext(ctx,
		p.exchange, // exchange
		topic,      // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Type:         topic,
			Body:         payload,
		},
	)
}

// channel returns an open channel, dialing again after a dropped connection.
func (p *Publisher) channel() (*amqp.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrPublisherClosed
	}
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	if p.conn != nil && !p.conn.IsClosed() {
		_ = p.conn.Close()
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, errs.Wrap(err, "failed to dial amqp")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to open amqp channel")
	}
	if err := declare(ch, p.exchange, p.queue); err != nil {
		_ = conn.Close()
		return nil, err
	}

	p.conn, p.ch = conn, ch
	slog.Info("amqp channel opened", "exchange", p.exchange)
	return ch, nil
}

// declare sets up the exchange and binds the notification queue to every
// topic the outbox emits.
func declare(ch *amqp.Channel, exchange, queue string) error {
	if err := ch.ExchangeDeclare(exchange, "direct", true, false, false, false, nil); err != nil {
		return errs.Wrap(err, "failed to declare exchange")
	}
	if queue == "" {
		return nil
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return errs.Wrap(err, "failed to declare queue")
	}
	for _, topic := range Topics {
		if err := ch.QueueBind(queue, topic, exchange, false, nil); err != nil {
			return errs.Wrap(err, "failed to bind queue")
		}
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}
	if err := p.conn.Close(); err != nil {
		return errs.Wrap(err, "failed to close amqp connection")
	}
	return nil
}

// LogPublisher stands in for the broker when AMQP is disabled.
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	slog.InfoContext(ctx, "event published", "topic", topic, "payload", string(payload))
	return nil
}
