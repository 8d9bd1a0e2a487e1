package rabbitmq

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/streadway/amqp"
)

// Event is the JSON envelope published for every committed change.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"` // e.g. "user.created", "post.deleted"
	EntityID   uint      `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEvent builds an event with a fresh ID.
func NewEvent(eventType string, entityID uint) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
}

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL   string
	Queue string
}

// NewClient connects to RabbitMQ, opens a channel and declares the event queue.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := declare(ch, cfg.Queue); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", cfg.Queue, err)
	}

	slog.Info("rabbitmq client connected", slog.String("queue", cfg.Queue))

	return &Client{
		conn:    conn,
		channel: ch,
		queue:   cfg.Queue,
	}, nil
}

func declare(ch *amqp.Channel, queue string) (amqp.Queue, error) {
	return ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// Publish sends event to the event queue as a persistent JSON message.
func (c *Client) Publish(event Event) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	body, err := Encode(event)
	if err != nil {
		return err
	}

	err = c.channel.Publish(
		"",      // default exchange
		c.queue, // routing key: the queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    event.ID,
			Type:         event.Type,
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
		})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}
	return nil
}

// Consume delivers every message of the event queue to handler on a background
// goroutine. Messages are acked when handler returns nil and requeued otherwise.
func (c *Client) Consume(handler func(event Event) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	msgs, err := c.channel.Consume(
		c.queue, // queue
		"",      // consumer tag
		false,   // auto-ack
		false,   // exclusive
		false,   // no-local
		false,   // no-wait
		nil,     // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			if err := handleDelivery(msg.Body, handler); err != nil {
				slog.Error("event processing failed", slog.Uint64("delivery_tag", msg.DeliveryTag), slog.Any("error", err))
				// Undecodable bodies are dropped; handler failures are retried.
				if nackErr := msg.Nack(false, !isDecodeError(err)); nackErr != nil {
					slog.Error("nack failed", slog.Uint64("delivery_tag", msg.DeliveryTag), slog.Any("error", nackErr))
				}
				continue
			}
			if ackErr := msg.Ack(false); ackErr != nil {
				slog.Error("ack failed", slog.Uint64("delivery_tag", msg.DeliveryTag), slog.Any("error", ackErr))
			}
		}
	}()

	return nil
}

type decodeError struct{ err error }

func (e decodeError) Error() string { return "failed to decode event: " + e.err.Error() }
func (e decodeError) Unwrap() error { return e.err }

func isDecodeError(err error) bool {
	_, ok := err.(decodeError)
	return ok
}

func handleDelivery(body []byte, handler func(event Event) error) error {
	event, err := Decode(body)
	if err != nil {
		return decodeError{err: err}
	}
	return handler(event)
}

// Encode marshals event to JSON.
func Encode(event Event) ([]byte, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event to JSON: %w", err)
	}
	return body, nil
}

// Decode parses a JSON event body.
func Decode(body []byte) (Event, error) {
	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return Event{}, err
	}
	if event.Type == "" {
		return Event{}, fmt.Errorf("event has no type")
	}
	return event, nil
}
