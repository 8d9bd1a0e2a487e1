package handlers

import (
	"log/slog"
	"strings"

	"blogly/internal/metrics"
	"blogly/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
)

// EventPublisher sends domain events after a change has been committed.
type EventPublisher interface {
	Publish(event rabbitmq.Event) error
}

// UnresolvedHeader lists submitted names that matched nothing and were dropped.
const UnresolvedHeader = "X-Unresolved-Names"

// reporter carries the collaborators every handler reports to once an
// operation finishes: metrics for every outcome, events for committed changes.
type reporter struct {
	entity    string
	publisher EventPublisher
	metrics   *metrics.Metrics
}

// done records the outcome of operation and, when it succeeded and changed
// something, publishes "<entity>.<operation>d" for id.
func (r reporter) done(operation string, id uint, err error) {
	if r.metrics != nil {
		r.metrics.ObserveOperation(r.entity, operation, err)
	}
	if err != nil || r.publisher == nil {
		return
	}
	switch operation {
	case "create", "update", "delete":
	default:
		return
	}
	eventType := r.entity + "." + operation + "d"
	if pubErr := r.publisher.Publish(rabbitmq.NewEvent(eventType, id)); pubErr != nil {
		slog.Warn("failed to publish event", slog.String("type", eventType), slog.Uint64("entity_id", uint64(id)), slog.Any("error", pubErr))
	}
}

func reportUnresolved(c *fiber.Ctx, entity string, id uint, unresolved []string) {
	if len(unresolved) == 0 {
		return
	}
	c.Set(UnresolvedHeader, strings.Join(unresolved, ","))
	slog.Warn("dropped unresolved names", slog.String("entity", entity), slog.Uint64("id", uint64(id)), slog.Any("names", unresolved))
}
