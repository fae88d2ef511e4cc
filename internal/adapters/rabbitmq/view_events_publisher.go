package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Dearie-de-cybek/PropTech/internal/constants"
	"github.com/Dearie-de-cybek/PropTech/internal/contextkeys"
	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
	"github.com/Dearie-de-cybek/PropTech/internal/core/port"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher is implemented by rabbitmq_producer.Publisher.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

const publishTimeout = 5 * time.Second

type ViewEventsPublisherAdapter struct {
	producer   Publisher
	routingKey string
}

func NewViewEventsPublisherAdapter(producer Publisher, routingKey string) (*ViewEventsPublisherAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	if routingKey == "" {
		return nil, fmt.Errorf("rabbitmq adapter: routingKey cannot be empty")
	}
	return &ViewEventsPublisherAdapter{producer: producer, routingKey: routingKey}, nil
}

func (a *ViewEventsPublisherAdapter) PropertyViewed(ctx context.Context, event domain.PropertyViewedEvent) error {
	adapterLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "ViewEventsPublisherAdapter",
		"routing_key": a.routingKey,
		"property_id": event.PropertyID,
	})

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal view event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Transient,
		Timestamp:    event.ViewedAt,
		Headers: amqp.Table{
			constants.HeaderEventType: a.routingKey,
		},
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers[constants.HeaderTraceID] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := a.producer.Publish(publishCtx, a.routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish view event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish view event for property %d: %w", event.PropertyID, err)
	}

	adapterLogger.Debug("View event published", nil)
	return nil
}
