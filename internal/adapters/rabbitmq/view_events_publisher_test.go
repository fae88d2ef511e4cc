package rabbitmq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	logger_adapter "github.com/Dearie-de-cybek/PropTech/internal/adapters/logger"
	"github.com/Dearie-de-cybek/PropTech/internal/constants"
	"github.com/Dearie-de-cybek/PropTech/internal/contextkeys"
	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
	"github.com/Dearie-de-cybek/PropTech/internal/core/port"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	routingKey  string
	msg         amqp.Publishing
	hasDeadline bool
	err         error
}

func (f *fakePublisher) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	f.routingKey = routingKey
	f.msg = msg
	_, f.hasDeadline = ctx.Deadline()
	return f.err
}

func TestViewEventsPublisherSendsJSONWithTrace(t *testing.T) {
	pub := &fakePublisher{}
	adapter, err := NewViewEventsPublisherAdapter(pub, constants.RoutingKeyPropertyViewed)
	require.NoError(t, err)

	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-123")
	viewedAt := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	require.NoError(t, adapter.PropertyViewed(ctx, domain.PropertyViewedEvent{PropertyID: 4, Path: "/properties/4", ViewedAt: viewedAt}))

	assert.Equal(t, "property.viewed", pub.routingKey)
	assert.Equal(t, "application/json", pub.msg.ContentType)
	assert.Equal(t, "trace-123", pub.msg.Headers[constants.HeaderTraceID])
	assert.True(t, pub.hasDeadline)

	var got domain.PropertyViewedEvent
	require.NoError(t, json.Unmarshal(pub.msg.Body, &got))
	assert.Equal(t, int64(4), got.PropertyID)
	assert.True(t, viewedAt.Equal(got.ViewedAt))
}

func TestViewEventsPublisherWrapsError(t *testing.T) {
	boom := errors.New("channel closed")
	adapter, err := NewViewEventsPublisherAdapter(&fakePublisher{err: boom}, constants.RoutingKeyPropertyViewed)
	require.NoError(t, err)

	err = adapter.PropertyViewed(context.Background(), domain.PropertyViewedEvent{PropertyID: 1})
	assert.ErrorIs(t, err, boom)
}

func TestNewViewEventsPublisherValidation(t *testing.T) {
	_, err := NewViewEventsPublisherAdapter(nil, "k")
	assert.Error(t, err)
	_, err = NewViewEventsPublisherAdapter(&fakePublisher{}, "")
	assert.Error(t, err)
}

func TestPkgLoggerBridgeMapsKeyValues(t *testing.T) {
	var buf bytes.Buffer
	base := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{Writer: &buf, IsJSON: true})
	bridge := NewPkgLoggerBridge(base.WithFields(port.Fields{"component": "rabbitmq"}))

	bridge.Info("Declaring exchange", "name", "web_exchange", "type", "topic", "dangling")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "web_exchange", entry["name"])
	assert.Equal(t, "topic", entry["type"])
	assert.Equal(t, "rabbitmq", entry["component"])
	assert.NotContains(t, entry, "dangling")
}
