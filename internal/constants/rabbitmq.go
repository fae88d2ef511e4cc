package constants

const (
	WebExchange     = "web_exchange"
	WebExchangeType = "topic"

	RoutingKeyPropertyViewed = "property.viewed"

	HeaderTraceID   = "x-trace-id"
	HeaderEventType = "x-event-type"
)
