package constants

const (
	HeaderXTraceID = "X-Trace-ID"
	// HeaderHXRequest is set by htmx on partial requests.
	HeaderHXRequest = "HX-Request"
)

// DefaultDetailPropertyID is rendered by /properties-detail.
const DefaultDetailPropertyID int64 = 1

// Query parameters carrying the listing UI state.
const (
	QueryParamView     = "view"
	SectionParamPrefix = "section."
)
