package fluentlogger

import (
	"fmt"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// Config describes the Fluent Bit forward endpoint.
type Config struct {
	Host string
	Port int
	// TagPrefix is prepended to every tag, usually the service name.
	TagPrefix string
	// Async makes Post non-blocking; records are buffered and flushed in the background.
	Async bool
}

// NewClient creates a Fluent Bit client. There is no ping: connection
// errors surface on the first Post.
func NewClient(cfg Config) (*fluent.Fluent, error) {
	if cfg.TagPrefix == "" {
		return nil, fmt.Errorf("fluentd tag prefix is required")
	}

	logger, err := fluent.New(fluent.Config{
		FluentHost: cfg.Host,
		FluentPort: cfg.Port,
		TagPrefix:  cfg.TagPrefix,
		Async:      cfg.Async,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fluentd logger: %w", err)
	}

	return logger, nil
}
