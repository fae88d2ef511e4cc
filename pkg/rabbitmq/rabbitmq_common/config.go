package rabbitmq_common

import (
	"fmt"
	"strings"
)

// Config is shared by publishers.
type Config struct {
	URL string
}

// Validate checks that the broker URL uses an AMQP scheme.
func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("rabbitmq: URL is required")
	}
	if !strings.HasPrefix(c.URL, "amqp://") && !strings.HasPrefix(c.URL, "amqps://") {
		return fmt.Errorf("rabbitmq: URL must start with amqp:// or amqps://, got %q", c.URL)
	}
	return nil
}
