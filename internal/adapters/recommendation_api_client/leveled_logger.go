package recommendation_api_client

import (
	"fmt"

	"github.com/Dearie-de-cybek/PropTech/internal/core/port"
	"github.com/hashicorp/go-retryablehttp"
)

// leveledLogger routes retryablehttp's internal logging to port.LoggerPort.
type leveledLogger struct {
	logger port.LoggerPort
}

var _ retryablehttp.LeveledLogger = (*leveledLogger)(nil)

func toFields(keysAndValues []interface{}) port.Fields {
	fields := make(port.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return fields
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, nil, toFields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, toFields(keysAndValues))
}
