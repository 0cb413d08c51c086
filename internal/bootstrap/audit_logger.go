package bootstrap

import (
	"context"
	"maps"
	"slices"
	"time"

	"hr-records/internal/shared/contextutil"

	"go.uber.org/zap"
)

// ZapAuditLogger writes audit entries through zap, tagged with the service
// name and environment so entries from the api and the worker can be told apart.
type ZapAuditLogger struct {
	logger      *zap.Logger
	service     string
	environment string
	now         func() time.Time
}

func NewZapAuditLogger(service, environment string, logger ...*zap.Logger) *ZapAuditLogger {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &ZapAuditLogger{
		logger:      l,
		service:     service,
		environment: environment,
		now:         time.Now,
	}
}

func (l *ZapAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := []zap.Field{
		zap.String("service", l.service),
		zap.String("environment", l.environment),
		zap.String("action", entry.Action),
		zap.Time("occurred_at", l.now().UTC()),
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	for _, key := range slices.Sorted(maps.Keys(entry.Meta)) {
		fields = append(fields, zap.Any(key, entry.Meta[key]))
	}
	l.logger.Info(entry.Message, fields...)
}
