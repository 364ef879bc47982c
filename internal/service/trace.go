package service

import (
	"context"

	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/MKhiriev/go-doc-chat/internal/utils"
)

type traceIDGenerator interface {
	Generate() string
}

// withTrace tags ctx with a fresh trace id and a logger carrying it, so the
// X-Trace-ID header and every log line of the operation share one id.
func withTrace(ctx context.Context, ids traceIDGenerator, log *logger.Logger, op string) (context.Context, *logger.Logger) {
	traceID := ids.Generate()
	opLog := &logger.Logger{Logger: log.With().Str("trace_id", traceID).Str("op", op).Logger()}

	ctx = utils.WithTraceID(ctx, traceID)
	return opLog.WithContext(ctx), opLog
}
