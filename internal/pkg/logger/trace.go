package logger

import (
	"context"
	log "log/slog"
)

// TraceIDKey 请求追踪 ID 在 ctx 和日志属性中共用的 Key
const TraceIDKey = "trace_id"

// ContextHandler 把 ctx 里的 trace_id 附加到每条日志上，
// 串起同一次请求在各层产生的记录
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if ctx != nil {
		if traceID, ok := ctx.Value(TraceIDKey).(string); ok && traceID != "" {
			r.AddAttrs(log.String(TraceIDKey, traceID))
		}
	}
	return h.Handler.Handle(ctx, r)
}
