package logctx

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ctxKey string

const (
	// Keys shared with the HTTP middlewares.
	LoggerKey    = "logger"
	TraceIDKey   = "traceID"
	AccountIDKey = "account_id"
)

// ContextKey converts one of the keys above into a typed context key.
func ContextKey(k string) any { return ctxKey(k) }

// WithLogger returns ctx carrying l for FromCtx.
func WithLogger(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ctxKey(LoggerKey), l)
}

// FromGin returns a request-scoped logger from gin.Context if present,
// otherwise returns the provided base logger.
func FromGin(c *gin.Context, base *zap.SugaredLogger) *zap.SugaredLogger {
	if c == nil {
		return base
	}
	if l, ok := c.Get(LoggerKey); ok {
		if lg, ok := l.(*zap.SugaredLogger); ok && lg != nil {
			return lg
		}
	}
	if c.Request == nil {
		return base
	}
	return FromCtx(c.Request.Context(), base)
}

// FromCtx returns a logger from context if set, otherwise attempts to enrich
// base with trace_id/account_id from context values.
func FromCtx(ctx context.Context, base *zap.SugaredLogger) *zap.SugaredLogger {
	if ctx == nil {
		return base
	}
	if lg, ok := ctx.Value(ctxKey(LoggerKey)).(*zap.SugaredLogger); ok && lg != nil {
		return lg
	}
	var fields []interface{}
	if tid, ok := ctx.Value(ctxKey(TraceIDKey)).(string); ok && tid != "" {
		fields = append(fields, "trace_id", tid)
	}
	if aid, ok := ctx.Value(ctxKey(AccountIDKey)).(string); ok && aid != "" {
		fields = append(fields, "account_id", aid)
	}
	if len(fields) > 0 {
		return base.With(fields...)
	}
	return base
}
