package contextx

import (
	"context"
	"fmt"

	"github.com/rs/xid"
)

// TraceID ties together every log line of one request and is echoed to
// clients as supportId.
type TraceID string

type contextKeyTraceID struct{}

// NewTraceID returns a fresh, sortable 20 character id.
func NewTraceID() TraceID {
	return TraceID(xid.New().String())
}

func (t TraceID) String() string {
	return string(t)
}

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	traceID, ok := ctx.Value(contextKeyTraceID{}).(TraceID)
	if !ok {
		return "", fmt.Errorf("trace id: %w", ErrNoValue)
	}

	return traceID, nil
}
