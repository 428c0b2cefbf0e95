package middlewarex

import (
	"net/http"

	"raincast/pkg/contextx"
)

const (
	HeaderNameTraceID = "X-Trace-Id"

	maxTraceIDLen = 64
)

// TraceID reuses a caller supplied X-Trace-Id when it looks sane and mints an
// xid otherwise. The id is echoed back in the response header.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(HeaderNameTraceID)

		if !validTraceID(traceID) {
			traceID = contextx.NewTraceID().String()
		}

		ctx := contextx.WithTraceID(r.Context(), contextx.TraceID(traceID))

		w.Header().Set(HeaderNameTraceID, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func validTraceID(traceID string) bool {
	if traceID == "" || len(traceID) > maxTraceIDLen {
		return false
	}

	for _, c := range traceID {
		if c < '!' || c > '~' {
			return false
		}
	}

	return true
}
