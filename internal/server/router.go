package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"raincast/pkg/errcodes"
	"raincast/pkg/httpx/reply"
	"raincast/pkg/logx"
	"raincast/pkg/middlewarex"
)

type RouterOptions struct {
	AllowedOrigins []string
	LogFieldMaxLen int
}

// NewRouter mounts the API behind the shared middleware chain. Unknown paths
// and methods answer with the usual JSON error body.
func NewRouter(s Server, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.HTTPLogging(logx.NewSensitiveDataMasker(), opts.LogFieldMaxLen),
		middlewarex.Recovery,
		middlewarex.CORS(opts.AllowedOrigins),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		reply.Status(r.Context(), w, http.StatusNotFound, errcodes.NotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		reply.Status(r.Context(), w, http.StatusMethodNotAllowed, errcodes.MethodNotAllowed)
	})

	s.RegisterRoutes(r)

	return r
}
