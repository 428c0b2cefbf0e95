package middlewarex_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"raincast/pkg/contextx"
	"raincast/pkg/logx"
	"raincast/pkg/middlewarex"
	"raincast/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func TestTraceID(t *testing.T) {
	rq := require.New(t)

	var seen contextx.TraceID

	h := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		var err error

		seen, err = contextx.TraceIDFromContext(r.Context())
		rq.NoError(err)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	rq.NotEmpty(seen)
	rq.Equal(seen.String(), w.Header().Get(middlewarex.HeaderNameTraceID))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(middlewarex.HeaderNameTraceID, "client-trace-1")

	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)

	rq.Equal(contextx.TraceID("client-trace-1"), seen)
	rq.Equal("client-trace-1", w.Header().Get(middlewarex.HeaderNameTraceID))

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(middlewarex.HeaderNameTraceID, strings.Repeat("x", 65))

	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)

	rq.NotEqual(contextx.TraceID(strings.Repeat("x", 65)), seen)
	rq.Len(seen.String(), 20)
}

func TestLogger(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	base := slog.New(slog.NewJSONHandler(&buf, nil))

	h := middlewarex.TraceID(middlewarex.Logger(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		contextx.LoggerFromContextOrDefault(r.Context()).Info("inside")
	})))

	r := httptest.NewRequest(http.MethodPost, "/predict", nil)
	r.Header.Set(middlewarex.HeaderNameTraceID, "abc")
	r = r.WithContext(contextx.WithLogger(r.Context(), base))

	h.ServeHTTP(httptest.NewRecorder(), r)

	var entry map[string]any
	rq.NoError(json.Unmarshal(buf.Bytes(), &entry))
	rq.Equal("inside", entry["msg"])
	rq.Equal("abc", entry[logx.FieldTraceID])
	rq.Equal(http.MethodPost, entry[logx.FieldHTTPMethod])
	rq.Equal("/predict", entry[logx.FieldURL])
}

func TestRecovery(t *testing.T) {
	rq := require.New(t)

	h := middlewarex.TraceID(middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(middlewarex.HeaderNameTraceID, "panic-trace")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	rq.Equal(http.StatusInternalServerError, w.Code)

	var body rest.Error
	rq.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	rq.Equal("Internal Server Error", body.Error)
	rq.Equal(rest.ErrorCode("InternalServerError"), body.Code)
	rq.Equal("panic-trace", body.SupportID)
}

func TestRecoveryRepanicsOnAbort(t *testing.T) {
	rq := require.New(t)

	h := middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	rq.PanicsWithValue(http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestHTTPLogging(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	h := middlewarex.HTTPLogging(logx.NewSensitiveDataMasker(), 0)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Set-Cookie", "session=secret")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"ok":true}`))
		}),
	)

	r := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"readings":[]}`))
	r.Header.Set("Authorization", "Bearer secret")
	r = r.WithContext(ctx)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	rq.Equal(http.StatusCreated, w.Code)
	rq.Equal(`{"ok":true}`, w.Body.String())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	rq.Len(lines, 2)

	var request, response map[string]any
	rq.NoError(json.Unmarshal(lines[0], &request))
	rq.NoError(json.Unmarshal(lines[1], &response))

	rq.Equal(logx.FieldHTTPRequest, request["msg"])
	rq.Contains(request[logx.FieldRequestBody], `{"readings":[]}`)
	rq.Contains(request[logx.FieldRequestBody], "Authorization: [MASKED]")
	rq.NotContains(request[logx.FieldRequestBody], "Bearer secret")

	rq.Equal(logx.FieldHTTPResponse, response["msg"])
	rq.InDelta(float64(http.StatusCreated), response[logx.FieldResponseStatus], 0)
	rq.Equal(`{"ok":true}`, response[logx.FieldResponseBody])
	rq.NotContains(response[logx.FieldResponseHeaders], "session=secret")
}

func TestHTTPLoggingTruncates(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	h := middlewarex.HTTPLogging(logx.NewNopSensitiveDataMasker(), 5)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("0123456789"))
		}),
	)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx))

	rq.Equal("0123456789", w.Body.String())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	rq.Len(lines, 2)

	var response map[string]any
	rq.NoError(json.Unmarshal(lines[1], &response))
	rq.Equal("01234", response[logx.FieldResponseBody])
	rq.InDelta(float64(http.StatusOK), response[logx.FieldResponseStatus], 0)
}

func TestCORS(t *testing.T) {
	rq := require.New(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	testCases := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		preflight   bool
		wantStatus  int
		wantOrigin  string
		wantMethods string
	}{
		{
			name:       "Wildcard simple request",
			allowed:    []string{"*"},
			method:     http.MethodPost,
			origin:     "https://raincast.app",
			wantStatus: http.StatusTeapot,
			wantOrigin: "*",
		},
		{
			name:        "Wildcard preflight",
			allowed:     []string{"*"},
			method:      http.MethodOptions,
			origin:      "https://raincast.app",
			preflight:   true,
			wantStatus:  http.StatusNoContent,
			wantOrigin:  "*",
			wantMethods: "GET, POST, OPTIONS",
		},
		{
			name:       "Listed origin is echoed",
			allowed:    []string{"https://a.example", "https://raincast.app"},
			method:     http.MethodGet,
			origin:     "https://raincast.app",
			wantStatus: http.StatusTeapot,
			wantOrigin: "https://raincast.app",
		},
		{
			name:       "Unlisted origin gets no CORS headers",
			allowed:    []string{"https://a.example"},
			method:     http.MethodGet,
			origin:     "https://evil.example",
			wantStatus: http.StatusTeapot,
		},
		{
			name:       "Unlisted origin preflight is still short-circuited",
			allowed:    []string{"https://a.example"},
			method:     http.MethodOptions,
			origin:     "https://evil.example",
			preflight:  true,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "Plain OPTIONS goes to the router",
			allowed:    []string{"*"},
			method:     http.MethodOptions,
			origin:     "https://raincast.app",
			wantStatus: http.StatusTeapot,
			wantOrigin: "*",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			r := httptest.NewRequest(tc.method, "/predict", nil)
			r.Header.Set("Origin", tc.origin)

			if tc.preflight {
				r.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}

			w := httptest.NewRecorder()
			middlewarex.CORS(tc.allowed)(next).ServeHTTP(w, r)

			rq.Equal(tc.wantStatus, w.Code)
			rq.Equal(tc.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			rq.Equal(tc.wantMethods, w.Header().Get("Access-Control-Allow-Methods"))
		})
	}
}
