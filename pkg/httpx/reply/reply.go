package reply

import (
	"context"
	"log/slog"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"raincast/pkg/contextx"
	"raincast/pkg/errcodes"
	"raincast/pkg/logx"
	"raincast/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

// Error renders err as rest.Error. Client mistakes are logged as warnings,
// everything else as errors with status 500.
func Error(ctx context.Context, w http.ResponseWriter, err error) {
	status, defaultCode, level := http.StatusInternalServerError, errcodes.InternalServerError, slog.LevelError

	switch {
	case failure.IsInvalidArgumentError(err):
		status, defaultCode, level = http.StatusBadRequest, errcodes.ValidationError, slog.LevelWarn
	case failure.IsNotFoundError(err):
		status, defaultCode, level = http.StatusNotFound, errcodes.NotFound, slog.LevelWarn
	}

	logger(ctx).Log(ctx, level, "request failed", slog.Int(logx.FieldResponseStatus, status), logx.Error(err))

	code := failure.Code(err).String()
	if code == "" {
		code = defaultCode.String()
	}

	message := ""
	if status != http.StatusInternalServerError {
		message = failure.Description(err)
	}

	if message == "" {
		message = http.StatusText(status)
	}

	JSON(ctx, w, status, rest.Error{
		Error:     message,
		Code:      rest.ErrorCode(code),
		SupportID: supportID(ctx),
	})
}

// Status writes the error body for a bare status that has no error behind it,
// like an unknown route.
func Status(ctx context.Context, w http.ResponseWriter, status int, code failure.ErrorCode) {
	JSON(ctx, w, status, rest.Error{
		Error:     http.StatusText(status),
		Code:      rest.ErrorCode(code),
		SupportID: supportID(ctx),
	})
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
