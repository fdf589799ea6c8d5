package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/liquidkit/pkg/binder"
	"github.com/dmitrymomot/liquidkit/pkg/logger"
	"github.com/dmitrymomot/liquidkit/pkg/requestid"
)

// ErrorMapper translates a domain error into an HTTPError.
type ErrorMapper func(err error) (HTTPError, bool)

// ErrorInfo is the classified form of an error.
type ErrorInfo struct {
	HTTPError
	Message string
}

// Classify resolves the status, key and client-facing message for err.
// Mappers are tried first, then HTTPError in the chain, then binder errors.
// Anything else is a 500 whose message never exposes the error text.
func Classify(err error, mappers ...ErrorMapper) ErrorInfo {
	he, ok := mapError(err, mappers)
	if !ok {
		return ErrorInfo{HTTPError: ErrInternalServerError, Message: http.StatusText(http.StatusInternalServerError)}
	}

	info := ErrorInfo{HTTPError: he, Message: err.Error()}
	if he.Code >= http.StatusInternalServerError || errors.Is(err, he) && err.Error() == he.Key {
		info.Message = http.StatusText(he.Code)
	}
	return info
}

func mapError(err error, mappers []ErrorMapper) (HTTPError, bool) {
	for _, m := range mappers {
		if he, ok := m(err); ok {
			return he, true
		}
	}

	var he HTTPError
	if errors.As(err, &he) {
		return he, true
	}

	switch {
	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		return ErrUnsupportedMediaType, true
	case errors.Is(err, binder.ErrBodyTooLarge):
		return ErrRequestTooLarge, true
	case errors.Is(err, binder.ErrInvalidJSON):
		return ErrBadRequest, true
	}
	return HTTPError{}, false
}

// NewErrorHandler logs the failure and writes a JSON error envelope.
// Client errors are logged at warn level, server errors at error level.
func NewErrorHandler(log *slog.Logger, mappers ...ErrorMapper) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := Classify(err, mappers...)

		level := slog.LevelError
		if info.Code < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", info.Code),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if renderErr := errorResponse(info).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}

// NotFound renders ErrNotFound as a JSON envelope for unmatched routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	_ = JSONError(ErrNotFound).Render(w, r)
}

// MethodNotAllowed renders ErrMethodNotAllowed as a JSON envelope.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	_ = JSONError(ErrMethodNotAllowed).Render(w, r)
}
