package render

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/liquidkit/handler"
	"github.com/dmitrymomot/liquidkit/pkg/binder"
	"github.com/dmitrymomot/liquidkit/pkg/clientip"
	"github.com/dmitrymomot/liquidkit/pkg/httpserver"
	"github.com/dmitrymomot/liquidkit/pkg/logger"
	"github.com/dmitrymomot/liquidkit/pkg/ratelimiter"
	"github.com/dmitrymomot/liquidkit/pkg/requestid"
)

// ApplyRequest is the body of POST /filters/{name}.
type ApplyRequest struct {
	Input any   `json:"input"`
	Args  []any `json:"args"`
}

// RenderRequest is the body of POST /render.
type RenderRequest struct {
	Input    any    `json:"input"`
	Pipeline string `json:"pipeline"`
	Preset   string `json:"preset"`
}

// Result is the data payload of a successful apply or render.
type Result struct {
	Result string `json:"result"`
}

// Router mounts the service routes on a chi router.
func Router(svc *Service, cfg Config, log *slog.Logger) http.Handler {
	errHandler := handler.NewErrorHandler(log, mapError)
	bind := binder.BindJSON(cfg.MaxBodyBytes)

	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware(), accessLog(log))
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health/live", httpserver.Liveness())

	r.Get("/filters", handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.JSON(svc.Filters())
	}, handler.WithErrorHandler[struct{}](errHandler)))

	r.Get("/presets", handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.JSON(svc.Presets())
	}, handler.WithErrorHandler[struct{}](errHandler)))

	r.Group(func(r chi.Router) {
		if svc.limiter != nil {
			r.Use(ratelimiter.Middleware(svc.limiter, ratelimiter.ByClientIP, tooManyRequests))
		}
		mountRender(r, svc, bind, errHandler)
	})

	return r
}

var tooManyRequests = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	_ = handler.JSONError(handler.HTTPError{Code: http.StatusTooManyRequests, Key: "too_many_requests"}).Render(w, r)
})

func mountRender(r chi.Router, svc *Service, bind handler.Bind, errHandler handler.ErrorHandler) {
	r.Post("/filters/{name}", handler.Wrap(func(ctx handler.Context, req ApplyRequest) handler.Response {
		out, err := svc.Apply(ctx, chi.URLParam(ctx.Request(), "name"), req.Input, req.Args...)
		if err != nil {
			return handler.JSONError(err, mapError)
		}
		return handler.JSON(Result{Result: out})
	},
		handler.WithBinder[ApplyRequest](bind),
		handler.WithErrorHandler[ApplyRequest](errHandler),
	))

	r.Post("/render", handler.Wrap(func(ctx handler.Context, req RenderRequest) handler.Response {
		out, err := svc.Render(ctx, req.Input, req.Pipeline, req.Preset)
		if err != nil {
			return handler.JSONError(err, mapError)
		}
		return handler.JSON(Result{Result: out})
	},
		handler.WithBinder[RenderRequest](bind),
		handler.WithErrorHandler[RenderRequest](errHandler),
	))
}

// accessLog logs one record per request once the response is written.
func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log.LogAttrs(r.Context(), slog.LevelInfo, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
				logger.Component("http"),
			)
		})
	}
}
