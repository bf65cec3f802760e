package app

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"

	"github.com/bosta-shop/bosta/internal/notify"
	"github.com/bosta-shop/bosta/internal/platform/httpx"
)

// MiddlewareConfig aggregates dependencies shared by the middleware stack.
type MiddlewareConfig struct {
	Logger *slog.Logger
	Config *Config
	Bus    *notify.Bus
}

// MiddlewareStack installs the Bosta middleware chain.
func MiddlewareStack(cfg MiddlewareConfig) []func(http.Handler) http.Handler {
	secureMiddleware := secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'",
		SSLRedirect:           cfg.Config != nil && cfg.Config.IsProduction(),
		SSLProxyHeaders:       map[string]string{"X-Forwarded-Proto": "https"},
	})

	timeout := 120 * time.Second
	if cfg.Config != nil && cfg.Config.AppRequestTimeout > 0 {
		timeout = cfg.Config.AppRequestTimeout
	}

	middlewares := []func(http.Handler) http.Handler{
		middleware.RealIP,
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Timeout(timeout),
		func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if err := secureMiddleware.Process(w, r); err != nil {
					cfg.Logger.Warn("secure headers blocked request", slog.Any("error", err))
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
				next.ServeHTTP(w, r)
			})
		},
		middleware.Compress(5),
		httprate.Limit(120, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)),
	}
	if cfg.Bus != nil {
		middlewares = append(middlewares, NotifyMiddleware(cfg.Bus))
	}
	return middlewares
}

// notifyRecorder captures the status code and enough of the response body to
// recover a problem detail after the handler has written it.
type notifyRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (w *notifyRecorder) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *notifyRecorder) Write(data []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	if w.status >= http.StatusBadRequest && w.body.Len() < 4096 {
		w.body.Write(data)
	}
	return w.ResponseWriter.Write(data)
}

// NotifyMiddleware publishes every failed response's message to the
// notification bus. Handlers stay unaware of the toast channel; this is the
// second, global half of the dual-channel error surfacing.
func NotifyMiddleware(bus *notify.Bus) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &notifyRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)
			if rec.status < http.StatusBadRequest {
				return
			}
			var problem httpx.ProblemDetail
			message := "Something went wrong. Please try again."
			if err := json.Unmarshal(rec.body.Bytes(), &problem); err == nil {
				if problem.Detail != "" {
					message = problem.Detail
				} else if problem.Title != "" {
					message = problem.Title
				}
			}
			bus.Publish(message)
		})
	}
}
