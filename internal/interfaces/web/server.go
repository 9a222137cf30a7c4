package web

import (
	"errors"
	"net/http"

	"github.com/riskibarqy/football-stats-web/internal/platform/logging"
)

var errPanic = errors.New("handler panicked")

func NewRouter(handler *Handler, logger *logging.Logger, serviceName string) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerRoutes(mux, handler)

	return RequestTracing(serviceName, RequestLogging(logger, recoverPanic(logger, mux)))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "web.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeErrorPage(ctx, w, errPanic)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
