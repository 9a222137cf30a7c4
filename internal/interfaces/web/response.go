package web

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-stats-web/internal/interfaces/web/views"
	"github.com/riskibarqy/football-stats-web/internal/usecase"
	"github.com/valyala/bytebufferpool"
	g "maragu.dev/gomponents"
)

const internalErrorMessage = "internal server error"

// writeHTML renders node into a pooled buffer before any header is written.
func writeHTML(ctx context.Context, w http.ResponseWriter, status int, node g.Node) error {
	_, span := startSpan(ctx, "web.writeHTML")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := node.Render(buf); err != nil {
		http.Error(w, internalErrorMessage, http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, err := w.Write(buf.B)
	return err
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "web.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeErrorPage(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "web.writeErrorPage")
	defer span.End()

	status := mapError(err)
	message := internalErrorMessage
	if status != http.StatusInternalServerError {
		message = err.Error()
	}
	_ = writeHTML(ctx, w, status, views.ErrorPage(status, message))
}

func mapError(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
