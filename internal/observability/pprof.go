package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/pprof"
	"runtime"
	"time"

	"github.com/riskibarqy/football-stats-web/internal/config"
	"github.com/riskibarqy/football-stats-web/internal/platform/logging"
)

const (
	mutexProfileFraction = 5
	blockProfileRate     = int(time.Millisecond)
)

// DebugServer serves runtime profiles on a listener separate from the site.
// A nil *DebugServer is a disabled one; all methods accept it.
type DebugServer struct {
	srv    *http.Server
	logger *logging.Logger
}

// NewDebugServer returns nil when pprof is disabled. Enabling it also turns
// on mutex and block sampling, which the session and page locks make worth
// watching.
func NewDebugServer(cfg config.Config, logger *logging.Logger) *DebugServer {
	if logger == nil {
		logger = logging.Default()
	}
	if !cfg.PprofEnabled {
		logger.Info("pprof disabled", "reason", "PPROF_ENABLED=false")
		return nil
	}

	runtime.SetMutexProfileFraction(mutexProfileFraction)
	runtime.SetBlockProfileRate(blockProfileRate)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /debug/pprof/", pprof.Index)
	mux.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)

	return &DebugServer{
		srv: &http.Server{
			Addr:              cfg.PprofAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger.Named("pprof"),
	}
}

func (d *DebugServer) Handler() http.Handler {
	if d == nil {
		return http.NotFoundHandler()
	}
	return d.srv.Handler
}

// Start listens in the background.
func (d *DebugServer) Start() {
	if d == nil {
		return
	}
	go func() {
		d.logger.Info("pprof server starting", "addr", d.srv.Addr)
		if err := d.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			d.logger.Error("pprof server failed", "error", err)
		}
	}()
}

func (d *DebugServer) Shutdown(ctx context.Context) error {
	if d == nil {
		return nil
	}
	if err := d.srv.Shutdown(ctx); err != nil {
		return err
	}
	d.logger.Info("pprof server stopped")
	return nil
}
