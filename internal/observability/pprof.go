package observability

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riskibarqy/football-hub/internal/config"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
)

// ProfilerServer exposes net/http/pprof on its own listener, away from the public router.
type ProfilerServer struct {
	srv    *http.Server
	logger *logging.Logger
}

func profilerHandler() http.Handler {
	r := chi.NewRouter()
	r.Mount("/debug", middleware.Profiler())
	return r
}

// StartPprofServer returns nil when profiling endpoints are disabled.
func StartPprofServer(cfg config.Config, logger *logging.Logger) *ProfilerServer {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.PprofEnabled {
		logger.Info("pprof disabled", "reason", "PPROF_ENABLED=false")
		return nil
	}

	ps := &ProfilerServer{
		srv: &http.Server{
			Addr:              cfg.PprofAddr,
			Handler:           profilerHandler(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}

	go func() {
		logger.Info("pprof server starting", "addr", cfg.PprofAddr)
		if err := ps.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("pprof server failed", "error", err)
		}
	}()

	return ps
}

func (p *ProfilerServer) Stop(ctx context.Context) error {
	if p == nil {
		return nil
	}

	if err := p.srv.Shutdown(ctx); err != nil {
		return err
	}
	p.logger.Info("pprof server stopped")

	return nil
}
