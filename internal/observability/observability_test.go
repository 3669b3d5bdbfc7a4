package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/football-hub/internal/config"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "football-hub-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitPyroscope_Disabled(t *testing.T) {
	t.Parallel()

	stop, err := InitPyroscope(config.Config{}, logging.NewNop())
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestPyroscopeConfig_Tags(t *testing.T) {
	t.Parallel()

	got := pyroscopeConfig(config.Config{
		AppEnv:              config.EnvStage,
		ServiceName:         "football-hub-api",
		ServiceVersion:      "1.4.0",
		PyroscopeAppName:    "football-hub",
		PyroscopeUploadRate: 10 * time.Second,
	})
	if got.ApplicationName != "football-hub" || got.UploadRate != 10*time.Second {
		t.Fatalf("unexpected pyroscope config: %#v", got)
	}
	if got.Tags["env"] != config.EnvStage || got.Tags["version"] != "1.4.0" {
		t.Fatalf("unexpected tags: %#v", got.Tags)
	}
}

func TestStartPprofServer_Disabled(t *testing.T) {
	t.Parallel()

	srv := StartPprofServer(config.Config{PprofEnabled: false}, logging.NewNop())
	if srv != nil {
		t.Fatalf("expected nil server when pprof is disabled")
	}
	if err := srv.Stop(context.Background()); err != nil {
		t.Fatalf("stop nil server: %v", err)
	}
}

func TestProfilerHandler_ServesIndex(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	profilerHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}
