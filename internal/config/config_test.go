package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/football-hub/internal/platform/logging"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FOOTBALL_API_KEY", "secret-key")
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("REDIS_ENABLED", "false")
}

func TestLoad_AppEnvValidation(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_RequiresAPIKey(t *testing.T) {
	setRequired(t)
	t.Setenv("FOOTBALL_API_KEY", "  ")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error without FOOTBALL_API_KEY")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.FootballAPIBaseURL != "https://v3.football.api-sports.io" {
		t.Fatalf("unexpected base url: %q", cfg.FootballAPIBaseURL)
	}
	if cfg.FootballAPITimeout != 20*time.Second || cfg.FootballAPIMaxRetries != 2 {
		t.Fatalf("unexpected client defaults: timeout=%s retries=%d", cfg.FootballAPITimeout, cfg.FootballAPIMaxRetries)
	}
	if !cfg.FootballAPIBreaker.Enabled || cfg.FootballAPIBreaker.FailureThreshold != 5 {
		t.Fatalf("unexpected breaker defaults: %#v", cfg.FootballAPIBreaker)
	}
	if !cfg.CacheEnabled || cfg.CacheTTL != time.Minute {
		t.Fatalf("unexpected cache defaults: enabled=%v ttl=%s", cfg.CacheEnabled, cfg.CacheTTL)
	}
	if cfg.PrefetchWorkers != 4 || cfg.PrefetchTimeout != 20*time.Second {
		t.Fatalf("unexpected prefetch defaults: workers=%d timeout=%s", cfg.PrefetchWorkers, cfg.PrefetchTimeout)
	}
	if cfg.LogFormat != logging.FormatConsole {
		t.Fatalf("expected console logs in dev, got %q", cfg.LogFormat)
	}
}

func TestLoad_ProdUsesJSONLogs(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogFormat != logging.FormatJSON || cfg.LogLevel != logging.LevelWarn {
		t.Fatalf("unexpected log settings: format=%q level=%s", cfg.LogFormat, cfg.LogLevel)
	}
}

func TestLoad_BreakerOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("FOOTBALL_API_CIRCUIT_ENABLED", "false")
	t.Setenv("FOOTBALL_API_CIRCUIT_FAILURE_COUNT", "9")
	t.Setenv("FOOTBALL_API_CIRCUIT_OPEN_TIMEOUT", "45s")
	t.Setenv("FOOTBALL_API_CIRCUIT_HALF_OPEN_MAX_REQ", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	breaker := cfg.FootballAPIBreaker
	if breaker.Enabled || breaker.FailureThreshold != 9 || breaker.OpenTimeout != 45*time.Second || breaker.HalfOpenMaxReq != 1 {
		t.Fatalf("unexpected breaker config: %#v", breaker)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"FOOTBALL_API_MAX_RETRIES":           "-1",
		"FOOTBALL_API_TIMEOUT":               "0s",
		"FOOTBALL_API_CIRCUIT_FAILURE_COUNT": "0",
		"CACHE_TTL":                          "soon",
		"PREFETCH_WORKERS":                   "0",
		"CACHE_ENABLED":                      "maybe",
		"FOOTBALL_API_BASE_URL":              "not a url",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}

func TestLoad_RedisRequiresURLWhenEnabled(t *testing.T) {
	setRequired(t)
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when REDIS_ENABLED=true without REDIS_URL")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	setRequired(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "foo=bar, uptrace-dsn='https://token@api.uptrace.dev/1'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	setRequired(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}
