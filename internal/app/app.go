package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/football-hub/external/apifootball"
	"github.com/riskibarqy/football-hub/internal/config"
	"github.com/riskibarqy/football-hub/internal/domain/footballapi"
	gatewaycache "github.com/riskibarqy/football-hub/internal/infrastructure/gateway/cache"
	"github.com/riskibarqy/football-hub/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-hub/internal/platform/cache"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/riskibarqy/football-hub/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const redisKeyPrefix = "football-hub:"

// App owns the HTTP server and the connections it depends on.
type App struct {
	Server *http.Server
	redis  *redis.Client
	logger *logging.Logger
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{logger: logger}

	var gateway footballapi.Gateway = apifootball.NewClient(apifootball.ClientConfig{
		HTTPClient: &http.Client{
			Timeout:   cfg.FootballAPITimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		BaseURL:        cfg.FootballAPIBaseURL,
		APIKey:         cfg.FootballAPIKey,
		Timeout:        cfg.FootballAPITimeout,
		MaxRetries:     cfg.FootballAPIMaxRetries,
		Logger:         logger.Named("apifootball"),
		CircuitBreaker: cfg.FootballAPIBreaker,
	})

	if cfg.CacheEnabled {
		store, err := a.newStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		gateway = gatewaycache.NewGateway(gateway, store)
	} else {
		logger.Info("gateway cache disabled", "reason", "CACHE_ENABLED=false")
	}

	fixtureSvc := usecase.NewFixtureDetailService(gateway, logger)
	warmSvc := usecase.NewFixtureWarmService(fixtureSvc, cfg.PrefetchWorkers, cfg.PrefetchTimeout, logger)
	teamSvc := usecase.NewTeamProfileService(gateway, logger)
	standingSvc := usecase.NewStandingService(gateway)

	handler := httpapi.NewHandler(fixtureSvc, warmSvc, teamSvc, standingSvc, logger, cfg.CORSAllowedOrigins)
	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return a, nil
}

func (a *App) newStore(ctx context.Context, cfg config.Config) (*cache.Store, error) {
	opts := []cache.Option{
		cache.WithLogger(a.logger.Named("cache")),
		// One extra provider timeout covers the retry back-off.
		cache.WithLoadTimeout(cfg.FootballAPITimeout * time.Duration(cfg.FootballAPIMaxRetries+2)),
	}
	if cfg.RedisEnabled {
		client, err := cache.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("open redis: %w", err)
		}
		a.redis = client
		opts = append(opts, cache.WithRemote(cache.NewRedisRemote(client, redisKeyPrefix)))
	}

	a.logger.Info("gateway cache enabled", "ttl", cfg.CacheTTL.String(), "redis", cfg.RedisEnabled)
	return cache.NewStore(cfg.CacheTTL, opts...), nil
}

// Shutdown drains the HTTP server, then releases the redis connection.
func (a *App) Shutdown(ctx context.Context) error {
	if err := a.Server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
	}
	return nil
}
