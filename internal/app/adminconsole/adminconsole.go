package adminconsole

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/leadhub-crm/admin-console/internal/cache"
	"github.com/leadhub-crm/admin-console/internal/config"
	"github.com/leadhub-crm/admin-console/internal/lib/jwt"
	"github.com/leadhub-crm/admin-console/internal/marketplace"
	leadsservice "github.com/leadhub-crm/admin-console/internal/services/leads"
	profileservice "github.com/leadhub-crm/admin-console/internal/services/profile"
	ratesservice "github.com/leadhub-crm/admin-console/internal/services/rates"
	"github.com/leadhub-crm/admin-console/internal/services/session"
)

type App struct {
	server   *http.Server
	logger   *slog.Logger
	cache    *cache.Cache
	sessions *session.Store

	sweepInterval time.Duration
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	backend := marketplace.NewClient(cfg.Backend.BaseURL, cfg.Backend.ServiceToken, cfg.Backend.RequestTimeout)

	leadsService := leadsservice.New(backend, cacheRedis, logger)
	ratesService := ratesservice.New(backend, logger)
	profileService := profileservice.New(backend, logger)
	sessions := session.NewStore(cfg.Session.TTL, leadsService, logger)

	tokenMaker := jwt.NewJWTMaker(cfg.JWTToken.JWTSecretKey, cfg.JWTToken.TokenTTL)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, leadsService, ratesService, profileService, sessions, tokenMaker)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		server:        srv,
		logger:        logger,
		cache:         cacheRedis,
		sessions:      sessions,
		sweepInterval: cfg.Session.SweepInterval,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	go a.sessions.RunSweeper(ctx, a.sweepInterval)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if cerr := a.cache.Db.Close(); cerr != nil {
			a.logger.Error("failed to close redis client", slog.Any("err", cerr))
		}
		return err
	}
}
