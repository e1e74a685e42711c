package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/erp-backend/internal/data/db"
	"github.com/yungbote/erp-backend/internal/http"
	"github.com/yungbote/erp-backend/internal/observability"
	"github.com/yungbote/erp-backend/internal/platform/envutil"
	"github.com/yungbote/erp-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Store    *db.PostgresService
	Server   *http.Server
	Cfg      Config
	Repos    Repos
	Services Services
	Clients  Clients
	Metrics  *observability.Metrics

	otelShutdown func(context.Context) error
}

func New(ctx context.Context) (*App, error) {
	logMode := envutil.String("LOG_MODE", "development")
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	if strings.HasPrefix(strings.ToLower(logMode), "prod") {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info("Loading configuration...")
	cfg, err := LoadConfig(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("load config: %w", err)
	}

	otelShutdown := observability.InitOTel(ctx, log, cfg.OTel)
	metrics := observability.Init(log, cfg.MetricsEnabled)

	store, err := db.NewPostgresService(log, cfg.Store)
	if err != nil {
		_ = otelShutdown(ctx)
		log.Sync()
		return nil, fmt.Errorf("init store: %w", err)
	}
	if cfg.AutoMigrate {
		if err := store.AutoMigrateAll(); err != nil {
			_ = store.Close()
			_ = otelShutdown(ctx)
			log.Sync()
			return nil, fmt.Errorf("store automigrate: %w", err)
		}
	}
	theDB := store.DB()

	clients, err := wireClients(log, cfg)
	if err != nil {
		_ = store.Close()
		_ = otelShutdown(ctx)
		log.Sync()
		return nil, err
	}

	repoSet := wireRepos(theDB, log)
	serviceSet := wireServices(theDB, log, repoSet, clients, metrics)
	handlerSet := wireHandlers(log, store, serviceSet)
	server := wireServer(log, cfg, handlerSet, metrics)

	return &App{
		Log:          log,
		DB:           theDB,
		Store:        store,
		Server:       server,
		Cfg:          cfg,
		Repos:        repoSet,
		Services:     serviceSet,
		Clients:      clients,
		Metrics:      metrics,
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves HTTP (and the metrics listener, when configured) until ctx is
// done or one of them fails.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.Server.Run(gctx, ":"+a.Cfg.Port, a.Cfg.ShutdownTimeout)
	})

	if a.Metrics != nil {
		a.Metrics.StartDBPoolCollector(gctx, a.Log, a.DB, a.Cfg.CollectInterval)
		if a.Clients.Redis != nil {
			a.Metrics.StartRedisCollector(gctx, a.Log, a.Clients.Redis.Client(), a.Cfg.CollectInterval)
		}
		if a.Cfg.MetricsAddr != "" {
			g.Go(func() error {
				return a.Metrics.StartServer(gctx, a.Log, a.Cfg.MetricsAddr)
			})
		}
	}

	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	a.Clients.Close()
	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			a.Log.Warn("store close failed", "error", err)
		}
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
		defer cancel()
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
