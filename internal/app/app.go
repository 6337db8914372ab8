package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/NastyaGoryachaya/crypto-dashboard/internal/config"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/credentials"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/infra/api_client"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/infra/db"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/infra/storage"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/notify"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/scheduler"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/service/dashboard"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/session"
	botpkg "github.com/NastyaGoryachaya/crypto-dashboard/internal/transport/bot"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/transport/web"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/view"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const redisKeyPrefix = "crypto-dashboard:"

type App struct {
	cfg *config.Config
	log *slog.Logger

	db    *pgxpool.Pool
	redis *redis.Client

	e    *echo.Echo
	serv *http.Server

	dash    *dashboard.Dashboard
	updater *scheduler.Scheduler
	bot     *botpkg.Bot
}

func NewApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	app := &App{cfg: cfg, log: log}

	kv, err := app.openStorage(ctx)
	if err != nil {
		app.closeStorage()
		return nil, err
	}

	api, err := api_client.NewClient(cfg.API)
	if err != nil {
		app.closeStorage()
		return nil, fmt.Errorf("api client: %w", err)
	}

	sess := session.New(credentials.NewStore(kv), api, log)
	opts := []dashboard.Option{
		dashboard.WithLocation(cfg.Dashboard.Location()),
		dashboard.WithPageSize(cfg.Dashboard.PageSize),
	}

	// уведомления веб-дашборда: страница, лог и (если задан чат) telegram
	flash := notify.NewFlash()
	webNotifier := notify.Multi{flash, notify.NewLog(log)}

	if cfg.Telegram.Enabled {
		tb, err := botpkg.NewTelebot(cfg.Telegram)
		if err != nil {
			log.Error("telegram init failed", slog.String("error", err.Error()))
			app.closeStorage()
			return nil, err
		}
		if cfg.Telegram.ChatID != 0 {
			webNotifier = append(webNotifier, botpkg.NewChatNotifier(tb, cfg.Telegram.ChatID, log))
		}
		// сессия общая: вход, выход и избранное из чата перечитывают веб-дашборд
		chatOpts := append(append([]dashboard.Option{}, opts...), dashboard.WithSessionChanged(func() {
			app.resyncWeb(ctx)
		}))
		factory := func(n notify.Notifier) *dashboard.Dashboard {
			return dashboard.New(api, sess, notify.Multi{n, notify.NewLog(log)}, log, chatOpts...)
		}
		commands := botpkg.NewCommands(factory, cfg.Telegram.ChatID, log)
		app.bot = botpkg.New(tb, commands, cfg.Server.RequestTimeout, log)
	}

	app.dash = dashboard.New(api, sess, webNotifier, log, opts...)

	renderer, err := view.NewRenderer()
	if err != nil {
		app.closeStorage()
		return nil, err
	}
	app.e = web.NewEcho(log, web.NewRenderer(renderer))
	web.NewDashboardHandler(log, app.dash, flash, cfg.Server.RequestTimeout).RegisterRoutes(app.e)

	app.serv = &http.Server{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      app.e,
	}

	if cfg.Scheduler.Enabled {
		app.updater = scheduler.NewScheduler(app.dash, cfg.Scheduler.Interval, log)
	}

	log.Info("app initialized",
		slog.String("api", cfg.API.BaseURL),
		slog.String("storage", cfg.Storage.Driver),
		slog.Bool("telegram_enabled", cfg.Telegram.Enabled),
		slog.Bool("scheduler_enabled", cfg.Scheduler.Enabled),
		slog.String("http_addr", cfg.Server.Addr),
	)
	return app, nil
}

// resyncWeb - фоновая перезагрузка веб-дашборда после изменения сессии из чата
func (a *App) resyncWeb(ctx context.Context) {
	go func() {
		ctx, cancel := context.WithTimeout(ctx, a.cfg.Server.RequestTimeout)
		defer cancel()
		if err := a.dash.Resync(ctx); err != nil {
			a.log.Warn("web dashboard resync failed", slog.String("error", err.Error()))
		}
	}()
}

// openStorage - постоянное хранилище токена по storage.driver
func (a *App) openStorage(ctx context.Context) (credentials.KV, error) {
	switch a.cfg.Storage.Driver {
	case config.StorageRedis:
		client, err := storage.NewRedisClient(ctx, a.cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
		a.redis = client
		return storage.NewRedisStore(client, redisKeyPrefix), nil

	case config.StoragePostgres:
		pool, err := db.NewPool(ctx, &a.cfg.Postgres)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		a.db = pool
		store := storage.NewPostgresStore(pool, a.cfg.Postgres.Table)
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("postgres schema: %w", err)
		}
		return store, nil

	default:
		return storage.NewFileStore(a.cfg.Storage.FilePath), nil
	}
}

func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	// первая загрузка: избранное и таблица
	g.Go(func() error {
		if err := a.dash.LoadFavorites(gctx); err != nil {
			a.log.Warn("initial favorites load failed", slog.String("error", err.Error()))
		}
		if err := a.dash.LoadQuotes(gctx); err != nil {
			a.log.Warn("initial quotes load failed", slog.String("error", err.Error()))
		}
		return nil
	})

	if a.updater != nil {
		a.log.Info("starting updater")
		g.Go(func() error {
			a.updater.Start(gctx)
			return nil
		})
	}

	if a.bot != nil {
		a.log.Info("starting bot")
		a.bot.Start()
	}

	a.log.Info("starting server", slog.String("addr", a.cfg.Server.Addr))
	g.Go(func() error {
		if err := a.e.StartServer(a.serv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", slog.String("error", err.Error()))
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return a.Shutdown(context.Background())
	})
	return g.Wait()
}

func (a *App) Shutdown(ctx context.Context) error {
	timeout := a.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var shutdownErr error
	if a.e != nil {
		if err := a.e.Shutdown(shCtx); err != nil {
			a.log.Error("http shutdown error", slog.String("error", err.Error()))
			shutdownErr = err
		}
	}

	if a.bot != nil {
		a.bot.Stop()
	}

	a.closeStorage()
	a.log.Info("application stopped")
	return shutdownErr
}

func (a *App) closeStorage() {
	if a.db != nil {
		a.db.Close()
		a.db = nil
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("redis close error", slog.String("error", err.Error()))
		}
		a.redis = nil
	}
}
