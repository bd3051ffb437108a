package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/maazimam/parkeasy-sub000/internal/cache"
	"github.com/maazimam/parkeasy-sub000/internal/config"
	"github.com/maazimam/parkeasy-sub000/internal/handler"
	"github.com/maazimam/parkeasy-sub000/internal/handler/dto"
	"github.com/maazimam/parkeasy-sub000/internal/middleware"
	"github.com/maazimam/parkeasy-sub000/internal/notification"
	"github.com/maazimam/parkeasy-sub000/internal/repository"
	"github.com/maazimam/parkeasy-sub000/internal/router"
	"github.com/maazimam/parkeasy-sub000/internal/scheduler"
	"github.com/maazimam/parkeasy-sub000/internal/service"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	_ "github.com/lib/pq"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	rdb        *redis.Client
	cache      *cache.SearchCache
	publisher  *notification.AMQPPublisher
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ParkEasy",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	app.initCache()

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

// initCache connects the shared redis tier when configured. A redis that
// cannot be reached leaves the cache process-local.
func (a *App) initCache() {
	cc := a.cfg.Cache
	if cc.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cc.RedisAddr,
			Password: cc.RedisPassword,
			DB:       cc.RedisDB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			a.log.LogAttrs(context.Background(), logger.WarnLevel, "redis unavailable, using local cache only",
				logger.String("addr", cc.RedisAddr),
				logger.String("error", err.Error()),
			)
			_ = rdb.Close()
		} else {
			a.rdb = rdb
		}
	}

	a.cache = cache.New(a.rdb, cache.Options{TTL: cc.TTL, LocalSize: cc.LocalSize}, a.log)
}

func (a *App) initNotifications() (*notification.Hub, error) {
	hub := notification.NewHub(a.log)

	tg, err := notification.NewTelegramSender(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	hub.Register("telegram", tg)

	mc := a.cfg.Mail
	email, err := notification.NewEmailSender(notification.EmailConfig{
		Host:     mc.Host,
		Port:     mc.Port,
		Username: mc.Username,
		Password: mc.Password,
		From:     mc.From,
	}, a.log)
	if err != nil {
		return nil, fmt.Errorf("email: %w", err)
	}
	hub.Register("email", email)

	publisher, err := notification.NewAMQPPublisher(a.cfg.AMQP.URL, a.cfg.AMQP.Exchange, a.log)
	if err != nil {
		return nil, fmt.Errorf("amqp: %w", err)
	}
	a.publisher = publisher
	hub.Register("amqp", publisher)

	return hub, nil
}

func (a *App) initServices() error {
	txManager := repository.NewTxManager(a.db)
	listingRepo := repository.NewListingRepo(a.db)
	availabilityRepo := repository.NewAvailabilityRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	reviewRepo := repository.NewReviewRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)

	hub, err := a.initNotifications()
	if err != nil {
		return fmt.Errorf("init notifications: %w", err)
	}

	userService := service.NewUserService(userRepo, a.log)
	availabilityService := service.NewAvailabilityService(availabilityRepo, a.cache, a.log)
	reviewService := service.NewReviewService(reviewRepo, bookingRepo, a.log)
	listingService := service.NewListingService(
		txManager, listingRepo, availabilityRepo, bookingRepo, reviewRepo, a.cache, a.log,
	)
	bookingService := service.NewBookingService(
		txManager, bookingRepo, listingRepo, availabilityRepo, userRepo, a.cache, hub, a.log,
	)

	a.scheduler = scheduler.New(
		availabilityService,
		a.cfg.Scheduler.PruneInterval,
		a.log,
	)

	if err = dto.RegisterValidators(); err != nil {
		return fmt.Errorf("register validators: %w", err)
	}

	h := handler.NewHandler(listingService, bookingService, availabilityService, reviewService, userService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.publisher.Close(); err != nil {
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "amqp close failed",
			logger.String("error", err.Error()),
		)
	}

	a.cache.Close()
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.log.LogAttrs(context.Background(), logger.WarnLevel, "redis close failed",
				logger.String("error", err.Error()),
			)
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
