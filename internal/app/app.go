package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/stpnv0/CourtBooker/internal/config"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/handler"
	"github.com/stpnv0/CourtBooker/internal/middleware"
	"github.com/stpnv0/CourtBooker/internal/mq"
	"github.com/stpnv0/CourtBooker/internal/notification"
	"github.com/stpnv0/CourtBooker/internal/obs"
	"github.com/stpnv0/CourtBooker/internal/repository"
	"github.com/stpnv0/CourtBooker/internal/router"
	"github.com/stpnv0/CourtBooker/internal/scheduler"
	"github.com/stpnv0/CourtBooker/internal/service"
	"github.com/stpnv0/CourtBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	appName       = "CourtBooker"
	appVersion    = "0.1.0"
	migrationsDir = "migrations"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	gormDB     *gorm.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler

	publisher     *mq.Publisher
	consumer      *mq.Consumer
	sharePaid     *mq.SharePaidConsumer
	traceShutdown func(context.Context) error
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initTracing(); err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initTracing() error {
	if !a.cfg.Tracing.Enabled {
		return nil
	}

	shutdown, err := obs.InitTracer(context.Background(), obs.TracerOptions{
		Endpoint:    a.cfg.Tracing.Endpoint,
		ServiceName: appName,
		Version:     appVersion,
		Environment: a.cfg.Tracing.Environment,
		SampleRatio: a.cfg.Tracing.SampleRatio,
	})
	if err != nil {
		return err
	}
	a.traceShutdown = shutdown

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "tracing enabled",
		logger.String("endpoint", a.cfg.Tracing.Endpoint),
	)
	return nil
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

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	// каталог (корты, тарифы) работает через gorm поверх того же пула
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db.Master}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("open gorm: %w", err)
	}

	a.db = db
	a.gormDB = gormDB
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initMessaging() (ports.EventPublisher, error) {
	if !a.cfg.Rabbit.Enabled {
		a.log.Info("rabbitmq disabled, lifecycle events are not published")
		return nil, nil
	}

	pub, err := mq.NewPublisher(a.cfg.Rabbit.URL, a.cfg.Rabbit.Exchange)
	if err != nil {
		return nil, fmt.Errorf("init publisher: %w", err)
	}
	a.publisher = pub

	consumer, err := mq.NewConsumer(
		a.cfg.Rabbit.URL,
		a.cfg.Rabbit.Exchange,
		a.cfg.Rabbit.PaymentQueue,
		[]string{domain.SharePaidKey},
	)
	if err != nil {
		return nil, fmt.Errorf("init consumer: %w", err)
	}
	a.consumer = consumer

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "rabbitmq connected",
		logger.String("exchange", a.cfg.Rabbit.Exchange),
		logger.String("payment_queue", a.cfg.Rabbit.PaymentQueue),
	)
	return pub, nil
}

func (a *App) initServices() error {
	settings, err := a.cfg.Booking.ClubSettings()
	if err != nil {
		return fmt.Errorf("booking settings: %w", err)
	}

	reservationRepo := repository.NewReservationRepo(a.db)
	courtRepo := repository.NewCourtRepo(a.gormDB)
	rateRepo := repository.NewRateRuleRepo(a.gormDB)
	clock := ports.SystemClock{}

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, settings.Loc(), a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	publisher, err := a.initMessaging()
	if err != nil {
		return err
	}

	reservationService := service.NewReservationService(
		reservationRepo, courtRepo, rateRepo, n, publisher, clock, settings, a.log,
	)
	recurrenceService := service.NewRecurrenceService(
		reservationRepo, courtRepo, rateRepo, n, publisher, clock, settings, a.log,
	)
	availabilityService := service.NewAvailabilityService(reservationRepo, courtRepo, clock, settings)
	pricingService := service.NewPricingService(courtRepo, rateRepo, settings, a.log)
	courtService := service.NewCourtService(courtRepo)
	rateRuleService := service.NewRateRuleService(rateRepo, courtRepo, a.log)

	a.scheduler = scheduler.New(
		reservationService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	if a.consumer != nil {
		a.sharePaid = mq.NewSharePaidConsumer(a.consumer, reservationService, a.log)
	}

	h := handler.NewHandler(
		reservationService,
		recurrenceService,
		availabilityService,
		pricingService,
		courtService,
		rateRuleService,
		settings.Loc(),
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		a.cfg.Auth.JWTSecret,
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

	if a.sharePaid != nil {
		if err := a.sharePaid.Run(ctx); err != nil {
			return fmt.Errorf("share paid consumer: %w", err)
		}
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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

	if a.consumer != nil {
		if err := a.consumer.Close(); err != nil {
			a.log.Warn("close rabbitmq consumer", logger.String("error", err.Error()))
		}
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.log.Warn("close rabbitmq publisher", logger.String("error", err.Error()))
		}
	}

	if a.traceShutdown != nil {
		if err := a.traceShutdown(shutdownCtx); err != nil {
			a.log.Warn("tracer shutdown", logger.String("error", err.Error()))
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
