package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"go.uber.org/zap"

	"hrservice/internal/app/config"
	httpapi "hrservice/internal/app/http"
	"hrservice/internal/app/http/handler"
	"hrservice/internal/domain/company"
	"hrservice/internal/domain/manager"
	"hrservice/internal/domain/notification"
	"hrservice/internal/domain/position"
	"hrservice/internal/domain/project"
	"hrservice/internal/domain/resume"
	"hrservice/internal/domain/stats"
	"hrservice/internal/domain/user"
	"hrservice/internal/infrastructure/async"
	"hrservice/internal/infrastructure/db/pg"
	"hrservice/internal/infrastructure/logging"
	"hrservice/internal/infrastructure/relay"
)

const eventTaskTimeout = 30 * time.Second

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db open error", zap.Error(err))
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("db ping error", zap.Error(err))
	}

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("goose dialect error", zap.Error(err))
	}
	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatal("goose up error", zap.Error(err))
	}

	uow := pg.NewTxManager(db)

	userRepo := pg.NewUserRepository(db)
	companyRepo := pg.NewCompanyRepository(db)
	projectRepo := pg.NewProjectRepository(db)
	managerRepo := pg.NewManagerRepository(db)
	positionRepo := pg.NewPositionRepository(db)
	resumeRepo := pg.NewResumeRepository(db)
	notificationRepo := pg.NewNotificationRepository(db)
	statsRepo := pg.NewStatsRepository(db)

	registry := async.NewRegistry(resume.Events()...)
	if err := resume.NewSubscriber(uow, resumeRepo, log).Register(registry); err != nil {
		log.Fatal("register resume subscriber", zap.Error(err))
	}
	if err := notification.NewStatusSubscriber(notificationRepo, log).Register(registry); err != nil {
		log.Fatal("register notification subscriber", zap.Error(err))
	}

	if len(cfg.KafkaBrokers) > 0 {
		kafkaRelay, err := relay.NewKafkaRelay(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			log.Fatal("kafka relay error", zap.Error(err))
		}
		defer kafkaRelay.Close()

		if err := kafkaRelay.Register(registry, resume.Events()...); err != nil {
			log.Fatal("register kafka relay", zap.Error(err))
		}
		log.Info("kafka relay enabled",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic", cfg.KafkaTopic),
		)
	}

	failures := &async.FailureCounter{}
	eventBus, err := async.NewEventBus(ctx, cfg.EventMode, registry, async.AsyncOptions{
		Workers:      cfg.EventWorkers,
		QueueSize:    cfg.EventQueueSize,
		MaxRetries:   cfg.EventMaxRetries,
		RetryBackoff: cfg.EventRetryBackoff,
		TaskTimeout:  eventTaskTimeout,
	}, log, failures)
	if err != nil {
		log.Fatal("event bus error", zap.Error(err))
	}

	userSvc := user.NewService(userRepo)
	managers := manager.NewAssigner(userRepo, managerRepo)
	companySvc := company.NewService(uow, companyRepo, managers)
	projectSvc := project.NewService(uow, projectRepo, companyRepo)
	positionSvc := position.NewService(uow, positionRepo, companyRepo, projectRepo, managers)
	resumeSvc := resume.NewService(uow, resumeRepo, positionRepo, eventBus, log)
	notificationSvc := notification.NewService(notificationRepo)
	statsSvc := stats.NewService(statsRepo)

	h := handler.New(userSvc, companySvc, projectSvc, positionSvc, resumeSvc, notificationSvc, statsSvc, failures, cfg.UploadDir, log)
	router := httpapi.NewRouter(h, log, httpapi.Options{
		JWTSecret:   []byte(cfg.JWTSecret),
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("event_mode", string(cfg.EventMode)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
	eventBus.Close()
}
