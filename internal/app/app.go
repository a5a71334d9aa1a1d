// Package app builds the assignment service and its infrastructure from
// configuration. The HTTP server and the operator CLI share it.
package app

import (
	"context"
	"fmt"
	"time"

	"assignment-workflow-backend/internal/auth"
	"assignment-workflow-backend/internal/config"
	"assignment-workflow-backend/internal/database"
	"assignment-workflow-backend/internal/directory"
	"assignment-workflow-backend/internal/lock"
	"assignment-workflow-backend/internal/notify"
	"assignment-workflow-backend/internal/observability"
	"assignment-workflow-backend/internal/repository"
	"assignment-workflow-backend/internal/service"
	"assignment-workflow-backend/internal/workflow"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds the long-lived dependencies of one process
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	Service     *service.AssignmentService
	AuthService *auth.AuthService

	shutdownTracing func(context.Context) error
}

// WorkflowConfig applies the tunables from cfg onto the default policy
func WorkflowConfig(cfg *config.Config) workflow.Config {
	wf := workflow.DefaultConfig()
	if cfg.DefaultWindowHours > 0 {
		wf.DefaultWindow = time.Duration(cfg.DefaultWindowHours) * time.Hour
	}
	if cfg.DefaultForecastDays > 0 {
		wf.DefaultForecastDays = cfg.DefaultForecastDays
	}
	if cfg.MaxForecastDays > 0 {
		wf.MaxForecastDays = cfg.MaxForecastDays
	}
	return wf
}

// New opens the database, optional redis client and tracing, then wires the
// assignment service. Callers must Close the returned App.
func New(ctx context.Context, cfg *config.Config, db *gorm.DB) (*App, error) {
	a := &App{Config: cfg, DB: db}

	shutdown, err := observability.InitTracing(ctx, observability.TracingOptions{
		ServiceName: "assignment-workflow-backend",
		Environment: cfg.Environment,
		Exporter:    cfg.OTelExporter,
		Endpoint:    cfg.OTelEndpoint,
		SampleRatio: cfg.OTelSampleRatio,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	a.shutdownTracing = shutdown

	if cfg.UsesRedis() {
		a.Redis = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := a.Redis.Ping(ctx).Err(); err != nil {
			_ = a.Close(ctx)
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
	}

	identities, err := buildIdentityDirectory(cfg)
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}

	wf := WorkflowConfig(cfg)
	if err := wf.Validate(); err != nil {
		_ = a.Close(ctx)
		return nil, fmt.Errorf("invalid workflow configuration: %w", err)
	}

	a.Service = service.NewAssignmentService(
		repository.NewStore(db, cfg.TxMaxAttempts),
		identities,
		directory.NewGormResourceDirectory(db),
		a.buildLocker(),
		notify.NewDispatcher(a.buildHook()),
		wf,
		validator.New(),
	)

	a.AuthService, err = auth.NewAuthService(auth.NewAuthConfig(cfg))
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"lock_backend":      cfg.LockBackend,
		"notify_backend":    cfg.NotifyBackend,
		"directory_backend": cfg.DirectoryBackend,
	}).Info("assignment service initialized")
	return a, nil
}

// Open connects to postgres from cfg and builds the App on top of it
func Open(ctx context.Context, cfg *config.Config, opts *database.Options) (*App, error) {
	db, err := database.Initialize(cfg.DatabaseURL, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return New(ctx, cfg, db)
}

// Close flushes traces and releases redis and database connections
func (a *App) Close(ctx context.Context) error {
	var firstErr error
	if a.shutdownTracing != nil {
		if err := a.shutdownTracing(ctx); err != nil {
			firstErr = err
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func buildIdentityDirectory(cfg *config.Config) (directory.IdentityDirectory, error) {
	if cfg.DirectoryBackend == "ldap" {
		return directory.NewLDAPDirectory(cfg), nil
	}
	static, err := directory.LoadStaticDirectory(cfg.DirectoryFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load identity directory: %w", err)
	}
	return static, nil
}

func (a *App) buildLocker() lock.Locker {
	if a.Config.LockBackend == "redis" {
		return lock.NewRedisLocker(a.Redis, time.Duration(a.Config.LockTTLSec)*time.Second)
	}
	return lock.NewMemoryLocker()
}

func (a *App) buildHook() notify.Hook {
	if a.Config.NotifyBackend == "redis" {
		return notify.NewRedisStreamHook(a.Redis, a.Config.NotifyStream)
	}
	return notify.NewLogHook()
}
