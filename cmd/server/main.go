package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/saransh1220/animal-drop/internal/gateway"
	"github.com/saransh1220/animal-drop/internal/modules/filestorage"
	"github.com/saransh1220/animal-drop/internal/modules/page"
	"github.com/saransh1220/animal-drop/internal/modules/preview"
	"github.com/saransh1220/animal-drop/internal/modules/upload"
	"github.com/saransh1220/animal-drop/internal/shared/infrastructure/config"
	"github.com/saransh1220/animal-drop/internal/shared/infrastructure/database"
	"github.com/saransh1220/animal-drop/internal/shared/logger"
	"github.com/saransh1220/animal-drop/migrations"
	"github.com/saransh1220/animal-drop/pkg/migration"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatal("failed to load config", "err", err)
	}
	logger.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger.Get()); err != nil {
		logger.Get().Fatal("server exited", "err", err)
	}
}

func run(ctx context.Context, cfg config.Config, l *log.Logger) error {
	handler, closer, err := buildApp(ctx, cfg, l)
	if err != nil {
		return err
	}
	defer closer.Close()

	return gateway.NewServer(cfg.Server, handler, l).Start(ctx)
}

type closers []io.Closer

func (c closers) Close() error {
	for i := len(c) - 1; i >= 0; i-- {
		_ = c[i].Close()
	}
	return nil
}

// buildApp connects the optional backends and wires every module into one
// handler. The returned closer releases the connections.
func buildApp(ctx context.Context, cfg config.Config, l *log.Logger) (http.Handler, io.Closer, error) {
	var toClose closers

	var db *sqlx.DB
	if cfg.Database.Enabled {
		l.Info("connecting to database", "host", cfg.Database.Host, "name", cfg.Database.DBName)
		conn, err := database.NewPostgresDB(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}
		toClose = append(toClose, conn)

		if err := migration.AutoMigrate(migrationConfig(cfg.Database)); err != nil {
			toClose.Close()
			return nil, nil, fmt.Errorf("migrate database: %w", err)
		}
		db = conn
	} else {
		l.Info("database disabled; upload history is off")
	}

	redisClient := connectRedis(cfg.Redis, l)
	if redisClient != nil {
		toClose = append(toClose, redisClient)
	}

	files, err := filestorage.NewModule(ctx, cfg.FileStorage)
	if err != nil {
		toClose.Close()
		return nil, nil, err
	}

	previews := preview.NewModule(cfg.Preview, redisClient, l)
	uploads := upload.NewModule(db, files.Service(), cfg.Upload.MaxBytes, l)
	pages, err := page.NewModule(previews.Service(), cfg.Upload.MaxBytes, l)
	if err != nil {
		toClose.Close()
		return nil, nil, fmt.Errorf("load page templates: %w", err)
	}

	routes := gateway.RouterConfig{
		PageHandler:    pages.HTTPHandler(),
		PreviewHandler: previews.HTTPHandler(),
		UploadHandler:  uploads.HTTPHandler(),
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}
	if !cfg.FileStorage.UseS3 {
		routes.LocalUploadsDir = cfg.FileStorage.LocalPath
		routes.LocalUploadsURL = cfg.FileStorage.LocalBaseURL
	}

	return gateway.SetupRoutes(routes).Handler(), toClose, nil
}

// The on-disk directory wins so schema changes can be tried without a rebuild
func migrationConfig(cfg database.PostgresConfig) migration.Config {
	mc := migration.Config{DatabaseURL: cfg.URL(), Logger: logger.Slog()}
	if info, err := os.Stat(cfg.MigrationsPath); err == nil && info.IsDir() {
		mc.MigrationsPath = cfg.MigrationsPath
	} else {
		mc.Source = migrations.FS
	}
	return mc
}

// connectRedis returns nil when Redis is disabled or unreachable; previews
// are then rendered on every request.
func connectRedis(cfg database.RedisConfig, l *log.Logger) *redis.Client {
	if !cfg.Enabled {
		return nil
	}
	client, err := database.NewRedis(cfg)
	if err != nil {
		l.Warn("redis unavailable, preview cache disabled", "addr", cfg.Addr(), "err", err)
		return nil
	}
	l.Info("connected to redis", "addr", cfg.Addr())
	return client
}
