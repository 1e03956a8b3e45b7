package db

import (
	"context"
	"fmt"
	"time"

	"campus-nav/config"
	"campus-nav/model"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to the configured database, retrying while it comes up,
// and migrates the schema. Cancelling ctx stops the retries.
func Open(ctx context.Context, cfg config.DBConfig, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}

	attempts := max(cfg.MaxRetries, 1)
	var conn *gorm.DB
	for i := 0; i < attempts; i++ {
		conn, err = gorm.Open(dialector, gormCfg)
		if err == nil {
			break
		}
		log.Warn("waiting for database",
			zap.String("driver", cfg.Driver),
			zap.Int("attempt", i+1),
			zap.Int("max_attempts", attempts),
			zap.Error(err))
		if i+1 < attempts {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("connect %s: %w", cfg.Driver, ctx.Err())
			case <-time.After(cfg.RetryInterval):
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Driver, err)
	}

	if err := Migrate(conn); err != nil {
		return nil, err
	}

	log.Info("database ready", zap.String("driver", cfg.Driver))
	return conn, nil
}

// Migrate creates or updates the locations and links tables.
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(&model.Location{}, &model.Link{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

func dialectorFor(cfg config.DBConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "sqlite":
		return sqlite.Open(cfg.SQLiteDSN()), nil
	case "postgres":
		return postgres.Open(cfg.PostgresDSN()), nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}
