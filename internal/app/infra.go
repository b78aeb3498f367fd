package app

import (
	"context"
	"database/sql"

	"taskboard/internal/config"
	"taskboard/internal/db"
	"taskboard/internal/logger"
	"taskboard/internal/redis"

	_ "github.com/lib/pq"
)

// Infra holds optional durable backends. Nil handles mean the
// in-memory stores are used instead, which is the default deployment.
type Infra struct {
	DB    *db.DB
	Redis *redis.Client
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {

	infra := &Infra{}

	if cfg.DatabaseDSN != "" {
		sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}

		if err := sqlDB.PingContext(ctx); err != nil {
			return nil, err
		}

		if err := db.RunMigration(ctx, sqlDB); err != nil {
			return nil, err
		}

		logger.Info("database ready", nil)
		infra.DB = &db.DB{DB: sqlDB}
	} else {
		logger.Info("no DATABASE_DSN, using in-memory stores", nil)
	}

	if cfg.RedisAddr != "" {
		redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}

		logger.Info("redis ready", nil)
		infra.Redis = redisClient
	} else {
		logger.Info("no REDIS_ADDR, using in-memory session store", nil)
	}

	return infra, nil
}
