package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/Hughesneal88/dcit318-assignment3-11178252/internal/config/env"
)

var cfg *config

type config struct {
	Logger   Logger
	Snapshot Snapshot
	Mongo    Database
	Redis    Redis
	Grading  Grading
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	snapshotCfg, err := envconfig.NewSnapshotConfig()
	if err != nil {
		return fmt.Errorf("%s Snapshot: %w", op, err)
	}

	mongoCfg, err := envconfig.NewMongoConfig()
	if err != nil {
		return fmt.Errorf("%s Mongo: %w", op, err)
	}

	redisCfg, err := envconfig.NewRedisConfig()
	if err != nil {
		return fmt.Errorf("%s Redis: %w", op, err)
	}

	gradingCfg, err := envconfig.NewGradingConfig()
	if err != nil {
		return fmt.Errorf("%s Grading: %w", op, err)
	}

	cfg = &config{
		Logger:   loggerCfg,
		Snapshot: snapshotCfg,
		Mongo:    mongoCfg,
		Redis:    redisCfg,
		Grading:  gradingCfg,
	}

	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
