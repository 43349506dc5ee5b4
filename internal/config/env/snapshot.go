package envconfig

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	BackendFile  = "file"
	BackendMongo = "mongo"
	BackendRedis = "redis"
)

type snapshotEnv struct {
	Backend string        `env:"SNAPSHOT_BACKEND" envDefault:"file"`
	Path    string        `env:"SNAPSHOT_PATH" envDefault:"inventory.json"`
	Timeout time.Duration `env:"SNAPSHOT_TIMEOUT" envDefault:"5s"`
}

type snapshot struct {
	raw snapshotEnv
}

func NewSnapshotConfig() (*snapshot, error) {
	var raw snapshotEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	switch raw.Backend {
	case BackendFile, BackendMongo, BackendRedis:
	default:
		return nil, fmt.Errorf("unknown SNAPSHOT_BACKEND %q (want file, mongo or redis)", raw.Backend)
	}
	if raw.Timeout <= 0 {
		return nil, fmt.Errorf("SNAPSHOT_TIMEOUT must be positive, got %s", raw.Timeout)
	}

	return &snapshot{raw: raw}, nil
}

func (cfg *snapshot) Backend() string        { return cfg.raw.Backend }
func (cfg *snapshot) Path() string           { return cfg.raw.Path }
func (cfg *snapshot) Timeout() time.Duration { return cfg.raw.Timeout }
