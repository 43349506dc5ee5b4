package envconfig

import "github.com/caarlos0/env/v11"

type redisEnv struct {
	Addr        string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password    string `env:"REDIS_PASSWORD"`
	DB          int    `env:"REDIS_DB" envDefault:"0"`
	SnapshotKey string `env:"REDIS_SNAPSHOT_KEY" envDefault:"stockroom:inventory"`
}

type redis struct {
	raw redisEnv
}

func NewRedisConfig() (*redis, error) {
	var raw redisEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &redis{raw: raw}, nil
}

func (cfg *redis) Addr() string        { return cfg.raw.Addr }
func (cfg *redis) Password() string    { return cfg.raw.Password }
func (cfg *redis) DB() int             { return cfg.raw.DB }
func (cfg *redis) SnapshotKey() string { return cfg.raw.SnapshotKey }
