package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel      string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort      string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	DefaultEngine string `yaml:"default-engine" env:"DEFAULT_ENGINE" env-default:"Random"`
	Redis         Redis  `yaml:"redis"`
}

// Redis - outcome cache, an empty host keeps outcomes in memory instead.
type Redis struct {
	Host string        `yaml:"host" env:"REDIS_HOST"`
	Port string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL  time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"24h"`
}

// MustLoad - load all configurations in config.yml file, environment variables take precedence.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) Enabled() bool {
	return that.Host != ""
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
