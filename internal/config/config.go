package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile    string  `yaml:"log-file" env:"LOG_FILE"`
	HTTPPort   string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string  `yaml:"socket-port" env:"SOCKET_PORT" env-default:"3000"`
	Game       Game    `yaml:"game"`
	Redis      Redis   `yaml:"redis"`
	Archive    Archive `yaml:"archive"`
}

type Game struct {
	TickRate   int `yaml:"tick-rate" env:"GAME_TICK_RATE" env-default:"20"`
	EventQueue int `yaml:"event-queue" env:"GAME_EVENT_QUEUE" env-default:"1024"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	DB      int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Archive struct {
	TTL           time.Duration `yaml:"ttl" env:"ARCHIVE_TTL" env-default:"168h"`
	MaxEntries    int64         `yaml:"max-entries" env:"ARCHIVE_MAX_ENTRIES" env-default:"1000"`
	PruneSchedule string        `yaml:"prune-schedule" env:"ARCHIVE_PRUNE_SCHEDULE" env-default:"@every 10m"`
	Buffer        int           `yaml:"buffer" env:"ARCHIVE_BUFFER" env-default:"64"`
}

// Load reads the yaml file at path and applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
