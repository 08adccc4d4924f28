package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type MySQLConfig struct {
	DSN string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

type Config struct {
	Addr  string
	MySQL MySQLConfig
	Redis RedisConfig
	Kafka KafkaConfig
	SMTP  SMTPConfig
	Token TokenConfig
}

// Load reads config.yaml from path (or the working directory) with FORUM_*
// environment overrides. The signing secrets are read here exactly once;
// nothing else in the process touches them.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")
	v.SetEnvPrefix("FORUM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("redis.db", 0)
	v.SetDefault("token.accessttl", 30*time.Minute)
	v.SetDefault("token.refreshttl", 24*time.Hour)
	v.SetDefault("kafka.topic", "forum-events")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		// no file is fine, env can carry everything
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.Token.AccessSecret == "" || cfg.Token.RefreshSecret == "" {
		return nil, errors.New("config: token secrets must be set")
	}
	return &cfg, nil
}
