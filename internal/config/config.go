package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every runtime setting of the service.
type Config struct {
	Port   string
	DB     DBConfig
	Log    LogConfig
	Auth   AuthConfig
	DogAPI DogAPIConfig
	Server ServerConfig
}

type DBConfig struct {
	Path string
}

type LogConfig struct {
	Level  string
	Format string // "console" | "json"
}

type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

type DogAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type ServerConfig struct {
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

const envPrefix = "DOGGYRANK"

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "4001")
	v.SetDefault("db.path", "doggyrank.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("dogapi.base_url", "https://dog.ceo")
	v.SetDefault("dogapi.timeout", 10*time.Second)
	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
}

// Load reads an optional .env file, then configs/config.yml (optional), then
// DOGGYRANK_* environment variables, e.g. DOGGYRANK_DB_PATH.
func Load(paths ...string) (*Config, error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if len(paths) == 0 {
		paths = []string{"configs"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port: v.GetString("port"),
		DB:   DBConfig{Path: v.GetString("db.path")},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Auth: AuthConfig{
			SigningKey: v.GetString("auth.signing_key"),
			TokenTTL:   v.GetDuration("auth.token_ttl"),
		},
		DogAPI: DogAPIConfig{
			BaseURL: strings.TrimRight(v.GetString("dogapi.base_url"), "/"),
			Timeout: v.GetDuration("dogapi.timeout"),
		},
		Server: ServerConfig{
			ReadHeaderTimeout: v.GetDuration("server.read_header_timeout"),
			WriteTimeout:      v.GetDuration("server.write_timeout"),
			IdleTimeout:       v.GetDuration("server.idle_timeout"),
			ShutdownTimeout:   v.GetDuration("server.shutdown_timeout"),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Auth.SigningKey == "" {
		return errors.New("auth.signing_key is required (set DOGGYRANK_AUTH_SIGNING_KEY)")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive, got %s", c.Auth.TokenTTL)
	}
	if c.DogAPI.BaseURL == "" {
		return errors.New("dogapi.base_url is required")
	}
	return nil
}
