package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port                   string `mapstructure:"port" validate:"required,numeric"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gte=0"`
}

type NBRBAPI struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}

type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=text json"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	NBRBAPI    NBRBAPI    `mapstructure:"nbrb_api"`
	Logging    Logging    `mapstructure:"logging"`
}

// Init reads config.yaml from the working directory, .env and the environment.
// Both files are optional, defaults cover every key.
func Init() (*AppConfig, error) {
	return Load("config.yaml")
}

func Load(configFile string) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetDefault("http_server.port", "8080")
	v.SetDefault("http_server.shutdown_timeout_seconds", 10)
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("nbrb_api.base_url", "https://api.nbrb.by/exrates/rates")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// http server env vars
	_ = v.BindEnv("http_server.port", "HTTP_PORT")
	_ = v.BindEnv("http_server.shutdown_timeout_seconds", "HTTP_SHUTDOWN_TIMEOUT_SECONDS")

	// http client env vars
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// provider env vars
	_ = v.BindEnv("nbrb_api.base_url", "NBRB_API_BASE_URL")

	// logging env vars
	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("logging.format", "LOG_FORMAT")

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
