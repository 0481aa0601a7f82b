package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string    `mapstructure:"env"`      // current application environment (local, dev, production etc)
	TelegramAPIToken string    `mapstructure:"-"`        // Telegram API token loaded from environment
	DataDir          string    `mapstructure:"data_dir"` // directory with static content files
	DB               DB        `mapstructure:"database"` // database configuration section
	Redis            Redis     `mapstructure:"redis"`
	RabbitMQ         RabbitMQ  `mapstructure:"rabbitmq"`
	HTTP             HTTP      `mapstructure:"http"`
	Quiz             Quiz      `mapstructure:"quiz"`
	Scheduler        Scheduler `mapstructure:"scheduler"`
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Redis configures the quiz progress store. Empty URL selects the in-memory store.
type Redis struct {
	URL string `mapstructure:"-"`
}

// Enabled reports whether Redis is configured.
func (r Redis) Enabled() bool { return r.URL != "" }

// RabbitMQ configures the feedback event publisher. Empty URL disables publishing.
type RabbitMQ struct {
	URL      string `mapstructure:"-"`
	Exchange string `mapstructure:"exchange"`
}

// Enabled reports whether RabbitMQ is configured.
func (r RabbitMQ) Enabled() bool { return r.URL != "" }

// HTTP configures the JSON API.
type HTTP struct {
	Enabled         bool          `mapstructure:"enabled"`
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Quiz configures quiz progress handling.
type Quiz struct {
	ProgressTTL time.Duration `mapstructure:"progress_ttl"` // unfinished quizzes expire after this
}

// Scheduler holds cron specs of background jobs.
type Scheduler struct {
	FeedbackRelaySpec string `mapstructure:"feedback_relay_spec"`
	FeedbackBatchSize int    `mapstructure:"feedback_batch_size"`
	ProgressSweepSpec string `mapstructure:"progress_sweep_spec"`
}

// Load reads configuration for the bot. Telegram token and database URL are required.
func Load() (*Config, error) {
	cfg, v, err := load()
	if err != nil {
		return nil, err
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	if cfg.DB.URL == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	return cfg, nil
}

// LoadLocal reads configuration without requiring any secrets.
func LoadLocal() (*Config, error) {
	cfg, _, err := load()
	return cfg, err
}

func load() (*Config, *viper.Viper, error) {
	// A missing .env file is fine, variables may come from the environment.
	_ = godotenv.Load()

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("data_dir", "assets/data")
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("rabbitmq.exchange", "feedback.events")
	v.SetDefault("http.enabled", false)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.shutdown_timeout", "5s")
	v.SetDefault("quiz.progress_ttl", "24h")
	v.SetDefault("scheduler.feedback_relay_spec", "*/5 * * * *")
	v.SetDefault("scheduler.feedback_batch_size", 50)
	v.SetDefault("scheduler.progress_sweep_spec", "@every 10m")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("redis_url", "REDIS_URL")
	_ = v.BindEnv("rabbitmq_url", "RABBITMQ_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.DB.URL = v.GetString("database_url")
	cfg.Redis.URL = v.GetString("redis_url")
	cfg.RabbitMQ.URL = v.GetString("rabbitmq_url")

	return &cfg, v, nil
}
