package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Redis     RedisConfig     `toml:"redis"`
	Email     EmailConfig     `toml:"email"`
	Auth      AuthConfig      `toml:"auth"`
	Reminders RemindersConfig `toml:"reminders"`
	Business  BusinessConfig  `toml:"business"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// URL строка подключения в формате postgres:// для golang-migrate
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды, TTL кеша дополнительных услуг
}

type EmailConfig struct {
	Enabled     bool   `toml:"enabled"`
	APIKey      string `toml:"api_key"`
	FromAddress string `toml:"from_address"`
	FromName    string `toml:"from_name"`
	OwnerEmail  string `toml:"owner_email"`
	MaxAttempts int    `toml:"max_attempts"`
	RetryDelay  int    `toml:"retry_delay"` // миллисекунды
}

type AuthConfig struct {
	JWTSecret        string `toml:"jwt_secret"`
	TokenTTL         int    `toml:"token_ttl"` // минуты
	BootstrapEnabled bool   `toml:"bootstrap_enabled"`
}

type RemindersConfig struct {
	Enabled         bool `toml:"enabled"`
	IntervalMinutes int  `toml:"interval_minutes"`
	BatchSize       int  `toml:"batch_size"`
}

type BusinessConfig struct {
	Timezone string `toml:"timezone"`
}

// Location возвращает часовой пояс бизнеса
func (b BusinessConfig) Location() (*time.Location, error) {
	return time.LoadLocation(b.Timezone)
}

// Load читает TOML-файл, подгружает .env и применяет переопределения из окружения
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	// .env опционален
	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
			File:  "logs/booking-service.log",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "booking-service",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
			TTL:  600,
		},
		Email: EmailConfig{
			FromName:    "Urinak Cleaning",
			MaxAttempts: 3,
			RetryDelay:  500,
		},
		Auth: AuthConfig{
			TokenTTL: 720,
		},
		Reminders: RemindersConfig{
			Enabled:         true,
			IntervalMinutes: 5,
			BatchSize:       100,
		},
		Business: BusinessConfig{
			Timezone: "Europe/London",
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("SENDGRID_API_KEY"); v != "" {
		c.Email.APIKey = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	switch {
	case c.Server.HTTPPort <= 0:
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	case c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "":
		return fmt.Errorf("%w: database host, dbname and user are required", ErrInvalidConfig)
	case c.Auth.JWTSecret == "":
		return fmt.Errorf("%w: auth.jwt_secret (or JWT_SECRET) is required", ErrInvalidConfig)
	case c.Auth.TokenTTL <= 0:
		return fmt.Errorf("%w: auth.token_ttl must be positive", ErrInvalidConfig)
	case c.Email.Enabled && (c.Email.APIKey == "" || c.Email.FromAddress == ""):
		return fmt.Errorf("%w: email.api_key and email.from_address are required when email is enabled", ErrInvalidConfig)
	case c.Email.MaxAttempts < 1:
		return fmt.Errorf("%w: email.max_attempts must be at least 1", ErrInvalidConfig)
	case c.Reminders.Enabled && c.Reminders.IntervalMinutes <= 0:
		return fmt.Errorf("%w: reminders.interval_minutes must be positive", ErrInvalidConfig)
	}

	if _, err := c.Business.Location(); err != nil {
		return fmt.Errorf("%w: business.timezone: %v", ErrInvalidConfig, err)
	}
	return nil
}
