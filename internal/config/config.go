package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// EnvConfigPath переменная окружения, переопределяющая путь к конфигу
const EnvConfigPath = "CONFIG_PATH"

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Database      DatabaseConfig      `toml:"database"`
	Redis         RedisConfig         `toml:"redis"`
	Kafka         KafkaConfig         `toml:"kafka"`
	Notifications NotificationsConfig `toml:"notifications"`
	Booking       BookingConfig       `toml:"booking"`
	ChangeFeed    ChangeFeedConfig    `toml:"changefeed"`
	Auth          AuthConfig          `toml:"auth"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig настройки PostgreSQL
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
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig настройки Redis (сессии и rate limit)
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// KafkaConfig настройки публикации событий; пустой список брокеров отключает Kafka
type KafkaConfig struct {
	Brokers      []string `toml:"brokers"`
	Topic        string   `toml:"topic"`
	WriteTimeout int      `toml:"write_timeout"` // секунды
}

// Enabled сообщает, что публикация в Kafka включена
func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// NotificationsConfig настройки уведомлений о новых записях
type NotificationsConfig struct {
	WebhookURL    string `toml:"webhook_url"`
	WebhookSecret string `toml:"webhook_secret"`
	Timeout       int    `toml:"timeout"` // секунды
}

// BookingConfig правила записи
type BookingConfig struct {
	InitialStatus string `toml:"initial_status"`
	Timezone      string `toml:"timezone"`

	location *time.Location
	status   domain.AppointmentStatus
}

// Location часовой пояс салона
func (c BookingConfig) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

// Status статус новой записи
func (c BookingConfig) Status() domain.AppointmentStatus {
	if c.status == "" {
		return domain.StatusPending
	}
	return c.status
}

// ChangeFeedConfig настройки потока изменений (длительности в миллисекундах)
type ChangeFeedConfig struct {
	Channel        string `toml:"channel"`
	BatchWindowMs  int    `toml:"batch_window_ms"`
	MinReconnectMs int    `toml:"min_reconnect_ms"`
	MaxReconnectMs int    `toml:"max_reconnect_ms"`
}

// AuthConfig настройки аутентификации администраторов
type AuthConfig struct {
	SessionTTL int `toml:"session_ttl"` // секунды
	BcryptCost int `toml:"bcrypt_cost"`

	RateLimitRequests int `toml:"rate_limit_requests"`
	RateLimitWindow   int `toml:"rate_limit_window"` // секунды

	// TrustedProxies адреса и CIDR прокси, чьему X-Forwarded-For можно верить
	TrustedProxies []string `toml:"trusted_proxies"`
}

// Load читает конфигурацию из TOML файла.
// Если задана переменная CONFIG_PATH, путь берется из нее
func Load(path string) (*Config, error) {
	if env := os.Getenv(EnvConfigPath); env != "" {
		path = env
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
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
			ShutdownTimeout: 30,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "barberbooking",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Kafka: KafkaConfig{
			Topic:        "barberbooking.appointments",
			WriteTimeout: 10,
		},
		Notifications: NotificationsConfig{
			Timeout: 5,
		},
		Booking: BookingConfig{
			InitialStatus: string(domain.StatusPending),
		},
		ChangeFeed: ChangeFeedConfig{
			Channel:        "appointments_changes",
			BatchWindowMs:  100,
			MinReconnectMs: 1000,
			MaxReconnectMs: 60000,
		},
		Auth: AuthConfig{
			SessionTTL:        12 * 60 * 60,
			BcryptCost:        12,
			RateLimitRequests: 10,
			RateLimitWindow:   60,
		},
	}
}

func (c *Config) validate() error {
	var errs []error

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port must be in 1..65535, got %d", c.Server.HTTPPort))
	}
	if c.Database.DBName == "" {
		errs = append(errs, errors.New("database.dbname is required"))
	}
	if c.Database.User == "" {
		errs = append(errs, errors.New("database.user is required"))
	}

	status, err := domain.ParseAppointmentStatus(strings.ToLower(strings.TrimSpace(c.Booking.InitialStatus)))
	if err != nil || status == domain.StatusRejected {
		errs = append(errs, fmt.Errorf("booking.initial_status must be pending or confirmed, got %q", c.Booking.InitialStatus))
	} else {
		c.Booking.status = status
	}

	if c.Booking.Timezone != "" {
		loc, err := time.LoadLocation(c.Booking.Timezone)
		if err != nil {
			errs = append(errs, fmt.Errorf("booking.timezone: %w", err))
		} else {
			c.Booking.location = loc
		}
	}

	if c.Kafka.Enabled() && c.Kafka.Topic == "" {
		errs = append(errs, errors.New("kafka.topic is required when kafka.brokers is set"))
	}
	if c.ChangeFeed.Channel == "" {
		errs = append(errs, errors.New("changefeed.channel is required"))
	}
	if c.Auth.SessionTTL <= 0 {
		errs = append(errs, errors.New("auth.session_ttl must be positive"))
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		errs = append(errs, fmt.Errorf("auth.bcrypt_cost must be in 4..31, got %d", c.Auth.BcryptCost))
	}

	for _, proxy := range c.Auth.TrustedProxies {
		if !validProxy(strings.TrimSpace(proxy)) {
			errs = append(errs, fmt.Errorf("auth.trusted_proxies: invalid address or CIDR %q", proxy))
		}
	}

	return errors.Join(errs...)
}

func validProxy(entry string) bool {
	if strings.Contains(entry, "/") {
		_, _, err := net.ParseCIDR(entry)
		return err == nil
	}
	return net.ParseIP(entry) != nil
}
