package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Kafka     KafkaConfig     `toml:"kafka"`
	Sweeper   SweeperConfig   `toml:"sweeper"`
	FileStore FileStoreConfig `toml:"filestore"`
	Auth      AuthConfig      `toml:"auth"`
	SMTP      SMTPConfig      `toml:"smtp"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
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

// DSN возвращает строку подключения для lib/pq
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// KafkaConfig настройки продюсера уведомлений
type KafkaConfig struct {
	Enabled bool     `toml:"enabled"`
	Brokers []string `toml:"brokers"`
	Topic   string   `toml:"topic"`
	GroupID string   `toml:"group_id"`
}

// SweeperConfig настройки авто-отклонения просроченных броней
type SweeperConfig struct {
	Interval int `toml:"interval"` // секунды между прогонами
	Grace    int `toml:"grace"`    // секунды после конца слота до авто-отклонения
}

// IntervalDuration интервал запуска sweeper'а
func (s *SweeperConfig) IntervalDuration() time.Duration {
	return time.Duration(s.Interval) * time.Second
}

// GraceDuration grace-период до авто-отклонения
func (s *SweeperConfig) GraceDuration() time.Duration {
	return time.Duration(s.Grace) * time.Second
}

// FileStoreConfig настройки клиента внешнего файлового хранилища
type FileStoreConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// AuthConfig настройки аутентификации администратора
type AuthConfig struct {
	AdminToken string `toml:"admin_token"`
}

// SMTPConfig настройки почтовых уведомлений (используются notifier'ом)
type SMTPConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
	AdminTo  string `toml:"admin_to"`
}

// Addr возвращает адрес SMTP сервера в форме host:port
func (s *SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load загружает конфигурацию из TOML файла.
// Секреты можно переопределить через переменные окружения
// (включая .env файл рядом с бинарём):
//
//	DB_PASSWORD    - пароль базы данных
//	ADMIN_TOKEN    - токен администратора
func Load(path string) (*Config, error) {
	// .env опционален; если его нет - работаем с тем, что есть в окружении
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}
	if token := os.Getenv("ADMIN_TOKEN"); token != "" {
		cfg.Auth.AdminToken = token
	}
	if password := os.Getenv("SMTP_PASSWORD"); password != "" {
		cfg.SMTP.Password = password
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort == 0 {
		return fmt.Errorf("config: server.http_port is required")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	if c.Auth.AdminToken == "" {
		return fmt.Errorf("config: auth.admin_token is required (config or ADMIN_TOKEN env)")
	}
	if c.Sweeper.Interval <= 0 {
		return fmt.Errorf("config: sweeper.interval must be positive")
	}
	if c.Sweeper.Grace <= 0 {
		return fmt.Errorf("config: sweeper.grace must be positive")
	}
	return nil
}
