package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса, загружается из config.toml.
// Секреты (пароль БД, пароль админки, ключи сессии, токен Z-API)
// можно переопределить через переменные окружения / .env файл.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
	Admin    AdminConfig    `toml:"admin"`
	Notify   NotifyConfig   `toml:"notify"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	MigrationsDir   string `toml:"migrations_dir"`
}

// DSN собирает строку подключения для lib/pq
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig правила рабочих часов и сетки слотов
type ScheduleConfig struct {
	OpenTime               string `toml:"open_time"`                 // "07:00"
	CloseTime              string `toml:"close_time"`                // "20:30"
	SlotStepMinutes        int    `toml:"slot_step_minutes"`         // шаг сетки (30)
	ServiceDurationMinutes int    `toml:"service_duration_minutes"`  // длительность услуги (60)
	ClosedWeekday          int    `toml:"closed_weekday"`            // 0 = воскресенье
	ShortWeekday           int    `toml:"short_weekday"`             // 6 = суббота
	ShortDayCutoffHour     int    `toml:"short_day_cutoff_hour"`     // 18
	DayWindowSize          int    `toml:"day_window_size"`           // 6
	AppURL                 string `toml:"app_url"`                   // публичный URL виджета (для приглашений)
}

// AdminConfig настройки админской части
type AdminConfig struct {
	Password        string `toml:"password"`
	SessionHashKey  string `toml:"session_hash_key"`
	SessionBlockKey string `toml:"session_block_key"`
}

// NotifyConfig настройки WhatsApp-уведомлений (Z-API)
type NotifyConfig struct {
	Enabled           bool   `toml:"enabled"`
	ZAPIInstanceID    string `toml:"zapi_instance_id"`
	ZAPIInstanceToken string `toml:"zapi_instance_token"`
	ZAPIClientToken   string `toml:"zapi_client_token"`
	Timeout           int    `toml:"timeout"`
}

// ZAPITimeout таймаут запросов к Z-API
func (c *NotifyConfig) ZAPITimeout() time.Duration {
	if c.Timeout <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.Timeout) * time.Second
}

// Load загружает конфигурацию из TOML файла и накладывает
// переопределения из окружения
func Load(path string) (*Config, error) {
	// .env опционален: если файла нет, читаем только реальное окружение
	_ = godotenv.Load(".env")

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		c.Admin.Password = v
	}
	if v := os.Getenv("SESSION_HASH_KEY"); v != "" {
		c.Admin.SessionHashKey = v
	}
	if v := os.Getenv("SESSION_BLOCK_KEY"); v != "" {
		c.Admin.SessionBlockKey = v
	}
	if v := os.Getenv("ZAPI_CLIENT_TOKEN"); v != "" {
		c.Notify.ZAPIClientToken = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "agenda-service"
	}
	if c.Schedule.OpenTime == "" {
		c.Schedule.OpenTime = "07:00"
	}
	if c.Schedule.CloseTime == "" {
		c.Schedule.CloseTime = "20:30"
	}
	if c.Schedule.SlotStepMinutes == 0 {
		c.Schedule.SlotStepMinutes = 30
	}
	if c.Schedule.ServiceDurationMinutes == 0 {
		c.Schedule.ServiceDurationMinutes = 60
	}
	if c.Schedule.ShortDayCutoffHour == 0 {
		c.Schedule.ShortDayCutoffHour = 18
	}
	if c.Schedule.DayWindowSize == 0 {
		c.Schedule.DayWindowSize = 6
	}
	// ClosedWeekday по умолчанию 0 (воскресенье) - нулевое значение совпадает
	if c.Schedule.ShortWeekday == 0 {
		c.Schedule.ShortWeekday = 6
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database host and dbname are required")
	}
	if c.Admin.Password == "" {
		return fmt.Errorf("config: admin password is required (config.toml [admin] or ADMIN_PASSWORD)")
	}
	if c.Admin.SessionHashKey == "" {
		return fmt.Errorf("config: admin session_hash_key is required")
	}
	if c.Schedule.SlotStepMinutes <= 0 || c.Schedule.ServiceDurationMinutes <= 0 {
		return fmt.Errorf("config: schedule step and duration must be positive")
	}
	return nil
}
