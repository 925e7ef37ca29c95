package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (grid, timeouts, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	Session SessionConfig
	Booking BookingConfig
	OTP     OTPConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Seoul"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	PoolSize int    `envconfig:"REDIS_POOL_SIZE" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Seoul"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type SessionConfig struct {
	Secret   string        `envconfig:"SESSION_SECRET" required:"true"`
	Duration time.Duration `envconfig:"SESSION_DURATION" default:"15m"`
}

// BookingConfig bounds what the conflict guard accepts.
type BookingConfig struct {
	AdvanceBookingDays int           `envconfig:"ADVANCE_BOOKING_DAYS" default:"30"`
	MinBookingHours    int           `envconfig:"MIN_BOOKING_HOURS" default:"1"`
	MaxBookingHours    int           `envconfig:"MAX_BOOKING_HOURS" default:"8"`
	OpenTime           string        `envconfig:"OPEN_TIME" default:"08:00"`
	CloseTime          string        `envconfig:"CLOSE_TIME" default:"22:00"`
	DraftTTL           time.Duration `envconfig:"DRAFT_TTL" default:"30m"`
}

// OTPConfig. DeviceTrustTTL of zero means trust never expires.
type OTPConfig struct {
	TTL            time.Duration `envconfig:"OTP_TTL" default:"5m"`
	Cooldown       time.Duration `envconfig:"OTP_COOLDOWN" default:"30s"`
	MaxAttempts    int           `envconfig:"OTP_MAX_ATTEMPTS" default:"5"`
	DeviceTrustTTL time.Duration `envconfig:"DEVICE_TRUST_TTL" default:"0"`
	SendRPS        float64       `envconfig:"OTP_SEND_RPS" default:"1"`
	SendBurst      int           `envconfig:"OTP_SEND_BURST" default:"3"`
}

func (c BookingConfig) MinDuration() time.Duration {
	return time.Duration(c.MinBookingHours) * time.Hour
}

func (c BookingConfig) MaxDuration() time.Duration {
	return time.Duration(c.MaxBookingHours) * time.Hour
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Seoul",
		},
		Redis: RedisConfig{
			Addr:     "localhost:16379",
			PoolSize: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Seoul",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Session: SessionConfig{
			Secret:   "test-secret",
			Duration: 15 * time.Minute,
		},
		Booking: BookingConfig{
			AdvanceBookingDays: 30,
			MinBookingHours:    1,
			MaxBookingHours:    8,
			OpenTime:           "08:00",
			CloseTime:          "22:00",
			DraftTTL:           30 * time.Minute,
		},
		OTP: OTPConfig{
			TTL:         5 * time.Minute,
			Cooldown:    30 * time.Second,
			MaxAttempts: 5,
			SendRPS:     1,
			SendBurst:   3,
		},
	}
}
