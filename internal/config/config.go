package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration of the service.
type Config struct {
	App      App
	Postgres Postgres
	Redis    Redis
	Kafka    Kafka
	SMTP     SMTP
	JWT      JWT
	Admin    Admin
	Payments Payments
}

// App is the HTTP/gRPC listener and logging configuration.
type App struct {
	Host     string
	Port     string
	GRPCPort string
	LogLevel string
	LogFile  string
}

// Addr returns the host:port pair for the HTTP server.
func (a App) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// GRPCAddr returns the host:port pair for the gRPC health server.
func (a App) GRPCAddr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.GRPCPort)
}

// Postgres is the transaction and user store configuration.
type Postgres struct {
	Host         string
	Port         int
	User         string
	Password     string
	DB           string
	MaxOpenConns int
	MaxIdleConns int
}

// DSN returns the pgx connection string.
func (p Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.DB)
}

// Redis is the report cache configuration.
type Redis struct {
	Host         string
	Port         int
	DB           int
	Password     string
	PoolSize     int
	MinIdleConns int
	TTL          time.Duration
}

// Addr returns the Redis address.
func (r Redis) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Kafka is the transaction event stream configuration. Empty Brokers disables publishing.
type Kafka struct {
	Brokers []string
	Topic   string
}

// SMTP is the notification mail configuration. Empty Host disables email.
type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
}

// JWT is the session token configuration.
type JWT struct {
	SecretKey string
	Exp       time.Duration
}

// Admin holds the master password and the bootstrap admin account.
type Admin struct {
	MasterPassword  string
	DefaultLogin    string
	DefaultPassword string
}

// Payments tunes the simulated processor and the flat-file ledger.
type Payments struct {
	Delay          time.Duration
	ApprovePercent int
	LedgerFile     string
}

// Load reads environment variables from the file at path (if it exists)
// and returns the configuration with defaults applied.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var (
		cfg Config
		err error
	)

	cfg.App = App{
		Host:     getEnv("APP_HOST", "localhost"),
		Port:     getEnv("APP_PORT", "8080"),
		GRPCPort: getEnv("APP_GRPC_PORT", "50051"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),
		LogFile:  getEnv("APP_LOG_FILE", ""),
	}

	cfg.Postgres = Postgres{
		Host:     getEnv("POSTGRES_HOST", "localhost"),
		User:     getEnv("POSTGRES_USER", "user"),
		Password: getEnv("POSTGRES_PASSWORD", "password"),
		DB:       getEnv("POSTGRES_DB", "payments"),
	}
	if cfg.Postgres.Port, err = getInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.Postgres.MaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.Postgres.MaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}

	cfg.Redis = Redis{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Password: getEnv("REDIS_PASSWORD", ""),
	}
	if cfg.Redis.Port, err = getInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.Redis.PoolSize, err = getInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.Redis.MinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}
	if cfg.Redis.TTL, err = getSeconds("REDIS_EXP_SECOND", 30); err != nil {
		return nil, err
	}

	cfg.Kafka = Kafka{
		Brokers: splitList(getEnv("KAFKA_BROKERS", "")),
		Topic:   getEnv("KAFKA_TOPIC", "payments.transactions"),
	}

	cfg.SMTP = SMTP{
		Host:     getEnv("SMTP_HOST", ""),
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "payments@localhost"),
		To:       splitList(getEnv("SMTP_TO", "")),
	}
	if cfg.SMTP.Port, err = getInt("SMTP_PORT", 587); err != nil {
		return nil, err
	}

	cfg.JWT = JWT{SecretKey: getEnv("JWT_SECRET_KEY", "")}
	if cfg.JWT.Exp, err = getSeconds("JWT_EXP_SECOND", 3600); err != nil {
		return nil, err
	}

	cfg.Admin = Admin{
		MasterPassword:  getEnv("ADMIN_MASTER_PASSWORD", ""),
		DefaultLogin:    getEnv("ADMIN_DEFAULT_LOGIN", ""),
		DefaultPassword: getEnv("ADMIN_DEFAULT_PASSWORD", ""),
	}

	cfg.Payments = Payments{LedgerFile: getEnv("PAYMENTS_LEDGER_FILE", "")}
	delayMS, err := getInt("PAYMENTS_DELAY_MS", 2000)
	if err != nil {
		return nil, err
	}
	cfg.Payments.Delay = time.Duration(delayMS) * time.Millisecond
	if cfg.Payments.ApprovePercent, err = getInt("PAYMENTS_APPROVE_PERCENT", 80); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Admin.MasterPassword == "" {
		return errors.New("ADMIN_MASTER_PASSWORD is required")
	}
	if c.JWT.SecretKey == "" {
		return errors.New("JWT_SECRET_KEY is required")
	}
	if (c.Admin.DefaultLogin == "") != (c.Admin.DefaultPassword == "") {
		return errors.New("ADMIN_DEFAULT_LOGIN and ADMIN_DEFAULT_PASSWORD must be set together")
	}
	if c.Payments.ApprovePercent < 0 || c.Payments.ApprovePercent > 100 {
		return fmt.Errorf("PAYMENTS_APPROVE_PERCENT must be within 0..100, got %d", c.Payments.ApprovePercent)
	}
	if c.Payments.Delay < 0 {
		return errors.New("PAYMENTS_DELAY_MS must not be negative")
	}
	if c.SMTP.Host != "" && len(c.SMTP.To) == 0 {
		return errors.New("SMTP_TO is required when SMTP_HOST is set")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getSeconds(key string, defaultValue int) (time.Duration, error) {
	v, err := getInt(key, defaultValue)
	if err != nil {
		return 0, err
	}
	return time.Duration(v) * time.Second, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
