package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8000"`
}

// Driver is one of postgres, firestore or memory.
type Store struct {
	Driver string `yaml:"driver" env:"STORE_DRIVER" env-default:"postgres"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME" env-default:"bar_price_tracker"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"PG_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"PG_MAX_IDLE_CONNS" env-default:"25"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"PG_CONN_MAX_LIFETIME" env-default:"5m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"PG_CONN_MAX_IDLE_TIME" env-default:"1m"`
	QueryTimeout    time.Duration `yaml:"QUERY_TIMEOUT" env:"PG_QUERY_TIMEOUT" env-default:"5s"`
}

type Firestore struct {
	ProjectID       string `yaml:"FIREBASE_PROJECT_ID" env:"FIREBASE_PROJECT_ID"`
	CredentialsFile string `yaml:"FIREBASE_CREDENTIALS_FILE" env:"FIREBASE_CREDENTIALS_FILE"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"WINDOW_SIZE" env-default:"15s"`
}

type Security struct {
	JWTKey         string `yaml:"JWT_KEY" env:"JWT_KEY" env-required:"true"`
	JWTExpiryHours int    `yaml:"JWT_EXPIRY_HOURS" env:"JWT_EXPIRY_HOURS" env-default:"24"`
}

type Scraper struct {
	Timeout      time.Duration `yaml:"timeout" env:"SCRAPER_TIMEOUT" env-default:"10s"`
	UserAgent    string        `yaml:"user_agent" env:"SCRAPER_USER_AGENT" env-default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"`
	Workers      int           `yaml:"workers" env:"SCRAPER_WORKERS" env-default:"4"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" env:"SCRAPER_MAX_BODY_BYTES" env-default:"5242880"`
	CacheTTL     time.Duration `yaml:"cache_ttl" env:"SCRAPER_CACHE_TTL" env-default:"15m"`
}

type Scheduler struct {
	Enabled  bool          `yaml:"enabled" env:"SCHEDULER_ENABLED" env-default:"false"`
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"6h"`
}

type OtelConfig struct {
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"bar-price-tracker"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"5m"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	Store        Store        `yaml:"store"`
	Database     Database     `yaml:"database"`
	Firestore    Firestore    `yaml:"firestore"`
	RedisConnect RedisConnect `yaml:"redis"`
	RateConfig   RateConfig   `yaml:"rateConfig"`
	Security     Security     `yaml:"security"`
	Scraper      Scraper      `yaml:"scraper"`
	Scheduler    Scheduler    `yaml:"scheduler"`
	Otel         OtelConfig   `yaml:"otel"`
	Cache        CacheConfig  `yaml:"cache"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			configPath = "./config/local.yaml"
		}

	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return cfg

}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case "postgres":
		if c.Database.User == "" || c.Database.Password == "" {
			return fmt.Errorf("database credentials are required for the postgres store")
		}
	case "firestore":
		if c.Firestore.ProjectID == "" {
			return fmt.Errorf("firestore project id is required for the firestore store")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}

	if c.Scraper.Workers < 1 {
		return fmt.Errorf("scraper workers must be at least 1, got %d", c.Scraper.Workers)
	}

	if c.Scraper.Timeout <= 0 {
		return fmt.Errorf("scraper timeout must be positive, got %s", c.Scraper.Timeout)
	}

	return nil
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s", r.Username, r.Password, r.Host, r.Port)
}
