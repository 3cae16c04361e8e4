package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends for disclaimer acknowledgements
const (
	StoreCookie   = "cookie"
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Config is the runtime configuration, read from the environment
type Config struct {
	Port                string        `mapstructure:"PORT"`
	Env                 string        `mapstructure:"ENV"`
	LogLevel            string        `mapstructure:"LOG_LEVEL"`
	ContentFile         string        `mapstructure:"CONTENT_FILE"`
	DisclaimerStore     string        `mapstructure:"DISCLAIMER_STORE"`
	RedisURL            string        `mapstructure:"REDIS_URL"`
	DatabaseURL         string        `mapstructure:"DATABASE_URL"`
	DisclaimerRetention time.Duration `mapstructure:"DISCLAIMER_RETENTION"`
	ConsultRule         string        `mapstructure:"CONSULT_RULE"`
	HomeTimezone        string        `mapstructure:"HOME_TIMEZONE"`
	WorkerInterval      time.Duration `mapstructure:"WORKER_INTERVAL"`
}

var defaults = map[string]interface{}{
	"PORT":                 "8080",
	"ENV":                  "development",
	"LOG_LEVEL":            "info",
	"CONTENT_FILE":         "",
	"DISCLAIMER_STORE":     StoreCookie,
	"REDIS_URL":            "",
	"DATABASE_URL":         "",
	"DISCLAIMER_RETENTION": "8760h",
	"CONSULT_RULE":         "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR;BYHOUR=10,15;BYMINUTE=0;BYSECOND=0",
	"HOME_TIMEZONE":        "Asia/Kolkata",
	"WORKER_INTERVAL":      "1h",
}

// Load reads .env files (if any) and then the process environment.
// It reports whether a .env file was found so the caller can log it.
func Load(files ...string) (*Config, bool, error) {
	foundEnv := godotenv.Load(files...) == nil

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
		// AutomaticEnv only resolves keys viper already knows about
		if err := v.BindEnv(key); err != nil {
			return nil, foundEnv, err
		}
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, foundEnv, fmt.Errorf("decode config: %w", err)
	}
	cfg.DisclaimerStore = strings.ToLower(strings.TrimSpace(cfg.DisclaimerStore))

	if err := cfg.Validate(); err != nil {
		return nil, foundEnv, err
	}
	return &cfg, foundEnv, nil
}

// Validate checks the store selection against the connection settings it needs
func (c *Config) Validate() error {
	switch c.DisclaimerStore {
	case StoreCookie, StoreMemory:
	case StoreRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("DISCLAIMER_STORE=redis requires REDIS_URL")
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DISCLAIMER_STORE=postgres requires DATABASE_URL")
		}
	default:
		return fmt.Errorf("unknown DISCLAIMER_STORE %q", c.DisclaimerStore)
	}
	if c.DisclaimerRetention <= 0 {
		return fmt.Errorf("DISCLAIMER_RETENTION must be positive")
	}
	if c.WorkerInterval <= 0 {
		return fmt.Errorf("WORKER_INTERVAL must be positive")
	}
	return nil
}

// IsProduction reports whether ENV is production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
