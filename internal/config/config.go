// Package config loads the application configuration.
//
// Values come from RECRUITLY_ prefixed environment variables (a `.env`
// file is autoloaded when present), are unmarshalled into typed structs
// with koanf and validated with go-playground/validator so the process
// fails fast on missing settings.
//
// Nested keys are separated by a double underscore:
//
//	RECRUITLY_DATABASE__HOST        -> database.host
//	RECRUITLY_SERVER__READ_TIMEOUT  -> server.read_timeout
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of every environment variable read by LoadConfig.
const EnvPrefix = "RECRUITLY_"

// ServiceName labels logs and APM data.
const ServiceName = "recruitly"

type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration" validate:"required"`
	Email         EmailConfig          `koanf:"email" validate:"required"`
	Payment       PaymentConfig        `koanf:"payment"`
	Storage       StorageConfig        `koanf:"storage"`
	Reminders     RemindersConfig      `koanf:"reminders"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
	// RateLimit is the allowed requests per second per client IP; 0 disables it.
	RateLimit float64 `koanf:"rate_limit"`
	// MaxUploadSize is the multipart body limit in bytes.
	MaxUploadSize int64 `koanf:"max_upload_size"`
}

type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
	// PlanCacheTTL bounds how long the public plan list is cached.
	PlanCacheTTL time.Duration `koanf:"plan_cache_ttl"`
}

type AuthConfig struct {
	SecretKey string `koanf:"secret_key" validate:"required"`
	// JWTKey is the PEM public key for verifying session tokens without
	// a JWKS round trip. The PEM header and footer may be omitted.
	JWTKey string `koanf:"jwt_key"`
}

// IntegrationConfig holds third-party API keys.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key" validate:"required"`
}

// EmailConfig controls the sender identity of transactional emails.
type EmailConfig struct {
	FromName    string `koanf:"from_name" validate:"required"`
	FromAddress string `koanf:"from_address" validate:"required,email"`
	// AppURL is used to build links inside emails.
	AppURL string `koanf:"app_url" validate:"required,url"`
}

// PaymentConfig configures the subscription billing provider. Billing
// endpoints answer 503 while KeyID is empty.
type PaymentConfig struct {
	BaseURL       string        `koanf:"base_url"`
	KeyID         string        `koanf:"key_id"`
	KeySecret     string        `koanf:"key_secret"`
	WebhookSecret string        `koanf:"webhook_secret"`
	Timeout       time.Duration `koanf:"timeout"`
	// BillingCycles is the number of charges a subscription is created for.
	BillingCycles int `koanf:"billing_cycles"`
}

func (p PaymentConfig) Enabled() bool {
	return p.KeyID != "" && p.KeySecret != ""
}

// StorageConfig points at an S3 compatible bucket for uploaded files.
type StorageConfig struct {
	Endpoint  string `koanf:"endpoint"`
	Region    string `koanf:"region"`
	Bucket    string `koanf:"bucket"`
	AccessKey string `koanf:"access_key"`
	SecretKey string `koanf:"secret_key"`
	// PublicURL is the base URL objects are served from.
	PublicURL string `koanf:"public_url"`
}

func (s StorageConfig) Enabled() bool {
	return s.Bucket != "" && s.AccessKey != "" && s.SecretKey != ""
}

// RemindersConfig holds cron expressions (with a seconds field) for the
// scheduled jobs. An empty schedule disables that job.
type RemindersConfig struct {
	Enabled                 bool          `koanf:"enabled"`
	SubscriptionExpiry      string        `koanf:"subscription_expiry"`
	IncompleteProfile       string        `koanf:"incomplete_profile"`
	CloseExpiredJobs        string        `koanf:"close_expired_jobs"`
	ExpiryWindow            time.Duration `koanf:"expiry_window"`
	IncompleteProfileCutoff int           `koanf:"incomplete_profile_cutoff"`
}

// listKeys are read as comma separated lists.
var listKeys = map[string]bool{
	"server.cors_allowed_origins":        true,
	"observability.health_checks.checks": true,
}

func envValue(name, value string) (string, any) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(name, EnvPrefix)), "__", ".")
	if !listKeys[key] {
		return key, value
	}

	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}

// LoadConfig reads, validates and defaults the configuration.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	mainConfig.applyDefaults()

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary config.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

func (c *Config) applyDefaults() {
	if c.Server.MaxUploadSize <= 0 {
		c.Server.MaxUploadSize = 10 << 20
	}
	if c.Redis.PlanCacheTTL <= 0 {
		c.Redis.PlanCacheTTL = 10 * time.Minute
	}
	if c.Payment.Timeout <= 0 {
		c.Payment.Timeout = 15 * time.Second
	}
	if c.Payment.BillingCycles <= 0 {
		c.Payment.BillingCycles = 12
	}
	if c.Storage.Region == "" {
		c.Storage.Region = "us-east-1"
	}
	if c.Reminders.ExpiryWindow <= 0 {
		c.Reminders.ExpiryWindow = 72 * time.Hour
	}
	if c.Reminders.IncompleteProfileCutoff <= 0 {
		c.Reminders.IncompleteProfileCutoff = 100
	}
}

// IsLocal reports whether the service runs on a developer machine.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}
