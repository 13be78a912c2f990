package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
//
//nolint:govet // Field alignment optimization would reduce readability
type Config struct {
	Server        ServerConfig
	Contact       ContactConfig
	RateLimit     RateLimitConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AppEnv         string
	BaseURL        string
	AllowedOrigins []string
	// TrustProxyHeaders controls whether X-Forwarded-For / X-Real-IP are
	// believed when deriving a client identity. Only enable behind a proxy
	// that strips client-supplied values.
	TrustProxyHeaders bool
}

// ContactConfig configures the contact-form email pipeline. APIKey and
// ToAddress are deliberately not validated at startup: their absence is a
// per-request "service unavailable" condition, not a boot failure, so the
// site keeps serving pages while the mailbox is being set up.
type ContactConfig struct {
	APIKey      string // Resend API key
	ToAddress   string // destination mailbox for form submissions
	FromAddress string // fixed sender identity
}

type RateLimitConfig struct {
	ContactLimit  int           // submissions per window per client
	ContactWindow time.Duration // fixed window length
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type ObservabilityConfig struct {
	ExporterEndpoint  string
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
}

type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("BASE_URL", "https://ldbiro.rs")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "https://ldbiro.rs,https://www.ldbiro.rs")
	v.SetDefault("TRUST_PROXY_HEADERS", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "/app/logs")
	v.SetDefault("CONTACT_FROM_ADDRESS", "LD Biro Kontakt <kontakt@resend.dev>")
	v.SetDefault("CONTACT_RATE_LIMIT", 3)
	v.SetDefault("CONTACT_RATE_WINDOW_SECONDS", 60)
	v.SetDefault("O11Y_EXPORTER_ENDPOINT", "") // OTLP over HTTP; empty disables tracing
	v.SetDefault("O11Y_SERVICE_NAME", "ldbiro-web")
	v.SetDefault("O11Y_SERVICE_NAMESPACE", "ldbiro")
	v.SetDefault("O11Y_SERVICE_VERSION", "1.0.0")
	v.SetDefault("O11Y_PROFILING_ENABLED", false)
	v.SetDefault("O11Y_PROFILING_APP_NAME", "ldbiro-web")
	v.SetDefault("O11Y_PROFILING_SAMPLE_TYPES", "cpu,alloc_space,alloc_objects,goroutines,mutex,block")
	v.SetDefault("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS", 15)

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	// Parse allowed CORS origins (comma-separated)
	allowedOrigins := []string{}
	originsStr := v.GetString("ALLOWED_CORS_ORIGINS")
	if originsStr != "" {
		for _, origin := range strings.Split(originsStr, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins = append(allowedOrigins, origin)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:              v.GetString("PORT"),
			GinMode:           v.GetString("GIN_MODE"),
			AppEnv:            v.GetString("APP_ENV"),
			BaseURL:           strings.TrimRight(v.GetString("BASE_URL"), "/"),
			AllowedOrigins:    allowedOrigins,
			TrustProxyHeaders: v.GetBool("TRUST_PROXY_HEADERS"),
		},
		Contact: ContactConfig{
			APIKey:      v.GetString("RESEND_API_KEY"),
			ToAddress:   v.GetString("CONTACT_EMAIL"),
			FromAddress: v.GetString("CONTACT_FROM_ADDRESS"),
		},
		RateLimit: RateLimitConfig{
			ContactLimit:  v.GetInt("CONTACT_RATE_LIMIT"),
			ContactWindow: time.Duration(v.GetInt("CONTACT_RATE_WINDOW_SECONDS")) * time.Second,
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			ExporterEndpoint:  v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:       v.GetString("O11Y_SERVICE_NAME"),
			ServiceNamespace:  v.GetString("O11Y_SERVICE_NAMESPACE"),
			ServiceVersion:    v.GetString("O11Y_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("SERVICE_INSTANCE_ID"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("O11Y_PROFILING_ENABLED"),
			Endpoint:              v.GetString("O11Y_PROFILING_ENDPOINT"),
			AppName:               v.GetString("O11Y_PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("O11Y_PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Server.BaseURL == "" {
		return fmt.Errorf("BASE_URL is required")
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_CORS_ORIGINS is required")
	}
	if c.Contact.FromAddress == "" {
		return fmt.Errorf("CONTACT_FROM_ADDRESS is required")
	}
	if c.RateLimit.ContactLimit <= 0 {
		return fmt.Errorf("CONTACT_RATE_LIMIT must be positive")
	}
	if c.RateLimit.ContactWindow <= 0 {
		return fmt.Errorf("CONTACT_RATE_WINDOW_SECONDS must be positive")
	}
	if c.Profiling.Enabled && c.Profiling.Endpoint == "" {
		return fmt.Errorf("O11Y_PROFILING_ENDPOINT is required when profiling is enabled")
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}

// ContactConfigured reports whether the email pipeline has everything it
// needs to dispatch. Checked per submission, not at startup.
func (c *Config) ContactConfigured() bool {
	return c.Contact.APIKey != "" && c.Contact.ToAddress != ""
}
