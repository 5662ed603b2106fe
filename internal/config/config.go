// Package config builds the process configuration once at startup from the
// environment (and an optional .env file).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	TransportSMTP  = "smtp"
	TransportRedis = "redis"
)

type Config struct {
	LogLevel string
	Server   ServerConfig
	Database DatabaseConfig
	Notify   NotifyConfig
	Mail     MailConfig
	Captcha  CaptchaConfig
	Reviews  ReviewsConfig
}

type ServerConfig struct {
	Addr       string
	StaticDir  string
	CORSOrigin string
}

type DatabaseConfig struct {
	URL string
}

type NotifyConfig struct {
	Transport     string
	RedisAddr     string
	RedisPassword string
	RedisKey      string
}

type MailConfig struct {
	Server        string
	Port          int
	UseTLS        bool
	Username      string
	Password      string
	DefaultSender string
	Recipient     string
}

type CaptchaConfig struct {
	SiteKey   string
	SecretKey string
	VerifyURL string
}

type ReviewsConfig struct {
	APIKey  string
	PlaceID string
	BaseURL string
}

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	mailPort := 587
	if p := get("MAIL_PORT", ""); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("config: MAIL_PORT must be a positive integer, got %q", p)
		}
		mailPort = n
	}

	cfg := &Config{
		LogLevel: get("LOG_LEVEL", "INFO"),
		Server: ServerConfig{
			Addr:       ":" + get("PORT", "5000"),
			StaticDir:  get("STATIC_DIR", "static"),
			CORSOrigin: get("CORS_ALLOWED_ORIGIN", "*"),
		},
		Database: DatabaseConfig{
			URL: get("DATABASE_URL", "sqlite://contacts.db"),
		},
		Notify: NotifyConfig{
			Transport:     strings.ToLower(get("NOTIFY_TRANSPORT", TransportSMTP)),
			RedisAddr:     get("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getenv("REDIS_PASSWORD"),
			RedisKey:      get("NOTIFY_QUEUE", "contact:notifications"),
		},
		Mail: MailConfig{
			Server:        get("MAIL_SERVER", ""),
			Port:          mailPort,
			UseTLS:        parseBool(get("MAIL_USE_TLS", "")),
			Username:      get("MAIL_USERNAME", ""),
			Password:      getenv("MAIL_PASSWORD"),
			DefaultSender: get("MAIL_DEFAULT_SENDER", ""),
			Recipient:     get("MAIL_RECIPIENT", ""),
		},
		Captcha: CaptchaConfig{
			SiteKey:   get("RECAPTCHA_SITE_KEY", ""),
			SecretKey: get("RECAPTCHA_SECRET_KEY", ""),
			VerifyURL: get("RECAPTCHA_VERIFY_URL", ""),
		},
		Reviews: ReviewsConfig{
			APIKey:  get("GOOGLE_API_KEY", ""),
			PlaceID: get("PLACE_ID", ""),
			BaseURL: get("PLACES_BASE_URL", ""),
		},
	}
	if cfg.Mail.Recipient == "" {
		cfg.Mail.Recipient = cfg.Mail.Username
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks option combinations that cannot be caught per variable.
func (c *Config) Validate() error {
	switch c.Notify.Transport {
	case TransportSMTP, TransportRedis:
	default:
		return fmt.Errorf("config: unknown NOTIFY_TRANSPORT %q", c.Notify.Transport)
	}
	return nil
}

// ReviewsConfigured reports whether GET /reviews can call upstream.
func (c *Config) ReviewsConfigured() bool {
	return c.Reviews.APIKey != "" && c.Reviews.PlaceID != ""
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
