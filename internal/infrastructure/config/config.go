package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config groups every setting the console API reads at startup.
//
// Environment variables win over the optional .env / config.env files.
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	DB       DBConfig
	JWT      JWTConfig
	AWS      AWSConfig
	Audit    AuditConfig
	Payments PaymentsConfig
	Storage  StorageConfig
	Notify   NotifyConfig
}

type AppConfig struct {
	Env          string
	Name         string
	LogLevel     string
	ShopName     string
	// ConsoleURL is the web console base URL; password reset links point at it.
	ConsoleURL string
	// OverdueSweep is how often pending receivables past due are flagged.
	OverdueSweep time.Duration
}

func (c AppConfig) IsProduction() bool { return c.Env == "production" }

type HTTPConfig struct {
	Port               int
	CORSAllowedOrigins []string
	// AuthRateLimit uses ulule/limiter formatted rates, e.g. "20-M".
	AuthRateLimit      string
}

func (c HTTPConfig) Addr() string { return fmt.Sprintf(":%d", c.Port) }

// DBConfig points at the hosted Postgres backend. DatabaseURL wins when set.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	Name        string
	SSLMode     string
}

func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
	AuditLogTable    string
	ChargesTable     string
}

type AuditConfig struct {
	QueueSize    int
	MaxAttempts  int
	RetryBackoff time.Duration
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string
	Mock                   bool
}

type StorageConfig struct {
	Bucket          string
	CredentialsJSON string
	PublicBaseURL   string
}

type NotifyConfig struct {
	DefaultPhoneRegion string
	EmailFrom          string
}

const devJWTSecret = "dev-secret"

// Load reads configuration from the environment (and optional env files).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:          v.GetString("APP_ENV"),
			Name:         v.GetString("APP_NAME"),
			LogLevel:     v.GetString("LOG_LEVEL"),
			ShopName:     v.GetString("SHOP_NAME"),
			ConsoleURL:   strings.TrimRight(v.GetString("CONSOLE_URL"), "/"),
			OverdueSweep: time.Duration(v.GetInt("OVERDUE_SWEEP_MINUTES")) * time.Minute,
		},
		HTTP: HTTPConfig{
			Port:               v.GetInt("HTTP_PORT"),
			CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			AuthRateLimit:      v.GetString("AUTH_RATE_LIMIT"),
		},
		DB: DBConfig{
			DatabaseURL: v.GetString("DATABASE_URL"),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			Name:        v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("JWT_SECRET"),
			Expiration: time.Duration(v.GetInt("JWT_EXPIRATION_MINUTES")) * time.Minute,
			Issuer:     v.GetString("JWT_ISSUER"),
		},
		AWS: AWSConfig{
			Region:           v.GetString("AWS_REGION"),
			AccessKeyID:      v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:  v.GetString("AWS_SECRET_ACCESS_KEY"),
			DynamoDBEndpoint: v.GetString("DYNAMODB_ENDPOINT"),
			AuditLogTable:    v.GetString("AUDIT_LOG_TABLE"),
			ChargesTable:     v.GetString("PAYMENT_CHARGES_TABLE"),
		},
		Audit: AuditConfig{
			QueueSize:    v.GetInt("AUDIT_QUEUE_SIZE"),
			MaxAttempts:  v.GetInt("AUDIT_MAX_ATTEMPTS"),
			RetryBackoff: time.Duration(v.GetInt("AUDIT_RETRY_BACKOFF_MS")) * time.Millisecond,
		},
		Payments: PaymentsConfig{
			MercadoPagoAccessToken: v.GetString("MERCADOPAGO_ACCESS_TOKEN"),
			Mock:                   isTruthy(v.GetString("PAYMENT_GATEWAY_MOCK")) || isTruthy(v.GetString("MERCADOPAGO_MOCK")),
		},
		Storage: StorageConfig{
			Bucket:          v.GetString("GCS_BUCKET"),
			CredentialsJSON: v.GetString("GCS_CREDENTIALS_JSON"),
			PublicBaseURL:   v.GetString("GCS_PUBLIC_BASE_URL"),
		},
		Notify: NotifyConfig{
			DefaultPhoneRegion: v.GetString("DEFAULT_PHONE_REGION"),
			EmailFrom:          v.GetString("EMAIL_FROM"),
		},
	}

	if cfg.JWT.Secret == "" {
		if cfg.App.IsProduction() {
			return nil, fmt.Errorf("config: JWT_SECRET is required in production")
		}
		cfg.JWT.Secret = devJWTSecret
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "mecanica-gestao")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SHOP_NAME", "Oficina Mecânica")
	v.SetDefault("CONSOLE_URL", "http://localhost:5173")
	v.SetDefault("OVERDUE_SWEEP_MINUTES", 60)
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("AUTH_RATE_LIMIT", "20-M")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "postgres")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("JWT_EXPIRATION_MINUTES", 60)
	v.SetDefault("JWT_ISSUER", "mecanica-gestao")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("AUDIT_LOG_TABLE", "audit_logs")
	v.SetDefault("PAYMENT_CHARGES_TABLE", "payment_charges")
	v.SetDefault("AUDIT_QUEUE_SIZE", 256)
	v.SetDefault("AUDIT_MAX_ATTEMPTS", 3)
	v.SetDefault("AUDIT_RETRY_BACKOFF_MS", 200)
	v.SetDefault("GCS_PUBLIC_BASE_URL", "https://storage.googleapis.com")
	v.SetDefault("DEFAULT_PHONE_REGION", "BR")
	v.SetDefault("EMAIL_FROM", "oficina@mecanica.local")
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
