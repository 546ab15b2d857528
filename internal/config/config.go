package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Translator TranslatorConfig
	Speech     SpeechConfig
	MinIO      MinIOConfig
	Auth       AuthConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
}

type TranslatorConfig struct {
	// PrimaryURL is the base URL of the primary translation service
	// (Lingva-compatible API).
	PrimaryURL string
	// FallbackEndpoints is the ordered list of LibreTranslate instances tried
	// when the primary service fails.
	FallbackEndpoints []string
	// AttemptTimeout bounds each individual endpoint attempt.
	AttemptTimeout time.Duration
}

type SpeechConfig struct {
	RecognizerURL string
	HTTPTimeout   time.Duration
}

type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	UseSSL          bool
}

type AuthConfig struct {
	JWTSecret     string
	TokenTTL      time.Duration
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("SERVER_PORT", "8000"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnvOrDefault("DB_HOST", "localhost"),
			Port:            getEnvOrDefault("DB_PORT", "5432"),
			User:            getEnvOrDefault("DB_USER", "postgres"),
			Password:        getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:          getEnvOrDefault("DB_NAME", "taxi_translator"),
			SSLMode:         getEnvOrDefault("DB_SSLMODE", "disable"),
			MaxOpenConns:    getIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getIntOrDefault("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationOrDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			QueryTimeout:    getDurationOrDefault("DB_QUERY_TIMEOUT", 10*time.Second),
		},
		Translator: TranslatorConfig{
			PrimaryURL: getEnvOrDefault("TRANSLATE_PRIMARY_URL", "https://lingva.ml"),
			FallbackEndpoints: getSliceOrDefault("LIBRETRANSLATE_ENDPOINTS", []string{
				"https://libretranslate.de/translate",
				"https://translate.argosopentech.com/translate",
				"https://libretranslate.p.rapidapi.com/translate",
			}),
			AttemptTimeout: getDurationOrDefault("TRANSLATE_ATTEMPT_TIMEOUT", 10*time.Second),
		},
		Speech: SpeechConfig{
			RecognizerURL: getEnvOrDefault("SPEECH_RECOGNIZER_URL", "http://localhost:9010/recognize"),
			HTTPTimeout:   getDurationOrDefault("SPEECH_HTTP_TIMEOUT", 30*time.Second),
		},
		MinIO: MinIOConfig{
			Endpoint:        getEnvOrDefault("AWS_ENDPOINT", ""),
			AccessKeyID:     getEnvOrDefault("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnvOrDefault("AWS_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnvOrDefault("AWS_BUCKET", "speech-clips"),
			Region:          getEnvOrDefault("AWS_DEFAULT_REGION", "us-east-1"),
			UseSSL:          getBoolOrDefault("AWS_USE_SSL", true),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnvOrDefault("JWT_SECRET", ""),
			TokenTTL:      getDurationOrDefault("JWT_TOKEN_TTL", 24*time.Hour),
			AdminUsername: getEnvOrDefault("ADMIN_USERNAME", ""),
			AdminEmail:    getEnvOrDefault("ADMIN_EMAIL", ""),
			AdminPassword: getEnvOrDefault("ADMIN_PASSWORD", ""),
		},
	}
}

func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required for admin endpoints")
	}
	if c.MinIO.Endpoint != "" && c.MinIO.AccessKeyID == "" {
		return fmt.Errorf("AWS_ACCESS_KEY_ID is required when AWS_ENDPOINT is set")
	}
	return nil
}

// AudioArchiveEnabled reports whether an object store is configured for
// archiving speech uploads.
func (c *Config) AudioArchiveEnabled() bool {
	return c.MinIO.Endpoint != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getSliceOrDefault(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
