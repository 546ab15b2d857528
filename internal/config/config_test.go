package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	req := require.New(t)
	cfg := Load()

	req.Equal("8000", cfg.Server.Port)
	req.Equal("taxi_translator", cfg.Database.DBName)
	req.Equal("https://lingva.ml", cfg.Translator.PrimaryURL)
	req.Len(cfg.Translator.FallbackEndpoints, 3)
	req.Equal("https://libretranslate.de/translate", cfg.Translator.FallbackEndpoints[0])
	req.Equal(10*time.Second, cfg.Translator.AttemptTimeout)
	req.Equal(24*time.Hour, cfg.Auth.TokenTTL)
	req.False(cfg.AudioArchiveEnabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	req := require.New(t)

	t.Setenv("SERVER_PORT", "9001")
	t.Setenv("LIBRETRANSLATE_ENDPOINTS", "https://one.example/translate, https://two.example/translate")
	t.Setenv("TRANSLATE_ATTEMPT_TIMEOUT", "3s")
	t.Setenv("AWS_ENDPOINT", "minio.local:9000")

	cfg := Load()
	req.Equal("9001", cfg.Server.Port)
	req.Equal([]string{
		"https://one.example/translate",
		"https://two.example/translate",
	}, cfg.Translator.FallbackEndpoints)
	req.Equal(3*time.Second, cfg.Translator.AttemptTimeout)
	req.True(cfg.AudioArchiveEnabled())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	req := require.New(t)

	t.Setenv("DB_MAX_OPEN_CONNS", "lots")
	t.Setenv("TRANSLATE_ATTEMPT_TIMEOUT", "soon")
	t.Setenv("AWS_USE_SSL", "sure")

	cfg := Load()
	req.Equal(25, cfg.Database.MaxOpenConns)
	req.Equal(10*time.Second, cfg.Translator.AttemptTimeout)
	req.True(cfg.MinIO.UseSSL)
}

func TestValidate(t *testing.T) {
	req := require.New(t)

	cfg := Load()
	cfg.Auth.JWTSecret = "secret"
	req.NoError(cfg.Validate())

	cfg.Auth.JWTSecret = ""
	req.Error(cfg.Validate())

	cfg.Auth.JWTSecret = "secret"
	cfg.MinIO.Endpoint = "minio.local:9000"
	cfg.MinIO.AccessKeyID = ""
	req.Error(cfg.Validate())
}
