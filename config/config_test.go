package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	cfg := load(v)

	if cfg.Server.Port != "8080" || cfg.Database.Driver != "postgres" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Engine.SessionTTL != 2*time.Hour || cfg.Engine.ContentCacheTTL != 10*time.Minute {
		t.Fatalf("unexpected ttls: %+v", cfg.Engine)
	}
	if cfg.Engine.AttemptRetries != 3 {
		t.Fatalf("expected 3 retries, got %d", cfg.Engine.AttemptRetries)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("SESSION_TTL", "15m")
	t.Setenv("ENGINE_ATTEMPT_RETRIES", "0")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	cfg := load(v)

	if cfg.Database.Driver != "sqlite" || cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.Engine.SessionTTL != 15*time.Minute {
		t.Fatalf("expected 15m, got %s", cfg.Engine.SessionTTL)
	}
	if cfg.Engine.AttemptRetries != 1 {
		t.Fatalf("retries must be at least 1, got %d", cfg.Engine.AttemptRetries)
	}
}
