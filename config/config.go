package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Redis    Redis
	Engine   Engine
	Log      Log
}

type Server struct {
	Port string
	Mode string
}

// Database selects the gorm dialect. Path is only used by sqlite.
type Database struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Path     string
}

// Redis is optional. With an empty Addr sessions and content stay in process.
type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Engine struct {
	SessionTTL      time.Duration
	ContentCacheTTL time.Duration
	AttemptRetries  int
}

type Log struct {
	Level  string
	Pretty bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_MODE", "debug")
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_PATH", "englishhub.db")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SESSION_TTL", "2h")
	v.SetDefault("CONTENT_CACHE_TTL", "10m")
	v.SetDefault("ENGINE_ATTEMPT_RETRIES", 3)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	return load(v), nil
}

func load(v *viper.Viper) *Config {
	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.Mode = v.GetString("SERVER_MODE")

	config.Database.Driver = v.GetString("DATABASE_DRIVER")
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.Path = v.GetString("DATABASE_PATH")

	config.Redis.Addr = v.GetString("REDIS_ADDR")
	config.Redis.Password = v.GetString("REDIS_PASSWORD")
	config.Redis.DB = v.GetInt("REDIS_DB")

	config.Engine.SessionTTL = v.GetDuration("SESSION_TTL")
	config.Engine.ContentCacheTTL = v.GetDuration("CONTENT_CACHE_TTL")
	config.Engine.AttemptRetries = v.GetInt("ENGINE_ATTEMPT_RETRIES")
	if config.Engine.AttemptRetries < 1 {
		config.Engine.AttemptRetries = 1
	}

	config.Log.Level = v.GetString("LOG_LEVEL")
	config.Log.Pretty = v.GetBool("LOG_PRETTY")

	log.Info().
		Str("port", config.Server.Port).
		Str("db_driver", config.Database.Driver).
		Str("db_host", config.Database.Host).
		Bool("redis", config.Redis.Addr != "").
		Dur("session_ttl", config.Engine.SessionTTL).
		Msg("Config loaded")
	return &config
}
