package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port               int      `mapstructure:"port"`
		CookieSecure       bool     `mapstructure:"cookie_secure"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
		CorsAllowedMethods []string `mapstructure:"cors_allowed_methods"`
		CorsAllowedHeaders []string `mapstructure:"cors_allowed_headers"`
	} `mapstructure:"server"`

	Session struct {
		Secret          string `mapstructure:"secret"`
		ExpirationHours int    `mapstructure:"expiration_hours"`
		Issuer          string `mapstructure:"issuer"`
		CookieName      string `mapstructure:"cookie_name"`
	} `mapstructure:"session"`

	// Admin is the fallback credential pair used until an account is created.
	Admin struct {
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
	} `mapstructure:"admin"`

	Store struct {
		Driver string `mapstructure:"driver"`

		Postgres struct {
			Host     string `mapstructure:"host"`
			Port     int    `mapstructure:"port"`
			User     string `mapstructure:"user"`
			Password string `mapstructure:"password"`
			Name     string `mapstructure:"name"`
			SSLMode  string `mapstructure:"sslmode"`
		} `mapstructure:"postgres"`

		Redis struct {
			Addr     string `mapstructure:"addr"`
			Password string `mapstructure:"password"`
			DB       int    `mapstructure:"db"`
			Prefix   string `mapstructure:"prefix"`
		} `mapstructure:"redis"`

		S3 struct {
			Bucket    string `mapstructure:"bucket"`
			Region    string `mapstructure:"region"`
			Endpoint  string `mapstructure:"endpoint"`
			AccessKey string `mapstructure:"access_key"`
			SecretKey string `mapstructure:"secret_key"`
			Prefix    string `mapstructure:"prefix"`
			PathStyle bool   `mapstructure:"path_style"`
		} `mapstructure:"s3"`

		Bolt struct {
			Path string `mapstructure:"path"`
		} `mapstructure:"bolt"`
	} `mapstructure:"store"`

	Cache struct {
		Enabled    bool   `mapstructure:"enabled"`
		Addr       string `mapstructure:"addr"`
		Password   string `mapstructure:"password"`
		DB         int    `mapstructure:"db"`
		TTLSeconds int    `mapstructure:"ttl_seconds"`
	} `mapstructure:"cache"`

	Logger struct {
		Mode       string `mapstructure:"mode"`
		Level      string `mapstructure:"level"`
		FileEnable bool   `mapstructure:"file_enable"`
		Filename   string `mapstructure:"filename"`
	} `mapstructure:"logger"`
}

// PostgresDSN builds the connection string for the postgres store driver.
func (c *Config) PostgresDSN() string {
	p := c.Store.Postgres
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.Name, p.SSLMode)
}

// setDefaults registers every key; viper only unmarshals env values for known keys.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cookie_secure", false)
	v.SetDefault("server.cors_allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.cors_allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("server.cors_allowed_headers", []string{"Content-Type"})

	v.SetDefault("session.secret", "capitaluy-secret-key-2024")
	v.SetDefault("session.expiration_hours", 24)
	v.SetDefault("session.issuer", "capitaluy")
	v.SetDefault("session.cookie_name", "admin_session")

	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "capitaluy2024")

	v.SetDefault("store.driver", "memory")
	v.SetDefault("store.postgres.host", "localhost")
	v.SetDefault("store.postgres.port", 5432)
	v.SetDefault("store.postgres.user", "postgres")
	v.SetDefault("store.postgres.password", "")
	v.SetDefault("store.postgres.name", "capitaluy")
	v.SetDefault("store.postgres.sslmode", "disable")
	v.SetDefault("store.redis.addr", "localhost:6379")
	v.SetDefault("store.redis.password", "")
	v.SetDefault("store.redis.db", 0)
	v.SetDefault("store.redis.prefix", "capitaluy:")
	v.SetDefault("store.s3.bucket", "")
	v.SetDefault("store.s3.region", "auto")
	v.SetDefault("store.s3.endpoint", "")
	v.SetDefault("store.s3.access_key", "")
	v.SetDefault("store.s3.secret_key", "")
	v.SetDefault("store.s3.prefix", "capitaluy/")
	v.SetDefault("store.s3.path_style", false)
	v.SetDefault("store.bolt.path", "data/capitaluy.db")

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.addr", "localhost:6379")
	v.SetDefault("cache.password", "")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.ttl_seconds", 300)

	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file_enable", false)
	v.SetDefault("logger.filename", "logs/capitaluy.log")
}

func Load() *Config {
	// Load .env file if exists (ignore error in production)
	godotenv.Load()

	cfg, err := LoadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("config unmarshal error: %v", err)
	}
	return cfg
}

// LoadFile reads the given YAML file (optional) and the environment.
// Nested keys map to upper-case variables, e.g. STORE_DRIVER or SESSION_SECRET.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		log.Printf("[Config] No config file found at %s, using defaults", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Legacy variable names used by the previous deployment
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		cfg.Session.Secret = secret
	}
	if user := os.Getenv("ADMIN_USERNAME"); user != "" {
		cfg.Admin.Username = user
	}
	if pass := os.Getenv("ADMIN_PASSWORD"); pass != "" {
		cfg.Admin.Password = pass
	}

	return &cfg, nil
}
