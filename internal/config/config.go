package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for both binaries.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
}

// AppConfig configures the app gateway and its remote API client.
type AppConfig struct {
	Address       string        `mapstructure:"address"`
	RemoteURL     string        `mapstructure:"remote_url"`
	RemoteTimeout time.Duration `mapstructure:"remote_timeout"`
	// Outbound requests per second to the remote API; 0 disables limiting.
	RemoteRateLimit float64       `mapstructure:"remote_rate_limit"`
	VideoCacheTTL   time.Duration `mapstructure:"video_cache_ttl"`
}

// ServerConfig configures the reference backend.
type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// Enabled reports whether a bucket is configured at all.
func (c S3Config) Enabled() bool {
	return c.BucketName != ""
}

// JWTConfig defines JWT specific configuration
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	JSON   bool   `mapstructure:"json"`
	File   string `mapstructure:"file"` // Rotated log file; empty logs to stdout only
	Stdout bool   `mapstructure:"stdout"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// --- Environment Variable Handling ---
	// app.remote_url -> APP_REMOTE_URL
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// --- Defaults ---
	v.SetDefault("app.address", ":8081")
	v.SetDefault("app.remote_url", "https://backend-2gls.onrender.com/")
	v.SetDefault("app.remote_timeout", "10s")
	v.SetDefault("app.remote_rate_limit", 0)
	v.SetDefault("app.video_cache_ttl", "5m")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "fittracker")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("jwt.expiration", "24h")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.stdout", true)
	// AutomaticEnv only applies to keys viper knows about.
	for _, key := range []string{
		"s3.endpoint", "s3.region", "s3.access_key_id", "s3.secret_access_key", "s3.bucket_name",
		"jwt.secret", "log.file",
	} {
		v.SetDefault(key, "")
	}
	v.SetDefault("log.json", false)

	// --- Read Config File ---
	// A missing file is fine; defaults and env vars are enough.
	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}
