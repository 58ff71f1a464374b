package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      Env
	Server   ServerConfig
	Database DatabaseConfig
	Media    MediaConfig
	Auth     AuthConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Upload   UploadConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

// MediaConfig configures the object store holding video and thumbnail assets.
// Credentials live here and are injected once at startup, never read from the
// environment inside business logic.
type MediaConfig struct {
	Endpoint   string `envconfig:"MEDIA_ENDPOINT" required:"true"`
	BucketName string `envconfig:"MEDIA_BUCKET_NAME" required:"true"`
	AccessKey  string `envconfig:"MEDIA_ACCESS_KEY" required:"true"`
	SecretKey  string `envconfig:"MEDIA_SECRET_KEY" required:"true"`
	UseSSL     bool   `envconfig:"MEDIA_USE_SSL" default:"false"`
}

type AuthConfig struct {
	AccessTokenSecret  string        `envconfig:"AUTH_ACCESS_TOKEN_SECRET" required:"true"`
	RefreshTokenSecret string        `envconfig:"AUTH_REFRESH_TOKEN_SECRET" required:"true"`
	AccessTokenTTL     time.Duration `envconfig:"AUTH_ACCESS_TOKEN_TTL" default:"15m"`
	RefreshTokenTTL    time.Duration `envconfig:"AUTH_REFRESH_TOKEN_TTL" default:"168h"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" required:"true"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type NATSConfig struct {
	URL        string `envconfig:"NATS_URL" required:"true"`
	StreamName string `envconfig:"NATS_STREAM_NAME" default:"VIDEOS"`
	Subject    string `envconfig:"NATS_SUBJECT" default:"videos.lifecycle"`
}

type UploadConfig struct {
	StagingDir       string        `envconfig:"UPLOAD_STAGING_DIR" default:"/tmp/focustube-staging"`
	MaxVideoSize     int64         `envconfig:"UPLOAD_MAX_VIDEO_SIZE" default:"1073741824"` // 1GB
	MaxThumbnailSize int64         `envconfig:"UPLOAD_MAX_THUMBNAIL_SIZE" default:"5242880"` // 5MB
	StagingTTL       time.Duration `envconfig:"UPLOAD_STAGING_TTL" default:"1h"`
	CleanupEvery     time.Duration `envconfig:"UPLOAD_CLEANUP_EVERY" default:"15m"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
