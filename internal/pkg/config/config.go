package config

import (
	"errors"
	"fmt"

	cenv "github.com/caarlos0/env/v6"

	"github.com/foxalbum/foxalbum/internal/pkg/env"
)

const (
	StorageDriverS3     = "s3"
	StorageDriverMinio  = "minio"
	StorageDriverMemory = "memory"
)

type AppConfig struct {
	Env       string `env:"APP_ENV" envDefault:"prod"`
	Host      string `env:"APP_HOST" envDefault:"localhost"`
	Port      string `env:"APP_PORT" envDefault:"4000"`
	BodyLimit int    `env:"APP_BODY_LIMIT" envDefault:"104857600"` // 100 MiB
}

func (c AppConfig) IsDev() bool {
	return c.Env == "dev"
}

func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type DatabaseConfig struct {
	User     string `env:"DB_USER" envDefault:"foxalbum"`
	Password string `env:"DB_PASSWORD" envDefault:"foxalbum"`
	Host     string `env:"DB_HOST" envDefault:"127.0.0.1"`
	Port     string `env:"DB_PORT" envDefault:"3306"`
	Name     string `env:"DB_NAME" envDefault:"foxalbum_db"`
}

// DSN returns the go-sql-driver/mysql data source name used by gorm.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

// MigrateURL returns the golang-migrate database URL.
func (c DatabaseConfig) MigrateURL() string {
	return fmt.Sprintf("mysql://%s:%s@tcp(%s:%s)/%s?multiStatements=true",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

type CacheConfig struct {
	Host     string `env:"CACHE_HOST" envDefault:"localhost"`
	Port     int    `env:"CACHE_PORT" envDefault:"6379"`
	Password string `env:"CACHE_PASSWORD"`
}

type S3Config struct {
	AccessKeyID     string `env:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY"`
	Region          string `env:"S3_REGION" envDefault:"us-east-1"`
	BucketName      string `env:"S3_BUCKET_NAME"`
	EndpointURL     string `env:"S3_ENDPOINT_URL"` // Optional for S3-compatible services
}

type MinioConfig struct {
	Endpoint        string `env:"MINIO_ENDPOINT"`
	AccessKeyID     string `env:"MINIO_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"MINIO_SECRET_ACCESS_KEY"`
	BucketName      string `env:"MINIO_BUCKET_NAME"`
	UseSSL          bool   `env:"MINIO_USE_SSL" envDefault:"false"`
}

type StorageConfig struct {
	Driver string `env:"STORAGE_DRIVER" envDefault:"s3"`
	S3     S3Config
	Minio  MinioConfig
}

type MetricsConfig struct {
	User     string `env:"METRICS_USER" envDefault:"admin"`
	Password string `env:"METRICS_PASSWORD"`
}

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Storage  StorageConfig
	Metrics  MetricsConfig
	// ImageOwnerOnly restricts blob serving to the image owner. Off by default:
	// any logged-in user may fetch any key.
	ImageOwnerOnly bool `env:"IMAGE_OWNER_ONLY" envDefault:"false"`
}

// Load reads the optional .env file and parses the environment.
func Load() (*Config, error) {
	env.SetupEnvFile()
	return Parse()
}

// Parse builds a Config from the current process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := cenv.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDatabase reads only the database section, for tools that never touch
// the object store.
func LoadDatabase() (DatabaseConfig, error) {
	env.SetupEnvFile()

	cfg := DatabaseConfig{}
	if err := cenv.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverS3:
		if c.Storage.S3.AccessKeyID == "" {
			return errors.New("S3_ACCESS_KEY_ID is required for the s3 storage driver")
		}
		if c.Storage.S3.SecretAccessKey == "" {
			return errors.New("S3_SECRET_ACCESS_KEY is required for the s3 storage driver")
		}
		if c.Storage.S3.BucketName == "" {
			return errors.New("S3_BUCKET_NAME is required for the s3 storage driver")
		}
	case StorageDriverMinio:
		if c.Storage.Minio.Endpoint == "" {
			return errors.New("MINIO_ENDPOINT is required for the minio storage driver")
		}
		if c.Storage.Minio.BucketName == "" {
			return errors.New("MINIO_BUCKET_NAME is required for the minio storage driver")
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	return nil
}
