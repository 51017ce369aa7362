package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Postgres   Postgres   `yaml:"postgres"`
	JWT        JWT        `yaml:"jwt"`
	CORS       CORS       `yaml:"cors"`
	ES         ES         `yaml:"elasticsearch"`
	Minio      Minio      `yaml:"minio"`
	Seed       []SeedUser `yaml:"seed_users"`
}

type Minio struct {
	Enabled    bool          `yaml:"enabled" env:"MINIO_ENABLED"`
	Endpoint   string        `yaml:"endpoint" env:"MINIO_ENDPOINT" env-default:"minio:9000"`
	AccessKey  string        `yaml:"access_key" env:"MINIO_ACCESS_KEY"`
	SecretKey  string        `yaml:"secret_key" env:"MINIO_SECRET_KEY"`
	UseSSL     bool          `yaml:"use_ssl"`
	Bucket     string        `yaml:"bucket" env-default:"course-images"`
	PresignTTL time.Duration `yaml:"presign_ttl" env-default:"24h"`
}

type ES struct {
	Enabled  bool     `yaml:"enabled" env:"ES_ENABLED"`
	Hosts    []string `yaml:"hosts" env:"ES_HOSTS" env-separator:","`
	Index    string   `yaml:"index" env-default:"courses"`
	Username string   `yaml:"username" env:"ES_USERNAME"`
	Password string   `yaml:"password" env:"ES_PASSWORD"`
}

type JWT struct {
	SecretKey  string        `yaml:"secret_key" env:"JWT_SECRET" env-required:"true"`
	Issuer     string        `yaml:"issuer" env-default:"edu-platform"`
	AccessTTL  time.Duration `yaml:"access_token_ttl" env-default:"15m"`
	RefreshTTL time.Duration `yaml:"refresh_token_ttl" env-default:"720h"`
}

type Postgres struct {
	Host     string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"POSTGRES_USER"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD"`
	DBName   string `yaml:"dbname" env:"POSTGRES_DB"`
	SSLMode  string `yaml:"sslmode" env-default:"disable"`
	Migrate  bool   `yaml:"migrate" env-default:"true"`
}

type CORS struct {
	AllowOrigins []string      `yaml:"allow_origins" env:"CORS_ALLOW_ORIGINS" env-separator:","`
	MaxAge       time.Duration `yaml:"max_age" env-default:"12h"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8081"`
	Timeout     time.Duration `yaml:"timeout" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// SeedUser is created at startup when no user with the same email exists.
type SeedUser struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

func MustLoad() *Config {
	// .env is optional; variables already set in the environment win.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("Can not read config file: %s", err)
	}
	return cfg
}

func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); err != nil {
		return nil, err
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
