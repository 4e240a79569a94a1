package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	SMS      SMSConfig
	Email    EmailConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	URL string
}

type JWTConfig struct {
	Secret          string
	ExpiryHours     int
	SessionDuration time.Duration
}

type SMSConfig struct {
	Provider string // fast2sms or mock
	APIKey   string
}

type EmailConfig struct {
	AWSRegion  string
	FromEmail  string
	FromName   string
	AppBaseURL string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads config.yaml plus .env overrides and returns the merged config
func Load() *Config {
	// .env is optional; real deployments set env vars directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config.yaml found, using defaults and environment")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("server.port"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("database.host"),
			Port:     viper.GetInt("database.port"),
			User:     viper.GetString("database.user"),
			Password: viper.GetString("database.password"),
			Name:     viper.GetString("database.name"),
			SSLMode:  viper.GetString("database.sslmode"),
		},
		Redis: RedisConfig{
			URL: viper.GetString("redis.url"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("jwt.secret"),
			ExpiryHours: viper.GetInt("jwt.expiry_hours"),
		},
		SMS: SMSConfig{
			Provider: viper.GetString("sms.provider"),
			APIKey:   viper.GetString("sms.api_key"),
		},
		Email: EmailConfig{
			AWSRegion:  viper.GetString("email.aws_region"),
			FromEmail:  viper.GetString("email.from_email"),
			FromName:   viper.GetString("email.from_name"),
			AppBaseURL: viper.GetString("email.app_base_url"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("cors.allowed_origins"),
		},
	}

	cfg.JWT.SessionDuration = time.Duration(cfg.JWT.ExpiryHours) * time.Hour

	return cfg
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "postgres")
	viper.SetDefault("database.name", "community")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("redis.url", "redis://localhost:6379/0")
	viper.SetDefault("jwt.secret", "dev-secret-change-me")
	viper.SetDefault("jwt.expiry_hours", 72)
	viper.SetDefault("sms.provider", "mock")
	viper.SetDefault("email.from_name", "Community Portal")
	viper.SetDefault("email.aws_region", "ap-south-1")
	viper.SetDefault("email.app_base_url", "http://localhost:8080")
	viper.SetDefault("cors.allowed_origins", []string{"*"})
}
