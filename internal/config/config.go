package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Realtime RealtimeConfig
	Chat     ChatConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JwtSecret string
}

type RealtimeConfig struct {
	LogFilePath   string
	SendBuffer    int
	DeliveryTopic string
	RedisChannel  string
}

type ChatConfig struct {
	MaxMessageLength int
	MatchCacheTTL    time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JwtSecret: getEnv("JWT_SECRET", ""),
		},
		Realtime: RealtimeConfig{
			LogFilePath:   getEnv("REALTIME_LOG_FILE_PATH", "logs/realtime.log"),
			SendBuffer:    getEnvAsInt("WS_SEND_BUFFER", 256),
			DeliveryTopic: getEnv("DELIVERY_TOPIC", "CHAT_DELIVERY"),
			RedisChannel:  getEnv("REDIS_RELAY_CHANNEL", "cluster_events"),
		},
		Chat: ChatConfig{
			MaxMessageLength: getEnvAsInt("MESSAGE_MAX_LENGTH", 2000),
			MatchCacheTTL:    getEnvAsDuration("MATCH_CACHE_TTL", 10*time.Minute),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
