package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Settings is the process-wide configuration, loaded once at startup.
type Settings struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	CORSAllowOrigins []string

	RedisAddr       string
	KafkaBrokers    []string
	KafkaAuditTopic string

	Port string
}

// Load reads Settings from environment variables and fails fast when a
// required value is absent.
func Load() (*Settings, error) {
	s := &Settings{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
		Port:       getEnv("PORT", "3000"),
	}

	for name, val := range map[string]string{
		"DB_HOST":    s.DBHost,
		"DB_USER":    s.DBUser,
		"DB_NAME":    s.DBName,
		"JWT_SECRET": s.JWTSecret,
	} {
		if strings.TrimSpace(val) == "" {
			return nil, fmt.Errorf("missing required env var %s", name)
		}
	}

	accessTTL, err := intEnv("ACCESS_TOKEN_TTL_MINUTES", 30)
	if err != nil {
		return nil, err
	}
	refreshTTL, err := intEnv("REFRESH_TOKEN_TTL_MINUTES", 60*24*30)
	if err != nil {
		return nil, err
	}
	s.AccessTokenTTL = time.Duration(accessTTL) * time.Minute
	s.RefreshTokenTTL = time.Duration(refreshTTL) * time.Minute

	s.CORSAllowOrigins = splitEnv("CORS_ALLOW_ORIGINS", "*")
	s.KafkaBrokers = splitEnv("KAFKA_BROKERS", "localhost:9092")
	s.KafkaAuditTopic = getEnv("KAFKA_AUDIT_TOPIC", "hrms.audit")

	return s, nil
}

func getEnv(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}

func intEnv(name string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid int env var %s=%q", name, raw)
	}
	return v, nil
}

func splitEnv(name, fallback string) []string {
	raw := getEnv(name, fallback)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
