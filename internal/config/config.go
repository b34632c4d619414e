// Package config 는 환경변수 기반 설정을 제공한다.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config 는 애플리케이션 전체 설정을 보관한다.
// 기동 시 환경변수에서 1회 읽고 이후에는 불변으로 취급한다.
type Config struct {
	// Database
	DatabaseURL string

	// Auth
	JWTSecret   string
	TokenExpire time.Duration

	// AI (Gemini)
	GeminiAPIKey string
	GeminiModel  string
	AITimeout    time.Duration

	// Enrichment
	EnrichQueueSize int
	EnrichWorkers   int

	// Rate Limit (req/min/user)
	RateLimitGeneral int

	// Server
	ServerPort string

	// CORS
	CORSAllowedOrigin string
}

// Load 는 환경변수에서 Config 를 읽는다.
// 필수 환경변수가 비어 있으면 한꺼번에 모아 에러로 보고한다.
// GEMINI_API_KEY 는 선택 사항이다. 비어 있으면 AI 시음 노트 생성이
// 비활성화되고 백그라운드 작업은 항상 FAILED 로 끝난다.
func Load() (*Config, error) {
	cfg := &Config{}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("필수 환경변수가 설정되지 않았습니다: %v", missing)
	}

	cfg.TokenExpire = getEnvDuration("TOKEN_EXPIRE", 12*time.Hour)
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.GeminiModel = getEnvString("GEMINI_MODEL", "gemini-2.5-flash")
	cfg.AITimeout = getEnvDuration("AI_TIMEOUT", 60*time.Second)
	cfg.EnrichQueueSize = getEnvInt("ENRICH_QUEUE_SIZE", 64)
	cfg.EnrichWorkers = getEnvInt("ENRICH_WORKERS", 2)
	cfg.RateLimitGeneral = getEnvInt("RATE_LIMIT_GENERAL", 120)
	cfg.ServerPort = getEnvString("SERVER_PORT", "8000")
	cfg.CORSAllowedOrigin = getEnvString("CORS_ALLOWED_ORIGIN", "http://localhost:5173")

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
