package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Env holds process-wide settings. It is loaded once at startup and passed by value.
type Env struct {
	ProjectName string
	Version     string
	APIPrefix   string

	AppAddr string
	GinMode string

	DatabaseURL string

	SecretKey         string
	Algorithm         string
	AccessTokenExpire time.Duration
	BcryptCost        int

	CORSOrigins []string

	LogLevel  string
	LogFormat string
}

// LoadEnv reads an optional .env file and then the process environment.
// Variables already present in the environment win over the file.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		ProjectName:       envOr("PROJECT_NAME", "GlobeTrotter API"),
		Version:           envOr("VERSION", "1.0.0"),
		APIPrefix:         strings.TrimRight(envOr("API_V1_STR", "/api/v1"), "/"),
		AppAddr:           envOr("APP_ADDR", ":8080"),
		GinMode:           strings.TrimSpace(os.Getenv("GIN_MODE")),
		DatabaseURL:       strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SecretKey:         strings.TrimSpace(os.Getenv("SECRET_KEY")),
		Algorithm:         envOr("ALGORITHM", "HS256"),
		AccessTokenExpire: time.Duration(envInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		BcryptCost:        envInt("BCRYPT_COST", 0),
		CORSOrigins:       splitList(os.Getenv("BACKEND_CORS_ORIGINS")),
		LogLevel:          envOr("LOG_LEVEL", "info"),
		LogFormat:         envOr("LOG_FORMAT", "console"),
	}
}

func envOr(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func splitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
