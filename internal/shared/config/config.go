package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	ObjectStoreType string
	ResumeDir       string
	CoverLetterDir  string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string
	OpenAIAPIKey    string
	LLMModel        string
	DatabaseURL     string
	Env             string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience. The settings
	// page of the UI writes the OpenAI key into .env.
	_ = godotenv.Load(".env", "cmd/.env")

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		ObjectStoreType: normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		ResumeDir:       getEnv("RESUME_DIR", "./data/resumes"),
		CoverLetterDir:  getEnv("COVER_LETTER_DIR", "./data/cover_letters"),
		AWSRegion:       getEnv("AWS_REGION", ""),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Prefix:        getEnv("S3_PREFIX", ""),
		OpenAIAPIKey:    strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		LLMModel:        getEnv("LLM_MODEL", "gpt-3.5-turbo"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
