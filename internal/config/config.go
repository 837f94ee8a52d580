package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	AI       AIConfig
	Grammar  GrammarConfig
	Scoring  ScoringConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	LogJSON     bool
	LogDebug    bool
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
	PoolMinConns   int32
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

type AIConfig struct {
	GeminiAPIKey string
	GeminiModel  string
}

type GrammarConfig struct {
	// Base URL of a LanguageTool server, e.g. https://api.languagetool.org.
	BaseURL  string
	Language string
	Timeout  time.Duration
}

// ScoringConfig carries the aggregation weights for the scoring engine.
// The weights are load-time configuration; they are validated here and again
// at engine construction.
type ScoringConfig struct {
	SkillsWeight      float64
	ReadabilityWeight float64
	GrammarWeight     float64
}

const weightSumTolerance = 1e-6

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")

	// ErrWeightSum is returned when the scoring weights do not sum to 1.0.
	ErrWeightSum = errors.New("scoring weights must sum to 1.0")
)

func Load() (Config, error) {
	// Same behavior as the original deployment: a .env file is optional.
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "resume-insight"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    opt("HTTP_PORT", "8000"),
		LogJSON:     parseBool(opt("LOG_JSON", "false")),
		LogDebug:    parseBool(opt("LOG_DEBUG", "false")),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         req("DB_HOST"),
		DBPort:         opt("DB_PORT", "5432"),
		DBName:         req("DB_NAME"),
		DBUser:         req("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE", "disable"),
		ConnectTimeout: parseDuration(opt("DB_CONNECT_TIMEOUT", "5s"), 5*time.Second),
		PoolMaxConns:   int32(parseInt(opt("DB_POOL_MAX_CONNS", "0"), 0)),
		PoolMinConns:   int32(parseInt(opt("DB_POOL_MIN_CONNS", "0"), 0)),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  parseDuration(opt("JWT_ACCESS_EXPIRES_IN", "15m"), 15*time.Minute),
		RefreshExpiresIn: parseDuration(opt("JWT_REFRESH_EXPIRES_IN", "168h"), 168*time.Hour),
	}

	cfg.AI = AIConfig{
		GeminiAPIKey: req("GEMINI_API_KEY"),
		GeminiModel:  opt("GEMINI_MODEL", "gemini-2.5-flash"),
	}

	cfg.Grammar = GrammarConfig{
		BaseURL:  opt("LANGUAGETOOL_URL", "https://api.languagetool.org"),
		Language: opt("LANGUAGETOOL_LANGUAGE", "en-US"),
		Timeout:  parseDuration(opt("LANGUAGETOOL_TIMEOUT", "10s"), 10*time.Second),
	}

	cfg.Scoring = ScoringConfig{
		SkillsWeight:      parseFloat(opt("SCORING_SKILLS_WEIGHT", "0.4"), 0.4),
		ReadabilityWeight: parseFloat(opt("SCORING_READABILITY_WEIGHT", "0.3"), 0.3),
		GrammarWeight:     parseFloat(opt("SCORING_GRAMMAR_WEIGHT", "0.3"), 0.3),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	if err := cfg.Scoring.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects weight sets that do not sum to 1.0 within tolerance.
// This runs at load time so a bad configuration never reaches a scoring call.
func (s ScoringConfig) Validate() error {
	sum := s.SkillsWeight + s.ReadabilityWeight + s.GrammarWeight
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("%w: got %.4f", ErrWeightSum, sum)
	}
	if s.SkillsWeight < 0 || s.ReadabilityWeight < 0 || s.GrammarWeight < 0 {
		return fmt.Errorf("%w: negative weight", ErrWeightSum)
	}
	return nil
}

func parseBool(s string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return v
}

func parseInt(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return v
}

func parseFloat(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fallback
	}
	return v
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return v
}
