package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Monitoring MonitoringConfig
	Strategy   StrategyConfig
}

type ServerConfig struct {
	Port            string
	Env             string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type CORSConfig struct {
	Origins []string
}

type MonitoringConfig struct {
	PrometheusEnabled bool
}

// StrategyConfig bounds accepted parameters and sizes the result memo.
type StrategyConfig struct {
	MemoSize int
	MinK     int
	MaxK     int
	MinP     float64
	MaxP     float64
	MinQ     float64
	MaxQ     float64
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] ignoring .env: %v", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Env:             getEnv("ENV", "development"),
			ReadTimeout:     getEnvDuration("READ_TIMEOUT", 5*time.Second),
			WriteTimeout:    getEnvDuration("WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		CORS: CORSConfig{
			Origins: splitList(getEnv("CORS_ORIGINS", "*")),
		},
		Monitoring: MonitoringConfig{
			PrometheusEnabled: getEnvBool("PROMETHEUS_ENABLED", true),
		},
		Strategy: StrategyConfig{
			MemoSize: getEnvInt("MEMO_SIZE", 256),
			MinK:     getEnvInt("K_MIN", 2),
			MaxK:     getEnvInt("K_MAX", 10),
			MinP:     getEnvFloat("P_MIN", 0.1),
			MaxP:     getEnvFloat("P_MAX", 10),
			MinQ:     getEnvFloat("Q_MIN", -10),
			MaxQ:     getEnvFloat("Q_MAX", 0),
		},
	}

	s := cfg.Strategy
	if s.MinK < 1 || s.MinK > s.MaxK {
		return nil, fmt.Errorf("invalid k range [%d, %d]", s.MinK, s.MaxK)
	}
	if s.MinP > s.MaxP {
		return nil, fmt.Errorf("invalid p range [%g, %g]", s.MinP, s.MaxP)
	}
	if s.MinQ > s.MaxQ {
		return nil, fmt.Errorf("invalid q range [%g, %g]", s.MinQ, s.MaxQ)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("[config] %s=%q is not an integer, using %d", key, value, fallback)
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("[config] %s=%q is not a number, using %g", key, value, fallback)
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
		log.Printf("[config] %s=%q is not a boolean, using %v", key, value, fallback)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("[config] %s=%q is not a duration, using %s", key, value, fallback)
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
