package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every environment-derived setting the service needs to
// start: listen address, graph data sources, dispatcher concurrency, and
// output destination.
type Config struct {
	Env             string
	LogLevel        string
	Addr            string
	GracefulTimeout time.Duration

	FacilityFeedPath string
	RouteFeedPath    string
	ShipmentFeedPath string

	SinkKind        string // "log" or "jsonl"
	SinkPath        string
	DispatchWorkers int
}

// Load reads configuration from environment variables and an optional
// .env file, applying defaults for anything unset.
func Load() *Config {
	_ = godotenv.Load()

	gracefulSec := getEnvInt("MOIRAI_GRACEFUL_TIMEOUT_SEC", 15)

	cfg := &Config{
		Env:             getEnv("ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Addr:            getEnv("MOIRAI_ADDR", ":8080"),
		GracefulTimeout: time.Duration(gracefulSec) * time.Second,

		FacilityFeedPath: getEnv("MOIRAI_FACILITY_FEED", "facilities.jsonl"),
		RouteFeedPath:    getEnv("MOIRAI_ROUTE_FEED", "routes.jsonl"),
		ShipmentFeedPath: getEnv("MOIRAI_SHIPMENT_FEED", "shipments.jsonl"),

		SinkKind:        getEnv("MOIRAI_SINK_KIND", "jsonl"),
		SinkPath:        getEnv("MOIRAI_SINK_PATH", "results.jsonl"),
		DispatchWorkers: getEnvInt("MOIRAI_DISPATCH_WORKERS", 4),
	}
	return cfg
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
