// Package config loads server settings from the environment, with an
// optional .env file for local development.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the server's runtime settings.
type Config struct {
	HostIP          string  // Bind address for the HTTP server
	RESTPort        int     // Port for the REST API
	GinMode         string  // Gin mode: release, debug, or test
	DefaultRows     int     // Grid rows when a request omits them
	DefaultCols     int     // Grid cols when a request omits them
	DefaultPercent  float64 // Obstacle fraction when a request omits it
	DefaultMaxPaths int     // Multi-path cap when a request omits it
}

// Load reads configuration from the environment. A missing .env file is
// fine; every variable has a default so the server runs out of the box.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:          getEnv("HOST_IP", "0.0.0.0"),
		RESTPort:        getEnvAsInt("REST_PORT", 8080),
		GinMode:         getEnv("GIN_MODE", "release"),
		DefaultRows:     getEnvAsInt("GRID_ROWS", 12),
		DefaultCols:     getEnvAsInt("GRID_COLS", 12),
		DefaultPercent:  getEnvAsFloat("OBSTACLE_PERCENT", 0.15),
		DefaultMaxPaths: getEnvAsInt("MAX_PATHS", 1000),
	}
}

// getEnv retrieves an environment variable or returns the default.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return fallback
}

// getEnvAsInt retrieves an integer variable; a value that does not parse
// is fatal because the server cannot guess what was meant.
func getEnvAsInt(key string, fallback int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}

	return value
}

// getEnvAsFloat retrieves a float variable with the same parse policy.
func getEnvAsFloat(key string, fallback float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a number: %v", key, err)
	}

	return value
}
