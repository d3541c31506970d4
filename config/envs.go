package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP     string // Host IP for the server
	RESTPort   int    // Port for the REST API
	MazeWidth  int    // Default maze width (columns), must be odd
	MazeHeight int    // Default maze height (rows), must be odd
	GinMode    string // Mode for the Gin framework (e.g., release, debug, test)
}

// Envs holds the application's configuration loaded from environment variables.
// It is empty until Load is called.
var Envs Config

// Load reads the environment and populates Envs. Called once at startup, so
// importing this package for its constants never touches the environment.
func Load() {
	Envs = initConfig()
}

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	// Populate the Config struct with required environment variables
	return Config{
		HostIP:     mustGetEnv("HOST_IP"),
		RESTPort:   mustGetEnvAsInt("REST_PORT"),
		MazeWidth:  getEnvAsIntWithDefault("MAZE_WIDTH", 21),
		MazeHeight: getEnvAsIntWithDefault("MAZE_HEIGHT", 21),
		GinMode:    getEnvWithDefault("GIN_MODE", "release"),
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer or returns a default value if not set.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
