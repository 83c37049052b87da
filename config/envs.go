package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP         string        // Host IP for the server
	RESTPort       int           // Port for the REST API
	GinMode        string        // Mode for the Gin framework (e.g., release, debug, test)
	LogLevel       string        // Logrus level name
	MazeWidth      int           // Default maze width in cells
	MazeHeight     int           // Default maze height in cells
	VerticalOpen   float32       // Default probability that a vertical wall is open
	HorizontalOpen float32       // Default probability that a horizontal wall is open
	TickInterval   time.Duration // Delay between animation ticks
	MaxSessions    int           // Upper bound on concurrently held mazes
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		logrus.Infof("[APP] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:         getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:       getEnvAsInt("REST_PORT", 8080),
		GinMode:        getEnvWithDefault("GIN_MODE", "release"),
		LogLevel:       getEnvWithDefault("LOG_LEVEL", "info"),
		MazeWidth:      getEnvAsInt("MAZE_WIDTH", 64),
		MazeHeight:     getEnvAsInt("MAZE_HEIGHT", 64),
		VerticalOpen:   getEnvAsFloat("MAZE_V_OPEN", 0.4),
		HorizontalOpen: getEnvAsFloat("MAZE_H_OPEN", 0.7),
		TickInterval:   time.Duration(getEnvAsInt("TICK_INTERVAL_MS", 50)) * time.Millisecond,
		MaxSessions:    getEnvAsInt("MAX_SESSIONS", 64),
	}
}

// getEnvAsInt retrieves the value of an environment variable as an integer, or the default if not set.
// A value that cannot be parsed is fatal.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		logrus.Fatalf("[APP] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsFloat retrieves the value of an environment variable as a float, or the default if not set.
// A value that cannot be parsed is fatal.
func getEnvAsFloat(key string, defaultValue float32) float32 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 32)
	if err != nil {
		logrus.Fatalf("[APP] Environment variable %s must be a number: %v", key, err)
	}
	return float32(value)
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
