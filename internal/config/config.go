package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration.
type Config struct {
	Port              string
	DeviceListPath    string
	SlavePathTemplate string
	PushURL           string
	PushInterval      time.Duration
}

// LoadConfig loads the configuration from environment variables. The
// sysfs paths default to the ones the w1 kernel driver exposes.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system environment variables")
	}

	return &Config{
		Port:              getEnv("PORT", "80"),
		DeviceListPath:    getEnv("W1_DEVICE_LIST", "/sys/devices/w1_bus_master1/w1_master_slaves"),
		SlavePathTemplate: getEnv("W1_SLAVE_PATH", "/sys/bus/w1/devices/%s/w1_slave"),
		PushURL:           getEnv("PUSH_URL", ""),
		PushInterval:      getEnvDuration("PUSH_INTERVAL", time.Minute),
	}
}

// Get a string env variable.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Get a duration env variable.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration in %s, using default %s", key, defaultValue)
	}
	return defaultValue
}
