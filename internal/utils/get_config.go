package utils

import (
	"gopkg.in/yaml.v2"
	"log"
	"os"
)

const DefaultConfigPath = "config.yaml"

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`
	DBTimeZone string `yaml:"DB_TIMEZONE"`

	// HTTP server
	AppPort      string `yaml:"APP_PORT"`
	CORSOrigins  string `yaml:"CORS_ORIGINS"`
	RateLimitMax string `yaml:"RATE_LIMIT_MAX"`
	LogFile      string `yaml:"LOG_FILE"`
}

var config Config

var defaults = map[string]string{
	"DB_PORT":        "5432",
	"DB_SSLMODE":     "disable",
	"DB_TIMEZONE":    "UTC",
	"APP_PORT":       "8080",
	"CORS_ORIGINS":   "*",
	"RATE_LIMIT_MAX": "10",
	"LOG_FILE":       "./logs/app.log",
}

func LoadConfig() {
	LoadConfigFile(DefaultConfigPath)
}

// LoadConfigFile reads the YAML file at path. A missing or broken file is
// logged and leaves environment variables and defaults in effect.
func LoadConfigFile(path string) {
	config = Config{}

	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

// GetConfig returns the value for key: environment first, then the YAML
// file, then the built-in default.
func GetConfig(key string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	if v := fileValue(key); v != "" {
		return v
	}
	return defaults[key]
}

func fileValue(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_SSLMODE":
		return config.DBSSLMode
	case "DB_TIMEZONE":
		return config.DBTimeZone
	case "APP_PORT":
		return config.AppPort
	case "CORS_ORIGINS":
		return config.CORSOrigins
	case "RATE_LIMIT_MAX":
		return config.RateLimitMax
	case "LOG_FILE":
		return config.LogFile
	default:
		return ""
	}
}
