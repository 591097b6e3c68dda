package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Firebase FirebaseConfig
	Rental   RentalConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	Environment  string
	ServiceName  string
	ReadTimeout  int
	WriteTimeout int
	CORSOrigins  string // Comma-separated list of allowed origins
}

// StoreConfig holds snapshot store configuration
type StoreConfig struct {
	// Path is the location of the JSON snapshot file.
	Path string
}

// FirebaseConfig holds the optional Firestore mirror configuration
type FirebaseConfig struct {
	ProjectID       string
	CredentialsPath string
	Collection      string
	Document        string
	Enabled         bool

	// Circuit breaker tuning for the mirror.
	BreakerInterval         int // seconds
	BreakerTimeout          int // seconds
	BreakerFailureThreshold int
}

// RentalConfig holds business defaults applied when a snapshot carries no settings
type RentalConfig struct {
	DriverRatePerDay int64 // whole pesos per day
	CompanyName      string
	CompanyAddress   string
	CompanyPhone     string
}

// Load loads configuration from environment variables
func Load(serviceName string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Environment:  getEnv("ENVIRONMENT", "development"),
			ServiceName:  serviceName,
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),
			CORSOrigins:  getEnv("CORS_ORIGINS", "http://localhost:3000"),
		},
		Store: StoreConfig{
			Path: getEnv("STORE_PATH", "data/rental.json"),
		},
		Firebase: FirebaseConfig{
			ProjectID:               getEnv("FIREBASE_PROJECT_ID", ""),
			CredentialsPath:         getEnv("FIREBASE_CREDENTIALS_PATH", ""),
			Collection:              getEnv("FIREBASE_COLLECTION", "snapshots"),
			Document:                getEnv("FIREBASE_DOCUMENT", "carxpress_rental"),
			Enabled:                 getEnvAsBool("FIREBASE_ENABLED", false),
			BreakerInterval:         getEnvAsInt("FIREBASE_BREAKER_INTERVAL", 60),
			BreakerTimeout:          getEnvAsInt("FIREBASE_BREAKER_TIMEOUT", 30),
			BreakerFailureThreshold: getEnvAsInt("FIREBASE_BREAKER_FAILURES", 5),
		},
		Rental: RentalConfig{
			DriverRatePerDay: int64(getEnvAsInt("DRIVER_RATE_PER_DAY", 800)),
			CompanyName:      getEnv("COMPANY_NAME", "CarXpress"),
			CompanyAddress:   getEnv("COMPANY_ADDRESS", ""),
			CompanyPhone:     getEnv("COMPANY_PHONE", ""),
		},
	}

	return cfg, nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
