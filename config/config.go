package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	EmailSender string
	Password    string // SMTP app password
	AdminEmail  string // recipient of the daily digest

	GeminiApiURL string
	GeminiApiKey string

	QuizPassPercent int // minimum score that completes a course
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "learntrack"),
		DBPort:     getEnv("DB_PORT", "5432"),

		EmailSender: getEnv("EMAIL_SENDER", ""),
		Password:    getEnv("EMAIL_PASSWORD", ""),
		AdminEmail:  getEnv("ADMIN_EMAIL", ""),

		GeminiApiURL: getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"),
		GeminiApiKey: getEnv("GEMINI_API_KEY", ""),

		QuizPassPercent: getEnvInt("QUIZ_PASS_PERCENT", 70),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.GeminiApiKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set. Quiz generation will be unavailable.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
