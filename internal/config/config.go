package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	GinMode          string
	MongoURI         string
	MongoDatabase    string
	JWTSecret        string
	GeminiAPIKey     string
	GeminiModel      string
	MLServiceURL     string
	CORSOrigin       string
	RabbitMQURI      string
	RabbitMQExchange string
}

var AppConfig *Config

func LoadConfig() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:             getEnvOrDefault("PORT", "5000"),
		GinMode:          getEnvOrDefault("GIN_MODE", "debug"),
		MongoURI:         getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnvOrDefault("MONGO_DATABASE", "quizmentor"),
		JWTSecret:        getEnvOrDefault("SESSION_SECRET", "your-secret-key"),
		GeminiAPIKey:     getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:      getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		MLServiceURL:     getEnvOrDefault("ML_SERVICE_URL", "http://localhost:5001"),
		CORSOrigin:       getEnvOrDefault("CORS_ORIGIN", "http://localhost:3000"),
		RabbitMQURI:      getEnvOrDefault("RABBITMQ_URI", ""),
		RabbitMQExchange: getEnvOrDefault("RABBITMQ_EXCHANGE", ""),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
