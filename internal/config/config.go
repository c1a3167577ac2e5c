package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP_ADDR   string
	DB_HOST     string
	DB_PORT     string
	DB_USER     string
	DB_PASSWORD string
	DB_NAME     string

	JWT_SECRET          string
	ADMIN_CREATE_SECRET string

	KAFKA_ADDRESS string

	ES_URL      string
	ES_USER     string
	ES_PASSWORD string

	MINIO_ENDPOINT   string
	MINIO_ACCESS_KEY string
	MINIO_SECRET_KEY string
	MINIO_BUCKET     string
	MINIO_USE_SSL    string

	REDIS_ADDR string

	LOG_LEVEL string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		HTTP_ADDR:   getEnv("HTTP_ADDR", ":8080"),
		DB_HOST:     os.Getenv("DB_HOST"),
		DB_PORT:     os.Getenv("DB_PORT"),
		DB_USER:     os.Getenv("DB_USER"),
		DB_PASSWORD: os.Getenv("DB_PASSWORD"),
		DB_NAME:     os.Getenv("DB_NAME"),

		JWT_SECRET:          os.Getenv("JWT_SECRET"),
		ADMIN_CREATE_SECRET: os.Getenv("ADMIN_CREATE_SECRET"),

		KAFKA_ADDRESS: os.Getenv("KAFKA_ADDRESS"),

		ES_URL:      os.Getenv("ES_URL"),
		ES_USER:     os.Getenv("ES_USER"),
		ES_PASSWORD: os.Getenv("ES_PASSWORD"),

		MINIO_ENDPOINT:   os.Getenv("MINIO_ENDPOINT"),
		MINIO_ACCESS_KEY: os.Getenv("MINIO_ACCESS_KEY"),
		MINIO_SECRET_KEY: os.Getenv("MINIO_SECRET_KEY"),
		MINIO_BUCKET:     getEnv("MINIO_BUCKET", "catalog-images"),
		MINIO_USE_SSL:    os.Getenv("MINIO_USE_SSL"),

		REDIS_ADDR: os.Getenv("REDIS_ADDR"),

		LOG_LEVEL: getEnv("LOG_LEVEL", "info"),
	}

	return config, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
