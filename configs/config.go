package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver      string
	DBSource      string
	Port          string
	AdminEmail    string
	AdminPassword string
	SeedMenu      bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBSource:      getEnv("DB_SOURCE", "restaurant.db"),
		Port:          getEnv("PORT", "8000"),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		SeedMenu:      getEnv("SEED_MENU", "") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
