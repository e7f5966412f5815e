package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBDSN         string
	AdminPassword string
	WebDir        string
	LogFile       string
}

func Load() Config {
	// Optional .env in the project root; real env always wins.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "luxelane.db" // sqlite file in project root
	}
	web := os.Getenv("WEB_DIR")
	if web == "" {
		web = "./web"
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{
		Port:          port,
		DBDSN:         dsn,
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		WebDir:        web,
		LogFile:       logFile,
	}
	if cfg.AdminPassword == "" {
		log.Printf("[config] ADMIN_PASSWORD not set; admin endpoints will reject every request")
	}
	// Never echo the admin secret.
	log.Printf("[config] PORT=%s DB_DSN=%s WEB_DIR=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.WebDir, cfg.LogFile)
	return cfg
}
