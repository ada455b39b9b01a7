package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Port          string
	DBDSN         string
	LogFile       string
	AdminCodeHash string // bcrypt hash of the edit-mode access code
	GeminiAPIKey  string
	GeminiURL     string // override for tests; empty means the public endpoint
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "automall.db" // sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./automall.log"
	}

	hash := os.Getenv("ADMIN_CODE_HASH")
	if hash == "" {
		// Dev fallback so edit mode works out of the box.
		h, _ := bcrypt.GenerateFromPassword([]byte("taller-zofri"), bcrypt.DefaultCost)
		hash = string(h)
		log.Printf("[config] ADMIN_CODE_HASH unset, using dev access code")
	}

	cfg := Config{
		Port:          port,
		DBDSN:         dsn,
		LogFile:       logFile,
		AdminCodeHash: hash,
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiURL:     os.Getenv("GEMINI_ENDPOINT"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.LogFile)
	return cfg
}
