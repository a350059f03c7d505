package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DBDriver   string // sqlite | postgres
	DBDSN      string
	CartTTL    time.Duration
	OpTimeout  time.Duration
	SweepEvery time.Duration
	AuthMode   string // jwt | apikey | query
	JWTSecret  string
	APIKeyHash string
	LogFile    string
}

func Load() Config {
	// .env is a dev convenience; real env always wins.
	_ = godotenv.Load()

	cfg := Config{
		Port:       getenv("PORT", "8080"),
		DBDriver:   getenv("DB_DRIVER", "sqlite"),
		DBDSN:      getenv("DB_DSN", "cartvault.db"),
		CartTTL:    getdur("CART_TTL", time.Hour),
		OpTimeout:  getdur("OP_TIMEOUT", 3*time.Second),
		SweepEvery: getdur("SWEEP_INTERVAL", 5*time.Minute),
		AuthMode:   getenv("AUTH_MODE", "query"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		APIKeyHash: os.Getenv("API_KEY_HASH"),
		LogFile:    getenv("LOG_FILE", "./cartvault.log"),
	}

	log.Printf("[config] PORT=%s DB_DRIVER=%s DB_DSN=%s CART_TTL=%s OP_TIMEOUT=%s SWEEP_INTERVAL=%s AUTH_MODE=%s LOG_FILE=%s",
		cfg.Port, cfg.DBDriver, cfg.DBDSN, cfg.CartTTL, cfg.OpTimeout, cfg.SweepEvery, cfg.AuthMode, cfg.LogFile)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[config] bad %s=%q, using %s", key, v, def)
		return def
	}
	return d
}
