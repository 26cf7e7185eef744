package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// Storage
	Storage       string
	DataRoot      string
	SnapshotPath  string
	HistoryPath   string
	DocumentPath  string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
	// Providers
	PriceProvider   string
	PriceAPIBase    string
	KursProvider    string
	ExchangeAPIBase string
	ExchangeAPIKey  string
	RequestTimeout  time.Duration
	// Rendering
	ChartBaseURL string
	Timezone     string
	// Runs
	RunLock    string
	RunLockTTL time.Duration
	Interval   time.Duration
	// API
	Port string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func durMS(key string, defMS int) time.Duration {
	return time.Duration(atoiDef(getEnv(key, strconv.Itoa(defMS)), defMS)) * time.Millisecond
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:             getEnv("ENV", "local"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Storage:         getEnv("STORAGE", "fs"),
		DataRoot:        getEnv("DATA_ROOT", "."),
		SnapshotPath:    getEnv("SNAPSHOT_PATH", "data/harga.json"),
		HistoryPath:     getEnv("HISTORY_PATH", "data/riwayat.csv"),
		DocumentPath:    getEnv("DOCUMENT_PATH", "README.md"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         atoiDef(getEnv("REDIS_DB", "0"), 0),
		RedisPrefix:     getEnv("REDIS_PREFIX", "hargakripto:"),
		PriceProvider:   getEnv("PRICE_PROVIDER", "coingecko"),
		PriceAPIBase:    getEnv("PRICE_API_BASE", "https://api.coingecko.com/api/v3"),
		KursProvider:    getEnv("KURS_PROVIDER", "none"),
		ExchangeAPIBase: getEnv("EXCHANGE_API_BASE", "https://api.exchangeratesapi.io"),
		ExchangeAPIKey:  getEnv("EXCHANGE_API_KEY", ""),
		RequestTimeout:  durMS("REQUEST_TIMEOUT_MS", 10000),
		ChartBaseURL:    getEnv("CHART_BASE_URL", "https://quickchart.io/chart"),
		Timezone:        getEnv("TIMEZONE", "Asia/Jakarta"),
		RunLock:         getEnv("RUN_LOCK", "none"),
		RunLockTTL:      durMS("RUN_LOCK_TTL_MS", 300000),
		Interval:        durMS("TRACKER_INTERVAL_MS", 0),
		Port:            getEnv("PORT", "8080"),
	}
}

// TracksRate reports whether snapshots carry the USD/IDR exchange rate.
func (c Config) TracksRate() bool {
	return c.KursProvider != "" && c.KursProvider != "none"
}
