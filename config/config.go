package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	InputFile          string
	OutputDir          string
	MinAccidentsSafety int
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton config instance. A missing .env file is
// fine, environment variables and defaults still apply.
func GetConfig() *Config {
	once.Do(func() {
		_ = godotenv.Load()

		config = &Config{
			InputFile:          os.Getenv("INPUT_FILE"),
			OutputDir:          getEnvDefault("OUTPUT_DIR", "output"),
			MinAccidentsSafety: getEnvIntDefault("MIN_ACCIDENTS_SAFETY", 5),
		}
	})
	return config
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
