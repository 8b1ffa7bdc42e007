package configuration

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config carries the environment settings shared by the three surfaces and
// the directory stub.
type Config struct {
	// BackendURL is the base URL of the Directory Service.
	BackendURL string
	// StateDir is where per-surface local state (tokens, cached profiles,
	// the guest appointments mirror) is kept.
	StateDir string
	// Port and DBFile configure the directory stub binary.
	Port   string
	DBFile string
}

// Load reads .env when present and resolves the configuration from the
// environment with working defaults for local development.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file found, using system environment variables")
	}

	return Config{
		BackendURL: getenv("BACKEND_URL", "http://localhost:5000"),
		StateDir:   getenv("STATE_DIR", ".clinic-state"),
		Port:       getenv("PORT", "5000"),
		DBFile:     os.Getenv("DB_FILE"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// NewLogger builds the logger the I/O components share.
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger
}
