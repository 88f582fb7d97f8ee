package predictionguard

import (
	"os"

	"github.com/joho/godotenv"
)

// Names of the environment variables the client resolves its credentials from.
const (
	EnvAPIKey = "PREDICTIONGUARD_API_KEY"
	EnvHost   = "PREDICTIONGUARD_URL"
)

// Environment holds the credentials needed to reach the Prediction Guard
// API. Values are immutable once loaded and live for the process lifetime.
type Environment struct {
	APIKey string
	Host   string
}

// FromEnv loads credentials from a .env file (when present) and the process
// environment. It returns a *ConfigError naming the first variable that is
// absent.
func FromEnv() (Environment, error) {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()

	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		return Environment{}, &ConfigError{Variable: EnvAPIKey}
	}

	host := os.Getenv(EnvHost)
	if host == "" {
		return Environment{}, &ConfigError{Variable: EnvHost}
	}

	return Environment{APIKey: apiKey, Host: host}, nil
}
