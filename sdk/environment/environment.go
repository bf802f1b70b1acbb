// Package environment provides support for env vars and .env files.
package environment

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file. An empty path loads
// .env from the working directory.
func LoadEnv(p string) error {
	if p != "" {
		return godotenv.Load(p)
	}
	return godotenv.Load()
}

// GetEnvOrDefault retrieves an environment variable value, returning a
// fallback value if the variable is not set.
func GetEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvKeyPrefix constructs a prefixed environment variable key by joining
// the prefix and key with an underscore. An empty prefix returns the key
// unchanged.
func GetEnvKeyPrefix(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return fmt.Sprintf("%s_%s", prefix, key)
}

// GetPrefixEnvOrDefault retrieves a prefixed environment variable value,
// returning a fallback value if the variable is not set.
func GetPrefixEnvOrDefault(prefix, key, fallback string) string {
	return GetEnvOrDefault(GetEnvKeyPrefix(prefix, key), fallback)
}
