package env

import (
	"github.com/joho/godotenv"
)

// SetupEnvFile loads the first .env file found into the process environment.
// Variables that are already set win, so Docker/CI environments keep precedence.
// It reports whether a file was loaded.
func SetupEnvFile() bool {
	envFiles := []string{
		".env",          // Current directory
		"../../.env",    // From cmd/foxalbum to project root
		"../../../.env", // Fallback for deeper nesting
	}

	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			return true
		}
	}

	return false
}
