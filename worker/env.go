package worker

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

const envFile = ".env"

// loadEnvFile populates the environment from a .env file in the working directory,
// if there is one. Variables which are already set take precedence.
func loadEnvFile() error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
