package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultEnvFile is loaded before flags are parsed if it exists
const DefaultEnvFile = ".env"

// LoadEnvFile loads variables from path into the process environment.
// Variables already set are not overwritten. A missing file is ignored.
func LoadEnvFile(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to load env file", goerr.V("path", path))
	}
	return true, nil
}
