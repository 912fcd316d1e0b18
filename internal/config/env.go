package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// Load reads variables from the given .env files (".env" if none) into the
// environment. Variables already set win. Missing files are not an error.
func Load(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		err := godotenv.Load(name)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
