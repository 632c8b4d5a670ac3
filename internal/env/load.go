package env

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// Load reads KEY=VALUE lines from the given file (e.g. ".env") into the
// process environment. Variables that are already set win over the file. The
// file may be missing; that is not an error.
func Load(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
