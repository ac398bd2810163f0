package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// loadEnvFile loads UNBABEL_* settings from path without overriding variables
// already set in the process. A missing default file is not an error; a
// missing file requested with --env is.
func loadEnvFile(path string, explicit bool) error {
	path = strings.TrimSpace(path)
	if path == "" {
		path = defaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	log.Debug().Str("path", path).Msg("loaded environment file")
	return nil
}
