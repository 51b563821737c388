package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the variable that points at an explicit config file.
const PathEnv = "CONFIG_PATH"

// searchPaths are tried in order when PathEnv is unset. The first one that
// exists wins; none existing means ENV and defaults only.
var searchPaths = []string{
	"./config.yaml",
	"./config/resale.yaml",
	"/etc/resale-backend/config.yaml",
}

// Load resolves the config file and reads it with ENV overrides applied on
// top (ENV > YAML > env-default). An explicit CONFIG_PATH that does not exist
// is an error.
func Load() (*Config, error) {
	path, err := resolvePath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the YAML file at path, or only ENV and defaults when path
// is empty, and validates the result.
func LoadFile(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func resolvePath() (string, error) {
	if explicit := os.Getenv(PathEnv); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config: file %s: %w", explicit, err)
		}
		return explicit, nil
	}

	for _, candidate := range searchPaths {
		_, err := os.Stat(candidate)
		switch {
		case err == nil:
			return candidate, nil
		case !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("config: file %s: %w", candidate, err)
		}
	}
	return "", nil
}
