package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joho/godotenv"
)

/*
CONFIGURATION DESIGN

- Config is static data, not code
- Validation happens BEFORE a file is accepted
- Any error results in DEFAULTS behavior, never a broken half-config
- The file itself is optional: a missing file means defaults, so the
  server runs with zero configuration
*/

type Config struct {
	ListenAddr    string   `yaml:"listen_addr"`
	PostsURL      string   `yaml:"posts_url"`
	RandomFactURL string   `yaml:"random_fact_url"`
	EnvKeys       []string `yaml:"env_keys"`
}

// Defaults returns the built-in configuration used when no file is
// present or a file fails validation.
func Defaults() Config {
	return Config{
		ListenAddr:    ":3000",
		PostsURL:      "https://jsonplaceholder.typicode.com/posts",
		RandomFactURL: "https://uselessfacts.jsph.pl/api/v2/facts/random",
		EnvKeys: []string{
			"testkey1",
			"testkey2",
			"testkey3",
			"testkey4",
			"KUBERNETES_SERVICE_HOST",
		},
	}
}

// Load reads and validates configuration from disk.
// A missing file is not an error: defaults are returned.
// An unreadable or invalid file IS an error, and defaults are
// returned alongside it so the caller can still run.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return Defaults(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), fmt.Errorf("invalid YAML: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return Defaults(), err
	}

	return cfg, nil
}

// LoadDotenv loads KEY=VALUE pairs from a .env file into the process
// environment before the snapshot handlers read it. A missing file is
// fine; values already set in the environment win.
func LoadDotenv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}
