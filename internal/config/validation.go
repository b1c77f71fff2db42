package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

/*
Validation is intentionally strict.
A config that half-works is worse than no config.
*/

func validateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.ListenAddr) == "" {
		return errors.New("config: listen_addr is required")
	}

	if err := validateUpstreamURL("posts_url", cfg.PostsURL); err != nil {
		return err
	}

	if err := validateUpstreamURL("random_fact_url", cfg.RandomFactURL); err != nil {
		return err
	}

	if len(cfg.EnvKeys) == 0 {
		return errors.New("config: env_keys must not be empty")
	}

	for _, k := range cfg.EnvKeys {
		if strings.TrimSpace(k) == "" {
			return errors.New("config: env key names must not be empty")
		}
	}

	return nil
}

func validateUpstreamURL(field, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("config: %s is required", field)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("config: %s is not a valid URL: %w", field, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("config: %s must use http or https", field)
	}

	if u.Host == "" {
		return fmt.Errorf("config: %s must include a host", field)
	}

	return nil
}
