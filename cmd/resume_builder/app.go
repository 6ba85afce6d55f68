package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-builder/internal/api"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/store"
)

// loadConfig resolves the effective configuration: the optional --config
// file merged over environment-derived defaults.
func loadConfig() (config.Config, error) {
	defaults := config.Default()
	if configPath == "" {
		return defaults, nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	merged := cfg.MergeWithDefaults(defaults)
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// openStore opens the session-backed state store.
func openStore(cfg config.Config) (*store.Store, error) {
	st, err := store.Open(cfg.SessionPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}
	return st, nil
}

// newClient builds the backend client with the file-backed token store.
func newClient(cfg config.Config) *api.Client {
	return api.NewClient(cfg.APIBaseURL, cfg.Timeout(), api.NewFileTokenStore(cfg.TokenPath))
}

// withLoginHint augments auth failures with the recovery step. The
// failed action is never retried automatically; the user re-invokes it
// after logging in.
func withLoginHint(err error) error {
	var authErr *api.AuthError
	if errors.As(err, &authErr) {
		return fmt.Errorf("%w (run 'resume_builder login' and try again)", err)
	}
	return err
}
