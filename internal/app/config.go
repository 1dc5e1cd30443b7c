package app

import (
	"errors"
	"time"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	MapPath string // .json, .hcl, directory of .hcl, or SQLite database
	City    string // when set, only this city and its routes are printed

	LogFormat string
	LogLevel  string

	PublishURL         string
	PublishNamespace   string
	PublishEvent       string
	PublishAckEvent    string
	PublishTimeout     time.Duration
	InsecureSkipVerify bool
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.MapPath == "" {
		return nil, errors.New("MapPath is a required configuration field and cannot be empty")
	}
	if cfg.PublishTimeout < 0 {
		return nil, errors.New("PublishTimeout cannot be negative")
	}
	if cfg.PublishURL != "" && (cfg.PublishEvent == "" || cfg.PublishAckEvent == "") {
		return nil, errors.New("PublishEvent and PublishAckEvent are required when PublishURL is set")
	}

	return &cfg, nil
}
