package config

import (
	"errors"
	"time"
)

// AuditConfig drives the periodic counter reconciliation.
type AuditConfig struct {
	PollingInterval time.Duration `mapstructure:"polling-interval"`
	MaxConcurrency  int           `mapstructure:"max-concurrency"`
	Repair          bool          `mapstructure:"repair"`
}

func (cfg *AuditConfig) Validate() error {
	if cfg.PollingInterval <= 0 {
		return errors.New("audit polling-interval must be positive")
	}
	if cfg.MaxConcurrency <= 0 {
		return errors.New("audit max-concurrency must be positive")
	}
	return nil
}
