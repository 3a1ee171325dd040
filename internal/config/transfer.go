package config

import (
	"errors"
	"time"
)

// TransferConfig configures the client of the external asset transfer
// service, including the custody account staked assets are parked in.
type TransferConfig struct {
	Endpoint       string        `mapstructure:"endpoint"`
	CustodyAccount string        `mapstructure:"custody-account"`
	Timeout        time.Duration `mapstructure:"timeout"`
	MaxRetryTimes  uint          `mapstructure:"max-retry-times"`
	RetryInterval  time.Duration `mapstructure:"retry-interval"`
}

func (cfg *TransferConfig) Validate() error {
	if cfg.Endpoint == "" {
		return errors.New("transfer endpoint is required")
	}
	if cfg.CustodyAccount == "" {
		return errors.New("transfer custody-account is required")
	}
	if cfg.Timeout <= 0 {
		return errors.New("transfer timeout must be positive")
	}
	if cfg.MaxRetryTimes == 0 {
		return errors.New("transfer max-retry-times must be positive")
	}
	if cfg.RetryInterval <= 0 {
		return errors.New("transfer retry-interval must be positive")
	}
	return nil
}
