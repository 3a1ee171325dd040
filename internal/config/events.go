package config

import "errors"

// EventsConfig configures the AMQP event sink. Notifications are
// fire-and-forget; the sink can be disabled entirely for local runs.
type EventsConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Url      string `mapstructure:"url"`
	Exchange string `mapstructure:"exchange"`
}

func (cfg *EventsConfig) Validate() error {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Url == "" {
		return errors.New("events url is required when events are enabled")
	}
	if cfg.Exchange == "" {
		return errors.New("events exchange is required when events are enabled")
	}
	return nil
}
