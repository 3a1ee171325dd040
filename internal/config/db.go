package config

import "fmt"

type DbConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"db-name"`
	Address  string `mapstructure:"address"`
}

func (cfg *DbConfig) Validate() error {
	if cfg.Username == "" {
		return fmt.Errorf("missing db username")
	}
	if cfg.Password == "" {
		return fmt.Errorf("missing db password")
	}
	if cfg.DbName == "" {
		return fmt.Errorf("missing db name")
	}
	if cfg.Address == "" {
		return fmt.Errorf("missing db address")
	}
	return nil
}
