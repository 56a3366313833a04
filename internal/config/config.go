// Package config loads CLI settings from the user's configuration directory.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

type Config struct {
	// CreateMissing treats missing target directories as if --create was
	// given.
	CreateMissing bool
	// CreateParents makes missing parent directories too when a target is
	// created.
	CreateParents bool
}

func NewConfig() Config {
	return Config{
		CreateMissing: false,
		CreateParents: false,
	}
}

func init() {
	initializeConfig()
}

func initializeConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.AddConfigPath(filepath.Join(xdg.ConfigHome, "withdir"))
	defaultConfig := NewConfig()
	viper.SetDefault("CreateMissing", defaultConfig.CreateMissing)
	viper.SetDefault("CreateParents", defaultConfig.CreateParents)
}

var config = NewConfig()

// LoadConfig reads the configuration file if present. A missing or unreadable
// file leaves the defaults in place.
func LoadConfig() error {
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return err
	}
	config = cfg
	return nil
}

func GetConfig() Config {
	return config
}
