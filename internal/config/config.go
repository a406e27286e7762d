// Package config loads the application configuration file: the listen
// address, the document store path, and the logging options.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/kmortenson/finance-dashboard/pkg/constants"
)

// Configuration holds all configuration for finance-dashboard.
type Configuration struct {
	Server  ServerConfig  `yaml:"server,omitempty"`
	Store   StoreConfig   `yaml:"store,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// ServerConfig holds the HTTP listener options.
type ServerConfig struct {
	Address string `yaml:"address,omitempty"`
}

// StoreConfig holds the document store options.
type StoreConfig struct {
	Path string `yaml:"path,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. An empty path yields the defaults.
func LoadConfiguration(configPath string) (*Configuration, error) {
	configuration := Configuration{
		Server: ServerConfig{Address: constants.DefaultServerAddress},
		Store:  StoreConfig{Path: constants.DefaultStorePath},
	}

	if configPath == "" {
		return &configuration, nil
	}

	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	if err := viper.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if configuration.Server.Address == "" {
		configuration.Server.Address = constants.DefaultServerAddress
	}
	if configuration.Store.Path == "" {
		configuration.Store.Path = constants.DefaultStorePath
	}

	return &configuration, nil
}
