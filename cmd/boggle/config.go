package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	configFileName = ".boggle"
	configFileType = "yaml"
	envPrefix      = "BOGGLE"

	cfgKeyDict    = "dict"
	cfgKeyWorkers = "workers"
	cfgKeyColor   = "color"
)

// loadConfig reads the configuration with Viper. An explicit file must
// exist; otherwise .boggle.yaml is looked up in the working directory,
// then in the home directory, and a missing file is not an error.
// BOGGLE_* environment variables override file values.
func loadConfig(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyWorkers, 0)
	v.SetDefault(cfgKeyColor, true)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
		return v, nil
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}
