package util

import (
	"fmt"

	"github.com/spf13/viper"
)

// ReadConfig loads config.yaml from dir into the global viper instance.
func ReadConfig(dir string) error {
	viper.SetConfigName("config")
	viper.AddConfigPath(dir)

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config from %s: %w", dir, err)
	}
	return nil
}
