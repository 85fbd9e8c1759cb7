// Package config loads application configuration from YAML files via viper
// and supports hot reloading through fsnotify.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	dataconf "github.com/docubase/docursor/data/config"
	"github.com/docubase/docursor/logging/logger"
)

// Config represents the application configuration.
type Config struct {
	AppName string
	RunMode string
	Logger  *logger.Config
	Data    *dataconf.Config
	Viper   *viper.Viper
}

// LoadConfig reads configuration from the given file. Values may be
// overridden through the environment, e.g. DOCURSOR_DATA_MONGODB_URI.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("docursor")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", filepath.Clean(path), err)
	}

	return fromViper(v), nil
}

// fromViper assembles a Config from loaded viper state.
func fromViper(v *viper.Viper) *Config {
	return &Config{
		AppName: v.GetString("app_name"),
		RunMode: v.GetString("run_mode"),
		Logger: &logger.Config{
			Level:      v.GetInt("logger.level"),
			Format:     v.GetString("logger.format"),
			Output:     v.GetString("logger.output"),
			OutputFile: v.GetString("logger.output_file"),
		},
		Data:  dataconf.GetConfig(v),
		Viper: v,
	}
}

// Watch re-reads the configuration whenever the underlying file changes and
// hands the fresh Config to onChange.
func (c *Config) Watch(onChange func(*Config)) {
	c.Viper.OnConfigChange(func(e fsnotify.Event) {
		if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}
		onChange(fromViper(c.Viper))
	})
	c.Viper.WatchConfig()
}
