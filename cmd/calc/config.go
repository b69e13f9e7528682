package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	return log
}

// configure loads configuration from defaults, the config file, the
// environment, and flags, in increasing priority, and applies it.
func (a *app) configure(cfgFile string) error {
	v := a.v
	v.SetDefault("history", defaultHistory())
	v.SetDefault("log_level", "warn")
	v.SetDefault("prompt", "calc")
	v.SetEnvPrefix("calc")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("calc")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "calc"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &nf) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	level, err := logrus.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	a.log.SetLevel(level)
	if f := v.ConfigFileUsed(); f != "" {
		a.log.WithField("path", f).Debug("loaded config")
	}
	a.hist = newHistory(v.GetString("history"), a.log)
	return nil
}

// defaultHistory is the history file in the user's home directory, or the
// empty string, which disables history, if there is no home directory.
func defaultHistory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".calc_history")
}
