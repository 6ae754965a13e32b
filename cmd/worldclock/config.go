package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "WORLDCLOCK"

// settings only affect where diagnostics go, never what is displayed.
type settings struct {
	LogFile  string
	LogLevel string
}

// bindSettings resolves settings from flags, then WORLDCLOCK_* variables,
// then defaults.
func bindSettings(flags *pflag.FlagSet) (settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, name := range []string{"log-file", "log-level"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return settings{}, errors.Wrapf(err, "bind flag %q", name)
		}
	}
	return settings{
		LogFile:  v.GetString("log-file"),
		LogLevel: v.GetString("log-level"),
	}, nil
}
