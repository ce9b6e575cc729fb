package cli

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/arnau/lizard"
)

// Config contains every option the lizard command understands. Values come from
// flags, LIZARD_* environment variables and an optional config file, in that order.
type Config struct {
	// Minimum level of a log required to be written. Options: debug, info, warn, error
	LogLevel string `mapstructure:"log_level"`
	// Full path to file to which logs will be written. Blank writes to stderr.
	LogFile string `mapstructure:"log_file"`
	// Largest declared size accepted from an input file. Zero disables the limit.
	MaxSize uint32 `mapstructure:"max_size"`
	// Overwrite the output file if it already exists.
	Force bool `mapstructure:"force"`
}

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"log-level": "log_level",
	"log-file":  "log_file",
	"max-size":  "max_size",
	"force":     "force",
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("lizard", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.String("config", "", "optional config file (yaml, json or toml)")
	fs.String("log-level", "warn", "log level: debug, info, warn, error")
	fs.String("log-file", "", "write logs to this file instead of stderr")
	fs.Uint32("max-size", lizard.DefaultMaxDecodedSize, "largest declared size accepted, 0 for no limit")
	fs.BoolP("force", "f", false, "overwrite an existing output file")
	fs.BoolP("version", "V", false, "print version and exit")

	return fs
}

// LoadConfig resolves the configuration from parsed flags, environment and config file.
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("lizard")
	v.AutomaticEnv()

	v.SetDefault("log_level", "warn")
	v.SetDefault("log_file", "")
	v.SetDefault("max_size", lizard.DefaultMaxDecodedSize)
	v.SetDefault("force", false)

	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.Wrapf(err, "couldn't bind flag %s", name)
			}
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "couldn't read config file %s", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "couldn't decode config")
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	return cfg, nil
}

// Options converts the config into decompression options.
func (c *Config) Options() *lizard.Options {
	return &lizard.Options{MaxDecodedSize: c.MaxSize}
}
