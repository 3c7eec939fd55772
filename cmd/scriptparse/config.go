/*
File    : barescript/cmd/scriptparse/config.go

Optional host-application configuration: a `~/.scriptparse.yaml` file
read with gopkg.in/yaml.v3 (the same library package ast uses for a
Script's canonical document form), overridable by command flags. This is
ambient CLI configuration, not part of the parser core, and never
influences parsing semantics — only presentation (color, log level).
*/
package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config is scriptparse's persisted, optional configuration.
type Config struct {
	NoColor  bool   `yaml:"noColor"`
	LogLevel string `yaml:"logLevel"`
}

// LoadConfig reads path (or ~/.scriptparse.yaml if path is empty) if it
// exists, returning a zero Config when there is nothing to load.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Config{}, nil
		}
		path = filepath.Join(home, ".scriptparse.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FlagsConfig applies the --no-color flag from a command's flag set on top
// of a Config already loaded from file; LogLevel is copied from base
// unchanged (the root command resolves --log-level itself). fs is typed as *pflag.FlagSet
// explicitly (rather than accessed only through *cobra.Command) since the
// flag-merging logic here is independent of cobra's command tree.
func FlagsConfig(fs *pflag.FlagSet, base *Config) *Config {
	cfg := *base
	if noColor, err := fs.GetBool("no-color"); err == nil && noColor {
		cfg.NoColor = true
	}
	return &cfg
}
