// Config loading for the gridcheck harness.
// Precedence: flag > GRIDCHECK_* env > config file > default.
package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix = "GRIDCHECK"

	cfgKeyRows       = "rows"
	cfgKeyCols       = "cols"
	cfgKeyResizeRows = "resize_rows"
	cfgKeyResizeCols = "resize_cols"
	cfgKeySquare     = "square"
	cfgKeyStrict     = "strict"
	cfgKeyLogLevel   = "log_level"
)

// config is the resolved harness configuration. The defaults reproduce the
// reference run: a 10×5 grid shrunk to 5×5, then a 5×5 square grid.
type config struct {
	Rows       int
	Cols       int
	ResizeRows int
	ResizeCols int
	Square     int
	Strict     bool
	LogLevel   slog.Level
}

// flagKeys maps viper keys to their cobra flag names.
var flagKeys = map[string]string{
	cfgKeyRows:       "rows",
	cfgKeyCols:       "cols",
	cfgKeyResizeRows: "resize-rows",
	cfgKeyResizeCols: "resize-cols",
	cfgKeySquare:     "square",
	cfgKeyStrict:     "strict",
	cfgKeyLogLevel:   "log-level",
}

func registerFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("rows", 10, "rows of the grid under test")
	f.Int("cols", 5, "columns of the grid under test")
	f.Int("resize-rows", 5, "rows after the resize step")
	f.Int("resize-cols", 5, "columns after the resize step")
	f.Int("square", 5, "side of the square grid printed at the end")
	f.Bool("strict", false, "exit non-zero when any check fails")
	f.String("log-level", "warn", "log level (debug, info, warn, error)")
}

// loadConfig resolves the configuration for cmd. A non-empty path names a
// YAML (or any viper-supported) file that must exist.
func loadConfig(cmd *cobra.Command, path string) (config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyRows, 10)
	v.SetDefault(cfgKeyCols, 5)
	v.SetDefault(cfgKeyResizeRows, 5)
	v.SetDefault(cfgKeyResizeCols, 5)
	v.SetDefault(cfgKeySquare, 5)
	v.SetDefault(cfgKeyStrict, false)
	v.SetDefault(cfgKeyLogLevel, "warn")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, name := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return config{}, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(v.GetString(cfgKeyLogLevel))); err != nil {
		return config{}, fmt.Errorf("log level: %w", err)
	}

	return config{
		Rows:       v.GetInt(cfgKeyRows),
		Cols:       v.GetInt(cfgKeyCols),
		ResizeRows: v.GetInt(cfgKeyResizeRows),
		ResizeCols: v.GetInt(cfgKeyResizeCols),
		Square:     v.GetInt(cfgKeySquare),
		Strict:     v.GetBool(cfgKeyStrict),
		LogLevel:   lvl,
	}, nil
}
