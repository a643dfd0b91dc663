// Package config loads brdview settings from an optional config file and
// BRDVIEW_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// EnvPrefix prefixes every environment override, e.g. BRDVIEW_FORMAT=json
const EnvPrefix = "BRDVIEW"

// Settings holds the CLI configuration
type Settings struct {
	Verbose bool   `mapstructure:"verbose"` // Debug logging, including skipped elements
	Format  string `mapstructure:"format"`  // text or json
	Color   bool   `mapstructure:"color"`   // Styled text output
}

// Default returns the settings used when nothing is configured
func Default() *Settings {
	return &Settings{
		Verbose: false,
		Format:  FormatText,
		Color:   true,
	}
}

// Load reads settings. An explicit path must exist; without one, brdview.yaml
// (or .toml/.json) is looked up in the working directory and the user config
// directory, and a missing file is not an error. Environment variables
// override file values.
func Load(path string) (*Settings, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("verbose", def.Verbose)
	v.SetDefault("format", def.Format)
	v.SetDefault("color", def.Color)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("brdview")
		for _, dir := range defaultConfigPaths() {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("error unmarshaling config into struct: %w", err)
	}
	s.Format = strings.ToLower(strings.TrimSpace(s.Format))

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate rejects settings the CLI cannot honor
func (s *Settings) Validate() error {
	switch s.Format {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid format %q: must be %q or %q", s.Format, FormatText, FormatJSON)
	}
}

func defaultConfigPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "brdview"))
	}
	return paths
}
