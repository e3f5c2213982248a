// Package config loads faceplate defaults from a config file and the
// environment. CLI flags override what is loaded here.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/agentic-research/faceplate/internal/bundle"
	"github.com/agentic-research/faceplate/internal/preview"
)

// Config holds the tunable defaults.
type Config struct {
	// Export
	Optimize                bool   `mapstructure:"optimize"`
	Responsive              bool   `mapstructure:"responsive"`
	IncludeDeveloperWindows bool   `mapstructure:"include_developer_windows"`
	Delivery                string `mapstructure:"delivery"` // archive | folder
	MockRelay               bool   `mapstructure:"mock_relay"`
	OutDir                  string `mapstructure:"out_dir"`
	HistoryDB               string `mapstructure:"history_db"`

	// Preview
	PreviewGrace time.Duration `mapstructure:"preview_grace"`
	PreviewAddr  string        `mapstructure:"preview_addr"`
	Browser      string        `mapstructure:"browser"`

	LogLevel string `mapstructure:"log_level"`
}

// Load reads faceplate.yaml from file, or from . and $HOME/.faceplate when
// file is empty, then applies FACEPLATE_ environment variables. A missing
// config file is not an error.
func Load(file string) (*Config, error) {
	v := viper.New()

	v.SetDefault("optimize", true)
	v.SetDefault("responsive", true)
	v.SetDefault("include_developer_windows", false)
	v.SetDefault("delivery", string(bundle.DeliveryArchive))
	v.SetDefault("mock_relay", false)
	v.SetDefault("out_dir", ".")
	v.SetDefault("history_db", "")
	v.SetDefault("preview_grace", preview.DefaultGrace)
	v.SetDefault("preview_addr", "127.0.0.1:0")
	v.SetDefault("browser", "")
	v.SetDefault("log_level", "info")

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("faceplate")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.faceplate")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("FACEPLATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// ExportOptions converts the export defaults.
func (c *Config) ExportOptions() (bundle.Options, error) {
	delivery, err := bundle.ParseDelivery(c.Delivery)
	if err != nil {
		return bundle.Options{}, err
	}
	return bundle.Options{
		Optimize:                c.Optimize,
		Responsive:              c.Responsive,
		IncludeDeveloperWindows: c.IncludeDeveloperWindows,
		Delivery:                delivery,
		IncludeMockRelay:        c.MockRelay,
	}, nil
}

// PreviewOptions converts the preview defaults.
func (c *Config) PreviewOptions() preview.Options {
	return preview.Options{
		Optimize:                c.Optimize,
		Responsive:              c.Responsive,
		IncludeDeveloperWindows: c.IncludeDeveloperWindows,
	}
}
