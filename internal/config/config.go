// Package config loads tshirt-compose settings from an optional YAML file
// and TSHIRT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/ironsheep/tshirt-compose/internal/imaging"
	"github.com/ironsheep/tshirt-compose/internal/layout"
	"github.com/ironsheep/tshirt-compose/internal/placement"
)

const (
	// EnvPrefix is prepended to upper-cased keys, e.g. TSHIRT_RECOLOR_THRESHOLD.
	EnvPrefix = "TSHIRT"

	// FileName is the config file base name searched for in ./config and the working directory.
	FileName = "tshirt-compose"

	KeyRecolorThreshold = "recolor_threshold"
	KeyDefaultSize      = "default_size"
	KeyLayout           = "layout"
)

type Config struct {
	// RecolorThreshold is the exclusive per-channel lower bound for fabric pixels.
	RecolorThreshold int `mapstructure:"recolor_threshold"`
	// DefaultSize applies when --position is given without --size.
	DefaultSize string `mapstructure:"default_size"`
	// Layout names the panel layout strategy.
	Layout string `mapstructure:"layout"`

	// File is the config file that was read, empty if none.
	File string `mapstructure:"-"`
}

// New returns a viper instance with defaults and environment binding set up.
// If path is non-empty only that file is considered, otherwise FileName is
// searched for in ./config and the working directory.
func New(path string) *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyRecolorThreshold, imaging.DefaultFabricThreshold)
	v.SetDefault(KeyDefaultSize, placement.DefaultSize)
	v.SetDefault(KeyLayout, layout.Default.Name())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
	}

	return v
}

// Load reads the config file (a missing default file is fine, a missing
// explicit file is not) and validates the result.
func Load(v *viper.Viper, explicit bool) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	c.File = v.ConfigFileUsed()

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks value ranges and names.
func (c *Config) Validate() error {
	if c.RecolorThreshold < 0 || c.RecolorThreshold > 254 {
		return fmt.Errorf("invalid %s %d: must be between 0 and 254", KeyRecolorThreshold, c.RecolorThreshold)
	}
	if _, err := placement.FromPositionSize("chest", c.DefaultSize); err != nil {
		return fmt.Errorf("invalid %s: %w", KeyDefaultSize, err)
	}
	if _, err := layout.Lookup(c.Layout); err != nil {
		return fmt.Errorf("invalid %s: %w", KeyLayout, err)
	}
	return nil
}

// Threshold returns RecolorThreshold as a channel value.
func (c *Config) Threshold() uint8 {
	return uint8(c.RecolorThreshold)
}
