// Package config loads orderkey settings from an optional YAML file,
// ORDERKEY_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/ntauth/orderkey"
	"github.com/ntauth/orderkey/internal/logging"
)

const EnvPrefix = "ORDERKEY"

// Config is the full set of settings.
type Config struct {
	Alphabet string         `mapstructure:"alphabet"`
	Output   string         `mapstructure:"output"`
	Jitter   JitterConfig   `mapstructure:"jitter"`
	Log      logging.Config `mapstructure:"log"`
	HTTP     HTTPConfig     `mapstructure:"http"`
}

type JitterConfig struct {
	// Spread is the maximum digit offset from the center; 0 disables jitter.
	Spread int `mapstructure:"spread"`
	// Seed for the jitter source; 0 seeds from the clock.
	Seed int64 `mapstructure:"seed"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
	Mode string `mapstructure:"mode"`
}

// New returns a viper instance with defaults and environment binding set
// up. If file is empty, orderkey.yaml is looked up in the working
// directory and $HOME/.config/orderkey; a missing file is not an error.
func New(file string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("alphabet", "base62")
	v.SetDefault("output", "text")
	v.SetDefault("jitter.spread", 0)
	v.SetDefault("jitter.seed", 0)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.pretty", false)
	v.SetDefault("log.service", "orderkey")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.mode", "release")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("orderkey")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/orderkey")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return v, nil
}

// Load decodes v into a Config and checks it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if _, err := cfg.ResolveAlphabet(); err != nil {
		return nil, err
	}
	switch cfg.Output {
	case "text", "json", "yaml":
	default:
		return nil, fmt.Errorf("unknown output format %q", cfg.Output)
	}
	switch cfg.HTTP.Mode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("unknown http.mode %q", cfg.HTTP.Mode)
	}
	if cfg.Jitter.Spread < 0 {
		return nil, fmt.Errorf("jitter.spread must not be negative, got %d", cfg.Jitter.Spread)
	}
	return &cfg, nil
}

// ResolveAlphabet accepts a predefined alphabet name or a literal digit
// string.
func (c *Config) ResolveAlphabet() (*orderkey.Alphabet, error) {
	switch strings.ToLower(c.Alphabet) {
	case "", "base62":
		return orderkey.Base62, nil
	case "base10":
		return orderkey.Base10, nil
	case "base95":
		return orderkey.Base95, nil
	}
	a, err := orderkey.NewAlphabet(c.Alphabet)
	if err != nil {
		return nil, fmt.Errorf("alphabet %q: %w", c.Alphabet, err)
	}
	return a, nil
}

// Generator builds the generator described by the config.
func (c *Config) Generator(logger zerolog.Logger) (*orderkey.Generator, error) {
	alpha, err := c.ResolveAlphabet()
	if err != nil {
		return nil, err
	}
	opts := []orderkey.Option{
		orderkey.WithAlphabet(alpha),
		orderkey.WithLogger(logger),
	}
	if c.Jitter.Spread > 0 {
		seed := c.Jitter.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		j := orderkey.RandJitter{R: rand.New(rand.NewSource(seed))}
		opts = append(opts, orderkey.WithJitter(j, c.Jitter.Spread))
	}
	return orderkey.New(opts...), nil
}
