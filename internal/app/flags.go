package app

import (
	"flag"
	"fmt"
	"strings"

	"civgen/internal/config"
	"civgen/internal/worldgen"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Scale      int
	TPS        int
	Seed       int64
	ConfigPath string
	Overrides  KVList
	Verbose    bool
}

// NewConfig returns a Config populated with sensible defaults. A zero Seed
// keeps the seed from the world config.
func NewConfig() *Config {
	return &Config{Scale: 2, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per tile")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "session seed (0 keeps the config value)")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML world config file")
	fs.Var(&c.Overrides, "set", "parameter override in key=value form (repeatable)")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log generation progress")
}

// WorldConfig resolves the generator configuration: defaults, then the YAML
// file, then -set overrides, then -seed.
func (c *Config) WorldConfig() (worldgen.Config, error) {
	cfg := worldgen.DefaultConfig()
	if c.ConfigPath != "" {
		loaded, err := config.Load(c.ConfigPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	overrides, err := c.Overrides.Map()
	if err != nil {
		return cfg, err
	}
	cfg.Apply(overrides)
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	return cfg, nil
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits the collected pairs. Later keys win.
func (l KVList) Map() (map[string]string, error) {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("override %q: want key=value", kv)
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out, nil
}
