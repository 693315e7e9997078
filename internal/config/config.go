// Package config loads world generation settings from YAML files.
package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"civgen/internal/worldgen"
)

// ErrInvalid reports a config document that fails schema validation.
var ErrInvalid = errors.New("config: invalid document")

//go:embed schema.json
var schemaSource string

const schemaURL = "civgen://config.schema.json"

var schema = jsonschema.MustCompileString(schemaURL, schemaSource)

// File mirrors the YAML layout. Absent keys keep their defaults.
type File struct {
	Width   *int     `yaml:"width"`
	Height  *int     `yaml:"height"`
	Seed    *int64   `yaml:"seed"`
	Terrain *Terrain `yaml:"terrain"`
	Spawn   *Spawn   `yaml:"spawn"`
}

type Terrain struct {
	Scale            *int     `yaml:"scale"`
	Roughness        *float64 `yaml:"roughness"`
	Steepness        *float64 `yaml:"steepness"`
	Humidity         *float64 `yaml:"humidity"`
	SeaLevel         *float64 `yaml:"sea_level"`
	MaxElevation     *int     `yaml:"max_elevation"`
	MaxPrecipitation *int     `yaml:"max_precipitation"`
}

type Spawn struct {
	NumStates        *int `yaml:"num_states"`
	MinSpawnDistance *int `yaml:"min_spawn_distance"`
	Attempts         *int `yaml:"attempts"`
	MaxAttempts      *int `yaml:"max_attempts"`
}

// Load reads path and applies it over worldgen.DefaultConfig.
func Load(path string) (worldgen.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return worldgen.Config{}, err
	}
	cfg, err := Parse(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates a YAML document and applies it over the defaults.
func Parse(raw []byte) (worldgen.Config, error) {
	cfg := worldgen.DefaultConfig()
	if err := validate(raw); err != nil {
		return cfg, err
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return cfg, fmt.Errorf("config yaml: %w", err)
	}
	f.Apply(&cfg)
	return cfg, nil
}

// Apply copies the set fields of f onto cfg.
func (f *File) Apply(cfg *worldgen.Config) {
	set(&cfg.Width, f.Width)
	set(&cfg.Height, f.Height)
	set(&cfg.Seed, f.Seed)
	p := &cfg.Params
	if t := f.Terrain; t != nil {
		set(&p.Scale, t.Scale)
		set(&p.Roughness, t.Roughness)
		set(&p.Steepness, t.Steepness)
		set(&p.Humidity, t.Humidity)
		set(&p.SeaLevel, t.SeaLevel)
		set(&p.MaxElevation, t.MaxElevation)
		set(&p.MaxPrecipitation, t.MaxPrecipitation)
	}
	if s := f.Spawn; s != nil {
		set(&p.NumStates, s.NumStates)
		set(&p.MinSpawnDistance, s.MinSpawnDistance)
		set(&p.SpawnAttempts, s.Attempts)
		set(&p.MaxAttempts, s.MaxAttempts)
	}
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// validate checks raw against the embedded schema. The YAML tree is
// round-tripped through JSON so the validator sees JSON value types.
func validate(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("config yaml: %w", err)
	}
	if doc == nil {
		return nil
	}
	buf, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	var v any
	if err := json.Unmarshal(buf, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
