package worldgen

import (
	"strconv"

	"civgen/internal/terrain"
)

// Params holds the noise and placement tunables.
type Params struct {
	// Scale sets the base noise frequency divisor as 2^Scale tiles.
	Scale     int
	Roughness float64
	Steepness float64
	Humidity  float64
	// SeaLevel biases the continent mask; higher values yield more land.
	SeaLevel float64

	MaxElevation     int
	MaxPrecipitation int

	MinSpawnDistance int
	NumStates        int
	SpawnAttempts    int
	MaxAttempts      int
}

// Config controls world dimensions, the session seed and generation params.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  500,
		Height: 500,
		Seed:   1337,
		Params: Params{
			Scale:            6,
			Roughness:        1,
			Steepness:        2.5,
			Humidity:         2.5,
			SeaLevel:         0.1,
			MaxElevation:     terrain.ElevationBuckets,
			MaxPrecipitation: terrain.PrecipitationBuckets,
			MinSpawnDistance: 20,
			NumStates:        6,
			SpawnAttempts:    99999,
			MaxAttempts:      32,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Apply(cfg)
	return c
}

// Apply overrides fields of c from a string map.
func (c *Config) Apply(cfg map[string]string) {
	if cfg == nil {
		return
	}
	positiveInt(cfg, "w", &c.Width)
	positiveInt(cfg, "h", &c.Height)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	p := &c.Params
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 16 {
			p.Scale = parsed
		}
	}
	positiveFloat(cfg, "roughness", &p.Roughness)
	positiveFloat(cfg, "steepness", &p.Steepness)
	positiveFloat(cfg, "humidity", &p.Humidity)
	if v, ok := cfg["sea_level"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			p.SeaLevel = parsed
		}
	}
	positiveInt(cfg, "max_elevation", &p.MaxElevation)
	positiveInt(cfg, "max_precipitation", &p.MaxPrecipitation)
	if v, ok := cfg["min_spawn_distance"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			p.MinSpawnDistance = parsed
		}
	}
	if v, ok := cfg["num_states"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			p.NumStates = parsed
		}
	}
	positiveInt(cfg, "spawn_attempts", &p.SpawnAttempts)
	positiveInt(cfg, "max_attempts", &p.MaxAttempts)
}

func positiveInt(cfg map[string]string, key string, dst *int) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			*dst = parsed
		}
	}
}

func positiveFloat(cfg map[string]string, key string, dst *float64) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			*dst = parsed
		}
	}
}
