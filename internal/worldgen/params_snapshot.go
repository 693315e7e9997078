package worldgen

import (
	"strconv"

	"civgen/internal/core"
)

// Parameters reports the current configuration for display.
func (g *Generator) Parameters() core.ParameterSnapshot {
	params := g.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", g.cfg.Width),
				intParam("h", "Height", g.cfg.Height),
				int64Param("seed", "Seed", g.cfg.Seed),
			},
		},
		{
			Name: "Terrain",
			Params: []core.Parameter{
				intParam("scale", "Scale", params.Scale),
				floatParam("roughness", "Roughness", params.Roughness),
				floatParam("steepness", "Steepness", params.Steepness),
				floatParam("humidity", "Humidity", params.Humidity),
				floatParam("sea_level", "Sea level", params.SeaLevel),
				intParam("max_elevation", "Elevation buckets", params.MaxElevation),
				intParam("max_precipitation", "Precipitation buckets", params.MaxPrecipitation),
			},
		},
		{
			Name: "Spawning",
			Params: []core.Parameter{
				intParam("num_states", "States", params.NumStates),
				intParam("min_spawn_distance", "Min spawn distance", params.MinSpawnDistance),
				intParam("spawn_attempts", "Spawn attempts", params.SpawnAttempts),
				intParam("max_attempts", "Regeneration attempts", params.MaxAttempts),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables adjustable from the HUD. Changes apply
// on the next Generate.
func (g *Generator) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "scale", Label: "Scale", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 16, HasMin: true, HasMax: true},
		{Key: "roughness", Label: "Roughness", Type: core.ParamTypeFloat, Step: 0.1, Min: 0.1, Max: 4, HasMin: true, HasMax: true},
		{Key: "steepness", Label: "Steepness", Type: core.ParamTypeFloat, Step: 0.1, Min: 0.1, Max: 10, HasMin: true, HasMax: true},
		{Key: "humidity", Label: "Humidity", Type: core.ParamTypeFloat, Step: 0.1, Min: 0.1, Max: 10, HasMin: true, HasMax: true},
		{Key: "sea_level", Label: "Sea level", Type: core.ParamTypeFloat, Step: 0.05, Min: -1, Max: 1, HasMin: true, HasMax: true},
		{Key: "num_states", Label: "States", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 32, HasMin: true, HasMax: true},
		{Key: "min_spawn_distance", Label: "Min spawn distance", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 200, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable. It reports false for unknown
// keys and rejected values.
func (g *Generator) SetIntParameter(key string, value int) bool {
	p := &g.cfg.Params
	switch key {
	case "seed":
		g.cfg.Seed = int64(value)
	case "scale":
		if value < 0 || value > 16 {
			return false
		}
		p.Scale = value
	case "max_elevation":
		if value <= 0 {
			return false
		}
		p.MaxElevation = value
	case "max_precipitation":
		if value <= 0 {
			return false
		}
		p.MaxPrecipitation = value
	case "num_states":
		if value < 0 {
			return false
		}
		p.NumStates = value
	case "min_spawn_distance":
		if value < 0 {
			return false
		}
		p.MinSpawnDistance = value
	case "spawn_attempts":
		if value <= 0 {
			return false
		}
		p.SpawnAttempts = value
	case "max_attempts":
		if value <= 0 {
			return false
		}
		p.MaxAttempts = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point tunable.
func (g *Generator) SetFloatParameter(key string, value float64) bool {
	p := &g.cfg.Params
	switch key {
	case "roughness":
		if value <= 0 {
			return false
		}
		p.Roughness = value
	case "steepness":
		if value <= 0 {
			return false
		}
		p.Steepness = value
	case "humidity":
		if value <= 0 {
			return false
		}
		p.Humidity = value
	case "sea_level":
		p.SeaLevel = value
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
