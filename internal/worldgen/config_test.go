package worldgen

import "testing"

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                  "64",
		"h":                  "48",
		"seed":               "-7",
		"scale":              "5",
		"sea_level":          "-0.25",
		"humidity":           "1.5",
		"min_spawn_distance": "0",
		"num_states":         "3",
		"max_attempts":       "8",
	})
	if cfg.Width != 64 || cfg.Height != 48 || cfg.Seed != -7 {
		t.Fatalf("unexpected world config %+v", cfg)
	}
	p := cfg.Params
	if p.Scale != 5 || p.SeaLevel != -0.25 || p.Humidity != 1.5 {
		t.Fatalf("unexpected terrain params %+v", p)
	}
	if p.MinSpawnDistance != 0 || p.NumStates != 3 || p.MaxAttempts != 8 {
		t.Fatalf("unexpected spawn params %+v", p)
	}
}

func TestFromMapKeepsDefaultsOnBadInput(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		"w":              "-3",
		"scale":          "99",
		"roughness":      "abc",
		"steepness":      "0",
		"spawn_attempts": "0",
	})
	if cfg != def {
		t.Fatalf("invalid overrides should keep defaults: got %+v", cfg)
	}
	if FromMap(nil) != def {
		t.Fatal("nil map should yield defaults")
	}
}
