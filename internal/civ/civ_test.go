package civ

import "testing"

func TestModifierFallsBackToDefault(t *testing.T) {
	chinese, ok := ByID("chinese")
	if !ok {
		t.Fatal("chinese civilization missing")
	}
	if got := chinese.Modifier(CityGrowth); got != 1.5 {
		t.Fatalf("city growth = %f, want 1.5", got)
	}
	if got := chinese.Modifier(GrainProduction); got != 1 {
		t.Fatalf("grain production = %f, want default 1", got)
	}
	var none *Civilization
	if got := none.Modifier(SettlementRange); got != 1 {
		t.Fatalf("nil civilization modifier = %f, want 1", got)
	}
	if got := chinese.Modifier("unknown"); got != 1 {
		t.Fatalf("unknown key modifier = %f, want 1", got)
	}
}

func TestTableIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range All() {
		if c.ID == "" || c.Name == "" {
			t.Fatalf("civilization with empty id or name: %+v", c)
		}
		if seen[c.ID] {
			t.Fatalf("duplicate civilization id %q", c.ID)
		}
		seen[c.ID] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 civilizations, got %d", len(seen))
	}
}
