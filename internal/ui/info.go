package ui

import (
	"fmt"

	"civgen/internal/core"
	"civgen/internal/world"
	"civgen/internal/worldgen"
)

// TileInfo describes the selected tile for the HUD.
func TileInfo(w *world.World, p core.Point, selected bool) []string {
	if !selected {
		return []string{"No tile selected"}
	}
	tile, ok := w.GetTile(p.X, p.Y)
	if !ok {
		return []string{"No tile selected"}
	}
	t := tile.Terrain()
	lines := []string{
		fmt.Sprintf("Tile (%d, %d)", p.X, p.Y),
		t.Name,
		fmt.Sprintf("Fertility %d", t.Fertility),
	}
	if city, ok := w.CityAt(p.X, p.Y); ok {
		owner := "independent"
		if city.State != nil {
			owner = city.State.Name
			if c := city.State.Civilization; c != nil {
				owner += " (" + c.Name + ")"
			}
		}
		lines = append(lines, "City of "+owner, fmt.Sprintf("Population %d", city.Population))
	}
	return lines
}

// DebugInfo summarises the clock and the last generation.
func DebugInfo(w *world.World, clock *core.TurnClock, rep worldgen.Report, status string) []string {
	speed := "paused"
	if !clock.Paused() {
		speed = fmt.Sprintf("speed %d/%d", clock.Speed(), core.MaxSpeed)
	}
	lines := []string{
		fmt.Sprintf("Day %d, %s", w.Turn(), speed),
		fmt.Sprintf("Attempts %d, land %d", rep.Attempts, rep.LandTiles),
		fmt.Sprintf("States %d, cities %d", len(w.States()), len(w.Cities())),
	}
	if status != "" {
		lines = append(lines, status)
	}
	return lines
}
