package render

import (
	"image/color"
	"testing"

	"civgen/internal/core"
	"civgen/internal/world"
)

func TestChunkIndexBucketsWithLocalOffsets(t *testing.T) {
	idx := NewChunkIndex(core.Size{W: 100, H: 70}, 32)
	if g := idx.Grid(); g.W != 4 || g.H != 3 {
		t.Fatalf("expected 4x3 chunks, got %dx%d", g.W, g.H)
	}
	tint := color.RGBA{R: 9, A: 255}
	idx.AddSprite(70, 33, world.SpriteCity, tint)
	idx.AddSprite(-1, 5, world.SpriteCity, tint)
	idx.AddSprite(500, 5, world.SpriteCity, tint)

	got := idx.Sprites(2, 1)
	if len(got) != 1 {
		t.Fatalf("expected one sprite in chunk (2,1), got %d", len(got))
	}
	if got[0].LocalX != 6 || got[0].LocalY != 1 || got[0].Sprite != world.SpriteCity || got[0].Tint != tint {
		t.Fatalf("unexpected entry %+v", got[0])
	}
	total := 0
	for cy := 0; cy < 3; cy++ {
		for cx := 0; cx < 4; cx++ {
			total += len(idx.Sprites(cx, cy))
		}
	}
	if total != 1 {
		t.Fatalf("out-of-world sprites must be dropped, have %d", total)
	}
}

func TestChunkIndexDirtyFlags(t *testing.T) {
	idx := NewChunkIndex(core.Size{W: 64, H: 64}, 16)
	idx.AddSprite(17, 1, world.SpriteSettlement, color.RGBA{})
	if !idx.TakeDirty(1, 0) {
		t.Fatal("chunk with a new sprite should be dirty")
	}
	if idx.TakeDirty(1, 0) {
		t.Fatal("TakeDirty should clear the flag")
	}
	idx.Clear()
	if len(idx.Sprites(1, 0)) != 0 || !idx.TakeDirty(3, 3) {
		t.Fatal("Clear should drop sprites and mark chunks dirty")
	}
}

func TestWorldCitiesReachChunkIndex(t *testing.T) {
	idx := NewChunkIndex(core.Size{W: 40, H: 40}, 16)
	w := world.New(40, 40, idx)
	state := world.NewState("AI0", nil, color.RGBA{G: 200, A: 255})
	w.AddState(state)
	w.CreateCity(20, 35, state)
	got := idx.Sprites(1, 2)
	if len(got) != 1 || got[0].Tint != state.Color || got[0].Sprite != world.SpriteCity {
		t.Fatalf("expected tinted city sprite in chunk (1,2), got %+v", got)
	}
}
