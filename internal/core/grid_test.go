package core

import "testing"

func TestSizeIndexRoundTrip(t *testing.T) {
	s := Size{W: 7, H: 5}
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			p := s.Point(s.Index(x, y))
			if p.X != x || p.Y != y {
				t.Fatalf("Point(Index(%d,%d)) = %+v", x, y, p)
			}
		}
	}
	if s.Index(3, 2) != 3+2*7 {
		t.Fatalf("unexpected row-major index %d", s.Index(3, 2))
	}
}

func TestBoolGridOutOfBounds(t *testing.T) {
	g := NewBoolGrid(3, 3)
	g.Set(-1, 0, true)
	g.Set(3, 1, true)
	if g.Count() != 0 {
		t.Fatalf("out-of-bounds Set must be ignored, count=%d", g.Count())
	}
	if g.Get(-1, -1) {
		t.Fatal("out-of-bounds Get must read false")
	}
	g.Set(1, 1, true)
	if !g.Get(1, 1) || g.Count() != 1 {
		t.Fatal("expected single marked cell")
	}
	g.Clear()
	if g.Count() != 0 {
		t.Fatal("Clear must reset all cells")
	}
}
