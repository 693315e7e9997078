package core

import (
	"testing"
	"time"
)

func TestTurnClockStartsPaused(t *testing.T) {
	c := NewTurnClock()
	if !c.Paused() {
		t.Fatal("new clock should be paused")
	}
	if got := c.Advance(time.Hour); got != 0 {
		t.Fatalf("paused clock produced %d turns", got)
	}
}

func TestTurnClockSpeeds(t *testing.T) {
	tests := []struct {
		speed int
		want  time.Duration
	}{
		{1, 500 * time.Millisecond},
		{2, 250 * time.Millisecond},
		{3, 125 * time.Millisecond},
		{4, 50 * time.Millisecond},
		{9, 50 * time.Millisecond},
	}
	for _, tc := range tests {
		c := NewTurnClock()
		c.SetSpeed(tc.speed)
		if got := c.Interval(); got != tc.want {
			t.Errorf("speed %d interval = %v, want %v", tc.speed, got, tc.want)
		}
	}
}

func TestTurnClockAdvanceAccumulates(t *testing.T) {
	c := NewTurnClock()
	c.SetSpeed(1)
	if got := c.Advance(300 * time.Millisecond); got != 0 {
		t.Fatalf("expected no turn after 300ms, got %d", got)
	}
	if got := c.Advance(300 * time.Millisecond); got != 1 {
		t.Fatalf("expected one turn after 600ms, got %d", got)
	}
	c.SetSpeed(4)
	if got := c.Advance(time.Second); got != 20 {
		t.Fatalf("expected 20 turns at speed 4, got %d", got)
	}
}

func TestTurnClockPauseRemembersSpeed(t *testing.T) {
	c := NewTurnClock()
	c.SetSpeed(3)
	c.SetPaused(true)
	if !c.Paused() {
		t.Fatal("expected paused clock")
	}
	c.SetPaused(false)
	if c.Speed() != 3 {
		t.Fatalf("expected resume at speed 3, got %d", c.Speed())
	}
	c.Slower()
	c.Slower()
	c.Slower()
	c.Slower()
	if c.Speed() != 0 {
		t.Fatalf("expected speed to clamp at 0, got %d", c.Speed())
	}
}
