package render

import "testing"

func TestCameraScreenToTile(t *testing.T) {
	cam := NewCamera(4)
	cam.X, cam.Y = 10, 3
	x, y := cam.ScreenToTile(6, 0)
	if x != 4 || y != 0 {
		t.Fatalf("expected tile (4,0), got (%d,%d)", x, y)
	}
	cam.X = -9
	if x, _ := cam.ScreenToTile(0, 0); x != -3 {
		t.Fatalf("negative positions should floor, got %d", x)
	}
}

func TestCameraMoveAndClamp(t *testing.T) {
	cam := NewCamera(2)
	cam.Move(-1, 1)
	if cam.X != -5 || cam.Y != 5 {
		t.Fatalf("unexpected position (%v,%v)", cam.X, cam.Y)
	}
	cam.Drag(-100, 0)
	cam.Clamp(50, 50, 60, 60)
	if cam.X != 40 || cam.Y != 5 {
		t.Fatalf("clamp should keep the view inside the map, got (%v,%v)", cam.X, cam.Y)
	}
	cam.Clamp(10, 10, 60, 60)
	if cam.X != 0 || cam.Y != 0 {
		t.Fatalf("a map smaller than the view pins the camera to the origin, got (%v,%v)", cam.X, cam.Y)
	}
}
