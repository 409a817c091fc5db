package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestOrbitCameraKeepsDistance(t *testing.T) {
	target := mgl32.Vec3{1, 2, 3}
	cam := NewOrbitCamera(target, 10, mgl32.DegToRad(45), 16.0/9.0)

	for _, step := range [][2]float32{{0.5, 0.2}, {-1.3, 0.4}, {2.0, -0.9}} {
		cam.Orbit(step[0], step[1])
		d := cam.Position.Sub(target).Len()
		if math.Abs(float64(d-10)) > 1e-4 {
			t.Fatalf("distance drifted to %v after orbit %v", d, step)
		}
	}
}

func TestOrbitCameraPitchClamped(t *testing.T) {
	cam := NewOrbitCamera(mgl32.Vec3{}, 5, mgl32.DegToRad(45), 1)

	cam.Orbit(0, 10)
	if cam.Pitch > 1.5 {
		t.Errorf("pitch not clamped: %v", cam.Pitch)
	}
	cam.Orbit(0, -20)
	if cam.Pitch < -1.5 {
		t.Errorf("pitch not clamped: %v", cam.Pitch)
	}
}

func TestOrbitCameraZoomFloor(t *testing.T) {
	cam := NewOrbitCamera(mgl32.Vec3{}, 5, mgl32.DegToRad(45), 1)

	cam.Zoom(-100)
	if cam.Distance < 0.5 {
		t.Errorf("distance below floor: %v", cam.Distance)
	}
}

func TestCameraAspectUpdateIgnoresZeroHeight(t *testing.T) {
	cam := NewCamera(mgl32.DegToRad(45), 2, 0.1, 100)

	cam.UpdateAspectRatio(800, 0)
	if cam.AspectRatio != 2 {
		t.Errorf("aspect changed on zero height: %v", cam.AspectRatio)
	}
	cam.UpdateAspectRatio(800, 400)
	if cam.AspectRatio != 2 {
		t.Errorf("aspect = %v, want 2", cam.AspectRatio)
	}
}
