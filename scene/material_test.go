package scene

import (
	"testing"

	"pbr-engine/core"
)

func TestNewMaterialClampsAttributes(t *testing.T) {
	m := NewMaterial("hot", core.ColorRed, 1.5, -0.2)
	if m.Metallic != 1 {
		t.Errorf("metallic not clamped: %v", m.Metallic)
	}
	if m.Roughness != 0 {
		t.Errorf("roughness not clamped: %v", m.Roughness)
	}
}

func TestDefaultMaterial(t *testing.T) {
	m := DefaultMaterial()
	if m.Albedo != core.ColorWhite {
		t.Errorf("albedo %v", m.Albedo)
	}
	if m.Metallic != 0 || m.Roughness != 0.5 {
		t.Errorf("attributes %v/%v", m.Metallic, m.Roughness)
	}
}

func TestNewSolidTexture(t *testing.T) {
	tex := NewSolidTexture("red", 255, 0, 0, 255)
	if tex.Width != 1 || tex.Height != 1 || len(tex.Pixels) != 4 {
		t.Fatalf("unexpected texture shape: %dx%d, %d bytes", tex.Width, tex.Height, len(tex.Pixels))
	}
	if tex.GLID != 0 {
		t.Error("fresh texture must not carry a GPU handle")
	}
}

func TestUnknownLightTypeErrorMessage(t *testing.T) {
	err := &UnknownLightTypeError{Type: LightType(9)}
	if err.Error() != "unknown light type 9" {
		t.Errorf("message %q", err.Error())
	}
}
