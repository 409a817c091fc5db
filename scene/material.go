package scene

import "pbr-engine/core"

// Material holds the per-sphere PBR surface attributes. Albedo is
// sRGB-encoded in [0,1] (normalize 0–255 input via core.ColorFromRGB8);
// linearization happens in the shader, not on the host.
type Material struct {
	Name      string
	Albedo    core.Color
	Metallic  float32 // 0 = dielectric, 1 = fully metallic
	Roughness float32 // 0 = perfectly smooth, 1 = fully rough
}

// DefaultMaterial returns a plain white dielectric of medium roughness.
func DefaultMaterial() Material {
	return Material{
		Name:      "Default",
		Albedo:    core.ColorWhite,
		Metallic:  0,
		Roughness: 0.5,
	}
}

// NewMaterial creates a material with the given albedo, metallic, and roughness.
func NewMaterial(name string, albedo core.Color, metallic, roughness float32) Material {
	return Material{
		Name:      name,
		Albedo:    albedo,
		Metallic:  clamp01(metallic),
		Roughness: clamp01(roughness),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
