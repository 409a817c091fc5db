package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"pbr-engine/core"
)

// LightType is a closed variant tag: the set of light kinds is fixed and
// dispatch is a switch, not subclassing.
type LightType int

const (
	LightPoint LightType = iota
	LightDirectional
)

// Light is a tagged variant over point and directional lights. Point lights
// carry a world-space Position; directional lights carry a world-space
// Direction (pointing from the light toward the scene). Color is
// sRGB-encoded in [0,1]; the shading model linearizes it.
type Light struct {
	Type      LightType
	Position  mgl32.Vec3 // point lights only, absolute world space
	Direction mgl32.Vec3 // directional lights only
	Color     core.Color
	Intensity float32
}

// UnknownLightTypeError reports a light variant the shading model does not
// recognize. It is raised at uniform-assembly time and halts the frame; an
// unknown light must never silently render as black.
type UnknownLightTypeError struct {
	Type LightType
}

func (e *UnknownLightTypeError) Error() string {
	return fmt.Sprintf("unknown light type %d", int(e.Type))
}

// NewPointLight creates a point light at a world-space position.
func NewPointLight(position mgl32.Vec3, color core.Color, intensity float32) Light {
	return Light{
		Type:      LightPoint,
		Position:  position,
		Color:     color,
		Intensity: intensity,
	}
}

// NewDirectionalLight creates a directional light shining along direction.
func NewDirectionalLight(direction mgl32.Vec3, color core.Color, intensity float32) Light {
	return Light{
		Type:      LightDirectional,
		Direction: direction,
		Color:     color,
		Intensity: intensity,
	}
}
