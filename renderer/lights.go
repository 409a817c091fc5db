package renderer

import (
	"fmt"
	"strconv"

	"pbr-engine/internal/gpu"
	"pbr-engine/scene"
)

// Light type tags shared between the host and the shader. The values are
// injected as LIGHT_TYPE_* defines so both sides always agree.
const (
	lightTypePoint       = 0
	lightTypeDirectional = 1
)

// frameDefines builds the define set for the current frame configuration.
// The light count must match the uploaded light array exactly; any change
// compiles a distinct program via the cache.
func frameDefines(lightCount int, ibl, outputSRGB bool) gpu.DefineSet {
	d := gpu.DefineSet{
		"LIGHT_COUNT":            strconv.Itoa(lightCount),
		"LIGHT_TYPE_POINT":       strconv.Itoa(lightTypePoint),
		"LIGHT_TYPE_DIRECTIONAL": strconv.Itoa(lightTypeDirectional),
	}
	if ibl {
		d["USE_IBL"] = "1"
	}
	if outputSRGB {
		d["OUTPUT_SRGB"] = "1"
	}
	return d
}

// appendLightUniforms writes the light array into the uniform map under the
// dotted keys the shader declares ("uLights[i].position" and friends). An
// unrecognized variant tag fails the frame here, at assembly time; it must
// not silently render as black.
func appendLightUniforms(u gpu.Map, lights []scene.Light) error {
	for i, l := range lights {
		var tag int32
		switch l.Type {
		case scene.LightPoint:
			tag = lightTypePoint
		case scene.LightDirectional:
			tag = lightTypeDirectional
		default:
			return &scene.UnknownLightTypeError{Type: l.Type}
		}

		prefix := fmt.Sprintf("uLights[%d].", i)
		u[prefix+"type"] = gpu.Int(tag)
		u[prefix+"position"] = gpu.Vec3(l.Position)
		u[prefix+"direction"] = gpu.Vec3(l.Direction)
		u[prefix+"color"] = gpu.RGB(l.Color)
		u[prefix+"intensity"] = gpu.Float(l.Intensity)
	}
	return nil
}
