// Package pbr implements the host-side half of the shading model: the sRGB
// transfer functions, the Cook-Torrance BRDF, equirectangular projection, and
// the RGBM codec. The fragment shader in the renderer package carries the
// same formulas; this package is what the tests and the environment-map
// generator evaluate on the CPU.
package pbr

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"pbr-engine/core"
)

// Piecewise sRGB transfer function breakpoints.
const (
	srgbToLinearKnee = 0.04045
	linearToSRGBKnee = 0.0031308
)

// SRGBToLinear applies the sRGB-to-linear transfer function to one channel.
func SRGBToLinear(c float32) float32 {
	if c <= srgbToLinearKnee {
		return c / 12.92
	}
	return float32(math.Pow((float64(c)+0.055)/1.055, 2.4))
}

// LinearToSRGB applies the linear-to-sRGB transfer function to one channel.
func LinearToSRGB(c float32) float32 {
	if c <= linearToSRGBKnee {
		return c * 12.92
	}
	return float32(1.055*math.Pow(float64(c), 1.0/2.4) - 0.055)
}

// Linearize converts an sRGB-encoded color to linear space, alpha passthrough.
func Linearize(c core.Color) core.Color {
	return core.Color{
		R: SRGBToLinear(c.R),
		G: SRGBToLinear(c.G),
		B: SRGBToLinear(c.B),
		A: c.A,
	}
}

// Encode converts a linear color to sRGB encoding, alpha passthrough.
func Encode(c core.Color) core.Color {
	return core.Color{
		R: LinearToSRGB(c.R),
		G: LinearToSRGB(c.G),
		B: LinearToSRGB(c.B),
		A: c.A,
	}
}

// LinearizeVec converts an sRGB-encoded RGB vector to linear space.
func LinearizeVec(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{SRGBToLinear(v.X()), SRGBToLinear(v.Y()), SRGBToLinear(v.Z())}
}
