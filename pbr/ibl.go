package pbr

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// RGBMRange is the fixed calibration multiplier of the RGBM encoding: the
// maximum linear value one texel can represent.
const RGBMRange = 6.0

// EquirectUV maps a unit direction to equirectangular texture coordinates.
// phi = atan2(z, x) and theta = asin(y), remapped from [-pi,pi]x[-pi/2,pi/2]
// to [0,1]².
func EquirectUV(dir mgl32.Vec3) mgl32.Vec2 {
	phi := math.Atan2(float64(dir.Z()), float64(dir.X()))
	theta := math.Asin(float64(clampF64(float64(dir.Y()), -1, 1)))
	u := float32(phi/(2*math.Pi)) + 0.5
	v := float32(theta/math.Pi) + 0.5
	return mgl32.Vec2{u, v}
}

// EquirectDir is the inverse of EquirectUV: texture coordinates in [0,1]²
// back to a unit direction.
func EquirectDir(uv mgl32.Vec2) mgl32.Vec3 {
	phi := (float64(uv.X()) - 0.5) * 2 * math.Pi
	theta := (float64(uv.Y()) - 0.5) * math.Pi
	cosTheta := math.Cos(theta)
	return mgl32.Vec3{
		float32(math.Cos(phi) * cosTheta),
		float32(math.Sin(theta)),
		float32(math.Sin(phi) * cosTheta),
	}
}

// RGBMEncode packs a linear HDR color into four 8-bit channels with a shared
// multiplier in alpha. Values above RGBMRange clip.
func RGBMEncode(c mgl32.Vec3) [4]uint8 {
	r := c.X() / RGBMRange
	g := c.Y() / RGBMRange
	b := c.Z() / RGBMRange

	m := max32(max32(r, g), max32(b, 1e-6))
	if m > 1 {
		m = 1
	}
	// Quantize the multiplier up so rgb/m stays within [0,1].
	m = float32(math.Ceil(float64(m)*255)) / 255
	return [4]uint8{
		quantize(r / m),
		quantize(g / m),
		quantize(b / m),
		quantize(m),
	}
}

// RGBMDecode recovers the linear HDR color: rgb * alpha * RGBMRange.
func RGBMDecode(texel [4]uint8) mgl32.Vec3 {
	m := float32(texel[3]) / 255 * RGBMRange
	return mgl32.Vec3{
		float32(texel[0]) / 255 * m,
		float32(texel[1]) / 255 * m,
		float32(texel[2]) / 255 * m,
	}
}

func quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func clampF64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
