package pbr

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"pbr-engine/core"
)

// SkyGradient is a three-stop procedural sky: zenith straight up, horizon at
// eye level, ground below. Colors are sRGB-encoded, as supplied by the host.
type SkyGradient struct {
	Zenith  core.Color
	Horizon core.Color
	Ground  core.Color
}

// Sample returns the linear sky radiance in a unit direction.
func (s SkyGradient) Sample(dir mgl32.Vec3) mgl32.Vec3 {
	y := dir.Y()
	if y < -1 {
		y = -1
	}
	if y > 1 {
		y = 1
	}
	horizon := linearVec(s.Horizon)
	if y >= 0 {
		return lerpVec(horizon, linearVec(s.Zenith), y)
	}
	return lerpVec(horizon, linearVec(s.Ground), -y)
}

// IrradianceMap convolves the sky gradient into a diffuse-irradiance
// environment map: for every texel direction N it integrates the
// cosine-weighted sky radiance over the hemisphere around N. The result is
// RGBM-encoded into an equirectangular RGBA8 pixel buffer ready for upload.
//
// samples controls the hemisphere sampling density per axis; 16 is plenty for
// a three-stop gradient.
func IrradianceMap(sky SkyGradient, width, height, samples int) []byte {
	if samples < 4 {
		samples = 4
	}
	pixels := make([]byte, width*height*4)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			uv := mgl32.Vec2{
				(float32(x) + 0.5) / float32(width),
				(float32(y) + 0.5) / float32(height),
			}
			n := EquirectDir(uv)
			irr := hemisphereIrradiance(sky, n, samples)
			texel := RGBMEncode(irr)
			i := (y*width + x) * 4
			pixels[i+0] = texel[0]
			pixels[i+1] = texel[1]
			pixels[i+2] = texel[2]
			pixels[i+3] = texel[3]
		}
	}
	return pixels
}

// hemisphereIrradiance integrates cos-weighted sky radiance over the
// hemisphere around n, normalized so a constant sky of radiance c yields c.
func hemisphereIrradiance(sky SkyGradient, n mgl32.Vec3, samples int) mgl32.Vec3 {
	// Build a tangent frame around n.
	up := mgl32.Vec3{0, 1, 0}
	if math.Abs(float64(n.Y())) > 0.999 {
		up = mgl32.Vec3{1, 0, 0}
	}
	tangent := up.Cross(n).Normalize()
	bitangent := n.Cross(tangent)

	var sum mgl32.Vec3
	var weight float32

	for i := 0; i < samples; i++ {
		for j := 0; j < samples; j++ {
			// Stratified spherical coordinates over the hemisphere.
			phi := 2 * math.Pi * (float64(i) + 0.5) / float64(samples)
			theta := 0.5 * math.Pi * (float64(j) + 0.5) / float64(samples)

			sinT := float32(math.Sin(theta))
			cosT := float32(math.Cos(theta))
			local := mgl32.Vec3{
				sinT * float32(math.Cos(phi)),
				sinT * float32(math.Sin(phi)),
				cosT,
			}
			dir := tangent.Mul(local.X()).
				Add(bitangent.Mul(local.Y())).
				Add(n.Mul(local.Z()))

			// cos(theta)*sin(theta) is the projected solid-angle weight.
			w := cosT * sinT
			sum = sum.Add(sky.Sample(dir).Mul(w))
			weight += w
		}
	}
	if weight == 0 {
		return mgl32.Vec3{}
	}
	return sum.Mul(1 / weight)
}

func linearVec(c core.Color) mgl32.Vec3 {
	return mgl32.Vec3{SRGBToLinear(c.R), SRGBToLinear(c.G), SRGBToLinear(c.B)}
}
