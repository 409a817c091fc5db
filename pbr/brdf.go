package pbr

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"pbr-engine/scene"
)

// Denominator guard for the specular term at grazing angles.
const specularEpsilon = 0.001

// Surface is the resolved material at one shading point. Albedo is linear;
// callers linearize the sRGB-encoded host albedo first.
type Surface struct {
	Albedo    mgl32.Vec3
	Metallic  float32
	Roughness float32
}

// DistributionGGX is the GGX normal distribution, alpha = roughness².
func DistributionGGX(ndh, roughness float32) float32 {
	a := roughness * roughness
	a2 := a * a
	d := ndh*ndh*(a2-1) + 1
	return a2 / (math.Pi * d * d)
}

// GeometrySchlickGGX is one side of the Smith geometry term with the
// direct-lighting remapping k = (roughness+1)²/8.
func GeometrySchlickGGX(cosTheta, roughness float32) float32 {
	r := roughness + 1
	k := r * r / 8
	return cosTheta / (cosTheta*(1-k) + k)
}

// GeometrySmith combines both Schlick-GGX sides.
func GeometrySmith(ndv, ndl, roughness float32) float32 {
	return GeometrySchlickGGX(ndv, roughness) * GeometrySchlickGGX(ndl, roughness)
}

// FresnelSchlick is Schlick's approximation to the Fresnel term.
func FresnelSchlick(hdv float32, f0 mgl32.Vec3) mgl32.Vec3 {
	t := float32(math.Pow(float64(1-max32(hdv, 0)), 5))
	one := mgl32.Vec3{1, 1, 1}
	return f0.Add(one.Sub(f0).Mul(t))
}

// F0 returns the normal-incidence reflectance: 0.04 for dielectrics blended
// toward the linear albedo by metallic.
func F0(s Surface) mgl32.Vec3 {
	base := mgl32.Vec3{0.04, 0.04, 0.04}
	return lerpVec(base, s.Albedo, s.Metallic)
}

// EvalDirect evaluates one Cook-Torrance lobe for a single light.
// N, V, L are unit vectors; radiance is the light's linear radiance arriving
// at the surface. Returns the outgoing linear contribution.
func EvalDirect(n, v, l, radiance mgl32.Vec3, s Surface) mgl32.Vec3 {
	ndl := max32(n.Dot(l), 0)
	if ndl <= 0 {
		return mgl32.Vec3{}
	}

	h := v.Add(l).Normalize()
	ndv := max32(n.Dot(v), 0)
	ndh := max32(n.Dot(h), 0)
	hdv := max32(h.Dot(v), 0)

	d := DistributionGGX(ndh, s.Roughness)
	g := GeometrySmith(ndv, ndl, s.Roughness)
	f := FresnelSchlick(hdv, F0(s))

	specular := f.Mul(d * g / max32(4*ndv*ndl, specularEpsilon))

	one := mgl32.Vec3{1, 1, 1}
	kd := one.Sub(f).Mul(1 - s.Metallic)
	diffuse := mulVec(kd, s.Albedo).Mul(1 / math.Pi)

	return mulVec(diffuse.Add(specular), radiance).Mul(ndl)
}

// Radiance resolves a light's linear radiance: linearize(color) * intensity.
func Radiance(l scene.Light) mgl32.Vec3 {
	c := Linearize(l.Color)
	return mgl32.Vec3{c.R, c.G, c.B}.Mul(l.Intensity)
}

// LightDir resolves the unit vector from a surface point toward a light.
// Point lights are absolute world-space positions; directional lights shine
// along their Direction, so the vector toward the light is its negation.
func LightDir(l scene.Light, worldPos mgl32.Vec3) (mgl32.Vec3, error) {
	switch l.Type {
	case scene.LightPoint:
		return l.Position.Sub(worldPos).Normalize(), nil
	case scene.LightDirectional:
		return l.Direction.Mul(-1).Normalize(), nil
	default:
		return mgl32.Vec3{}, &scene.UnknownLightTypeError{Type: l.Type}
	}
}

// Shade accumulates the direct contribution of every light at one shading
// point. It is the CPU mirror of the fragment shader's light loop: zero
// lights yield exactly zero irradiance. The returned color is linear.
func Shade(n, v, worldPos mgl32.Vec3, lights []scene.Light, s Surface) (mgl32.Vec3, error) {
	var sum mgl32.Vec3
	for _, light := range lights {
		l, err := LightDir(light, worldPos)
		if err != nil {
			return mgl32.Vec3{}, err
		}
		sum = sum.Add(EvalDirect(n, v, l, Radiance(light), s))
	}
	return sum, nil
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func lerpVec(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

func mulVec(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}
