package pbr

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"pbr-engine/core"
	"pbr-engine/scene"
)

func approx(t *testing.T, got, want, tolerance float32, label string) {
	t.Helper()
	if math.Abs(float64(got-want)) > float64(tolerance) {
		t.Errorf("%s = %v, want %v (tolerance %v)", label, got, want, tolerance)
	}
}

func TestDistributionGGXFullyRough(t *testing.T) {
	// At roughness 1 the distribution is constant 1/pi over all half angles.
	invPi := float32(1 / math.Pi)
	for _, ndh := range []float32{0, 0.25, 0.5, 0.75, 1} {
		approx(t, DistributionGGX(ndh, 1), invPi, 1e-6, "D")
	}
}

func TestDistributionGGXNormalized(t *testing.T) {
	// Smoother surfaces concentrate the lobe: D at the normal grows as
	// roughness shrinks.
	prev := DistributionGGX(1, 1)
	for _, r := range []float32{0.8, 0.6, 0.4, 0.2} {
		d := DistributionGGX(1, r)
		if d <= prev {
			t.Fatalf("D(1, %v) = %v, not above D at higher roughness %v", r, d, prev)
		}
		prev = d
	}
}

func TestFresnelSchlickLimits(t *testing.T) {
	f0 := mgl32.Vec3{0.04, 0.04, 0.04}

	head := FresnelSchlick(1, f0)
	approx(t, head.X(), 0.04, 1e-6, "F at normal incidence")

	grazing := FresnelSchlick(0, f0)
	approx(t, grazing.X(), 1, 1e-6, "F at grazing incidence")
}

func TestF0MetallicBlend(t *testing.T) {
	albedo := mgl32.Vec3{0.8, 0.2, 0.1}

	dielectric := F0(Surface{Albedo: albedo, Metallic: 0})
	approx(t, dielectric.X(), 0.04, 1e-6, "dielectric F0")

	metal := F0(Surface{Albedo: albedo, Metallic: 1})
	approx(t, metal.X(), 0.8, 1e-6, "metal F0.r")
	approx(t, metal.Y(), 0.2, 1e-6, "metal F0.g")
}

func TestEvalDirectWhiteLightNormalIncidence(t *testing.T) {
	// Fully rough white dielectric under unit white radiance at normal
	// incidence: the diffuse lobe dominates and the total sits near 1/pi.
	n := mgl32.Vec3{0, 0, 1}
	s := Surface{Albedo: mgl32.Vec3{1, 1, 1}, Metallic: 0, Roughness: 1}

	out := EvalDirect(n, n, n, mgl32.Vec3{1, 1, 1}, s)
	approx(t, out.X(), 1/math.Pi, 0.02, "outgoing radiance")
	approx(t, out.X(), out.Y(), 1e-6, "white in, white out")
}

func TestEvalDirectMetallicKillsDiffuse(t *testing.T) {
	// A pure red metal reflects only through Fresnel, which equals the
	// albedo at normal incidence: green and blue must be exactly zero.
	n := mgl32.Vec3{0, 0, 1}
	s := Surface{Albedo: mgl32.Vec3{1, 0, 0}, Metallic: 1, Roughness: 0.5}

	out := EvalDirect(n, n, n, mgl32.Vec3{1, 1, 1}, s)
	if out.Y() != 0 || out.Z() != 0 {
		t.Errorf("metal with red albedo leaked diffuse: %v", out)
	}
	if out.X() <= 0 {
		t.Errorf("specular lobe vanished: %v", out)
	}
}

func TestEvalDirectBackfacingLight(t *testing.T) {
	n := mgl32.Vec3{0, 0, 1}
	v := mgl32.Vec3{0, 0, 1}
	l := mgl32.Vec3{0, 0, -1}
	s := Surface{Albedo: mgl32.Vec3{1, 1, 1}, Roughness: 0.5}

	if out := EvalDirect(n, v, l, mgl32.Vec3{1, 1, 1}, s); out != (mgl32.Vec3{}) {
		t.Errorf("light behind the surface contributed %v", out)
	}
}

func TestShadeZeroLights(t *testing.T) {
	n := mgl32.Vec3{0, 0, 1}
	s := Surface{Albedo: mgl32.Vec3{1, 1, 1}, Roughness: 0.5}

	out, err := Shade(n, n, mgl32.Vec3{}, nil, s)
	if err != nil {
		t.Fatal(err)
	}
	if out != (mgl32.Vec3{}) {
		t.Errorf("zero lights must accumulate exactly zero, got %v", out)
	}
}

func TestShadeDirectionalMatchesEvalDirect(t *testing.T) {
	n := mgl32.Vec3{0, 0, 1}
	s := Surface{Albedo: mgl32.Vec3{1, 1, 1}, Metallic: 0, Roughness: 1}
	light := scene.NewDirectionalLight(mgl32.Vec3{0, 0, -1}, core.ColorWhite, 1)

	out, err := Shade(n, n, mgl32.Vec3{}, []scene.Light{light}, s)
	if err != nil {
		t.Fatal(err)
	}
	approx(t, out.X(), 1/math.Pi, 0.02, "directional head-on")
}

func TestLightDirPointLight(t *testing.T) {
	light := scene.NewPointLight(mgl32.Vec3{0, 10, 0}, core.ColorWhite, 1)

	dir, err := LightDir(light, mgl32.Vec3{0, 4, 0})
	if err != nil {
		t.Fatal(err)
	}
	if dir != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("point light direction = %v", dir)
	}
}

func TestShadeUnknownLightType(t *testing.T) {
	bogus := scene.Light{Type: scene.LightType(42), Intensity: 1}
	s := Surface{Albedo: mgl32.Vec3{1, 1, 1}, Roughness: 0.5}

	_, err := Shade(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{}, []scene.Light{bogus}, s)

	var unknownErr *scene.UnknownLightTypeError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("want UnknownLightTypeError, got %v", err)
	}
	if unknownErr.Type != scene.LightType(42) {
		t.Errorf("error carries type %v", unknownErr.Type)
	}
}

func TestRadianceLinearizesColor(t *testing.T) {
	light := scene.NewPointLight(mgl32.Vec3{}, core.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}, 2)

	r := Radiance(light)
	approx(t, r.X(), 2*SRGBToLinear(0.5), 1e-6, "radiance")
}
