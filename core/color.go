package core

// Color is an RGBA color with float32 channels in [0,1].
// Whether the RGB channels are sRGB-encoded or linear depends on where the
// value sits in the pipeline: host-side material and light colors are
// sRGB-encoded; the fragment shader linearizes them before lighting.
type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
	ColorRed   = Color{1, 0, 0, 1}
	ColorGreen = Color{0, 1, 0, 1}
	ColorBlue  = Color{0, 0, 1, 1}
)

// ColorFromRGB8 normalizes 0–255 channel values to [0,1] with opaque alpha.
// This is the only conversion the host performs; the sRGB-to-linear transfer
// happens in the shading model, never here.
func ColorFromRGB8(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: 1,
	}
}

// ColorFromRGBA8 normalizes 0–255 RGBA channel values to [0,1].
func ColorFromRGBA8(r, g, b, a uint8) Color {
	c := ColorFromRGB8(r, g, b)
	c.A = float32(a) / 255.0
	return c
}
