// Demo: a grid of spheres sweeping metallic over rows and roughness over
// columns, lit by orbiting point lights and one directional light.
//
// Controls:
//
//	drag   orbit the camera
//	scroll zoom
//	I      toggle image-based lighting
//	ESC    quit
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"pbr-engine/core"
	"pbr-engine/pbr"
	"pbr-engine/renderer"
	"pbr-engine/scene"
)

const (
	gridRows = 6
	gridCols = 6
	spacing  = 2.2
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}
}

func run() error {
	window, err := core.NewWindow(core.DefaultWindowConfig())
	if err != nil {
		return err
	}
	defer window.Destroy()

	r, err := renderer.NewGL(renderer.DefaultConfig(window.Width, window.Height))
	if err != nil {
		return err
	}
	defer r.Destroy()

	sphere, err := r.UploadGeometry(scene.CreateSphere(0.8, 48, 32))
	if err != nil {
		return err
	}

	materials := buildGrid()

	sky := pbr.SkyGradient{
		Zenith:  core.ColorFromRGB8(64, 110, 180),
		Horizon: core.ColorFromRGB8(200, 210, 225),
		Ground:  core.ColorFromRGB8(60, 55, 50),
	}
	if err := r.EnableIBL(sky, 32); err != nil {
		return err
	}

	camera := scene.NewOrbitCamera(
		mgl32.Vec3{0, 0, 0},
		float32(gridCols)*spacing*1.1,
		mgl32.DegToRad(45),
		float32(window.Width)/float32(window.Height),
	)

	window.SetScrollCallback(func(_, yoff float64) {
		camera.Zoom(float32(-yoff) * 0.8)
	})
	window.SetKeyCallback(func(key glfw.Key) {
		switch key {
		case glfw.KeyI:
			r.SetIBLEnabled(!r.IBLEnabled())
		case glfw.KeyEscape:
			window.Handle.SetShouldClose(true)
		}
	})

	var dragging bool
	var lastX, lastY float64

	start := glfw.GetTime()
	width, height := window.Width, window.Height

	for !window.ShouldClose() {
		window.PollEvents()

		if window.Width != width || window.Height != height {
			width, height = window.Width, window.Height
			r.Resize(width, height)
			camera.UpdateAspectRatio(float32(width), float32(height))
		}

		if window.IsMouseButtonPressed(glfw.MouseButtonLeft) {
			x, y := window.GetCursorPos()
			if dragging {
				camera.Orbit(float32(x-lastX)*0.005, float32(y-lastY)*0.005)
			}
			lastX, lastY = x, y
			dragging = true
		} else {
			dragging = false
		}

		t := float32(glfw.GetTime() - start)
		lights := frameLights(t)

		r.Clear(core.ColorFromRGB8(18, 20, 26))
		if err := r.BeginFrame(&camera.Camera, lights); err != nil {
			return err
		}
		for _, m := range materials {
			if err := r.Draw(sphere, m.model, m.material); err != nil {
				return err
			}
		}

		window.SwapBuffers()
	}
	return nil
}

type gridEntry struct {
	model    mgl32.Mat4
	material scene.Material
}

// buildGrid lays spheres out on the XY plane: metallic rises with the row,
// roughness with the column.
func buildGrid() []gridEntry {
	entries := make([]gridEntry, 0, gridRows*gridCols)
	albedo := core.ColorFromRGB8(180, 40, 40)

	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			metallic := float32(row) / float32(gridRows-1)
			roughness := float32(col) / float32(gridCols-1)

			x := (float32(col) - float32(gridCols-1)/2) * spacing
			y := (float32(row) - float32(gridRows-1)/2) * spacing

			entries = append(entries, gridEntry{
				model: mgl32.Translate3D(x, y, 0),
				material: scene.NewMaterial(
					fmt.Sprintf("sphere-%d-%d", row, col),
					albedo, metallic, roughness,
				),
			})
		}
	}
	return entries
}

// frameLights animates two point lights orbiting the grid plus one fixed
// directional fill.
func frameLights(t float32) []scene.Light {
	orbit := float32(gridCols) * spacing * 0.7
	a := float64(t * 0.6)
	b := a + math.Pi

	return []scene.Light{
		scene.NewPointLight(
			mgl32.Vec3{orbit * float32(math.Cos(a)), 3, orbit * float32(math.Sin(a))},
			core.ColorWhite, 3,
		),
		scene.NewPointLight(
			mgl32.Vec3{orbit * float32(math.Cos(b)), -3, orbit * float32(math.Sin(b))},
			core.ColorFromRGB8(255, 214, 170), 2,
		),
		scene.NewDirectionalLight(
			mgl32.Vec3{-0.3, -1, -0.5}, core.ColorWhite, 1.5,
		),
	}
}
