package gpu

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"pbr-engine/core"
	"pbr-engine/scene"
)

// Kind tags the union arm a Value carries.
type Kind uint8

const (
	KindFloat Kind = iota
	KindInt
	KindVec2
	KindVec3
	KindVec4
	KindMat4
	KindTexture
)

// Value is a tagged union over the uniform types the engine can upload:
// scalar float/int, 2/3/4-component vector, 4x4 matrix, or texture reference.
// The engine never owns a referenced texture; it only uses the handle for the
// duration of the draw call.
type Value struct {
	kind Kind
	vec  [4]float32
	i    int32
	mat  mgl32.Mat4
	tex  *scene.Texture
}

func Float(v float32) Value { return Value{kind: KindFloat, vec: [4]float32{v}} }
func Int(v int32) Value     { return Value{kind: KindInt, i: v} }

func Vec2(v mgl32.Vec2) Value {
	return Value{kind: KindVec2, vec: [4]float32{v.X(), v.Y()}}
}

func Vec3(v mgl32.Vec3) Value {
	return Value{kind: KindVec3, vec: [4]float32{v.X(), v.Y(), v.Z()}}
}

func Vec4(v mgl32.Vec4) Value {
	return Value{kind: KindVec4, vec: [4]float32{v.X(), v.Y(), v.Z(), v.W()}}
}

func Mat4(m mgl32.Mat4) Value { return Value{kind: KindMat4, mat: m} }

// RGB packs a color's RGB channels as a vec3 uniform.
func RGB(c core.Color) Value {
	return Value{kind: KindVec3, vec: [4]float32{c.R, c.G, c.B}}
}

// Sampler references a texture. The texture must be uploaded before the
// first draw that uses it.
func Sampler(t *scene.Texture) Value { return Value{kind: KindTexture, tex: t} }

// Kind returns the union tag.
func (v Value) Kind() Kind { return v.kind }

// Texture returns the referenced texture for KindTexture values, else nil.
func (v Value) Texture() *scene.Texture { return v.tex }

// Map is a uniform map: dotted/indexed path strings to typed values.
// Keys are unique; insertion order is irrelevant.
type Map map[string]Value

// Clone returns a shallow copy, used to extend a shared per-frame map with
// per-draw entries.
func (m Map) Clone() Map {
	out := make(Map, len(m)+8)
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Dispatcher resolves uniform maps against a program's location table and
// issues the type-appropriate upload call per entry. Sampler uniforms are
// assigned texture units in the order their keys are first encountered
// (sorted key order, so assignment is deterministic); assignments persist
// for the dispatcher's lifetime so repeated calls never thrash units.
type Dispatcher struct {
	backend  Backend
	units    map[string]int
	nextUnit int
}

func NewDispatcher(b Backend) *Dispatcher {
	return &Dispatcher{
		backend: b,
		units:   make(map[string]int),
	}
}

// Apply uploads every entry of uniforms that resolves to a declared location
// in prog. Keys with no location are skipped silently: defines routinely
// eliminate declarations (a light index beyond the compiled LIGHT_COUNT, a
// disabled feature block), and that must not fail the draw.
//
// The program must already be in use.
func (d *Dispatcher) Apply(prog *Program, uniforms Map) error {
	keys := make([]string, 0, len(uniforms))
	for k := range uniforms {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		loc, ok := prog.UniformLocation(key)
		if !ok {
			continue
		}
		v := uniforms[key]
		switch v.kind {
		case KindFloat:
			d.backend.Uniform1f(loc, v.vec[0])
		case KindInt:
			d.backend.Uniform1i(loc, v.i)
		case KindVec2:
			d.backend.Uniform2f(loc, v.vec[0], v.vec[1])
		case KindVec3:
			d.backend.Uniform3f(loc, v.vec[0], v.vec[1], v.vec[2])
		case KindVec4:
			d.backend.Uniform4f(loc, v.vec[0], v.vec[1], v.vec[2], v.vec[3])
		case KindMat4:
			d.backend.UniformMatrix4(loc, v.mat)
		case KindTexture:
			if v.tex == nil || v.tex.GLID == 0 {
				return &ResourceNotReadyError{Resource: key}
			}
			unit := d.unitFor(key)
			d.backend.BindTexture(unit, v.tex.GLID)
			d.backend.Uniform1i(loc, int32(unit))
		}
	}
	return nil
}

// Unit returns the texture unit assigned to a sampler key, if any.
func (d *Dispatcher) Unit(key string) (int, bool) {
	u, ok := d.units[key]
	return u, ok
}

func (d *Dispatcher) unitFor(key string) int {
	if u, ok := d.units[key]; ok {
		return u
	}
	u := d.nextUnit
	d.nextUnit++
	d.units[key] = u
	return u
}
