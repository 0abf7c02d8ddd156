package primitives

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"shader-showcase/internal/shaders"
)

// defaultSegments is the ring/slice count for round shapes without one.
const defaultSegments = 16

// meshBuilders creates the raylib mesh for each shape type from its def.
var meshBuilders = map[string]func(d PrimitiveDef) rl.Mesh{
	"quad": func(d PrimitiveDef) rl.Mesh { return rl.GenMeshPlane(d.Size[0], d.Size[1], 1, 1) },
	"plane": func(d PrimitiveDef) rl.Mesh {
		return rl.GenMeshPlane(d.Size[0], d.Size[1], d.Segments, d.Segments)
	},
	"cube": func(d PrimitiveDef) rl.Mesh { return rl.GenMeshCube(d.Size[0], d.Size[1], d.Size[2]) },
	// Radius half the size so diameter matches the cube side.
	"sphere": func(d PrimitiveDef) rl.Mesh {
		return rl.GenMeshSphere(d.Size[0]/2, d.Segments, d.Segments)
	},
	"cylinder": func(d PrimitiveDef) rl.Mesh {
		return rl.GenMeshCylinder(d.Size[0]/2, d.Size[1], d.Segments)
	},
}

// BaseTransform returns the model-space transform applied before an entity's
// own. Flat shapes are generated in XZ facing +Y; they become cards in XY with
// texture v pointing up and are drawn double sided.
func BaseTransform(d PrimitiveDef) (m rl.Matrix, card bool) {
	switch d.Type {
	case "quad", "plane":
		return rl.MatrixRotateX(-math32.Pi / 2), true
	case "cylinder":
		// Raylib cylinder: base Y=0, top Y=height. Offset so center is at the origin.
		return rl.MatrixTranslate(0, -d.Size[1]/2, 0), false
	}
	return rl.MatrixIdentity(), false
}

// cached holds a shape's mesh and its model-space base transform.
type cached struct {
	mesh rl.Mesh
	base rl.Matrix
	card bool
}

// Registry maps shape names to meshes. Meshes are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
// One material is shared by every draw; its shader and albedo texture are
// swapped per call.
type Registry struct {
	defs     map[string]PrimitiveDef
	cache    map[string]cached
	mtl      rl.Material
	mtlReady bool
	white    rl.Texture2D
}

// NewRegistry returns a registry for the given shape defs. Defs with unknown
// types are ignored.
func NewRegistry(defs []PrimitiveDef) *Registry {
	r := &Registry{defs: make(map[string]PrimitiveDef), cache: make(map[string]cached)}
	for _, d := range defs {
		if _, ok := meshBuilders[d.Type]; ok {
			r.defs[d.Type] = d.withDefaults()
		}
	}
	return r
}

// Has reports whether shape can be drawn.
func (r *Registry) Has(shape string) bool {
	_, ok := r.defs[shape]
	return ok
}

// Def returns the definition behind shape.
func (r *Registry) Def(shape string) (PrimitiveDef, bool) {
	d, ok := r.defs[shape]
	return d, ok
}

func (r *Registry) ensure(shape string) (cached, bool) {
	if c, ok := r.cache[shape]; ok {
		return c, true
	}
	d, ok := r.defs[shape]
	if !ok {
		return cached{}, false
	}
	if !r.mtlReady {
		r.mtl = rl.LoadMaterialDefault()
		if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Color = rl.White
			r.white = albedo.Texture
		}
		r.mtlReady = true
	}
	base, card := BaseTransform(d)
	c := cached{mesh: meshBuilders[shape](d), base: base, card: card}
	r.cache[shape] = c
	return c, true
}

// Draw draws shape with the bound pass and the given model transform.
// Must be called between BeginMode3D and EndMode3D. Unknown shapes are skipped.
func (r *Registry) Draw(shape string, model rl.Matrix, pass shaders.Pass) {
	c, ok := r.ensure(shape)
	if !ok {
		return
	}
	r.mtl.Shader = pass.Shader
	tex := r.white
	if pass.HasTexture {
		tex = pass.Texture
	}
	rl.SetMaterialTexture(&r.mtl, rl.MapAlbedo, tex)

	twoSided := pass.DoubleSided || c.card
	if twoSided {
		rl.DisableBackfaceCulling()
	}
	rl.DrawMesh(c.mesh, r.mtl, rl.MatrixMultiply(c.base, model))
	if twoSided {
		rl.EnableBackfaceCulling()
	}
}

// Close unloads every mesh created so far.
func (r *Registry) Close() {
	for shape, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, shape)
	}
}
