package scene

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shader-showcase/internal/logger"
	"shader-showcase/internal/materials"
	"shader-showcase/internal/motion"
	"shader-showcase/internal/nav"
	"shader-showcase/internal/primitives"
	"shader-showcase/internal/shaders"
	"shader-showcase/internal/ui"
)

// blankShape is the mesh of the placeholder in the vacated cell.
const blankShape = "quad"

// Config places the selectable grid in front of the overlay camera.
type Config struct {
	// Width is the number of cells per row.
	Width  int
	Layout nav.Layout
	// CellSize is the edge length of an unfocused item; the focused one is
	// CellSize*Layout.FocusScale.
	CellSize float32
	Orbit    motion.Orbit
}

// DefaultConfig is eight columns of 0.2 cards two units in front of the
// overlay camera, with the focus slot to their right.
func DefaultConfig() Config {
	return Config{
		Width: 8,
		Layout: nav.Layout{
			Origin:     [3]float32{-1.35, 0.75, -2},
			Spacing:    [2]float32{0.25, 0.25},
			Focus:      [3]float32{1, 0.1, -2},
			FocusScale: 4,
		},
		CellSize: 0.2,
		Orbit:    motion.DefaultOrbit,
	}
}

// Entity is one drawn mesh. Position, Rotation and Scale are rewritten every
// Update; the entry keeps what the catalog asked for.
type Entity struct {
	Entry    materials.Entry
	Position [3]float32
	Rotation motion.Rotation
	Scale    float32
	Focused  bool
}

// Scene holds the showcase: background meshes under an orbiting camera, and
// the selectable grid plus the blank placeholder under a fixed overlay camera.
type Scene struct {
	Camera  rl.Camera3D
	Overlay rl.Camera3D

	cfg        Config
	nav        *nav.Navigator
	items      []*Entity
	blank      *Entity
	background []*Entity
	transforms []nav.Transform
	time       float32
	lastIndex  int

	lib      *shaders.Library
	prims    *primitives.Registry
	log      *logger.Logger
	reported map[string]bool
}

// New builds the scene from cat. It makes no GPU calls, so it can run before
// the window exists. lib and prims may be nil when the scene is never drawn;
// when prims is set, every entry's shape must be one it can draw.
func New(cfg Config, cat *materials.Catalog, lib *shaders.Library, prims *primitives.Registry, log *logger.Logger) (*Scene, error) {
	if cat == nil || len(cat.Grid) == 0 {
		return nil, fmt.Errorf("scene: catalog has no grid entries")
	}
	if cfg.Width <= 0 {
		return nil, fmt.Errorf("scene: grid width %d", cfg.Width)
	}
	if prims != nil {
		for _, e := range append(append([]materials.Entry{}, cat.Grid...), cat.Background...) {
			if !prims.Has(e.Shape) {
				return nil, fmt.Errorf("scene: %s: unknown shape %q", e.Name, e.Shape)
			}
		}
		if !prims.Has(blankShape) {
			return nil, fmt.Errorf("scene: blank: unknown shape %q", blankShape)
		}
	}
	if log == nil {
		log = logger.New("")
	}
	s := &Scene{
		cfg:      cfg,
		nav:      nav.New(len(cat.Grid), cfg.Width),
		lib:      lib,
		prims:    prims,
		log:      log,
		reported: make(map[string]bool),
	}
	for _, e := range cat.Grid {
		s.items = append(s.items, &Entity{Entry: e, Scale: 1})
	}
	s.blank = &Entity{
		Entry: materials.Entry{Name: "blank", Material: materials.MustNew(materials.Blank, nil), Shape: blankShape},
		Scale: 1,
	}
	for _, e := range cat.Background {
		s.background = append(s.background, &Entity{Entry: e, Position: e.Position, Scale: 1})
	}

	s.Camera.Position = rl.NewVector3(0, 0, cfg.Orbit.Distance)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective

	s.Overlay.Position = rl.NewVector3(0, 0, 0)
	s.Overlay.Target = rl.NewVector3(0, 0, -1)
	s.Overlay.Up = rl.NewVector3(0, 1, 0)
	s.Overlay.Fovy = 45
	s.Overlay.Projection = rl.CameraPerspective

	s.lastIndex = -1
	s.Update(0)
	return s, nil
}

// Nav returns the selection navigator. Input handlers move it; the next
// Update applies the highlight.
func (s *Scene) Nav() *nav.Navigator { return s.nav }

// Items returns the selectable entities in grid order.
func (s *Scene) Items() []*Entity { return s.items }

// Blank returns the placeholder that fills the focused item's cell.
func (s *Scene) Blank() *Entity { return s.blank }

// Background returns the entities drawn under the orbiting camera.
func (s *Scene) Background() []*Entity { return s.background }

// Focused returns the selected entity.
func (s *Scene) Focused() *Entity { return s.items[s.nav.Index()] }

// Time returns the scene clock in seconds.
func (s *Scene) Time() float32 { return s.time }

// Update advances the clock by dt seconds, moves the orbit camera, spins and
// flickers background meshes and lays out the grid for the current selection.
func (s *Scene) Update(dt float32) {
	s.time += dt

	pos := s.cfg.Orbit.Position(s.time)
	up := s.cfg.Orbit.Up(s.time)
	s.Camera.Position = rl.NewVector3(pos[0], pos[1], pos[2])
	s.Camera.Up = rl.NewVector3(up[0], up[1], up[2])

	for _, e := range s.background {
		s.animate(e, dt)
		if e.Entry.Flicker {
			e.Scale = motion.Flicker(s.time)
		}
	}

	var blank nav.Transform
	s.transforms, blank = s.cfg.Layout.Apply(s.nav, s.transforms)
	for i, t := range s.transforms {
		e := s.items[i]
		e.Position = t.Position
		e.Scale = t.Scale
		e.Focused = t.Focused
		s.animate(e, dt)
	}
	s.blank.Position = blank.Position
	s.blank.Scale = blank.Scale

	if idx := s.nav.Index(); idx != s.lastIndex {
		s.lastIndex = idx
		s.log.Infof("selected %d/%d %s", idx+1, s.nav.Count(), s.Focused().Entry.Name)
	}
}

// animate spins rotating entities. Grid scale belongs to the layout, so only
// background entities flicker.
func (s *Scene) animate(e *Entity, dt float32) {
	if e.Entry.Rotate {
		e.Rotation = motion.Spin(e.Rotation, dt)
	}
}

// Selection describes the focused entity for the inspector.
func (s *Scene) Selection() ui.Selection {
	e := s.Focused()
	sel := ui.Selection{
		Index: s.nav.Index(),
		Count: s.nav.Count(),
		Label: e.Entry.Material.Label(),
		Shape: e.Entry.Shape,
	}
	for _, f := range e.Entry.Material.Describe() {
		sel.Params = append(sel.Params, ui.Param{Name: f.Name, Value: f.Value})
	}
	return sel
}

// Model returns the model matrix for an entity transform: scale, then rotate, then translate.
func Model(pos [3]float32, rot motion.Rotation, scale float32) rl.Matrix {
	m := rl.MatrixScale(scale, scale, scale)
	m = rl.MatrixMultiply(m, rl.MatrixRotateXYZ(rl.NewVector3(rot.X, rot.Y, rot.Z)))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(pos[0], pos[1], pos[2]))
}

// Draw renders the background under the orbit camera, then the blank and the
// grid under the overlay camera. Call after ClearBackground and before 2D overlays.
func (s *Scene) Draw() {
	if s.lib == nil || s.prims == nil {
		return
	}
	view := [3]float32{s.Camera.Position.X, s.Camera.Position.Y, s.Camera.Position.Z}
	rl.BeginMode3D(s.Camera)
	for _, e := range s.background {
		s.drawEntity(e, 1, view)
	}
	rl.EndMode3D()

	rl.BeginMode3D(s.Overlay)
	s.drawEntity(s.blank, s.cfg.CellSize, [3]float32{})
	for _, e := range s.items {
		s.drawEntity(e, s.cfg.CellSize, [3]float32{})
	}
	rl.EndMode3D()
}

func (s *Scene) drawEntity(e *Entity, size float32, view [3]float32) {
	scale := e.Scale * size
	if scale == 0 {
		return
	}
	pass, err := s.lib.Bind(e.Entry.Material, shaders.Frame{Time: s.time, ViewPos: view})
	if err != nil && !s.reported[e.Entry.Name] {
		s.reported[e.Entry.Name] = true
		s.log.Errorf("draw %s: %v", e.Entry.Name, err)
	}
	s.prims.Draw(e.Entry.Shape, Model(e.Position, e.Rotation, scale), pass)
}

// ClearReported lets draw errors be logged again, e.g. after a shader reload.
func (s *Scene) ClearReported() {
	clear(s.reported)
}
