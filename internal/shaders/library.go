package shaders

import (
	"errors"
	"fmt"
	"image"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shader-showcase/internal/logger"
	"shader-showcase/internal/materials"
)

// ErrCompile is returned when a kind's program fails to compile or link.
var ErrCompile = errors.New("shader compile failed")

// TextureSource produces the image behind a named texture uniform.
type TextureSource func(name string) (image.Image, error)

// Frame carries the per-frame inputs every program receives.
type Frame struct {
	Time    float32
	ViewPos [3]float32
}

// Pass is what a draw call needs after Bind: the program plus the texture
// that goes into the albedo slot ("texture0"), if any.
type Pass struct {
	Shader      rl.Shader
	Texture     rl.Texture2D
	HasTexture  bool
	DoubleSided bool
}

type program struct {
	shader rl.Shader
	locs   map[string]int32
}

func (p *program) loc(name string) int32 {
	if l, ok := p.locs[name]; ok {
		return l
	}
	l := rl.GetShaderLocation(p.shader, name)
	p.locs[name] = l
	return l
}

// Library compiles one program per material kind on first use. Programs are
// created lazily so GPU resources are allocated after the window exists. All
// methods must be called from the main (GL) goroutine.
type Library struct {
	sources  Sources
	textures TextureSource
	log      *logger.Logger

	programs map[materials.Kind]*program
	failed   map[materials.Kind]bool
	fallback *program
	texCache map[string]rl.Texture2D
}

// NewLibrary returns an empty library. textures may be nil when no material
// samples a texture.
func NewLibrary(src Sources, textures TextureSource, log *logger.Logger) *Library {
	return &Library{
		sources:  src,
		textures: textures,
		log:      log,
		programs: make(map[materials.Kind]*program),
		failed:   make(map[materials.Kind]bool),
		texCache: make(map[string]rl.Texture2D),
	}
}

// Bind makes m's program current for the next draw: it compiles the program if
// needed and uploads time, viewPos and every material uniform. When the kind
// fails to compile, Bind returns the fallback program together with an error
// wrapping ErrCompile; later calls use the fallback silently until Reload.
func (l *Library) Bind(m materials.Material, f Frame) (Pass, error) {
	p, err := l.program(m.Kind)
	pass := Pass{Shader: p.shader, DoubleSided: m.Kind.DoubleSided()}

	t := []float32{f.Time}
	view := []float32{f.ViewPos[0], f.ViewPos[1], f.ViewPos[2]}
	if loc := p.loc("time"); loc >= 0 {
		rl.SetShaderValue(p.shader, loc, t, rl.ShaderUniformFloat)
	}
	if loc := p.loc("viewPos"); loc >= 0 {
		rl.SetShaderValueV(p.shader, loc, view, rl.ShaderUniformVec3, 1)
	}
	if p == l.fallback {
		return pass, err
	}

	for _, u := range m.Uniforms() {
		loc := p.loc(u.Name)
		if loc < 0 {
			continue
		}
		switch u.Type {
		case materials.UniformFloat:
			rl.SetShaderValue(p.shader, loc, u.Values, rl.ShaderUniformFloat)
		case materials.UniformVec4:
			rl.SetShaderValue(p.shader, loc, u.Values, rl.ShaderUniformVec4)
		case materials.UniformVec4Array:
			rl.SetShaderValueV(p.shader, loc, u.Values, rl.ShaderUniformVec4, int32(len(u.Values)/4))
		case materials.UniformTexture:
			tex, terr := l.texture(u.Texture)
			if terr != nil {
				return pass, terr
			}
			pass.Texture = tex
			pass.HasTexture = true
		}
	}
	return pass, err
}

// Reload drops k's program so the next Bind recompiles it from source.
func (l *Library) Reload(k materials.Kind) {
	if p, ok := l.programs[k]; ok {
		rl.UnloadShader(p.shader)
		delete(l.programs, k)
	}
	delete(l.failed, k)
}

// ReloadAll drops every compiled program.
func (l *Library) ReloadAll() {
	for k := range l.programs {
		l.Reload(k)
	}
	clear(l.failed)
}

// Compiled reports whether k currently has its own program.
func (l *Library) Compiled(k materials.Kind) bool {
	_, ok := l.programs[k]
	return ok
}

// Close releases every program and texture.
func (l *Library) Close() {
	l.ReloadAll()
	if l.fallback != nil {
		rl.UnloadShader(l.fallback.shader)
		l.fallback = nil
	}
	for name, tex := range l.texCache {
		rl.UnloadTexture(tex)
		delete(l.texCache, name)
	}
}

func (l *Library) program(k materials.Kind) (*program, error) {
	if p, ok := l.programs[k]; ok {
		return p, nil
	}
	if l.failed[k] {
		return l.fallbackProgram(), nil
	}
	p, err := l.compile(k)
	if err != nil {
		l.failed[k] = true
		if l.log != nil {
			l.log.Errorf("shader %s: %v", k, err)
		}
		return l.fallbackProgram(), err
	}
	l.programs[k] = p
	return p, nil
}

func (l *Library) compile(k materials.Kind) (*program, error) {
	vs, fs, err := l.sources.Program(k)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	if !strings.Contains(fs, "void main") {
		return nil, fmt.Errorf("%w: %s has no main", ErrCompile, k.FragmentShader())
	}
	shader := rl.LoadShaderFromMemory(vs, fs)
	if !rl.IsShaderValid(shader) {
		return nil, fmt.Errorf("%w: %s", ErrCompile, k)
	}
	return &program{shader: shader, locs: make(map[string]int32)}, nil
}

func (l *Library) fallbackProgram() *program {
	if l.fallback == nil {
		vs, _ := l.sources.Read(CommonVertex)
		fs, _ := l.sources.Read(materials.Blank.FragmentShader())
		l.fallback = &program{shader: rl.LoadShaderFromMemory(vs, fs), locs: make(map[string]int32)}
	}
	return l.fallback
}

func (l *Library) texture(name string) (rl.Texture2D, error) {
	if tex, ok := l.texCache[name]; ok {
		return tex, nil
	}
	if l.textures == nil {
		return rl.Texture2D{}, fmt.Errorf("texture %q: no texture source", name)
	}
	img, err := l.textures(name)
	if err != nil {
		return rl.Texture2D{}, fmt.Errorf("texture %q: %w", name, err)
	}
	rimg := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(rimg)
	rl.UnloadImage(rimg)
	rl.SetTextureWrap(tex, rl.WrapRepeat)
	l.texCache[name] = tex
	return tex, nil
}
