package engineconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"shader-showcase/internal/env"
)

// DefaultPath is the prefs file, relative to the process working directory.
const DefaultPath = "config/showcase.toml"

// Prefs holds showcase preferences. Persisted across runs with "cmd save".
type Prefs struct {
	Window  WindowPrefs `toml:"window"`
	Grid    GridPrefs   `toml:"grid"`
	Debug   DebugPrefs  `toml:"debug"`
	Shaders ShaderPrefs `toml:"shaders"`
}

type WindowPrefs struct {
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
	Fullscreen bool `toml:"fullscreen"`
	TargetFPS  int  `toml:"target_fps"`
}

type GridPrefs struct {
	// Width is the number of cells per row used by up/down navigation.
	Width      int     `toml:"width"`
	FocusScale float32 `toml:"focus_scale"`
	// Catalog optionally replaces the embedded material catalog.
	Catalog string `toml:"catalog,omitempty"`
}

type DebugPrefs struct {
	ShowFPS      bool `toml:"show_fps"`
	ShowMemAlloc bool `toml:"show_memalloc"`
}

type ShaderPrefs struct {
	// Dir holds GLSL files that shadow the embedded sources.
	Dir       string `toml:"dir"`
	HotReload bool   `toml:"hot_reload"`
}

// Default returns the built-in preferences.
func Default() Prefs {
	return Prefs{
		Window:  WindowPrefs{Width: 1280, Height: 720, TargetFPS: 60},
		Grid:    GridPrefs{Width: 8, FocusScale: 4},
		Shaders: ShaderPrefs{Dir: "assets/shaders"},
	}
}

// Load reads prefs from path. Keys missing from the file keep their defaults.
// A missing file yields Default() and no error; an invalid file yields
// Default() and the parse error so the caller can report it.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("read prefs: %w", err)
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	return p.sanitized(), nil
}

// Save writes prefs to path, creating its directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides prefs from SHOWCASE_* environment variables.
func ApplyEnv(p Prefs) Prefs {
	p.Window.Fullscreen = env.Bool("SHOWCASE_FULLSCREEN", p.Window.Fullscreen)
	p.Window.TargetFPS = env.Int("SHOWCASE_TARGET_FPS", p.Window.TargetFPS)
	p.Grid.Width = env.Int("SHOWCASE_GRID_WIDTH", p.Grid.Width)
	p.Grid.Catalog = env.String("SHOWCASE_CATALOG", p.Grid.Catalog)
	p.Shaders.Dir = env.String("SHOWCASE_SHADER_DIR", p.Shaders.Dir)
	p.Shaders.HotReload = env.Bool("SHOWCASE_HOT_RELOAD", p.Shaders.HotReload)
	return p.sanitized()
}

// sanitized replaces values the showcase cannot run with by defaults.
func (p Prefs) sanitized() Prefs {
	def := Default()
	if p.Window.Width <= 0 || p.Window.Height <= 0 {
		p.Window.Width, p.Window.Height = def.Window.Width, def.Window.Height
	}
	if p.Window.TargetFPS <= 0 {
		p.Window.TargetFPS = def.Window.TargetFPS
	}
	if p.Grid.Width <= 0 {
		p.Grid.Width = def.Grid.Width
	}
	if p.Grid.FocusScale <= 0 {
		p.Grid.FocusScale = def.Grid.FocusScale
	}
	return p
}
