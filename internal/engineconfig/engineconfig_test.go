package engineconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingReturnsDefault(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "showcase.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "showcase.toml")
	p := Default()
	p.Debug.ShowFPS = true
	p.Grid.Width = 5
	p.Grid.FocusScale = 3.5
	p.Shaders.HotReload = true

	require.NoError(t, Save(path, p))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "showcase.toml")
	require.NoError(t, os.WriteFile(path, []byte("[debug]\nshow_fps = true\n\n[grid]\nwidth = 0\n"), 0644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.True(t, p.Debug.ShowFPS)
	assert.Equal(t, 8, p.Grid.Width, "non-positive width falls back")
	assert.Equal(t, Default().Window, p.Window)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "showcase.toml")
	require.NoError(t, os.WriteFile(path, []byte("[grid\nwidth = "), 0644))

	p, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), p)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SHOWCASE_GRID_WIDTH", "6")
	t.Setenv("SHOWCASE_HOT_RELOAD", "1")
	t.Setenv("SHOWCASE_SHADER_DIR", "/tmp/glsl")
	t.Setenv("SHOWCASE_TARGET_FPS", "-5")

	p := ApplyEnv(Default())
	assert.Equal(t, 6, p.Grid.Width)
	assert.True(t, p.Shaders.HotReload)
	assert.Equal(t, "/tmp/glsl", p.Shaders.Dir)
	assert.Equal(t, 60, p.Window.TargetFPS)
}
