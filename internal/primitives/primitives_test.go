package primitives

import (
	"os"
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDefs(t *testing.T) {
	r := NewRegistry(DefaultDefs())
	for _, shape := range []string{"quad", "plane", "cube", "sphere", "cylinder"} {
		assert.True(t, r.Has(shape), shape)
	}
	assert.False(t, r.Has("torus"))

	d, ok := r.Def("sphere")
	require.True(t, ok)
	assert.Equal(t, 24, d.Segments)
	d, _ = r.Def("cube")
	assert.Equal(t, defaultSegments, d.Segments)
}

func TestLoadDefsOverlay(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sphere.yaml"), []byte("type: sphere\nsize: [2, 2, 2]\nsegments: 8\n"), 0644))

	defs, err := LoadDefs(dir)
	require.NoError(t, err)
	r := NewRegistry(defs)
	d, ok := r.Def("sphere")
	require.True(t, ok)
	assert.Equal(t, [3]float32{2, 2, 2}, d.Size)
	assert.Equal(t, 8, d.Segments)
	assert.True(t, r.Has("quad"))
}

func TestLoadDefsErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "torus.yaml"), []byte("type: torus\n"), 0644))
	_, err := LoadDefs(dir)
	assert.ErrorContains(t, err, "unknown type")

	dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("type: [\n"), 0644))
	_, err = LoadDefs(dir)
	assert.Error(t, err)

	defs, err := LoadDefs(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Len(t, defs, 5)
}

func TestQuadBaseFacesCamera(t *testing.T) {
	base, card := BaseTransform(PrimitiveDef{Type: "quad"})
	require.True(t, card)

	// Plane vertex at +Z edge ends up at +Y so texture v points up.
	v := rl.Vector3Transform(rl.NewVector3(0, 0, 0.5), base)
	assert.InDelta(t, 0.5, v.Y, 1e-5)
	assert.InDelta(t, 0, v.Z, 1e-5)

	_, card = BaseTransform(PrimitiveDef{Type: "cube"})
	assert.False(t, card)
}
