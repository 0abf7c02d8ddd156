package shaders

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shader-showcase/internal/materials"
)

func TestEveryKindHasSources(t *testing.T) {
	var src Sources
	for _, k := range materials.Kinds() {
		vs, fs, err := src.Program(k)
		require.NoError(t, err, k)
		assert.True(t, strings.HasPrefix(vs, "#version 330"), k)
		assert.True(t, strings.HasPrefix(fs, "#version 330"), k)
		assert.Contains(t, fs, "void main", k)
		assert.Contains(t, fs, "out vec4 finalColor", k)
	}
}

func TestFragmentsDeclareMaterialUniforms(t *testing.T) {
	var src Sources
	for _, k := range materials.Kinds() {
		m := materials.MustNew(k, nil)
		_, fs, err := src.Program(k)
		require.NoError(t, err)
		for _, u := range m.Uniforms() {
			assert.Contains(t, fs, " "+u.Name, "%s should declare %s", k, u.Name)
		}
	}
}

func TestCustomVertexStages(t *testing.T) {
	var src Sources
	common, err := src.Read(CommonVertex)
	require.NoError(t, err)

	for _, k := range materials.Kinds() {
		vs, _, err := src.Program(k)
		require.NoError(t, err)
		if k.VertexShader() == "" {
			assert.Equal(t, common, vs, k)
		} else {
			assert.NotEqual(t, common, vs, k)
		}
	}
}

func TestDirShadowsEmbedded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fire.fs"), []byte("#version 330\n// edited\n"), 0644))

	src := Sources{Dir: dir}
	_, fs, err := src.Program(materials.Fire)
	require.NoError(t, err)
	assert.Contains(t, fs, "// edited")

	_, fs, err = src.Program(materials.Sparks)
	require.NoError(t, err)
	assert.Contains(t, fs, "void main")
}

func TestProgramUnknownKind(t *testing.T) {
	_, _, err := Sources{}.Program(materials.Kind(-1))
	assert.ErrorIs(t, err, materials.ErrUnknownKind)
}

func TestNamesCoverKinds(t *testing.T) {
	names := Names()
	for _, k := range materials.Kinds() {
		assert.Contains(t, names, k.FragmentShader())
	}
	assert.Contains(t, names, CommonVertex)
}

func TestChangeFor(t *testing.T) {
	tests := []struct {
		path string
		want Change
		ok   bool
	}{
		{"shaders/fire.fs", Change{Path: "shaders/fire.fs", Kind: materials.Fire}, true},
		{"/x/jackpot.vs", Change{Path: "/x/jackpot.vs", Kind: materials.Jackpot}, true},
		{"common.vs", Change{Path: "common.vs", All: true}, true},
		{"notes.txt", Change{}, false},
		{"fire.fs~", Change{}, false},
		{"unknown.fs", Change{}, false},
	}
	for _, tt := range tests {
		got, ok := changeFor(tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}

func TestWatchReportsWrites(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := Watch(ctx, dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "burst.fs"), []byte("x"), 0644))

	select {
	case c := <-changes:
		require.NoError(t, c.Err)
		assert.Equal(t, materials.Burst, c.Kind)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	for range changes {
	}
}

func TestWatchMissingDir(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestForwardQueuesFullReloadOnOverflow(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := make(chan fsnotify.Event)
	out := make(chan Change, 1)
	go forward(ctx, events, nil, out)

	write := func(name string) {
		events <- fsnotify.Event{Name: filepath.Join("shaders", name), Op: fsnotify.Write}
	}
	write("ripple.fs")
	write("fire.fs")
	// Unbuffered: this send returns only after fire.fs was handled.
	write("notes.txt")

	next := func() Change {
		select {
		case c := <-out:
			return c
		case <-time.After(5 * time.Second):
			t.Fatal("no change")
			return Change{}
		}
	}
	assert.Equal(t, materials.Ripple, next().Kind)
	assert.True(t, next().All, "dropped fire.fs must turn into a full reload")

	write("burst.fs")
	c := next()
	assert.False(t, c.All)
	assert.Equal(t, materials.Burst, c.Kind)

	cancel()
	for range out {
	}
}
