package shaders

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"shader-showcase/internal/materials"
)

//go:embed glsl
var embedded embed.FS

// CommonVertex is the vertex stage shared by every kind without its own.
const CommonVertex = "common.vs"

// Sources resolves GLSL text for a kind. Files in Dir, when set, shadow the
// embedded copies so shaders can be edited without rebuilding.
type Sources struct {
	Dir string
}

// Program returns the vertex and fragment source for k.
func (s Sources) Program(k materials.Kind) (vs, fs string, err error) {
	if !k.Valid() {
		return "", "", fmt.Errorf("%w: %d", materials.ErrUnknownKind, int(k))
	}
	vsName := k.VertexShader()
	if vsName == "" {
		vsName = CommonVertex
	}
	if vs, err = s.Read(vsName); err != nil {
		return "", "", err
	}
	if fs, err = s.Read(k.FragmentShader()); err != nil {
		return "", "", err
	}
	return vs, fs, nil
}

// Read returns one source file by name, e.g. "fire.fs".
func (s Sources) Read(name string) (string, error) {
	if s.Dir != "" {
		b, err := os.ReadFile(filepath.Join(s.Dir, name))
		if err == nil {
			return string(b), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("read shader %s: %w", name, err)
		}
	}
	b, err := embedded.ReadFile(path.Join("glsl", name))
	if err != nil {
		return "", fmt.Errorf("shader source %s: %w", name, err)
	}
	return string(b), nil
}

// Names lists the embedded source files.
func Names() []string {
	entries, _ := embedded.ReadDir("glsl")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
