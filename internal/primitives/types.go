package primitives

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// PrimitiveDef is the YAML definition for a primitive shape (e.g. assets/primitives/sphere.yaml).
// Size is the mesh extent before any entity scale; Segments is the ring/slice count for
// round shapes.
type PrimitiveDef struct {
	Type     string     `yaml:"type"`
	Size     [3]float32 `yaml:"size,omitempty"`
	Segments int        `yaml:"segments,omitempty"`
}

//go:embed defs.yaml
var defaultDefsYAML []byte

// DefaultDefs returns the built-in shapes: quad, plane, cube, sphere, cylinder.
func DefaultDefs() []PrimitiveDef {
	var defs []PrimitiveDef
	if err := yaml.Unmarshal(defaultDefsYAML, &defs); err != nil {
		panic(fmt.Sprintf("primitives: embedded defs: %v", err))
	}
	return defs
}

// LoadDefs returns DefaultDefs overlaid with every *.yaml file in dir. Each file
// holds one PrimitiveDef; a file whose type matches a built-in replaces it. A
// missing dir is not an error.
func LoadDefs(dir string) ([]PrimitiveDef, error) {
	byType := make(map[string]PrimitiveDef)
	for _, d := range DefaultDefs() {
		byType[d.Type] = d
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("primitive %s: %w", path, err)
		}
		var d PrimitiveDef
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("primitive %s: %w", path, err)
		}
		if _, ok := meshBuilders[d.Type]; !ok {
			return nil, fmt.Errorf("primitive %s: unknown type %q", path, d.Type)
		}
		byType[d.Type] = d
	}
	defs := make([]PrimitiveDef, 0, len(byType))
	for _, d := range byType {
		defs = append(defs, d)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Type < defs[j].Type })
	return defs, nil
}

// withDefaults fills zero sizes and segment counts.
func (d PrimitiveDef) withDefaults() PrimitiveDef {
	for i := range d.Size {
		if d.Size[i] == 0 {
			d.Size[i] = 1
		}
	}
	if d.Segments <= 0 {
		d.Segments = defaultSegments
	}
	return d
}
