package materials

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Entry places one material in the showcase.
type Entry struct {
	Name     string
	Material Material
	Shape    string
	Position [3]float32
	Rotate   bool
	Flicker  bool
}

// Catalog is the full showcase layout: the selectable grid and the decorative
// background meshes.
type Catalog struct {
	Grid       []Entry
	Background []Entry
}

type catalogFile struct {
	Grid       []entryFile `yaml:"grid"`
	Background []entryFile `yaml:"background"`
}

type entryFile struct {
	Name     string     `yaml:"name"`
	Kind     string     `yaml:"kind"`
	Shape    string     `yaml:"shape"`
	Position [3]float32 `yaml:"position"`
	Rotate   bool       `yaml:"rotate"`
	Flicker  bool       `yaml:"flicker"`
	Params   paramsFile `yaml:"params"`
}

// paramsFile is the union of every effect's parameters. Fields are copied by
// name onto the kind's record; zero values keep the kind's defaults.
type paramsFile struct {
	BaseColor     Color        `yaml:"base_color"`
	MidColor      Color        `yaml:"mid_color"`
	EdgeColor     Color        `yaml:"edge_color"`
	Sharpness     float32      `yaml:"sharpness"`
	Speed         float32      `yaml:"speed"`
	Angle         float32      `yaml:"angle"`
	LineThickness float32      `yaml:"line_thickness"`
	LayerCount    int          `yaml:"layer_count"`
	Duration      float32      `yaml:"duration"`
	RingThickness float32      `yaml:"ring_thickness"`
	Curves        int          `yaml:"curves"`
	Texture       string       `yaml:"texture"`
	ControlPoints [][4]float32 `yaml:"control_points" copier:"-"`
}

// DefaultCatalog returns the built-in showcase layout.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog reads a catalog YAML file from path.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a catalog YAML document. The grid must not be empty.
// Unknown keys and params the entry's kind does not take are errors.
func ParseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if len(f.Grid) == 0 {
		return nil, fmt.Errorf("catalog: grid has no entries")
	}
	c := &Catalog{}
	for i, e := range f.Grid {
		if e.Flicker {
			return nil, fmt.Errorf("catalog: grid[%d]: flicker is only supported on background entries", i)
		}
		entry, err := e.build()
		if err != nil {
			return nil, fmt.Errorf("catalog: grid[%d]: %w", i, err)
		}
		c.Grid = append(c.Grid, entry)
	}
	for i, e := range f.Background {
		entry, err := e.build()
		if err != nil {
			return nil, fmt.Errorf("catalog: background[%d]: %w", i, err)
		}
		c.Background = append(c.Background, entry)
	}
	return c, nil
}

func (e entryFile) build() (Entry, error) {
	k, err := ParseKind(e.Kind)
	if err != nil {
		return Entry{}, err
	}
	p := DefaultParams(k)
	if p == nil && !reflect.ValueOf(e.Params).IsZero() {
		return Entry{}, fmt.Errorf("%s takes no parameters", k)
	}
	if p != nil {
		if err := checkParams(p, e.Params); err != nil {
			return Entry{}, err
		}
		if err := copier.CopyWithOption(p, &e.Params, copier.Option{IgnoreEmpty: true}); err != nil {
			return Entry{}, fmt.Errorf("%s params: %w", k, err)
		}
		if err := applyControlPoints(p, e.Params.ControlPoints); err != nil {
			return Entry{}, err
		}
	}
	name := e.Name
	if name == "" {
		name = k.String()
	}
	shape := e.Shape
	if shape == "" {
		shape = "quad"
	}
	return Entry{
		Name:     name,
		Material: Material{Kind: k, Params: p},
		Shape:    shape,
		Position: e.Position,
		Rotate:   e.Rotate,
		Flicker:  e.Flicker,
	}, nil
}

// checkParams rejects set fields that p has no field of the same name for,
// since copier would skip them.
func checkParams(p Params, f paramsFile) error {
	dst := reflect.TypeOf(p).Elem()
	v := reflect.ValueOf(f)
	for i := 0; i < v.NumField(); i++ {
		if v.Field(i).IsZero() {
			continue
		}
		field := v.Type().Field(i)
		if _, ok := dst.FieldByName(field.Name); !ok {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			return fmt.Errorf("%s does not take %s", p.Kind(), name)
		}
	}
	return nil
}

func applyControlPoints(p Params, pts [][4]float32) error {
	if len(pts) == 0 {
		return nil
	}
	if len(pts) > MaxControlPoints {
		return fmt.Errorf("%s: %d control points, max %d", p.Kind(), len(pts), MaxControlPoints)
	}
	var arr [MaxControlPoints][4]float32
	copy(arr[:], pts)
	switch v := p.(type) {
	case *BezierParams:
		v.ControlPoints = arr
	case *BezierSwooshParams:
		v.ControlPoints = arr
	default:
		return fmt.Errorf("%s does not take control points", p.Kind())
	}
	return nil
}
