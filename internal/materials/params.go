package materials

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is a linear RGBA color.
type Color [4]float32

// RGB returns an opaque color.
func RGB(r, g, b float32) Color { return Color{r, g, b, 1} }

// UnmarshalYAML accepts [r, g, b], [r, g, b, a] or "#rrggbb".
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := parseHexColor(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*c = parsed
		return nil
	case yaml.SequenceNode:
		var vals []float32
		if err := value.Decode(&vals); err != nil {
			return err
		}
		if len(vals) != 3 && len(vals) != 4 {
			return fmt.Errorf("line %d: color needs 3 or 4 components, got %d", value.Line, len(vals))
		}
		*c = Color{vals[0], vals[1], vals[2], 1}
		if len(vals) == 4 {
			c[3] = vals[3]
		}
		return nil
	}
	return fmt.Errorf("line %d: color must be a list or hex string", value.Line)
}

func parseHexColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("bad hex color %q", s)
	}
	var c Color
	c[3] = 1
	for i := 0; i < len(s)/2; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("bad hex color %q: %w", s, err)
		}
		c[i] = float32(v) / 255
	}
	return c, nil
}

// UniformType is the GLSL type a Uniform is uploaded as.
type UniformType int

const (
	UniformFloat UniformType = iota
	UniformVec4
	UniformVec4Array
	UniformTexture
)

// Uniform is one named shader input. Texture uniforms carry a texture name
// resolved by the shader library instead of Values.
type Uniform struct {
	Name    string
	Type    UniformType
	Values  []float32
	Texture string
}

// Params is the parameter record of a parameterized effect. The set of
// implementations is closed to this package.
type Params interface {
	// Kind returns the effect the record belongs to.
	Kind() Kind
	uniforms() []Uniform
	set(name string, values []float32) error
}

// MaxControlPoints is the fixed length of the bezier control point array.
const MaxControlPoints = 16

type FresnelParams struct {
	Sharpness float32
}

type LineFieldParams struct {
	BaseColor     Color
	EdgeColor     Color
	Speed         float32
	Angle         float32
	LineThickness float32
	LayerCount    int
}

type RippleRingParams struct {
	BaseColor     Color
	EdgeColor     Color
	Duration      float32
	RingThickness float32
}

type MultiRippleRingParams struct {
	BaseColor Color
	EdgeColor Color
}

type HitSparkParams struct {
	BaseColor Color
	MidColor  Color
	EdgeColor Color
}

type BlockParams struct {
	BaseColor Color
	EdgeColor Color
	Speed     float32
}

type ClinkParams struct {
	BaseColor Color
	EdgeColor Color
	Speed     float32
}

// BezierParams draws up to Curves cubic curves; curve i uses control points
// 3i..3i+3 (xy in uv space, z as stroke width).
type BezierParams struct {
	ControlPoints [MaxControlPoints][4]float32
	Curves        int
	Texture       string
}

type BezierSwooshParams struct {
	ControlPoints [MaxControlPoints][4]float32
	Curves        int
}

func (*FresnelParams) Kind() Kind         { return Fresnel }
func (*LineFieldParams) Kind() Kind       { return LineField }
func (*RippleRingParams) Kind() Kind      { return RippleRing }
func (*MultiRippleRingParams) Kind() Kind { return MultiRippleRing }
func (*HitSparkParams) Kind() Kind        { return HitSpark }
func (*BlockParams) Kind() Kind           { return Block }
func (*ClinkParams) Kind() Kind           { return Clink }
func (*BezierParams) Kind() Kind          { return Bezier }
func (*BezierSwooshParams) Kind() Kind    { return BezierSwoosh }

// Scalars are packed into vec4 slots so the layouts stay valid on targets
// without scalar uniform blocks.

func (p *FresnelParams) uniforms() []Uniform {
	return []Uniform{vec4("sharpness", p.Sharpness, 0, 0, 0)}
}

func (p *LineFieldParams) uniforms() []Uniform {
	return []Uniform{
		color("base_color", p.BaseColor),
		color("edge_color", p.EdgeColor),
		vec4("pack", p.Speed, p.Angle, p.LineThickness, float32(p.LayerCount)),
	}
}

func (p *RippleRingParams) uniforms() []Uniform {
	return []Uniform{
		color("base_color", p.BaseColor),
		color("edge_color", p.EdgeColor),
		vec4("pack", p.Duration, p.RingThickness, 0, 0),
	}
}

func (p *MultiRippleRingParams) uniforms() []Uniform {
	return []Uniform{color("base_color", p.BaseColor), color("edge_color", p.EdgeColor)}
}

func (p *HitSparkParams) uniforms() []Uniform {
	return []Uniform{
		color("base_color", p.BaseColor),
		color("mid_color", p.MidColor),
		color("edge_color", p.EdgeColor),
	}
}

func (p *BlockParams) uniforms() []Uniform {
	return []Uniform{color("base_color", p.BaseColor), color("edge_color", p.EdgeColor), vec4("pack", p.Speed, 0, 0, 0)}
}

func (p *ClinkParams) uniforms() []Uniform {
	return []Uniform{color("base_color", p.BaseColor), color("edge_color", p.EdgeColor), vec4("pack", p.Speed, 0, 0, 0)}
}

func (p *BezierParams) uniforms() []Uniform {
	u := []Uniform{
		controlPoints(p.ControlPoints),
		vec4("curves", float32(p.Curves), 0, 0, 0),
	}
	if p.Texture != "" {
		u = append(u, Uniform{Name: "texture0", Type: UniformTexture, Texture: p.Texture})
	}
	return u
}

func (p *BezierSwooshParams) uniforms() []Uniform {
	return []Uniform{controlPoints(p.ControlPoints), vec4("curves", float32(p.Curves), 0, 0, 0)}
}

func (p *FresnelParams) set(name string, v []float32) error {
	if name == "sharpness" {
		return scalar(&p.Sharpness, name, v)
	}
	return unknownParam(p, name)
}

func (p *LineFieldParams) set(name string, v []float32) error {
	switch name {
	case "base_color":
		return setColor(&p.BaseColor, name, v)
	case "edge_color":
		return setColor(&p.EdgeColor, name, v)
	case "speed":
		return scalar(&p.Speed, name, v)
	case "angle":
		return scalar(&p.Angle, name, v)
	case "line_thickness":
		return scalar(&p.LineThickness, name, v)
	case "layer_count":
		var f float32
		if err := scalar(&f, name, v); err != nil {
			return err
		}
		p.LayerCount = int(f)
		return nil
	}
	return unknownParam(p, name)
}

func (p *RippleRingParams) set(name string, v []float32) error {
	switch name {
	case "base_color":
		return setColor(&p.BaseColor, name, v)
	case "edge_color":
		return setColor(&p.EdgeColor, name, v)
	case "duration":
		return scalar(&p.Duration, name, v)
	case "ring_thickness":
		return scalar(&p.RingThickness, name, v)
	}
	return unknownParam(p, name)
}

func (p *MultiRippleRingParams) set(name string, v []float32) error {
	switch name {
	case "base_color":
		return setColor(&p.BaseColor, name, v)
	case "edge_color":
		return setColor(&p.EdgeColor, name, v)
	}
	return unknownParam(p, name)
}

func (p *HitSparkParams) set(name string, v []float32) error {
	switch name {
	case "base_color":
		return setColor(&p.BaseColor, name, v)
	case "mid_color":
		return setColor(&p.MidColor, name, v)
	case "edge_color":
		return setColor(&p.EdgeColor, name, v)
	}
	return unknownParam(p, name)
}

func (p *BlockParams) set(name string, v []float32) error {
	switch name {
	case "base_color":
		return setColor(&p.BaseColor, name, v)
	case "edge_color":
		return setColor(&p.EdgeColor, name, v)
	case "speed":
		return scalar(&p.Speed, name, v)
	}
	return unknownParam(p, name)
}

func (p *ClinkParams) set(name string, v []float32) error {
	switch name {
	case "base_color":
		return setColor(&p.BaseColor, name, v)
	case "edge_color":
		return setColor(&p.EdgeColor, name, v)
	case "speed":
		return scalar(&p.Speed, name, v)
	}
	return unknownParam(p, name)
}

func (p *BezierParams) set(name string, v []float32) error {
	if name == "curves" {
		return setCurves(&p.Curves, name, v)
	}
	return unknownParam(p, name)
}

func (p *BezierSwooshParams) set(name string, v []float32) error {
	if name == "curves" {
		return setCurves(&p.Curves, name, v)
	}
	return unknownParam(p, name)
}

func vec4(name string, x, y, z, w float32) Uniform {
	return Uniform{Name: name, Type: UniformVec4, Values: []float32{x, y, z, w}}
}

func color(name string, c Color) Uniform {
	return Uniform{Name: name, Type: UniformVec4, Values: []float32{c[0], c[1], c[2], c[3]}}
}

func controlPoints(pts [MaxControlPoints][4]float32) Uniform {
	vals := make([]float32, 0, MaxControlPoints*4)
	for _, p := range pts {
		vals = append(vals, p[:]...)
	}
	return Uniform{Name: "control_points", Type: UniformVec4Array, Values: vals}
}

func scalar(dst *float32, name string, v []float32) error {
	if len(v) != 1 {
		return fmt.Errorf("%s takes 1 value, got %d", name, len(v))
	}
	*dst = v[0]
	return nil
}

func setColor(dst *Color, name string, v []float32) error {
	if len(v) != 3 && len(v) != 4 {
		return fmt.Errorf("%s takes 3 or 4 values, got %d", name, len(v))
	}
	*dst = Color{v[0], v[1], v[2], 1}
	if len(v) == 4 {
		dst[3] = v[3]
	}
	return nil
}

// curves is capped so every curve has its four control points.
func setCurves(dst *int, name string, v []float32) error {
	var f float32
	if err := scalar(&f, name, v); err != nil {
		return err
	}
	n := int(f)
	if n < 0 || 3*n+1 > MaxControlPoints {
		return fmt.Errorf("%s must be in [0, %d]", name, (MaxControlPoints-1)/3)
	}
	*dst = n
	return nil
}

func unknownParam(p Params, name string) error {
	return fmt.Errorf("%w: %s has no %q", ErrUnknownParam, p.Kind(), name)
}

// DefaultParams returns a fresh parameter record for k with the showcase's
// default values, or nil when k takes no parameters.
func DefaultParams(k Kind) Params {
	switch k {
	case Fresnel:
		return &FresnelParams{Sharpness: 4}
	case LineField:
		return &LineFieldParams{
			BaseColor:     RGB(0.3, 1, 0.4),
			EdgeColor:     RGB(1, 1, 1),
			Speed:         1,
			LineThickness: 0.01,
			LayerCount:    7,
		}
	case RippleRing:
		return &RippleRingParams{
			BaseColor:     RGB(0.3, 1, 0.4),
			EdgeColor:     RGB(1, 1, 1),
			Duration:      0.7,
			RingThickness: 0.05,
		}
	case MultiRippleRing:
		return &MultiRippleRingParams{BaseColor: RGB(0.2, 0.6, 1), EdgeColor: RGB(1, 1, 1)}
	case HitSpark:
		return &HitSparkParams{
			BaseColor: RGB(1, 1, 1),
			MidColor:  RGB(1, 1, 0.1),
			EdgeColor: RGB(1, 0.2, 0.05),
		}
	case Block:
		return &BlockParams{BaseColor: RGB(1, 1, 1), EdgeColor: RGB(0.1, 0.2, 1), Speed: 1}
	case Clink:
		return &ClinkParams{BaseColor: RGB(1, 0.5, 1), EdgeColor: RGB(0.9, 0.1, 0.9), Speed: 1.2}
	case Bezier:
		return &BezierParams{ControlPoints: defaultCurve, Curves: 2, Texture: "noise"}
	case BezierSwoosh:
		return &BezierSwooshParams{ControlPoints: defaultCurve, Curves: 2}
	}
	return nil
}

// defaultCurve is two joined cubic segments sweeping across the quad.
var defaultCurve = [MaxControlPoints][4]float32{
	{0.1, 0.2, 0.02, 0},
	{0.3, 0.9, 0.03, 0},
	{0.5, 0.1, 0.04, 0},
	{0.6, 0.5, 0.03, 0},
	{0.7, 0.9, 0.02, 0},
	{0.9, 0.8, 0.02, 0},
	{0.9, 0.3, 0.01, 0},
}
