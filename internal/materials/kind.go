package materials

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownKind is returned when a material name does not match any effect.
var ErrUnknownKind = errors.New("unknown material kind")

// Kind identifies one showcase effect. The set is closed: every Kind has a
// fragment shader under the shader library and, for parameterized effects, a
// matching Params record.
type Kind int

const (
	Blank Kind = iota
	Fresnel
	LineField
	RippleRing
	MultiRippleRing
	HitSpark
	Block
	Clink
	Spinner
	FocalLines
	Lightning
	CornerSlash
	EdgeSlash
	Burst
	Rocks
	Sparks
	Jackpot
	Ripple
	Fire
	SmokeBomb
	VertexTest
	Bezier
	BezierSwoosh
	NormalCube
	SugarCoat
	BillBurst

	kindCount
)

// kindInfo describes how a kind is compiled and drawn.
// vertex is empty when the shared vertex stage is used.
type kindInfo struct {
	name        string
	vertex      string
	doubleSided bool
}

var kinds = [kindCount]kindInfo{
	Blank:           {name: "blank"},
	Fresnel:         {name: "fresnel"},
	LineField:       {name: "line_field"},
	RippleRing:      {name: "ripple_ring"},
	MultiRippleRing: {name: "multi_ripple_ring"},
	HitSpark:        {name: "hit_spark"},
	Block:           {name: "block"},
	Clink:           {name: "clink"},
	Spinner:         {name: "spinner"},
	FocalLines:      {name: "focal_lines"},
	Lightning:       {name: "lightning"},
	CornerSlash:     {name: "corner_slash"},
	EdgeSlash:       {name: "edge_slash"},
	Burst:           {name: "burst"},
	Rocks:           {name: "rocks"},
	Sparks:          {name: "sparks"},
	Jackpot:         {name: "jackpot", vertex: "jackpot", doubleSided: true},
	Ripple:          {name: "ripple", vertex: "ripple"},
	Fire:            {name: "fire"},
	SmokeBomb:       {name: "smoke_bomb"},
	VertexTest:      {name: "vertex_test", vertex: "vertex_test"},
	Bezier:          {name: "bezier"},
	BezierSwoosh:    {name: "bezier_swoosh"},
	NormalCube:      {name: "normal_cube"},
	SugarCoat:       {name: "sugar_coat"},
	BillBurst:       {name: "bill_burst"},
}

var titleCaser = cases.Title(language.English)

// Kinds returns every kind in declaration order, Blank first.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind returns the kind for a snake_case name such as "ripple_ring".
// Dashes and case are ignored.
func ParseKind(name string) (Kind, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	for k := Kind(0); k < kindCount; k++ {
		if kinds[k].name == norm {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k >= 0 && k < kindCount }

// String returns the snake_case name, which is also the shader file stem.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kinds[k].name
}

// Label returns a display name, e.g. "Multi Ripple Ring".
func (k Kind) Label() string {
	return titleCaser.String(strings.ReplaceAll(k.String(), "_", " "))
}

// FragmentShader returns the fragment shader file name for k.
func (k Kind) FragmentShader() string { return k.String() + ".fs" }

// VertexShader returns the custom vertex shader file name for k, or "" when
// the shared vertex stage is used.
func (k Kind) VertexShader() string {
	if !k.Valid() || kinds[k].vertex == "" {
		return ""
	}
	return kinds[k].vertex + ".vs"
}

// DoubleSided reports whether back-face culling must be disabled for k.
func (k Kind) DoubleSided() bool { return k.Valid() && kinds[k].doubleSided }
