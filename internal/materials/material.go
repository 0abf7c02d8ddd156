package materials

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/jinzhu/copier"
)

var (
	// ErrUnknownParam is returned by SetParam for a name the effect does not have.
	ErrUnknownParam = errors.New("unknown material parameter")
	// ErrParamsMismatch is returned when a Params record belongs to another kind.
	ErrParamsMismatch = errors.New("params do not match material kind")
)

// Material is one showcase effect with its parameters. Params is nil for
// effects that take none.
type Material struct {
	Kind   Kind
	Params Params
}

// New returns a Material of kind k. A nil p selects DefaultParams(k).
func New(k Kind, p Params) (Material, error) {
	if !k.Valid() {
		return Material{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	if p == nil {
		p = DefaultParams(k)
	} else if p.Kind() != k {
		return Material{}, fmt.Errorf("%w: %s params for %s", ErrParamsMismatch, p.Kind(), k)
	}
	return Material{Kind: k, Params: p}, nil
}

// MustNew is like New but panics on error. For static setup only.
func MustNew(k Kind, p Params) Material {
	m, err := New(k, p)
	if err != nil {
		panic(err)
	}
	return m
}

// Uniforms returns the material's named shader inputs. The shader library adds
// "time" on its own.
func (m Material) Uniforms() []Uniform {
	if m.Params == nil {
		return nil
	}
	return m.Params.uniforms()
}

// SetParam updates one parameter by its uniform-facing name, e.g. "speed" or
// "edge_color". Colors take 3 or 4 values, everything else one.
func (m Material) SetParam(name string, values ...float32) error {
	if m.Params == nil {
		return fmt.Errorf("%w: %s takes no parameters", ErrUnknownParam, m.Kind)
	}
	return m.Params.set(name, values)
}

// Clone returns a Material whose Params record is independent of m's.
func (m Material) Clone() Material {
	if m.Params == nil {
		return m
	}
	p := DefaultParams(m.Kind)
	if err := copier.CopyWithOption(p, m.Params, copier.Option{DeepCopy: true}); err != nil {
		panic(err) // same concrete type on both sides
	}
	return Material{Kind: m.Kind, Params: p}
}

// Label returns the display name of the effect.
func (m Material) Label() string { return m.Kind.Label() }

// Field is one parameter as shown to the user.
type Field struct {
	Name  string
	Value string
}

// Describe lists the material's parameters under the names SetParam accepts,
// in declaration order. Control point arrays are summarized.
func (m Material) Describe() []Field {
	if m.Params == nil {
		return nil
	}
	v := reflect.ValueOf(m.Params).Elem()
	t := v.Type()
	out := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name := snakeCase(t.Field(i).Name)
		switch f := v.Field(i).Interface().(type) {
		case Color:
			out = append(out, Field{name, fmt.Sprintf("%.2f %.2f %.2f %.2f", f[0], f[1], f[2], f[3])})
		case float32:
			out = append(out, Field{name, fmt.Sprintf("%.3g", f)})
		case int:
			out = append(out, Field{name, fmt.Sprintf("%d", f)})
		case string:
			out = append(out, Field{name, f})
		case [MaxControlPoints][4]float32:
			out = append(out, Field{name, fmt.Sprintf("%d points", MaxControlPoints)})
		}
	}
	return out
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
