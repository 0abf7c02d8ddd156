package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSS(t *testing.T) {
	sheet, err := ParseCSS(`
/* comment */
.panel { background: #333; width: 200px }
#menu, .menu { color: #ff0000; left: 50%; }
div.compound { color: #00ff00; }
@media screen { .hidden { width: 1px; } }
.panel { width: 300px; }
`)
	require.NoError(t, err)

	var sels []string
	for _, r := range sheet.Rules {
		sels = append(sels, r.Selector)
	}
	assert.Equal(t, []string{".panel", "#menu", ".menu", ".panel"}, sels)

	props := sheet.Props("panel", "")
	assert.Equal(t, "300px", props["width"], "later rule wins")
	assert.Equal(t, "#333", props["background"])

	props = sheet.Props("", "menu")
	assert.Equal(t, "50%", props["left"])
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want rl.Color
		ok   bool
	}{
		{"#262626", rl.NewColor(0x26, 0x26, 0x26, 0xff), true},
		{"#59BF59", rl.NewColor(0x59, 0xbf, 0x59, 0xff), true},
		{"#fff", rl.NewColor(0xff, 0xff, 0xff, 0xff), true},
		{"#10101080", rl.NewColor(0x10, 0x10, 0x10, 0x80), true},
		{"red", rl.Black, false},
		{"#12345", rl.Black, false},
		{"#gggggg", rl.Black, false},
	}
	for _, tt := range tests {
		got, ok := ParseHexColor(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestResolvePropsAndPlace(t *testing.T) {
	cs := ResolveProps(map[string]string{
		"width": "100px", "height": "40", "left": "50%", "top": "10px", "font-size": "18px",
	})
	assert.Equal(t, int32(18), cs.FontSize)
	r := cs.Place(800, 600)
	assert.Equal(t, rl.NewRectangle(350, 10, 100, 40), r)

	cs = ResolveProps(map[string]string{"left": "100%", "top": "100%", "width": "10", "height": "10"})
	assert.Equal(t, rl.NewRectangle(790, 590, 10, 10), cs.Place(800, 600))
}

func TestButtonColorsFromSheet(t *testing.T) {
	assert.Equal(t, DefaultButtonColors, ButtonColorsFrom(New().Stylesheet()))

	sheet, err := ParseCSS(".button-hover { background: #112233; }")
	require.NoError(t, err)
	c := ButtonColorsFrom(sheet)
	assert.Equal(t, rl.NewColor(0x11, 0x22, 0x33, 0xff), c.Hover)
	assert.Equal(t, DefaultButtonColors.Idle, c.Idle)
	assert.Equal(t, DefaultButtonColors.Pressed, c.Pressed)
}

func TestButtonStateMachine(t *testing.T) {
	b := NewButton("next", ">", 1)
	b.Node.Bounds = rl.NewRectangle(10, 10, 100, 40)
	outside := rl.NewVector2(0, 0)
	inside := rl.NewVector2(50, 30)
	colors := DefaultButtonColors

	steps := []struct {
		mouse rl.Vector2
		down  bool
		state ButtonState
		delta int
	}{
		{outside, false, Idle, 0},
		{inside, false, Hovered, 0},
		{inside, true, Pressed, 1},
		{inside, true, Pressed, 0}, // held
		{inside, false, Hovered, 0},
		{inside, true, Pressed, 1},
		{outside, true, Idle, 0},
		{inside, true, Pressed, 0}, // dragged on while held
	}
	for i, s := range steps {
		got := b.Update(s.mouse, s.down, colors)
		assert.Equal(t, s.delta, got, "step %d", i)
		assert.Equal(t, s.state, b.State(), "step %d", i)
		assert.Equal(t, colors.For(s.state), b.Node.Fill, "step %d", i)
	}
}

func TestEngineLayout(t *testing.T) {
	e := New()
	prev := NewButton("prev", "<", -1)
	next := NewButton("next", ">", 1)
	e.SetNodes([]*Node{prev.Node, next.Node})
	e.Layout(1000, 500)

	assert.Equal(t, float32(140), prev.Node.Bounds.Width)
	assert.Less(t, prev.Node.Bounds.X, next.Node.Bounds.X)
	assert.Equal(t, prev.Node.Bounds.Y, next.Node.Bounds.Y)
	assert.Greater(t, prev.Node.Bounds.Y, float32(400))
}

func TestInspectorNodes(t *testing.T) {
	in := NewInspector()
	assert.Empty(t, in.AppendNodes(nil, false, Selection{}))

	nodes := in.AppendNodes(nil, true, Selection{
		Index: 2, Count: 25, Label: "Line Field", Shape: "quad",
		Params: []Param{{"speed", "1.00"}, {"layer_count", "7"}},
	})
	require.Len(t, nodes, 5)
	assert.Equal(t, "Inspector  3/25", nodes[1].Text)
	assert.Equal(t, "Line Field (quad)", nodes[2].Text)
	assert.Equal(t, "speed: 1.00", nodes[3].Text)
	assert.Equal(t, 3, nodes[4].Line)

	nodes = in.AppendNodes(nil, true, Selection{Label: "Fire", Shape: "quad", Count: 1})
	require.Len(t, nodes, 4)
	assert.Equal(t, "no parameters", nodes[3].Text)
}
