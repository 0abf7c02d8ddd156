package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ButtonState is the interaction state of a button this frame.
type ButtonState int

const (
	Idle ButtonState = iota
	Hovered
	Pressed
)

func (s ButtonState) String() string {
	switch s {
	case Hovered:
		return "hovered"
	case Pressed:
		return "pressed"
	}
	return "idle"
}

// ButtonColors are the face colors for each state.
type ButtonColors struct {
	Idle, Hover, Pressed rl.Color
}

// DefaultButtonColors: dark grey, lighter grey, green.
var DefaultButtonColors = ButtonColors{
	Idle:    rl.NewColor(0x26, 0x26, 0x26, 0xff),
	Hover:   rl.NewColor(0x40, 0x40, 0x40, 0xff),
	Pressed: rl.NewColor(0x59, 0xbf, 0x59, 0xff),
}

// ButtonColorsFrom returns DefaultButtonColors overridden by the background of
// .button-idle, .button-hover and .button-pressed rules in sheet.
func ButtonColorsFrom(sheet *Stylesheet) ButtonColors {
	c := DefaultButtonColors
	if v, ok := sheet.Color("button-idle", "background"); ok {
		c.Idle = v
	}
	if v, ok := sheet.Color("button-hover", "background"); ok {
		c.Hover = v
	}
	if v, ok := sheet.Color("button-pressed", "background"); ok {
		c.Pressed = v
	}
	return c
}

// For returns the color for state s.
func (c ButtonColors) For(s ButtonState) rl.Color {
	switch s {
	case Hovered:
		return c.Hover
	case Pressed:
		return c.Pressed
	}
	return c.Idle
}

// Button is a clickable node that emits Delta once per press. Holding the
// mouse button down does not repeat.
type Button struct {
	Node  *Node
	Delta int
	state ButtonState
}

// NewButton returns a button node with class "button", the given id and label.
func NewButton(id, label string, delta int) *Button {
	return &Button{Node: NewNode("button", "button", id, label), Delta: delta}
}

// State returns the state computed by the last Update.
func (b *Button) State() ButtonState { return b.state }

// Update advances the state from the mouse position and left button, paints
// the node with colors and returns Delta on the frame the press begins.
func (b *Button) Update(mouse rl.Vector2, down bool, colors ButtonColors) int {
	prev := b.state
	switch {
	case !rl.CheckCollisionPointRec(mouse, b.Node.Bounds):
		b.state = Idle
	case down:
		b.state = Pressed
	default:
		b.state = Hovered
	}
	b.Node.Fill = colors.For(b.state)
	b.Node.HasFill = true
	// A press starts over the button; dragging onto it while held does not count.
	if b.state == Pressed && prev == Hovered {
		return b.Delta
	}
	return 0
}
