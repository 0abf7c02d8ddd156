// Package input maps keyboard presses to selection moves.
package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"shader-showcase/internal/nav"
)

// PressedFunc reports whether a key went down this frame. Held keys must not
// report again, so one physical press moves the selection once.
type PressedFunc func(key int32) bool

// Action is what a bound key does: a grid move or a page step.
type Action struct {
	Move   nav.Direction
	Page   int
	IsPage bool
}

// Binding ties a key to an Action.
type Binding struct {
	Key    int32
	Action Action
}

// Bindings is an ordered key map; order decides the action sequence when
// several keys go down in the same frame.
type Bindings []Binding

// DefaultBindings uses arrow keys and WASD for moves and Q/E or PageUp/PageDown
// to step through the list.
func DefaultBindings() Bindings {
	move := func(d nav.Direction) Action { return Action{Move: d} }
	page := func(delta int) Action { return Action{Page: delta, IsPage: true} }
	return Bindings{
		{rl.KeyLeft, move(nav.Left)},
		{rl.KeyRight, move(nav.Right)},
		{rl.KeyUp, move(nav.Up)},
		{rl.KeyDown, move(nav.Down)},
		{rl.KeyA, move(nav.Left)},
		{rl.KeyD, move(nav.Right)},
		{rl.KeyW, move(nav.Up)},
		{rl.KeyS, move(nav.Down)},
		{rl.KeyQ, page(-1)},
		{rl.KeyE, page(1)},
		{rl.KeyPageUp, page(-1)},
		{rl.KeyPageDown, page(1)},
	}
}

// Poll returns the actions whose keys were pressed this frame, in binding order.
func (b Bindings) Poll(pressed PressedFunc) []Action {
	var out []Action
	for _, bind := range b {
		if pressed(bind.Key) {
			out = append(out, bind.Action)
		}
	}
	return out
}

// Apply runs actions against n and reports whether the selection changed.
func Apply(n *nav.Navigator, actions []Action) bool {
	before := n.Index()
	for _, a := range actions {
		if a.IsPage {
			n.Page(a.Page)
		} else {
			n.Move(a.Move)
		}
	}
	return n.Index() != before
}

// KeyPressed is the raylib PressedFunc.
func KeyPressed(key int32) bool { return rl.IsKeyPressed(key) }
