package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single UI element: panel, label or button. Class and ID drive CSS
// matching; Bounds is filled in by the engine from the resolved style.
type Node struct {
	Type   string // "panel", "label", "button"
	Class  string // e.g. "inspector" for .inspector
	ID     string // e.g. "next" for #next
	Bounds rl.Rectangle
	Text   string
	// Line shifts the node down by that many text lines, for stacked labels.
	Line int
	// Fill, when set, replaces the style background (buttons use it for their state color).
	Fill    rl.Color
	HasFill bool
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}
