package ui

import (
	_ "embed"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const defaultFontSize = 20

//go:embed showcase.css
var defaultCSS string

// Engine holds the current stylesheet and nodes, and draws them with raylib.
// Draw order is node order (first node drawn first, then on top the next).
// Resolved styles are cached and only recomputed when sheet or nodes change.
// If a font is set, text is drawn with it; otherwise raylib's default font is used.
type Engine struct {
	sheet      *Stylesheet
	nodes      []*Node
	styles     []ComputedStyle
	cacheValid bool
	screenW    int32
	screenH    int32
	font       rl.Font
}

// New creates an engine using the built-in showcase stylesheet.
func New() *Engine {
	sheet, err := ParseCSS(defaultCSS)
	if err != nil {
		panic("ui: embedded stylesheet: " + err.Error())
	}
	return &Engine{sheet: sheet}
}

// LoadCSS parses the CSS file at path and appends its rules after the current
// ones, so the file overrides the built-in styles.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	merged := &Stylesheet{}
	if e.sheet != nil {
		merged.Rules = append(merged.Rules, e.sheet.Rules...)
	}
	merged.Rules = append(merged.Rules, sheet.Rules...)
	e.SetStylesheet(merged)
	return nil
}

// SetStylesheet replaces the stylesheet.
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *Stylesheet {
	return e.sheet
}

// SetFont sets the font used for text. Zero texture ID = raylib default font.
func (e *Engine) SetFont(font rl.Font) {
	e.font = font
}

// SetNodes replaces all nodes.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
	e.cacheValid = false
}

// Layout resolves styles and node bounds for a screen of the given size. Draw
// calls it itself; input handling calls it to hit-test before drawing.
func (e *Engine) Layout(screenW, screenH int32) {
	if e.cacheValid && screenW == e.screenW && screenH == e.screenH && len(e.styles) == len(e.nodes) {
		return
	}
	e.styles = make([]ComputedStyle, len(e.nodes))
	for i, n := range e.nodes {
		e.styles[i] = ResolveProps(e.sheet.Props(n.Class, n.ID))
		n.Bounds = e.styles[i].Place(screenW, screenH)
		n.Bounds.Y += float32(int32(n.Line) * (e.styles[i].FontSize + e.styles[i].Padding))
	}
	e.screenW, e.screenH = screenW, screenH
	e.cacheValid = true
}

// Draw draws all nodes: background (or fill), 1px border, then text.
func (e *Engine) Draw() {
	e.Layout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	for i, n := range e.nodes {
		style := e.styles[i]
		x, y := int32(n.Bounds.X), int32(n.Bounds.Y)
		w, h := int32(n.Bounds.Width), int32(n.Bounds.Height)

		bg := style.Background
		if n.HasFill {
			bg = n.Fill
		}
		if bg.A > 0 && w > 0 && h > 0 {
			rl.DrawRectangle(x, y, w, h, bg)
		}
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, style.Border)
		}
		if n.Text == "" {
			continue
		}
		textX, textY := x+style.Padding, y+style.Padding
		if n.Type == "button" {
			// center the label
			tw := e.measure(n.Text, style.FontSize)
			textX = x + (w-tw)/2
			textY = y + (h-style.FontSize)/2
		}
		if e.font.Texture.ID != 0 {
			rl.DrawTextEx(e.font, n.Text, rl.NewVector2(float32(textX), float32(textY)), float32(style.FontSize), 1, style.Color)
		} else {
			rl.DrawText(n.Text, textX, textY, style.FontSize, style.Color)
		}
	}
}

func (e *Engine) measure(text string, size int32) int32 {
	if e.font.Texture.ID != 0 {
		return int32(rl.MeasureTextEx(e.font, text, float32(size), 1).X)
	}
	return rl.MeasureText(text, size)
}
