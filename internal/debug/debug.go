package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws runtime overlays in the top-left corner: FPS, heap usage and
// the current selection. FPS and memory are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	// Selection, when set, is called each frame for the "index/N name" line.
	Selection func() string

	font       rl.Font
	frameCount uint32
	lastFPS    string
	lastMem    string
	memStats   runtime.MemStats
	fps        func() int32
	readMem    func(*runtime.MemStats)
}

// New returns a Debug system with FPS and memory hidden.
func New() *Debug {
	return &Debug{fps: rl.GetFPS, readMem: runtime.ReadMemStats}
}

// SetFont sets the font used for overlay text. Zero texture ID = raylib default font.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// Lines returns the overlay text for this frame. FPS and memory text is only
// recomputed every updateInterval frames.
func (d *Debug) Lines() []string {
	d.frameCount++
	refresh := d.frameCount%updateInterval == 0

	var out []string
	if d.ShowFPS {
		if refresh || d.lastFPS == "" {
			d.lastFPS = fmt.Sprintf("FPS: %d", d.fps())
		}
		out = append(out, d.lastFPS)
	}
	if d.ShowMemAlloc {
		if refresh || d.lastMem == "" {
			d.readMem(&d.memStats)
			d.lastMem = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		out = append(out, d.lastMem)
	}
	if d.Selection != nil {
		out = append(out, d.Selection())
	}
	return out
}

// Draw renders the enabled overlays. Call after the scene in the draw loop.
func (d *Debug) Draw() {
	y := int32(padding)
	for _, text := range d.Lines() {
		if d.font.Texture.ID != 0 {
			rl.DrawTextEx(d.font, text, rl.NewVector2(padding, float32(y)), fontSize, 1, rl.Green)
		} else {
			rl.DrawText(text, padding, y, fontSize, rl.Green)
		}
		y += lineHeight
	}
}
