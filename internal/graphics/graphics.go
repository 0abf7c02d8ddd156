package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"shader-showcase/internal/engineconfig"
)

// Title is the window title.
const Title = "Shader Showcase"

// Run opens the window described by w and drives the main loop. Each frame it
// calls update, then clears the screen and calls draw. ESC closes the window;
// the console is toggled separately with F1.
func Run(w engineconfig.WindowPrefs, update, draw func()) {
	flags := uint32(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	width, height := int32(w.Width), int32(w.Height)
	if w.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(width, height, Title)
	defer rl.CloseWindow()

	if w.Fullscreen {
		m := rl.GetCurrentMonitor()
		rl.SetWindowSize(rl.GetMonitorWidth(m), rl.GetMonitorHeight(m))
	}
	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(int32(w.TargetFPS))

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}

// ToggleFullscreen switches between windowed and fullscreen, sizing the
// window to the current monitor when entering fullscreen.
func ToggleFullscreen() {
	if !rl.IsWindowFullscreen() {
		m := rl.GetCurrentMonitor()
		rl.SetWindowSize(rl.GetMonitorWidth(m), rl.GetMonitorHeight(m))
	}
	rl.ToggleFullscreen()
}
