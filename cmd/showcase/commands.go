package main

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shader-showcase/internal/commands"
	"shader-showcase/internal/debug"
	"shader-showcase/internal/engineconfig"
	"shader-showcase/internal/graphics"
	"shader-showcase/internal/logger"
	"shader-showcase/internal/materials"
	"shader-showcase/internal/scene"
	"shader-showcase/internal/shaders"
)

// app is the state the showcase commands act on.
type app struct {
	prefs engineconfig.Prefs
	log   *logger.Logger
	lib   *shaders.Library
	scn   *scene.Scene
	dbg   *debug.Debug
}

// registerCommands adds the window and runtime commands:
//
//	cmd fps [on|off]             toggle or set the FPS overlay
//	cmd memalloc [on|off]        toggle or set the heap overlay
//	cmd reload [-kind name]      recompile one or all shaders
//	cmd screenshot               save screenshot-<timestamp>.png
//	cmd save                     write prefs to config/showcase.toml
//	cmd window                   toggle fullscreen
func registerCommands(reg *commands.Registry, a *app) {
	reg.Register("fps", "[on|off]", nil, overlayToggle("fps", &a.dbg.ShowFPS, &a.prefs.Debug.ShowFPS))
	reg.Register("memalloc", "[on|off]", nil, overlayToggle("memalloc", &a.dbg.ShowMemAlloc, &a.prefs.Debug.ShowMemAlloc))

	reloadFlags := commands.NewFlagSet("reload")
	kind := reloadFlags.String("kind", "", "effect to recompile; all when empty")
	reg.Register("reload", "[-kind name]", reloadFlags, func([]string) error {
		defer func() { *kind = "" }()
		if *kind == "" {
			a.lib.ReloadAll()
			a.scn.ClearReported()
			a.log.Infof("reloaded all shaders")
			return nil
		}
		k, err := materials.ParseKind(*kind)
		if err != nil {
			return fmt.Errorf("reload: %w", err)
		}
		a.lib.Reload(k)
		a.scn.ClearReported()
		a.log.Infof("reloaded %s", k)
		return nil
	})

	reg.Register("screenshot", "", nil, func([]string) error {
		name := "screenshot-" + time.Now().Format("20060102-150405") + ".png"
		rl.TakeScreenshot(name)
		a.log.Infof("saved %s", name)
		return nil
	})

	reg.Register("save", "", nil, func([]string) error {
		if err := engineconfig.Save(engineconfig.DefaultPath, a.prefs); err != nil {
			return fmt.Errorf("save: %w", err)
		}
		a.log.Infof("saved %s", engineconfig.DefaultPath)
		return nil
	})

	reg.Register("window", "", nil, func([]string) error {
		graphics.ToggleFullscreen()
		a.prefs.Window.Fullscreen = rl.IsWindowFullscreen()
		return nil
	})
}

// overlayToggle flips an overlay flag, or sets it from an on|off argument, and mirrors it into prefs.
func overlayToggle(name string, flag, pref *bool) func(args []string) error {
	return func(args []string) error {
		switch len(args) {
		case 0:
			*flag = !*flag
		case 1:
			switch args[0] {
			case "on", "true", "1":
				*flag = true
			case "off", "false", "0":
				*flag = false
			default:
				return fmt.Errorf("%s: want on or off, got %q", name, args[0])
			}
		default:
			return fmt.Errorf("%s: too many arguments", name)
		}
		*pref = *flag
		return nil
	}
}
