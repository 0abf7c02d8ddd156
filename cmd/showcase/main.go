package main

import (
	"context"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shader-showcase/internal/commands"
	"shader-showcase/internal/debug"
	"shader-showcase/internal/engineconfig"
	"shader-showcase/internal/env"
	"shader-showcase/internal/fonts"
	"shader-showcase/internal/graphics"
	"shader-showcase/internal/input"
	"shader-showcase/internal/logger"
	"shader-showcase/internal/materials"
	"shader-showcase/internal/primitives"
	"shader-showcase/internal/scene"
	"shader-showcase/internal/shaders"
	"shader-showcase/internal/terminal"
	"shader-showcase/internal/texturegen"
	"shader-showcase/internal/ui"
)

const (
	primitivesDir = "assets/primitives"
	uiCSSPath     = "assets/ui/showcase.css"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "showcase:", err)
		os.Exit(1)
	}
}

func run() error {
	log := logger.New(logger.DefaultPath)
	if err := env.Load(".env"); err != nil {
		log.Warnf("load .env: %v", err)
	}
	prefs, err := engineconfig.Load(engineconfig.DefaultPath)
	if err != nil {
		log.Warnf("%v; using defaults", err)
	}
	prefs = engineconfig.ApplyEnv(prefs)

	cat, err := loadCatalog(prefs.Grid.Catalog)
	if err != nil {
		return err
	}
	defs, err := primitives.LoadDefs(primitivesDir)
	if err != nil {
		log.Warnf("primitives: %v; using built-in shapes", err)
		defs = primitives.DefaultDefs()
	}
	prims := primitives.NewRegistry(defs)
	lib := shaders.NewLibrary(shaders.Sources{Dir: prefs.Shaders.Dir}, texturegen.Named, log)

	cfg := scene.DefaultConfig()
	cfg.Width = prefs.Grid.Width
	cfg.Layout.FocusScale = prefs.Grid.FocusScale
	scn, err := scene.New(cfg, cat, lib, prims, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var changes <-chan shaders.Change
	if prefs.Shaders.HotReload {
		changes, err = shaders.Watch(ctx, prefs.Shaders.Dir)
		if err != nil {
			log.Warnf("hot reload disabled: %v", err)
		} else {
			log.Infof("watching %s", prefs.Shaders.Dir)
		}
	}

	engine := ui.New()
	if err := engine.LoadCSS(uiCSSPath); err != nil && !os.IsNotExist(err) {
		log.Warnf("ui: %v", err)
	}
	colors := ui.ButtonColorsFrom(engine.Stylesheet())
	buttons := []*ui.Button{ui.NewButton("prev", "< Prev", -1), ui.NewButton("next", "Next >", 1)}
	inspector := ui.NewInspector()

	dbg := debug.New()
	dbg.ShowFPS = prefs.Debug.ShowFPS
	dbg.ShowMemAlloc = prefs.Debug.ShowMemAlloc
	dbg.Selection = func() string {
		return fmt.Sprintf("%d/%d %s", scn.Nav().Index()+1, scn.Nav().Count(), scn.Focused().Entry.Name)
	}

	reg := commands.NewRegistry()
	scn.RegisterCommands(reg)
	registerCommands(reg, &app{prefs: prefs, log: log, lib: lib, scn: scn, dbg: dbg})
	term := terminal.New(log, reg)
	bindings := input.DefaultBindings()

	var font rl.Font
	started := false
	nodes := make([]*ui.Node, 0, 16)

	update := func() {
		if !started {
			started = true
			font = loadFont(log)
			engine.SetFont(font)
			term.SetFont(font)
			dbg.SetFont(font)
		}
		drainChanges(changes, lib, scn, log)

		term.Update()
		if !term.IsOpen() {
			input.Apply(scn.Nav(), bindings.Poll(input.KeyPressed))
		}

		nodes = nodes[:0]
		for _, b := range buttons {
			nodes = append(nodes, b.Node)
		}
		nodes = inspector.AppendNodes(nodes, true, scn.Selection())
		engine.SetNodes(nodes)
		engine.Layout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))

		mouse := rl.GetMousePosition()
		down := rl.IsMouseButtonDown(rl.MouseButtonLeft)
		for _, b := range buttons {
			if d := b.Update(mouse, down, colors); d != 0 {
				scn.Nav().Page(d)
			}
		}

		scn.Update(rl.GetFrameTime())
	}
	draw := func() {
		scn.Draw()
		engine.Draw()
		dbg.Draw()
		term.Draw()
	}

	graphics.Run(prefs.Window, update, draw)

	cancel()
	lib.Close()
	prims.Close()
	if font.Texture.ID != 0 {
		rl.UnloadFont(font)
	}
	return nil
}

func loadCatalog(path string) (*materials.Catalog, error) {
	if path == "" {
		return materials.DefaultCatalog()
	}
	return materials.LoadCatalog(path)
}

// loadFont picks SHOWCASE_FONT, or any regular font under assets/fonts.
// Zero font = raylib default.
func loadFont(log *logger.Logger) rl.Font {
	path, err := fonts.FindFont(env.String("SHOWCASE_FONT", ""))
	if err != nil {
		return rl.Font{}
	}
	log.Infof("font %s", path)
	return rl.LoadFont(path)
}

// drainChanges applies pending shader file changes without blocking.
func drainChanges(changes <-chan shaders.Change, lib *shaders.Library, scn *scene.Scene, log *logger.Logger) {
	for {
		select {
		case c, ok := <-changes:
			if !ok {
				return
			}
			if c.Err != nil {
				log.Warnf("watch: %v", c.Err)
				continue
			}
			lib.Apply(c)
			scn.ClearReported()
			if c.All {
				log.Infof("reloaded all shaders")
			} else {
				log.Infof("reloaded %s", c.Path)
			}
		default:
			return
		}
	}
}
