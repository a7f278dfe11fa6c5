// seehuhn.de/go/procanim - procedural animation of 2D creatures
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command procanim shows the animation scenes in a terminal window.
//
// Every terminal cell shows two pixels, using the upper half block
// character with separate foreground and background colors.  The animals
// follow the mouse.  The keys w, a, s and d move the tentacle roots or
// the large spider, r restarts the scene, Tab switches to the next scene,
// x toggles the debug outlines, o toggles segment overlap, i shows more
// statistics and Esc quits.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/procanim"
	"seehuhn.de/go/procanim/render"
	"seehuhn.de/go/procanim/scenario"
)

// world is the part of the scene shown in the terminal.
var world = scenario.Viewport{Width: 1024, Height: 768}

const (
	frameInterval = 16 * time.Millisecond

	// maxStep bounds the time step after the program was suspended.
	maxStep = 100.0

	// moveHold is how long a movement key stays active after the last
	// key event.  Terminals report key repeats but no key releases.
	moveHold = 150 * time.Millisecond
)

var allStats = []render.Stat{
	render.StatScene, render.StatFPS, render.StatFrame, render.StatShapes, render.StatSteps,
}

// App holds the state of the terminal viewer.
type App struct {
	screen   tcell.Screen
	settings procanim.Settings
	seed     uint64

	name  string
	scene scenario.Scene

	canvas *render.Canvas
	cols   int
	rows   int

	target  vec.Vec2
	move    vec.Vec2
	movedAt time.Time

	stats   render.Stats
	visible []render.Stat

	lastFrame time.Time
	fpsFrames int
	fpsStart  time.Time
}

// NewApp initialises the terminal and builds the first scene.
func NewApp(name string, s procanim.Settings, seed uint64) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	app := &App{
		screen:   screen,
		settings: s,
		seed:     seed,
		target:   world.Center(),
		visible:  render.DefaultStats,
	}
	app.resize()
	if err := app.load(name); err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

// load builds the named scene in its initial state.
func (app *App) load(name string) error {
	build, ok := scenario.All[name]
	if !ok {
		return fmt.Errorf("unknown scene %q (available: %v)", name, scenario.Names())
	}
	scene, err := build(world, app.seed)
	if err != nil {
		return fmt.Errorf("scene %s: %w", name, err)
	}
	app.name = name
	app.scene = scene
	app.stats = render.Stats{Scene: name}
	log.Printf("loaded scene %s", name)
	return nil
}

// resize matches the canvas to the terminal size.
func (app *App) resize() {
	cols, rows := app.screen.Size()
	cols, rows = max(cols, 1), max(rows, 1)
	app.cols, app.rows = cols, rows
	app.canvas = render.NewCanvas(cols, 2*rows)
	app.canvas.Background = scenario.Background
	app.canvas.View = render.FitView(rect.Rect{URx: world.Width, URy: world.Height}, cols, 2*rows, 0)
}

// toWorld converts a terminal cell to world coordinates.
func (app *App) toWorld(x, y int) vec.Vec2 {
	return inverse(app.canvas.View, vec.Vec2{X: float64(x) + 0.5, Y: 2*float64(y) + 1})
}

// inverse applies the inverse of a uniform scaling view to a pixel
// position.
func inverse(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	if m[0] == 0 {
		return p
	}
	return vec.Vec2{X: (p.X - m[4]) / m[0], Y: (p.Y - m[5]) / m[3]}
}

func (app *App) run() {
	defer app.screen.Fini()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	now := time.Now()
	app.lastFrame, app.fpsStart = now, now
	for {
		select {
		case ev := <-events:
			if !app.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			app.update(now)
			app.draw()
		}
	}
}

// handleEvent processes one terminal event.  The return value is false
// if the program should exit.
func (app *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyTab:
			names := scenario.Names()
			next := names[(slices.Index(names, app.name)+1)%len(names)]
			if err := app.load(next); err != nil {
				log.Printf("switching scene: %v", err)
			}
		case tcell.KeyRune:
			app.handleRune(ev.Rune())
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		app.target = app.toWorld(x, y)
	case *tcell.EventResize:
		app.screen.Sync()
		app.resize()
	}
	return true
}

func (app *App) handleRune(r rune) {
	var dir vec.Vec2
	switch r {
	case 'w':
		dir = vec.Vec2{Y: -1}
	case 's':
		dir = vec.Vec2{Y: 1}
	case 'a':
		dir = vec.Vec2{X: -1}
	case 'd':
		dir = vec.Vec2{X: 1}
	case 'r':
		if err := app.load(app.name); err != nil {
			log.Printf("restarting scene: %v", err)
		}
		return
	case 'x':
		app.settings.Flags.Debug = !app.settings.Flags.Debug
		return
	case 'o':
		app.settings.Flags.Overlap = !app.settings.Flags.Overlap
		return
	case 'i':
		if len(app.visible) == len(allStats) {
			app.visible = render.DefaultStats
		} else {
			app.visible = allStats
		}
		return
	default:
		return
	}
	app.move = dir
	app.movedAt = time.Now()
}

// update advances the scene to the given time.
func (app *App) update(now time.Time) {
	dt := min(float64(now.Sub(app.lastFrame))/float64(time.Millisecond), maxStep)
	app.lastFrame = now

	in := scenario.Input{Target: app.target}
	if now.Sub(app.movedAt) < moveHold {
		in.Move = app.move
	}
	app.stats.Steps = app.scene.Step(in, dt, app.settings)
	app.stats.Frame++

	app.fpsFrames++
	if elapsed := now.Sub(app.fpsStart); elapsed >= time.Second {
		app.stats.FPS = float64(app.fpsFrames) / elapsed.Seconds()
		app.fpsFrames = 0
		app.fpsStart = now
	}
}

func (app *App) draw() {
	f := app.scene.Frame(app.settings)
	app.stats.Shapes = len(f.Shapes)

	app.canvas.Clear()
	app.canvas.Draw(f)

	cells := render.SampleCells(app.canvas.Image, app.cols, app.rows)
	for i, c := range cells {
		x, y := i%app.cols, i/app.cols
		style := tcell.StyleDefault.
			Foreground(rgb(c.Top)).
			Background(rgb(c.Bottom))
		app.screen.SetContent(x, y, '▀', nil, style)
	}

	textStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for y, line := range app.stats.Lines(app.visible) {
		if y >= app.rows {
			break
		}
		x := 0
		for _, r := range line {
			if x >= app.cols {
				break
			}
			app.screen.SetContent(x, y, r, nil, textStyle)
			x++
		}
	}
	app.screen.Show()
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func main() {
	name := flag.String("scene", "creatures", "scene to show")
	config := flag.String("config", "", "TOML settings file")
	logFile := flag.String("log", "procanim.log", "log file")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "seed for random placement")
	flag.Parse()

	// the terminal is in use, so log messages go to a file
	lf, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer lf.Close()
	log.SetOutput(lf)

	s := procanim.DefaultSettings()
	if *config != "" {
		s, err = procanim.LoadSettings(*config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	app, err := NewApp(*name, s, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	app.run()
}
