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

// Package scenario sets up the demo scenes: a row of tentacles, a school of
// fish-like creatures, and a swarm of spiders.
//
// All scenes follow a target point, usually the mouse position.  Time is
// measured in milliseconds.
package scenario

import (
	"image/color"
	"maps"
	"math"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/procanim"
	"seehuhn.de/go/procanim/creature"
	"seehuhn.de/go/procanim/shape"
)

// Scene is a running demo.
type Scene interface {
	// Step advances the scene by dt milliseconds.  The return value is
	// the number of legs which took a step.
	Step(in Input, dt float64, s procanim.Settings) int

	// Frame returns the display shapes of the current state.
	Frame(s procanim.Settings) shape.Frame
}

// Input is the user input for one frame.
type Input struct {
	// Target is the point the animals follow.
	Target vec.Vec2

	// Move is the direction selected with the movement keys.  Each
	// component is -1, 0 or 1, with y pointing down the screen.
	Move vec.Vec2
}

// Viewport is the size of the visible area in world units.
type Viewport struct {
	Width, Height float64
}

// Center returns the centre of the viewport.
func (vp Viewport) Center() vec.Vec2 {
	return vec.Vec2{X: vp.Width / 2, Y: vp.Height / 2}
}

// Builder creates a scene in its initial state.  The seed makes random
// placement reproducible.
type Builder func(vp Viewport, seed uint64) (Scene, error)

// All contains the builders of all scenes, by name.
var All = map[string]Builder{
	"tentacles": NewTentacles,
	"creatures": NewCreatures,
	"spiders":   NewSpiders,
}

// Names returns the names of all scenes in alphabetical order.
func Names() []string {
	return slices.Sorted(maps.Keys(All))
}

// Background is the background color of all scenes.
var Background = color.NRGBA{R: 87, G: 121, B: 156, A: 255}

var (
	white     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	lightBlue = color.NRGBA{R: 68, G: 190, B: 242, A: 255}
)

// Palettes returns n creature palettes with hues evenly spread around the
// color wheel.  The contrast color of each palette has the opposite hue
// and is darker than the base color.
func Palettes(n int, saturation float64) []creature.Palette {
	res := make([]creature.Palette, n)
	for i := range res {
		h := 360 * float64(i) / float64(n)
		res[i] = creature.Palette{
			Base:     nrgba(colorful.Hsv(h, saturation, 0.9)),
			Contrast: nrgba(colorful.Hsv(math.Mod(h+180, 360), saturation, 0.6)),
		}
	}
	return res
}

func nrgba(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
