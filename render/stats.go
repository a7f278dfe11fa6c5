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

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Stats holds the values shown in the debug overlay.
type Stats struct {
	Scene  string
	FPS    float64
	Frame  int
	Shapes int
	Steps  int // footfalls in the last frame
}

// Stat selects one line of the debug overlay.
type Stat int

// These are the lines of the debug overlay.
const (
	StatScene Stat = iota
	StatFPS
	StatFrame
	StatShapes
	StatSteps
)

// DefaultStats is the list of overlay lines shown by default.
var DefaultStats = []Stat{StatFPS}

func (k Stat) String() string {
	switch k {
	case StatScene:
		return "Scene"
	case StatFPS:
		return "FPS"
	case StatFrame:
		return "Frame"
	case StatShapes:
		return "Shapes"
	case StatSteps:
		return "Steps"
	default:
		return fmt.Sprintf("Stat(%d)", int(k))
	}
}

// Line formats one overlay line as "name: value".
func (s *Stats) Line(k Stat) string {
	var v any
	switch k {
	case StatScene:
		v = s.Scene
	case StatFPS:
		v = fmt.Sprintf("%.2f", s.FPS)
	case StatFrame:
		v = s.Frame
	case StatShapes:
		v = s.Shapes
	case StatSteps:
		v = s.Steps
	}
	return fmt.Sprintf("%s: %v", k, v)
}

// Lines returns the formatted overlay lines for the visible stats.
func (s *Stats) Lines(visible []Stat) []string {
	res := make([]string, len(visible))
	for i, k := range visible {
		res[i] = s.Line(k)
	}
	return res
}

// lineHeight is the vertical distance between overlay lines in pixels.
const lineHeight = 15

// DrawStats writes the visible overlay lines into the top left corner of
// dst, one line per entry, using a fixed 7×13 pixel font.
func DrawStats(dst draw.Image, s *Stats, visible []Stat, col color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
	}
	b := dst.Bounds()
	for i, line := range s.Lines(visible) {
		d.Dot = fixed.P(b.Min.X+4, b.Min.Y+basicfont.Face7x13.Ascent+2+i*lineHeight)
		d.DrawString(line)
	}
}
