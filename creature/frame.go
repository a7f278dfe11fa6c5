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

package creature

import (
	"image/color"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/procanim"
	"seehuhn.de/go/procanim/outline"
	"seehuhn.de/go/procanim/shape"
)

var (
	white     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black     = color.NRGBA{A: 255}
	red       = color.NRGBA{R: 255, A: 255}
	lightBlue = color.NRGBA{R: 68, G: 190, B: 242, A: 255}
)

const (
	// finSamples is the number of samples for the smoothed outline of a
	// lateral fin.  Tail and back fins use twice as many.
	finSamples = 16

	outlineWidth = 3
	markerRadius = 5
)

// Positions of the fins along the body, as fractions of the length.
const (
	frontFinPos = 0.2
	rearFinPos  = 0.7
	backFinPos  = 0.3
)

// Frame returns the display shapes of the creature in its current state.
//
// Shapes are ordered from back to front: legs, lateral and tail fins, the
// body with its eyes, and finally the back fin.  In debug mode, the body
// and the fins are shown as their raw control points, and the smoothed
// body outline is only traced by a thin line.  If a smooth outline cannot
// be fitted, the control polygon is drawn instead.
func (c *Creature) Frame(s procanim.Settings) shape.Frame {
	var f shape.Frame
	b := c.Body
	n := b.Len()
	debug := s.Flags.Debug
	ctrl := outline.Build(b, s.Flags.SpecialSmoothing)

	if debug {
		for _, seg := range b.Segments() {
			f.Add(shape.Circle{Center: seg.Pos, Radius: seg.Radius, Style: shape.Outlined(white, 1)})
		}
		f.Markers(b.Positions(), markerRadius, shape.Filled(white))
		f.Markers(ctrl, markerRadius, shape.Filled(black))
		if smooth, err := outline.Smooth(ctrl, outline.SmoothCount(b)); err == nil {
			f.Add(shape.Polygon{Points: smooth, Style: shape.Outlined(white, 1)})
		}
	}

	if s.Flags.DrawLegs {
		for i := range c.legs {
			leg := &c.legs[i]
			f.Append(leg.Chain.Draw(shape.Filled(c.Palette.Contrast), shape.Filled(white), debug))
			if s.Flags.ShowSupport {
				f.Add(shape.Circle{Center: leg.Foot.Support, Radius: markerRadius, Style: shape.Filled(lightBlue)})
			}
		}
	}

	if s.Flags.DrawFins {
		for _, pos := range []float64{frontFinPos, rearFinPos} {
			if fins, err := LateralFins(b, int(float64(n)*pos)); err == nil {
				c.addFin(&f, fins[0], finSamples, debug)
				c.addFin(&f, fins[1], finSamples, debug)
			}
		}
		if tail, err := TailFin(b, b.MeanBend(), s.Tuning.TailFlickGain); err == nil {
			c.addFin(&f, tail, 2*finSamples, debug)
		}
	}

	if !debug {
		style := shape.Style{Fill: c.Palette.Base, Stroke: white, StrokeWidth: outlineWidth}
		if sp, err := outline.Fit(ctrl); err == nil {
			f.Add(shape.Curve{Outline: sp.Path(), Style: style})
		} else {
			f.Add(shape.Polygon{Points: ctrl, Style: style})
		}
		if s.Flags.DrawEyes {
			for _, eye := range Eyes(b) {
				f.Add(eye.Shapes(c.target)...)
			}
		}
	}

	if s.Flags.DrawFins {
		if back, err := BackFin(b, int(float64(n)*backFinPos)); err == nil {
			c.addFin(&f, back, 2*finSamples, debug)
		}
	}
	return f
}

func (c *Creature) addFin(f *shape.Frame, pts []vec.Vec2, samples int, debug bool) {
	if debug {
		f.Markers(pts, 3, shape.Filled(red))
		return
	}
	style := shape.Style{Fill: c.Palette.Contrast, Stroke: white, StrokeWidth: outlineWidth}
	smooth, err := outline.Smooth(pts, samples)
	if err != nil {
		smooth = pts
	}
	f.Add(shape.Polygon{Points: smooth, Style: style})
}
