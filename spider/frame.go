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

package spider

import (
	"image/color"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/procanim"
	"seehuhn.de/go/procanim/geometry"
	"seehuhn.de/go/procanim/shape"
)

var (
	white     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black     = color.NRGBA{A: 255}
	lightBlue = color.NRGBA{R: 68, G: 190, B: 242, A: 255}
)

// Eye placement, as multiples of the body radius.
const (
	eyeSpacing     = 0.5
	eyeForward     = 0.2
	pupilForward   = 17.0 / 75
	eyeRadius      = 1.0 / 5
	pupilRadius    = 1.0 / 10
	supportMarkerR = 10
)

// Eyes returns the centres of the two eyes and of the two pupils.
// The pupils sit slightly in front of the eyes.
func (r *Rig) Eyes() (eyes, pupils [2]vec.Vec2) {
	fwd := r.Forward()
	side := geometry.Perp(fwd).Mul(r.radius * eyeSpacing)
	e := r.center.Add(fwd.Mul(r.radius * eyeForward))
	p := r.center.Add(fwd.Mul(r.radius * pupilForward))
	eyes = [2]vec.Vec2{e.Add(side), e.Sub(side)}
	pupils = [2]vec.Vec2{p.Add(side), p.Sub(side)}
	return eyes, pupils
}

// Frame returns the display shapes of the rig: the body with its eyes,
// then the legs on top.  With ShowSupport set, every support point is
// marked.  With Debug set, the leg joints are marked.
func (r *Rig) Frame(s procanim.Settings) shape.Frame {
	var f shape.Frame
	f.Add(shape.Circle{Center: r.center, Radius: r.radius, Style: shape.Filled(r.bodyColor)})

	if s.Flags.DrawEyes {
		eyes, pupils := r.Eyes()
		for _, e := range eyes {
			f.Add(shape.Circle{Center: e, Radius: r.radius * eyeRadius, Style: shape.Filled(white)})
		}
		for _, p := range pupils {
			f.Add(shape.Circle{Center: p, Radius: r.radius * pupilRadius, Style: shape.Filled(black)})
		}
	}

	for i := range r.legs {
		leg := &r.legs[i]
		if s.Flags.ShowSupport {
			f.Add(shape.Circle{Center: leg.Foot.Support, Radius: supportMarkerR, Style: shape.Filled(lightBlue)})
		}
		if s.Flags.DrawLegs {
			f.Append(leg.Chain.Draw(shape.Filled(r.legColor), shape.Filled(white), s.Flags.Debug))
		}
	}
	return f
}
