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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/procanim/body"
	"seehuhn.de/go/procanim/geometry"
	"seehuhn.de/go/procanim/shape"
)

// Eye is a round eye with a pupil which looks at a target.
type Eye struct {
	Center vec.Vec2
	Radius float64
}

// Pupil returns the disc of the pupil when the eye looks at target.
// An eye whose centre coincides with the target looks straight ahead.
func (e Eye) Pupil(target vec.Vec2) (vec.Vec2, float64) {
	r := e.Radius * 0.4
	dir, ok := geometry.Normalize(target.Sub(e.Center))
	if !ok {
		return e.Center, r
	}
	return e.Center.Add(dir.Mul(e.Radius * 0.8)), r
}

// Shapes returns the white of the eye and the pupil.
func (e Eye) Shapes(target vec.Vec2) []shape.Shape {
	pc, pr := e.Pupil(target)
	return []shape.Shape{
		shape.Circle{Center: e.Center, Radius: e.Radius, Style: shape.Filled(white)},
		shape.Circle{Center: pc, Radius: pr, Style: shape.Filled(black)},
	}
}

// Eyes returns the two eyes on the head of b.  They sit at the front of
// the head, to both sides of the nose, and are half as large as the head.
func Eyes(b *body.Chain) [2]Eye {
	head := b.Segment(0)
	dir := b.Direction(0)
	perp := geometry.Perp(dir)
	r := head.Radius
	front := head.Pos.Add(dir.Mul(r))
	return [2]Eye{
		{Center: front.Sub(perp.Mul(r * noseWidth)), Radius: r * 0.5},
		{Center: front.Add(perp.Mul(r * noseWidth)), Radius: r * 0.5},
	}
}

// eyes sit where the sides of the nose are
const noseWidth = 0.6
