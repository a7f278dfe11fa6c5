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

package chain

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/procanim/geometry"
	"seehuhn.de/go/procanim/shape"
)

// Rails returns the left and right edges of the chain, both ordered from
// base to tip.  Each rail has one point per joint base, offset
// perpendicular to the joint heading by the joint thickness, plus one
// point at the tip.
func (c *Chain) Rails() (left, right []vec.Vec2) {
	n := len(c.joints)
	left = make([]vec.Vec2, 0, n+1)
	right = make([]vec.Vec2, 0, n+1)
	for _, j := range c.joints {
		off := geometry.Perp(geometry.Unit(j.Heading)).Mul(j.Thickness)
		left = append(left, j.Base.Add(off))
		right = append(right, j.Base.Sub(off))
	}
	last := c.joints[n-1]
	off := geometry.Perp(geometry.Unit(last.Heading)).Mul(last.Thickness)
	tip := last.Tip()
	left = append(left, tip.Add(off))
	right = append(right, tip.Sub(off))
	return left, right
}

// Outline returns the ribbon polygon around the chain: the left rail from
// base to tip, followed by the right rail from tip to base.
func (c *Chain) Outline() []vec.Vec2 {
	left, right := c.Rails()
	res := left
	for i := len(right) - 1; i >= 0; i-- {
		res = append(res, right[i])
	}
	return res
}

// Segments returns one rectangle per joint, each as wide as twice the
// joint thickness.
func (c *Chain) Segments(style shape.Style) []shape.Shape {
	res := make([]shape.Shape, 0, len(c.joints))
	for _, j := range c.joints {
		off := geometry.Perp(geometry.Unit(j.Heading)).Mul(j.Thickness)
		tip := j.Tip()
		res = append(res, shape.Polygon{
			Points: []vec.Vec2{j.Base.Add(off), j.Base.Sub(off), tip.Sub(off), tip.Add(off)},
			Style:  style,
		})
	}
	return res
}

// Draw returns the display shapes of the chain.  With joints set, a marker
// is drawn at the base of every joint.
func (c *Chain) Draw(body, joint shape.Style, joints bool) shape.Frame {
	var f shape.Frame
	f.Add(c.Segments(body)...)
	if joints {
		for _, j := range c.joints {
			f.Add(shape.Circle{Center: j.Base, Radius: j.Thickness, Style: joint})
		}
	}
	return f
}
