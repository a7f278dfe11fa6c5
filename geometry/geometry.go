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

// Package geometry contains the 2D vector helpers used by the animation
// packages.  Points and directions are [vec.Vec2] values throughout.
package geometry

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// zeroLengthThreshold is the length below which a vector has no direction.
const zeroLengthThreshold = 1e-12

// FromHeading returns the point at distance dist from p, in the direction
// given by heading (radians, measured from the positive x-axis).
func FromHeading(p vec.Vec2, heading, dist float64) vec.Vec2 {
	return p.Add(Unit(heading).Mul(dist))
}

// Unit returns the unit vector with the given heading.
func Unit(heading float64) vec.Vec2 {
	sin, cos := math.Sincos(heading)
	return vec.Vec2{X: cos, Y: sin}
}

// Heading returns the angle of v, measured from the positive x-axis.
func Heading(v vec.Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}

// Perp returns v rotated by a quarter turn: (v.Y, -v.X).
// All outline code offsets to the "left" of a direction using this vector.
func Perp(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: v.Y, Y: -v.X}
}

// Normalize returns the unit vector in the direction of v.
// The second return value is false if v has no usable direction, in which
// case the zero vector is returned.
func Normalize(v vec.Vec2) (vec.Vec2, bool) {
	l := v.Length()
	if l < zeroLengthThreshold || math.IsNaN(l) || math.IsInf(l, 0) {
		return vec.Vec2{}, false
	}
	return v.Mul(1 / l), true
}

// Cross returns the z-component of the cross product a × b.
func Cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// SignedAngle returns the angle which rotates the direction of from onto
// the direction of to.  The magnitude is in [0, π]; the result is positive
// if the rotation is counter-clockwise in a y-up frame.
// If either vector has zero length, the angle is zero.
func SignedAngle(from, to vec.Vec2) float64 {
	a, ok1 := Normalize(from)
	b, ok2 := Normalize(to)
	if !ok1 || !ok2 {
		return 0
	}
	cos := max(-1, min(1, a.Dot(b)))
	angle := math.Acos(cos)
	switch c := Cross(a, b); {
	case c < 0:
		return -angle
	case c > 0:
		return angle
	default:
		// parallel or anti-parallel: there is no sign to take
		return angle
	}
}

// DistSq returns the squared distance between a and b.
func DistSq(a, b vec.Vec2) float64 {
	d := a.Sub(b)
	return d.X*d.X + d.Y*d.Y
}

// Rotate rotates v around the origin by theta radians.
func Rotate(v vec.Vec2, theta float64) vec.Vec2 {
	return apply(matrix.RotateDeg(theta*180/math.Pi), v)
}

// RotateAround rotates p around center by theta and places the result at
// exactly the given radius from center.  Placing the point back onto the
// radius removes the drift which repeated rotation by a matrix would
// otherwise accumulate.  If p coincides with center, p is returned.
func RotateAround(p, center vec.Vec2, theta, radius float64) vec.Vec2 {
	rel := Rotate(p.Sub(center), theta)
	dir, ok := Normalize(rel)
	if !ok {
		return p
	}
	return center.Add(dir.Mul(radius))
}

// apply transforms v by the linear and translation parts of m.
func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}
