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

// Package outline turns the spine of a creature into a closed outline.
//
// [Build] places control points along both sides of a [body.Chain], and
// [Fit] passes a smooth closed curve through them.  The curve can be
// sampled as a dense polygon or converted to cubic Bézier segments.
package outline

import (
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/procanim/body"
	"seehuhn.de/go/procanim/geometry"
)

// Shape of the head cap, as multiples of the head radius.
const (
	noseLength = 1.25
	noseWidth  = 0.6
)

// Build returns the control points of the outline of b.
//
// The points start at the head and run along the dorsal side (offset by
// [geometry.Perp] of the local direction) to the tail point, then back
// along the ventral side.  The head cap consists of three points forming
// a rounded nose.  Normally one point per side is placed at every
// interior segment.  If special is set, each interior segment instead
// gets three points per side, before, at and after the segment centre,
// which lets the fitted curve follow sharp bends more closely.
func Build(b *body.Chain, special bool) []vec.Vec2 {
	n := b.Len()
	head := b.Segment(0)
	dir := b.Direction(0)
	perp := geometry.Perp(dir)
	r0 := head.Radius

	front := head.Pos.Add(dir.Mul(r0))
	dorsal := []vec.Vec2{
		front.Sub(perp.Mul(r0 * noseWidth)),
		head.Pos.Add(dir.Mul(r0 * noseLength)),
		front.Add(perp.Mul(r0 * noseWidth)),
		head.Pos.Add(perp.Mul(r0)),
	}
	ventral := []vec.Vec2{
		head.Pos.Sub(perp.Mul(r0)),
	}

	for i := 1; i < n-1; i++ {
		seg := b.Segment(i)
		dir := b.Direction(i)
		perp := geometry.Perp(dir)
		if !special {
			dorsal = append(dorsal, seg.Pos.Add(perp.Mul(seg.Radius)))
			ventral = append(ventral, seg.Pos.Sub(perp.Mul(seg.Radius)))
			continue
		}

		rPrev := (seg.Radius + b.Segment(i-1).Radius) / 2
		rNext := (seg.Radius + b.Segment(i+1).Radius) / 2
		pre := seg.Pos.Add(dir.Mul(seg.Radius / 3))
		post := seg.Pos.Sub(dir.Mul(seg.Radius / 3))
		dorsal = append(dorsal,
			pre.Add(perp.Mul(rPrev)),
			seg.Pos.Add(perp.Mul(seg.Radius)),
			post.Add(perp.Mul(rNext)))
		ventral = append(ventral,
			pre.Sub(perp.Mul(rPrev)),
			seg.Pos.Sub(perp.Mul(seg.Radius)),
			post.Sub(perp.Mul(rNext)))
	}

	if n > 1 {
		tail := b.Segment(n - 1)
		dir := b.Direction(n - 1)
		perp := geometry.Perp(dir)
		dorsal = append(dorsal,
			tail.Pos.Add(perp.Mul(tail.Radius)),
			tail.Pos.Sub(dir.Mul(tail.Radius)))
		ventral = append(ventral, tail.Pos.Sub(perp.Mul(tail.Radius)))
	}

	slices.Reverse(ventral)
	return append(dorsal, ventral...)
}

// SmoothCount returns the number of samples used for the smoothed outline
// of a body.  Longer bodies and larger heads get more samples.
func SmoothCount(b *body.Chain) int {
	return b.Len()*5 + int(b.Segment(0).Radius)
}
