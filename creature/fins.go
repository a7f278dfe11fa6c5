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
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/procanim"
	"seehuhn.de/go/procanim/body"
	"seehuhn.de/go/procanim/geometry"
)

// Fin proportions, as multiples of the average body radius.
const (
	lateralFinWidth  = 0.5
	lateralFinHeight = 0.75
	tailFinLength    = 2
)

// Minimum numbers of body segments for the different fins.
const (
	minSegmentsLateral = 3
	minSegmentsTail    = 3
	minSegmentsBack    = 4
)

// LateralFins returns the control points of the two side fins at body
// segment idx, dorsal fin first.  Each fin has four points around an
// anchor on the edge of the spine, tilted towards the previous segment.
// Indices below 2 are treated as 2, indices past the tail as the tail.
// The body must have at least three segments.
func LateralFins(b *body.Chain, idx int) ([2][]vec.Vec2, error) {
	n := b.Len()
	if n < minSegmentsLateral {
		return [2][]vec.Vec2{}, fmt.Errorf("lateral fins on %d segments: %w",
			n, procanim.ErrPreconditionNotMet)
	}
	idx = max(2, min(idx, n-1))

	seg := b.Segment(idx)
	dir, ok := geometry.Normalize(b.Segment(idx - 2).Pos.Sub(seg.Pos))
	if !ok {
		dir = b.Direction(idx)
	}
	perp := geometry.Perp(dir)
	avg := b.AverageRadius()
	width := avg * lateralFinWidth
	height := avg * lateralFinHeight
	towards := b.Segment(idx - 1).Pos

	var res [2][]vec.Vec2
	for k, side := range []float64{1, -1} {
		anchor := seg.Pos.Add(perp.Mul(side * seg.Radius))
		d, ok := geometry.Normalize(towards.Sub(anchor))
		if !ok {
			d = dir
		}
		p := geometry.Perp(d)
		res[k] = []vec.Vec2{
			anchor.Add(d.Mul(height)),
			anchor.Add(p.Mul(width)),
			anchor.Sub(d.Mul(height)),
			anchor.Sub(p.Mul(width)),
		}
	}
	return res, nil
}

// TailFin returns the four control points of the tail fin.  The fin
// trails behind the last segment, and its tip is pushed sideways by
// bend·gain against the bend of the body, so that the tail flicks
// outwards when the creature turns.  The body must have at least three
// segments.
func TailFin(b *body.Chain, bend, gain float64) ([]vec.Vec2, error) {
	n := b.Len()
	if n < minSegmentsTail {
		return nil, fmt.Errorf("tail fin on %d segments: %w",
			n, procanim.ErrPreconditionNotMet)
	}
	tail := b.Segment(n - 1)
	dir := b.Direction(n - 1)
	perp := geometry.Perp(dir)
	length := b.AverageRadius() * tailFinLength

	return []vec.Vec2{
		tail.Pos.Sub(dir.Mul(tail.Radius * 0.5)),
		tail.Pos.Sub(dir.Mul(length * 0.2)),
		tail.Pos.Sub(dir.Mul(length * 0.8)),
		tail.Pos.Sub(dir.Mul(length)).Sub(perp.Mul(bend * gain)),
	}, nil
}

// BackFin returns the six control points of the fin on the back of the
// creature, spanning body segments idx-1, idx and idx+1.  The index is
// clamped to the range [2, n-2].  The body must have at least four
// segments.
func BackFin(b *body.Chain, idx int) ([]vec.Vec2, error) {
	n := b.Len()
	if n < minSegmentsBack {
		return nil, fmt.Errorf("back fin on %d segments: %w",
			n, procanim.ErrPreconditionNotMet)
	}
	idx = max(2, min(idx, n-2))

	res := make([]vec.Vec2, 6)
	for k := range 3 {
		i := idx + 1 - k
		seg := b.Segment(i)
		res[k] = seg.Pos.Sub(b.Direction(i).Mul(seg.Radius))
		res[5-k] = seg.Pos
	}
	return res, nil
}
