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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/procanim/geometry"
)

// zeroLengthThreshold is the minimum length of a stroked segment in user
// space.  Shorter segments only contribute their round end.
const zeroLengthThreshold = 1e-10

// StrokePath fills the area covered by a pen of diameter width (in user
// space) moving along p.  Joins and caps are round.  Previously collected
// outlines are discarded.
//
// The stroke is built as the union of one rectangle per flattened segment
// and one disc per vertex, all wound counter-clockwise.
func (r *Rasteriser) StrokePath(p path.Path, width float64, emit func(y, xMin int, coverage []float32)) {
	r.clearEdges()
	if !(width > 0) {
		return
	}
	d := width / 2
	var quad [4]vec.Vec2
	var disc []vec.Vec2
	k := r.discSides(d)

	r.walk(p, func(pts []vec.Vec2, closed bool) {
		n := len(pts)
		last := n
		if closed && pts[n-1] != pts[0] {
			last = n + 1
		}
		for i := 1; i < last; i++ {
			a, b := pts[i-1], pts[i%n]
			if b.Sub(a).Length() <= zeroLengthThreshold {
				continue
			}
			t, _ := geometry.Normalize(b.Sub(a))
			off := geometry.Perp(t).Mul(d)
			quad = [4]vec.Vec2{a.Add(off), b.Add(off), b.Sub(off), a.Sub(off)}
			r.AddPolygon(quad[:], true)
		}
		for _, c := range pts {
			disc = appendDisc(disc[:0], c, d, k)
			r.AddPolygon(disc, true)
		}
	})
	r.Fill(emit)
}

// discSides returns the number of polygon sides needed to approximate a
// circle of radius d (in user space) within the flatness tolerance.
func (r *Rasteriser) discSides(d float64) int {
	rd := d * r.deviceScale()
	if rd <= r.Flatness {
		return 8
	}
	// sagitta of a chord with angle 2π/k is rd·(1-cos(π/k))
	k := int(math.Ceil(math.Pi / math.Acos(1-r.Flatness/rd)))
	return min(max(k, 8), 256)
}

// appendDisc appends a regular k-gon inscribed in the circle with the
// given centre and radius.
func appendDisc(dst []vec.Vec2, center vec.Vec2, radius float64, k int) []vec.Vec2 {
	for i := range k {
		dst = append(dst, geometry.FromHeading(center, 2*math.Pi*float64(i)/float64(k), radius))
	}
	return dst
}
