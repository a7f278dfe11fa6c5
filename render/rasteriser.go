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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Rasteriser converts outlines to anti-aliased pixel coverage, using the
// nonzero winding rule.
//
// Outlines are collected with [Rasteriser.AddPath] and
// [Rasteriser.AddPolygon] and are then converted to coverage values by
// [Rasteriser.Fill].  All outlines collected between two calls to Fill are
// filled together, so overlapping outlines with the same orientation form
// their union.
//
// Internal buffers are reused and never shrink.  A Rasteriser is not safe
// for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output, in device coordinates.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	Flatness float64

	edges  []edge
	active []int
	cover  []float32
	area   []float32
	poly   []vec.Vec2

	hasBBox            bool
	bboxXMin, bboxXMax float64
	bboxYMin, bboxYMax float64
}

const (
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent of an edge
	// in device pixels.  Flatter edges do not contribute to coverage.
	horizontalEdgeThreshold = 1e-10
)

// NewRasteriser returns a rasteriser with the identity transformation
// and the given clip rectangle.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Reset discards all collected outlines and restores the default
// parameters, keeping the buffer capacity.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.clearEdges()
}

func (r *Rasteriser) clearEdges() {
	r.edges = r.edges[:0]
	r.hasBBox = false
}

// FillPath fills a single path and discards any previously collected
// outlines.  The coverage slice passed to emit is only valid for the
// duration of the callback.
func (r *Rasteriser) FillPath(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.clearEdges()
	r.AddPath(p)
	r.Fill(emit)
}

// AddPath adds the outline of p, in user space, to the collected outlines.
// Open subpaths are closed implicitly.
func (r *Rasteriser) AddPath(p path.Path) {
	r.walk(p, func(pts []vec.Vec2, closed bool) {
		n := len(pts)
		for i := 1; i < n; i++ {
			r.addEdge(pts[i-1], pts[i])
		}
		if n > 1 && pts[n-1] != pts[0] {
			r.addEdge(pts[n-1], pts[0])
		}
	})
}

// AddPolygon adds a closed polygon, in user space, to the collected
// outlines.  If positive is set, the vertices are reordered where needed
// so that the polygon winds counter-clockwise; this allows the union of
// arbitrarily oriented polygons to be filled in one pass.
func (r *Rasteriser) AddPolygon(pts []vec.Vec2, positive bool) {
	n := len(pts)
	if n < 3 {
		return
	}
	if positive && signedArea(pts) < 0 {
		for i := n - 1; i > 0; i-- {
			r.addEdge(pts[i], pts[i-1])
		}
		r.addEdge(pts[0], pts[n-1])
		return
	}
	for i := 1; i < n; i++ {
		r.addEdge(pts[i-1], pts[i])
	}
	r.addEdge(pts[n-1], pts[0])
}

// signedArea returns twice the signed area of a polygon.
func signedArea(pts []vec.Vec2) float64 {
	var a float64
	prev := pts[len(pts)-1]
	for _, p := range pts {
		a += prev.X*p.Y - p.X*prev.Y
		prev = p
	}
	return a
}

// walk flattens p and calls fn once per subpath with the polyline of the
// subpath in user space.  Subpaths consisting of a single point are
// skipped.  The slice is only valid during the callback.
func (r *Rasteriser) walk(p path.Path, fn func(pts []vec.Vec2, closed bool)) {
	if p == nil {
		return
	}
	r.poly = r.poly[:0]
	flush := func(closed bool) {
		if len(r.poly) > 1 {
			fn(r.poly, closed)
		}
		r.poly = r.poly[:0]
	}
	for cmd, pts := range p.ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			flush(false)
			r.poly = append(r.poly, pts[0])
		case path.CmdLineTo:
			r.poly = append(r.poly, pts[0])
		case path.CmdCubeTo:
			if len(r.poly) == 0 {
				r.poly = append(r.poly, pts[2])
				continue
			}
			r.flattenCubic(r.poly[len(r.poly)-1], pts[0], pts[1], pts[2])
		case path.CmdClose:
			if len(r.poly) > 0 {
				start := r.poly[0]
				flush(true)
				r.poly = append(r.poly, start)
			}
		}
	}
	if len(r.poly) > 1 {
		fn(r.poly, false)
	}
	r.poly = r.poly[:0]
}

// flattenCubic appends a polyline approximation of a cubic Bézier curve
// to r.poly, not including the start point.  The number of segments is
// chosen by Wang's formula, measured in device space.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))))
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.poly = append(r.poly, pt)
	}
}

// linear applies the linear part of the CTM to v.
func (r *Rasteriser) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// device maps a point from user space to device space.
func (r *Rasteriser) device(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*p.X + r.CTM[2]*p.Y + r.CTM[4],
		Y: r.CTM[1]*p.X + r.CTM[3]*p.Y + r.CTM[5],
	}
}

// deviceScale returns the geometric mean of the scale factors of the CTM.
func (r *Rasteriser) deviceScale() float64 {
	return math.Sqrt(math.Abs(r.CTM[0]*r.CTM[3] - r.CTM[1]*r.CTM[2]))
}

func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	a := r.device(p0)
	b := r.device(p1)
	dy := b.Y - a.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / dy,
	})

	if !r.hasBBox {
		r.bboxXMin, r.bboxXMax = a.X, a.X
		r.bboxYMin, r.bboxYMax = a.Y, a.Y
		r.hasBBox = true
	}
	r.bboxXMin = min(r.bboxXMin, a.X, b.X)
	r.bboxXMax = max(r.bboxXMax, a.X, b.X)
	r.bboxYMin = min(r.bboxYMin, a.Y, b.Y)
	r.bboxYMax = max(r.bboxYMax, a.Y, b.Y)
}

// Fill converts the collected outlines to coverage values and clears the
// outline list.  Coverage is delivered row by row via emit, where
// coverage[i] belongs to pixel (xMin+i, y).  Rows without coverage are
// skipped.  The coverage slice is only valid for the duration of the
// callback.
//
// Each scanline keeps two accumulators per pixel: cover, the signed
// vertical extent of all edge pieces in the pixel column, and area, the
// part of that extent which lies inside the pixel.  A running sum of
// cover from the left then gives the winding number at each pixel.
func (r *Rasteriser) Fill(emit func(y, xMin int, coverage []float32)) {
	defer r.clearEdges()
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.bboxXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bboxXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bboxYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bboxYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)

		for next < len(r.edges) && r.edges[next].yMin() < yf+1 {
			r.active = append(r.active, next)
			next++
		}
		// remove edges which end above this scanline
		k := 0
		for _, idx := range r.active {
			if r.edges[idx].yMax() > yf {
				r.active[k] = idx
				k++
			}
		}
		r.active = r.active[:k]
		if len(r.active) == 0 {
			if next == len(r.edges) {
				break
			}
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, idx := range r.active {
			r.accumulate(&r.edges[idx], y, xMin, xMax)
		}
		integrate(r.cover, r.area)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the contribution of the part of e inside scanline y to
// the cover and area buffers.  The edge is split where it crosses pixel
// column boundaries.
func (r *Rasteriser) accumulate(e *edge, y, xMin, xMax int) {
	yTop := max(float64(y), e.yMin())
	yBot := min(float64(y+1), e.yMax())
	if yBot <= yTop {
		return
	}
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	ya := yTop
	for ya < yBot {
		xNext, yNext := xb, yBot
		switch {
		case xb > xa:
			if bx := math.Floor(xa) + 1; bx < xb {
				xNext, yNext = bx, e.y0+(bx-e.x0)/e.dxdy
			}
		case xb < xa:
			if bx := math.Ceil(xa) - 1; bx > xb {
				xNext, yNext = bx, e.y0+(bx-e.x0)/e.dxdy
			}
		}
		yNext = min(max(yNext, ya), yBot)
		r.deposit(sign*float32(yNext-ya), (xa+xNext)/2, xMin, xMax)
		xa, ya = xNext, yNext
	}
}

// deposit records a piece of an edge with signed vertical extent c and
// mean horizontal position x.
func (r *Rasteriser) deposit(c float32, x float64, xMin, xMax int) {
	pix := int(math.Floor(x))
	switch {
	case pix < xMin:
		r.cover[0] += c
		r.area[0] += c
	case pix < xMax:
		i := pix - xMin
		r.cover[i] += c
		r.area[i] += c * float32(1-(x-float64(pix)))
	}
}

// integrate turns the cover and area accumulators of one scanline into
// nonzero coverage values, in place.
func integrate(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the part of coverage between the first and the last
// non-zero value, together with its offset.  The result is nil if all
// values are zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}
