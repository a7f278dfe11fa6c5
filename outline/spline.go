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

package outline

import (
	"fmt"
	"math"
	"sort"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/procanim"
)

// MinControlPoints is the smallest number of distinct control points
// through which a closed curve can be fitted.
const MinControlPoints = 4

// duplicateThreshold is the distance below which two consecutive control
// points count as the same point.
const duplicateThreshold = 1e-9

// Spline is a closed interpolating cubic spline.
//
// The curve passes through all control points in order and returns to the
// first one.  It is parameterised by chord length: the parameter interval
// between two control points is proportional to their distance.  The
// parameter u runs from 0 to 1 once around the curve.  Position, tangent
// and curvature are continuous everywhere, including at the first point.
type Spline struct {
	pts []vec.Vec2

	// t[k] is the chord-length parameter of pts[k], and t[m] is the total
	// length of the control polygon.
	t []float64

	// second derivatives at the control points
	m2 []vec.Vec2
}

// Fit computes the closed spline through the given points.  The first
// point must not be repeated at the end; the curve is closed
// automatically.  Consecutive duplicates are removed before fitting.
//
// If fewer than [MinControlPoints] distinct points are given, for example
// when a short loop is traversed twice, the error wraps
// [procanim.ErrInsufficientControlPoints].
func Fit(points []vec.Vec2) (*Spline, error) {
	pts := dedup(points)
	m := len(pts)
	if n := countDistinct(pts); n < MinControlPoints {
		return nil, fmt.Errorf("closed curve through %d distinct points: %w",
			n, procanim.ErrInsufficientControlPoints)
	}

	t := make([]float64, m+1)
	h := make([]float64, m)
	for k := range m {
		h[k] = pts[(k+1)%m].Sub(pts[k]).Length()
		t[k+1] = t[k] + h[k]
	}

	// Continuity of the first derivative at every control point gives one
	// equation per point for the second derivatives:
	//   h[k-1]·M[k-1] + 2(h[k-1]+h[k])·M[k] + h[k]·M[k+1] = rhs[k]
	// with indices taken modulo m.
	sub := make([]float64, m)
	diag := make([]float64, m)
	sup := make([]float64, m)
	rhsX := make([]float64, m)
	rhsY := make([]float64, m)
	for k := range m {
		kp := (k + m - 1) % m
		kn := (k + 1) % m
		sub[k] = h[kp]
		diag[k] = 2 * (h[kp] + h[k])
		sup[k] = h[k]
		d := pts[kn].Sub(pts[k]).Mul(6 / h[k]).Sub(pts[k].Sub(pts[kp]).Mul(6 / h[kp]))
		rhsX[k] = d.X
		rhsY[k] = d.Y
	}
	mx := solveCyclic(sub, diag, sup, rhsX)
	my := solveCyclic(sub, diag, sup, rhsY)

	m2 := make([]vec.Vec2, m)
	for k := range m {
		m2[k] = vec.Vec2{X: mx[k], Y: my[k]}
	}
	return &Spline{pts: pts, t: t, m2: m2}, nil
}

// Smooth fits a closed curve through points and returns count points
// sampled at evenly spaced parameter values.
func Smooth(points []vec.Vec2, count int) ([]vec.Vec2, error) {
	s, err := Fit(points)
	if err != nil {
		return nil, err
	}
	return s.Sample(count), nil
}

// Len returns the number of control points after duplicate removal.
func (s *Spline) Len() int {
	return len(s.pts)
}

// Knots returns the parameter values of the control points.
// The first knot is 0, and all knots are in [0, 1).
func (s *Spline) Knots() []float64 {
	m := len(s.pts)
	total := s.t[m]
	res := make([]float64, m)
	for k := range res {
		res[k] = s.t[k] / total
	}
	return res
}

// At evaluates the curve at parameter u.  The curve is periodic in u with
// period 1.
func (s *Spline) At(u float64) vec.Vec2 {
	m := len(s.pts)
	total := s.t[m]
	u -= math.Floor(u)
	x := u * total

	k := sort.Search(m+1, func(i int) bool { return s.t[i] > x }) - 1
	k = max(0, min(k, m-1))
	return s.eval(k, x-s.t[k])
}

// eval evaluates segment k at distance x from its start.
func (s *Spline) eval(k int, x float64) vec.Vec2 {
	m := len(s.pts)
	kn := (k + 1) % m
	h := s.t[k+1] - s.t[k]
	a := (h - x) / h
	b := x / h

	p0, p1 := s.pts[k], s.pts[kn]
	m0, m1 := s.m2[k], s.m2[kn]
	h26 := h * h / 6
	return p0.Mul(a).Add(p1.Mul(b)).
		Add(m0.Mul((a*a*a - a) * h26)).
		Add(m1.Mul((b*b*b - b) * h26))
}

// Sample returns count points of the curve at parameters k/count for
// k = 0, ..., count-1.  The first sample is the first control point.
func (s *Spline) Sample(count int) []vec.Vec2 {
	if count <= 0 {
		return nil
	}
	res := make([]vec.Vec2, count)
	for k := range res {
		res[k] = s.At(float64(k) / float64(count))
	}
	return res
}

// Path returns the curve as a closed path of cubic Bézier segments, one
// segment per control point.  The path traces exactly the same curve as
// [Spline.At].
func (s *Spline) Path() path.Path {
	m := len(s.pts)
	segs := make([][3]vec.Vec2, m)
	for k := range m {
		kn := (k + 1) % m
		h := s.t[k+1] - s.t[k]
		p0, p1 := s.pts[k], s.pts[kn]
		m0, m1 := s.m2[k], s.m2[kn]

		chord := p1.Sub(p0).Mul(1 / h)
		d0 := chord.Sub(m0.Mul(2 * h / 6)).Sub(m1.Mul(h / 6))
		d1 := chord.Add(m0.Mul(h / 6)).Add(m1.Mul(2 * h / 6))

		segs[k] = [3]vec.Vec2{p0.Add(d0.Mul(h / 3)), p1.Sub(d1.Mul(h / 3)), p1}
	}
	start := s.pts[0]

	return func(yield func(path.Command, []vec.Vec2) bool) {
		buf := [3]vec.Vec2{start}
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		for _, seg := range segs {
			buf = seg
			if !yield(path.CmdCubeTo, buf[:]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// dedup removes consecutive duplicates, including a last point which
// repeats the first one.
func dedup(points []vec.Vec2) []vec.Vec2 {
	res := make([]vec.Vec2, 0, len(points))
	for _, p := range points {
		if len(res) > 0 && p.Sub(res[len(res)-1]).Length() < duplicateThreshold {
			continue
		}
		res = append(res, p)
	}
	for len(res) > 1 && res[len(res)-1].Sub(res[0]).Length() < duplicateThreshold {
		res = res[:len(res)-1]
	}
	return res
}

// countDistinct returns the number of points which are not within
// duplicateThreshold of an earlier point.
func countDistinct(pts []vec.Vec2) int {
	n := 0
outer:
	for i, p := range pts {
		for _, q := range pts[:i] {
			if p.Sub(q).Length() < duplicateThreshold {
				continue outer
			}
		}
		n++
	}
	return n
}

// solveCyclic solves the cyclic tridiagonal system with sub-diagonal a,
// diagonal b and super-diagonal c.  The corner entries are a[0] (row 0,
// last column) and c[n-1] (last row, column 0).  The system must be
// diagonally dominant and n must be at least 3.
func solveCyclic(a, b, c, rhs []float64) []float64 {
	n := len(b)
	alpha := c[n-1]
	beta := a[0]

	// Sherman-Morrison: split off the corners as a rank one update.
	gamma := -b[0]
	bb := make([]float64, n)
	copy(bb, b)
	bb[0] = b[0] - gamma
	bb[n-1] = b[n-1] - alpha*beta/gamma

	x := solveTridiagonal(a, bb, c, rhs)
	u := make([]float64, n)
	u[0] = gamma
	u[n-1] = alpha
	z := solveTridiagonal(a, bb, c, u)

	fact := (x[0] + beta*x[n-1]/gamma) / (1 + z[0] + beta*z[n-1]/gamma)
	for i := range x {
		x[i] -= fact * z[i]
	}
	return x
}

// solveTridiagonal solves a tridiagonal system using the Thomas algorithm.
// a[0] and c[n-1] are ignored.
func solveTridiagonal(a, b, c, rhs []float64) []float64 {
	n := len(b)
	cp := make([]float64, n)
	x := make([]float64, n)

	w := b[0]
	x[0] = rhs[0] / w
	for i := 1; i < n; i++ {
		cp[i-1] = c[i-1] / w
		w = b[i] - a[i]*cp[i-1]
		x[i] = (rhs[i] - a[i]*x[i-1]) / w
	}
	for i := n - 2; i >= 0; i-- {
		x[i] -= cp[i] * x[i+1]
	}
	return x
}
