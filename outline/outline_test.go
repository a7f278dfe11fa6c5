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
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/procanim"
	"seehuhn.de/go/procanim/body"
)

func newBody(t *testing.T, radii []float64) *body.Chain {
	t.Helper()
	b, err := body.New(vec.Vec2{X: 100, Y: 100}, radii)
	if err != nil {
		t.Fatal(err)
	}
	s := procanim.DefaultSettings()
	s.Jitter = procanim.NoJitter{}
	s.Motion.Speed = 2
	for range 20 {
		b.Advance(vec.Vec2{X: 400, Y: 300}, 1, s)
	}
	return b
}

func TestBuildPointCount(t *testing.T) {
	cases := []struct {
		radii   []float64
		special bool
		want    int
	}{
		{[]float64{10}, false, 5},
		{[]float64{10, 8}, false, 8},
		{[]float64{10, 8, 6, 4, 2}, false, 14},
		{[]float64{10, 8, 6, 4, 2}, true, 26},
		{[]float64{10, 8}, true, 8},
	}
	for _, c := range cases {
		b := newBody(t, c.radii)
		pts := Build(b, c.special)
		if len(pts) != c.want {
			t.Errorf("%d segments, special=%t: %d points, want %d",
				len(c.radii), c.special, len(pts), c.want)
		}
	}
}

func TestBuildShape(t *testing.T) {
	b := newBody(t, []float64{10, 8, 6, 4, 2})
	pts := Build(b, false)

	head := b.Segment(0).Pos
	dir := b.Direction(0)
	nose := head.Add(dir.Mul(12.5))
	if d := pts[1].Sub(nose).Length(); d > 1e-9 {
		t.Errorf("nose tip at %v, want %v", pts[1], nose)
	}

	// the tail point is the one furthest from the head
	tail := b.Segment(4)
	wantTail := tail.Pos.Sub(b.Direction(4).Mul(tail.Radius))
	if d := pts[8].Sub(wantTail).Length(); d > 1e-9 {
		t.Errorf("tail point at %v, want %v", pts[8], wantTail)
	}

	// every side point lies on the rim of its segment
	for i := 1; i < 4; i++ {
		seg := b.Segment(i)
		dorsal := pts[3+i]
		ventral := pts[len(pts)-1-i]
		for _, p := range []vec.Vec2{dorsal, ventral} {
			if d := p.Sub(seg.Pos).Length(); math.Abs(d-seg.Radius) > 1e-9 {
				t.Errorf("segment %d: side point at distance %g, want %g", i, d, seg.Radius)
			}
		}
	}
}

func circlePoints(n int, r float64) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		phi := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = vec.Vec2{X: r * math.Cos(phi), Y: r * math.Sin(phi)}
	}
	return pts
}

func TestSplineInterpolates(t *testing.T) {
	pts := []vec.Vec2{
		{X: 0, Y: 0}, {X: 10, Y: 1}, {X: 13, Y: 8}, {X: 7, Y: 12},
		{X: -2, Y: 9}, {X: -4, Y: 3},
	}
	s, err := Fit(pts)
	if err != nil {
		t.Fatal(err)
	}
	knots := s.Knots()
	if len(knots) != len(pts) || knots[0] != 0 {
		t.Fatalf("Knots() = %v", knots)
	}
	for k, u := range knots {
		if d := s.At(u).Sub(pts[k]).Length(); d > 1e-9 {
			t.Errorf("At(%g) is %g away from control point %d", u, d, k)
		}
	}
	if d := s.At(1).Sub(pts[0]).Length(); d > 1e-9 {
		t.Errorf("curve is not closed: At(1) = %v", s.At(1))
	}
	if d := s.At(-0.25).Sub(s.At(0.75)).Length(); d > 1e-9 {
		t.Errorf("curve is not periodic")
	}
}

func TestSplineCircle(t *testing.T) {
	const r = 50
	s, err := Fit(circlePoints(16, r))
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range s.Sample(200) {
		if d := p.Length(); math.Abs(d-r) > r*1e-2 {
			t.Errorf("sample at radius %g, want %d", d, r)
		}
	}
}

func TestSplineSmooth(t *testing.T) {
	s, err := Fit([]vec.Vec2{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 10}, {X: 0, Y: 10}})
	if err != nil {
		t.Fatal(err)
	}
	// first derivative is continuous at every control point
	const du = 1e-6
	for _, u := range s.Knots() {
		left := s.At(u).Sub(s.At(u - du))
		right := s.At(u + du).Sub(s.At(u))
		if d := left.Sub(right).Length(); d > 1e-8 {
			t.Errorf("kink at u=%g: %v vs %v", u, left, right)
		}
	}
}

func TestSplinePath(t *testing.T) {
	pts := circlePoints(7, 30)
	pts[2] = pts[2].Mul(1.4)
	s, err := Fit(pts)
	if err != nil {
		t.Fatal(err)
	}
	var cmds []path.Command
	var coords []vec.Vec2
	for cmd, seg := range s.Path() {
		cmds = append(cmds, cmd)
		coords = append(coords, seg...)
	}
	if len(cmds) != 2+len(pts) || cmds[0] != path.CmdMoveTo || cmds[len(cmds)-1] != path.CmdClose {
		t.Fatalf("got commands %v", cmds)
	}

	knots := s.Knots()
	ci := 1 // skip the initial MoveTo
	for k := range knots {
		p0 := s.pts[k]
		c1, c2, p1 := coords[ci], coords[ci+1], coords[ci+2]
		ci += 3
		if d := p1.Sub(s.pts[(k+1)%len(pts)]).Length(); d > 1e-9 {
			t.Errorf("segment %d ends at %v", k, p1)
		}

		// the Bézier midpoint must lie on the spline
		mid := p0.Add(c1.Mul(3)).Add(c2.Mul(3)).Add(p1).Mul(0.125)
		uEnd := 1.0
		if k+1 < len(knots) {
			uEnd = knots[k+1]
		}
		want := s.At((knots[k] + uEnd) / 2)
		if d := mid.Sub(want).Length(); d > 1e-9 {
			t.Errorf("segment %d: Bézier midpoint %v, spline %v", k, mid, want)
		}
	}
	if len(coords) != 1+3*len(pts) {
		t.Errorf("path has %d coordinates", len(coords))
	}
}

func TestInsufficientControlPoints(t *testing.T) {
	cases := [][]vec.Vec2{
		nil,
		{{X: 1, Y: 1}},
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		// duplicates do not count
		{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 0}},
		// loops which revisit earlier points
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 0}, {X: 10, Y: 0}},
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 5}, {X: 0, Y: 0}, {X: 10, Y: 0}},
	}
	for _, pts := range cases {
		_, err := Smooth(pts, 10)
		if !errors.Is(err, procanim.ErrInsufficientControlPoints) {
			t.Errorf("Smooth(%v): got error %v", pts, err)
		}
	}

	// four distinct points are enough, even if one of them repeats
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 0}, {X: 0, Y: 10}}
	if _, err := Fit(pts); err != nil {
		t.Errorf("Fit(%v): %v", pts, err)
	}
}

func TestSmoothCount(t *testing.T) {
	got, err := Smooth(circlePoints(5, 10), 33)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 33 {
		t.Errorf("got %d points, want 33", len(got))
	}

	b := newBody(t, []float64{10, 8, 6, 4, 2})
	if n := SmoothCount(b); n != 35 {
		t.Errorf("SmoothCount() = %d, want 35", n)
	}
	if _, err := Smooth(Build(b, true), SmoothCount(b)); err != nil {
		t.Error(err)
	}
}

func BenchmarkSmooth(b *testing.B) {
	pts := circlePoints(40, 100)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = Smooth(pts, 200)
	}
}
