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

package geometry

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

const eps = 1e-9

func near(a, b vec.Vec2, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func TestFromHeading(t *testing.T) {
	p := vec.Vec2{X: 1, Y: 2}
	cases := []struct {
		heading, dist float64
		want          vec.Vec2
	}{
		{0, 3, vec.Vec2{X: 4, Y: 2}},
		{math.Pi / 2, 3, vec.Vec2{X: 1, Y: 5}},
		{math.Pi, 1, vec.Vec2{X: 0, Y: 2}},
		{-math.Pi / 2, 2, vec.Vec2{X: 1, Y: 0}},
	}
	for _, c := range cases {
		got := FromHeading(p, c.heading, c.dist)
		if !near(got, c.want, eps) {
			t.Errorf("FromHeading(%v, %g, %g) = %v, want %v", p, c.heading, c.dist, got, c.want)
		}
	}
}

func TestPerp(t *testing.T) {
	v := vec.Vec2{X: 3, Y: 4}
	p := Perp(v)
	if p.Dot(v) != 0 {
		t.Errorf("Perp(%v) = %v is not perpendicular", v, p)
	}
	if p.Length() != v.Length() {
		t.Errorf("Perp changed the length: %g != %g", p.Length(), v.Length())
	}
	if p != (vec.Vec2{X: 4, Y: -3}) {
		t.Errorf("Perp(%v) = %v", v, p)
	}
}

func TestNormalize(t *testing.T) {
	u, ok := Normalize(vec.Vec2{X: 0, Y: -5})
	if !ok || !near(u, vec.Vec2{X: 0, Y: -1}, eps) {
		t.Errorf("Normalize = %v, %t", u, ok)
	}
	u, ok = Normalize(vec.Vec2{})
	if ok || u != (vec.Vec2{}) {
		t.Errorf("Normalize(0) = %v, %t", u, ok)
	}
}

func TestSignedAngle(t *testing.T) {
	x := vec.Vec2{X: 1, Y: 0}
	cases := []struct {
		name string
		to   vec.Vec2
		want float64
	}{
		{"same", vec.Vec2{X: 2, Y: 0}, 0},
		{"ccw quarter", vec.Vec2{X: 0, Y: 1}, math.Pi / 2},
		{"cw quarter", vec.Vec2{X: 0, Y: -3}, -math.Pi / 2},
		{"ccw eighth", vec.Vec2{X: 1, Y: 1}, math.Pi / 4},
		{"opposite", vec.Vec2{X: -1, Y: 0}, math.Pi},
		{"zero", vec.Vec2{}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := SignedAngle(x, c.to)
			if math.Abs(got-c.want) > eps {
				t.Errorf("SignedAngle(%v, %v) = %g, want %g", x, c.to, got, c.want)
			}
		})
	}
}

func TestSignedAngleAntisymmetric(t *testing.T) {
	a := vec.Vec2{X: 2, Y: 1}
	b := vec.Vec2{X: -1, Y: 3}
	if d := SignedAngle(a, b) + SignedAngle(b, a); math.Abs(d) > eps {
		t.Errorf("SignedAngle not antisymmetric: sum %g", d)
	}
}

func TestRotate(t *testing.T) {
	got := Rotate(vec.Vec2{X: 1, Y: 0}, math.Pi/2)
	if !near(got, vec.Vec2{X: 0, Y: 1}, eps) {
		t.Errorf("Rotate by π/2 = %v", got)
	}
	v := vec.Vec2{X: 3, Y: -2}
	if back := Rotate(Rotate(v, 0.7), -0.7); !near(back, v, eps) {
		t.Errorf("rotate and rotate back: %v != %v", back, v)
	}
}

func TestRotateAroundKeepsRadius(t *testing.T) {
	center := vec.Vec2{X: 100, Y: -40}
	const radius = 75
	p := FromHeading(center, 0.3, radius)
	for range 10000 {
		p = RotateAround(p, center, 1e-3, radius)
	}
	if d := p.Sub(center).Length(); math.Abs(d-radius) > 1e-9 {
		t.Errorf("radius drifted to %.15g", d)
	}
	want := FromHeading(center, 0.3+10, radius)
	if !near(p, want, 1e-6) {
		t.Errorf("rotated point %v, want %v", p, want)
	}

	if got := RotateAround(center, center, 1, radius); got != center {
		t.Errorf("rotating the centre moved it to %v", got)
	}
}

func TestDistSq(t *testing.T) {
	if d := DistSq(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 4, Y: 5}); d != 25 {
		t.Errorf("DistSq = %g, want 25", d)
	}
}
