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
	"errors"
	"image/color"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/procanim"
	"seehuhn.de/go/procanim/body"
	"seehuhn.de/go/procanim/geometry"
	"seehuhn.de/go/procanim/outline"
	"seehuhn.de/go/procanim/shape"
)

var testPalette = Palette{
	Base:     color.NRGBA{R: 23, G: 56, B: 102, A: 255},
	Contrast: color.NRGBA{R: 68, G: 190, B: 242, A: 255},
}

func testSettings() procanim.Settings {
	s := procanim.DefaultSettings()
	s.Jitter = procanim.NoJitter{}
	return s
}

func walked(t *testing.T, sizes []float64, frames int) *body.Chain {
	t.Helper()
	b, err := body.New(vec.Vec2{}, sizes)
	if err != nil {
		t.Fatal(err)
	}
	s := testSettings()
	for range frames {
		b.Advance(vec.Vec2{X: 300, Y: 200}, 16, s)
	}
	return b
}

func TestNewInvalid(t *testing.T) {
	cases := []struct {
		name  string
		sizes []float64
		legs  []LegConfig
	}{
		{"no segments", nil, nil},
		{"leg index too large", []float64{5, 4}, []LegConfig{{Index: 2, Joints: 2, Length: 10}}},
		{"negative leg index", []float64{5, 4}, []LegConfig{{Index: -1, Joints: 2, Length: 10}}},
		{"leg without joints", []float64{5, 4}, []LegConfig{{Index: 1, Joints: 0, Length: 10}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(vec.Vec2{}, c.sizes, testPalette, c.legs...)
			if !errors.Is(err, procanim.ErrInvalidConstruction) {
				t.Errorf("got error %v", err)
			}
		})
	}
}

func TestFinPreconditions(t *testing.T) {
	two := walked(t, []float64{5, 4}, 3)
	three := walked(t, []float64{5, 4, 3}, 3)

	if _, err := LateralFins(two, 1); !errors.Is(err, procanim.ErrPreconditionNotMet) {
		t.Errorf("LateralFins on 2 segments: %v", err)
	}
	if _, err := TailFin(two, 0, 1); !errors.Is(err, procanim.ErrPreconditionNotMet) {
		t.Errorf("TailFin on 2 segments: %v", err)
	}
	if _, err := BackFin(three, 1); !errors.Is(err, procanim.ErrPreconditionNotMet) {
		t.Errorf("BackFin on 3 segments: %v", err)
	}

	if _, err := LateralFins(three, 0); err != nil {
		t.Errorf("LateralFins on 3 segments: %v", err)
	}
	if _, err := TailFin(three, 0, 1); err != nil {
		t.Errorf("TailFin on 3 segments: %v", err)
	}
}

func TestLateralFins(t *testing.T) {
	b := walked(t, []float64{10, 9, 8, 7, 6, 5}, 10)
	fins, err := LateralFins(b, 0)
	if err != nil {
		t.Fatal(err)
	}
	clamped, err := LateralFins(b, 2)
	if err != nil {
		t.Fatal(err)
	}
	for k := range fins {
		if len(fins[k]) != 4 {
			t.Fatalf("fin %d has %d points", k, len(fins[k]))
		}
		for i := range fins[k] {
			if fins[k][i] != clamped[k][i] {
				t.Errorf("index 0 was not clamped to 2")
			}
		}
	}

	// the fins sit on opposite sides of the spine
	seg := b.Segment(2)
	c0 := centroid(fins[0]).Sub(seg.Pos)
	c1 := centroid(fins[1]).Sub(seg.Pos)
	if c0.Dot(c1) >= 0 {
		t.Errorf("fins on the same side: %v, %v", c0, c1)
	}
	for k, c := range []vec.Vec2{c0, c1} {
		if d := c.Length(); math.Abs(d-seg.Radius) > 1e-9 {
			t.Errorf("fin %d anchored at distance %g from the spine, want %g", k, d, seg.Radius)
		}
	}
}

func centroid(pts []vec.Vec2) vec.Vec2 {
	var c vec.Vec2
	for _, p := range pts {
		c = c.Add(p)
	}
	return c.Mul(1 / float64(len(pts)))
}

func TestTailFinFlick(t *testing.T) {
	b := walked(t, []float64{10, 8, 6, 4}, 5)
	tail := b.Segment(3)
	dir := b.Direction(3)
	perp := geometry.Perp(dir)

	straight, err := TailFin(b, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(straight) != 4 {
		t.Fatalf("tail fin has %d points", len(straight))
	}
	for i, p := range straight {
		if d := math.Abs(geometry.Cross(dir, p.Sub(tail.Pos))); d > 1e-9 {
			t.Errorf("point %d is %g off the spine axis", i, d)
		}
	}

	bent, err := TailFin(b, 0.1, 180/math.Pi)
	if err != nil {
		t.Fatal(err)
	}
	off := bent[3].Sub(straight[3])
	want := perp.Mul(-0.1 * 180 / math.Pi)
	if off.Sub(want).Length() > 1e-9 {
		t.Errorf("tip offset %v, want %v", off, want)
	}
	for i := range 3 {
		if bent[i] != straight[i] {
			t.Errorf("point %d moved with the bend", i)
		}
	}
}

func TestBackFin(t *testing.T) {
	b := walked(t, []float64{10, 9, 8, 7, 6}, 10)
	for _, idx := range []int{0, 1, 2} {
		pts, err := BackFin(b, idx)
		if err != nil {
			t.Fatal(err)
		}
		if len(pts) != 6 {
			t.Fatalf("back fin has %d points", len(pts))
		}
		// clamped to 2: the fin spans segments 1, 2 and 3
		for k, i := range []int{1, 2, 3} {
			if pts[3+k] != b.Segment(i).Pos {
				t.Errorf("idx=%d: point %d is not segment %d", idx, 3+k, i)
			}
		}
	}
	pts, err := BackFin(b, 100)
	if err != nil {
		t.Fatal(err)
	}
	if pts[5] != b.Segment(4).Pos {
		t.Errorf("large index was not clamped to n-2")
	}
}

func TestEyes(t *testing.T) {
	b := walked(t, []float64{10, 8, 6}, 5)
	eyes := Eyes(b)
	for _, target := range []vec.Vec2{{X: 1000, Y: 0}, {X: -40, Y: 7}, eyes[0].Center} {
		for _, e := range eyes {
			if e.Radius != 5 {
				t.Errorf("eye radius %g", e.Radius)
			}
			pc, pr := e.Pupil(target)
			if d := pc.Sub(e.Center).Length(); d > 0.8*e.Radius+1e-9 {
				t.Errorf("pupil centre %g from the eye centre", d)
			}
			if math.Abs(pr-0.4*e.Radius) > 1e-12 {
				t.Errorf("pupil radius %g", pr)
			}
		}
	}
	if d := eyes[0].Center.Sub(eyes[1].Center).Length(); math.Abs(d-12) > 1e-9 {
		t.Errorf("eyes are %g apart, want 12", d)
	}
}

func TestLegsFollowBody(t *testing.T) {
	c, err := New(vec.Vec2{X: 100, Y: 100}, []float64{10, 9, 8, 7, 6},
		testPalette, LegConfig{Index: 1, Joints: 2, Length: 30, Thickness: 2})
	if err != nil {
		t.Fatal(err)
	}
	if c.NumLegs() != 2 {
		t.Fatalf("NumLegs() = %d", c.NumLegs())
	}
	if c.Leg(0).Slot != (Slot{Index: 1, Side: Dorsal}) || c.Leg(1).Slot.Side != Ventral {
		t.Errorf("unexpected slots %v, %v", c.Leg(0).Slot, c.Leg(1).Slot)
	}

	s := testSettings()
	totalSteps := 0
	for frame := range 200 {
		before := []vec.Vec2{c.Leg(0).Foot.Support, c.Leg(1).Foot.Support}
		steps := c.Update(vec.Vec2{X: 2000, Y: 100}, 16, s)
		totalSteps += steps

		moved := 0
		for i := range c.NumLegs() {
			leg := c.Leg(i)
			if leg.Foot.Support != before[i] {
				moved++
			}
			anchor, _ := c.attachment(leg.Slot)
			if d := leg.Chain.Start().Sub(anchor).Length(); d > 1e-9 {
				t.Fatalf("frame %d: leg %d detached from the body by %g", frame, i, d)
			}
		}
		if moved != steps {
			t.Fatalf("frame %d: %d supports moved, but %d steps reported", frame, moved, steps)
		}
	}
	if totalSteps == 0 {
		t.Error("legs never took a step")
	}
	if totalSteps > 200 {
		t.Errorf("%d steps in 200 frames: feet are sliding", totalSteps)
	}
}

func countShapes(f shape.Frame) (curves, polygons, circles int) {
	for _, s := range f.Shapes {
		switch s.(type) {
		case shape.Curve:
			curves++
		case shape.Polygon:
			polygons++
		case shape.Circle:
			circles++
		}
	}
	return
}

func TestFrame(t *testing.T) {
	c, err := New(vec.Vec2{X: 100, Y: 100}, []float64{12, 11, 10, 9, 8, 7, 6, 5, 4, 3},
		testPalette, LegConfig{Index: 2, Joints: 3, Length: 40, Thickness: 3})
	if err != nil {
		t.Fatal(err)
	}
	s := testSettings()
	for range 30 {
		c.Update(vec.Vec2{X: 400, Y: 300}, 16, s)
	}

	t.Run("normal", func(t *testing.T) {
		curves, polygons, circles := countShapes(c.Frame(s))
		if curves != 1 {
			t.Errorf("%d curves, want 1 body outline", curves)
		}
		// 2 legs with 3 segments each, 4 lateral fins, tail and back fin
		if want := 6 + 4 + 2; polygons != want {
			t.Errorf("%d polygons, want %d", polygons, want)
		}
		if circles != 4 {
			t.Errorf("%d circles, want 4 for the eyes", circles)
		}
	})

	t.Run("debug", func(t *testing.T) {
		d := s
		d.Flags.Debug = true
		f := c.Frame(d)
		curves, polygons, circles := countShapes(f)
		if curves != 0 {
			t.Errorf("debug frame contains %d smoothed curves", curves)
		}
		if circles == 0 {
			t.Error("debug frame has no markers")
		}
		// 2 legs with 3 segments each and the traced body outline
		if want := 6 + 1; polygons != want {
			t.Errorf("%d polygons, want %d", polygons, want)
		}
		traced := 0
		for _, sh := range f.Shapes {
			p, ok := sh.(shape.Polygon)
			if ok && p.Style.Fill.A == 0 && len(p.Points) == outline.SmoothCount(c.Body) {
				traced++
			}
		}
		if traced != 1 {
			t.Errorf("%d traced outlines, want 1", traced)
		}
	})

	t.Run("bare", func(t *testing.T) {
		d := s
		d.Flags.DrawFins = false
		d.Flags.DrawLegs = false
		d.Flags.DrawEyes = false
		f := c.Frame(d)
		if len(f.Shapes) != 1 {
			t.Errorf("%d shapes, want only the body", len(f.Shapes))
		}
		if st := f.Shapes[0].Paint(); st.Fill != testPalette.Base {
			t.Errorf("body painted with %v", st.Fill)
		}
	})

	t.Run("short body", func(t *testing.T) {
		short, err := New(vec.Vec2{}, []float64{6, 5}, testPalette)
		if err != nil {
			t.Fatal(err)
		}
		short.Update(vec.Vec2{X: 50, Y: 50}, 16, s)
		f := short.Frame(s)
		if len(f.Shapes) == 0 {
			t.Error("no shapes for a short body")
		}
	})
}

func BenchmarkCreature(b *testing.B) {
	sizes := make([]float64, 12)
	for i := range sizes {
		sizes[i] = math.Log(float64(len(sizes)-i+1)) * 5
	}
	c, err := New(vec.Vec2{}, sizes, testPalette, LegConfig{Index: 3, Joints: 2, Length: 30, Thickness: 2})
	if err != nil {
		b.Fatal(err)
	}
	s := testSettings()
	b.ReportAllocs()
	for b.Loop() {
		c.Update(vec.Vec2{X: 500, Y: 300}, 16, s)
		_ = c.Frame(s)
	}
}
