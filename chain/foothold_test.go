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
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestResting(t *testing.T) {
	got := Resting(vec.Vec2{X: 10, Y: 0}, vec.Vec2{}, 50)
	if got != (vec.Vec2{X: 60, Y: 0}) {
		t.Errorf("Resting = %v, want (60, 0)", got)
	}
	p := vec.Vec2{X: 3, Y: 4}
	if got := Resting(p, p, 50); got != p {
		t.Errorf("Resting with coincident points = %v, want %v", got, p)
	}
}

func TestFootholdHysteresis(t *testing.T) {
	f := &Foothold{
		Support:      vec.Vec2{X: 60, Y: 0},
		Margin:       20,
		AttachRadius: 10,
		Slack:        25,
	}

	steps := 0
	for k := 1; k <= 30; k++ {
		attach := vec.Vec2{X: float64(k), Y: 0}
		anchor := attach.Add(vec.Vec2{X: 10, Y: 0})
		before := f.Support
		stepped := f.Update(anchor, attach, 50)
		if stepped {
			steps++
			if k != 21 {
				t.Errorf("unexpected step at k=%d", k)
			}
			if f.Support != (vec.Vec2{X: 81, Y: 0}) {
				t.Errorf("new support %v, want (81, 0)", f.Support)
			}
		} else if f.Support != before {
			t.Errorf("support moved without a step at k=%d", k)
		}
	}
	if steps != 1 {
		t.Errorf("%d steps, want exactly 1", steps)
	}
}

func TestFootholdUnderBody(t *testing.T) {
	attach := vec.Vec2{}
	anchor := vec.Vec2{X: 0, Y: 10}
	f := &Foothold{
		Support:      vec.Vec2{X: 3, Y: 4}, // squared distance 25
		Margin:       1000,
		AttachRadius: 0,
		Slack:        25,
	}
	if !f.Update(anchor, attach, 40) {
		t.Fatal("foot under the body was kept")
	}
	if f.Support != (vec.Vec2{X: 0, Y: 50}) {
		t.Errorf("Support = %v, want (0, 50)", f.Support)
	}
	if f.Update(anchor, attach, 40) {
		t.Error("second update stepped again")
	}
}
