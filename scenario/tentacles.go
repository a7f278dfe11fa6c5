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

package scenario

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/procanim"
	"seehuhn.de/go/procanim/chain"
	"seehuhn.de/go/procanim/shape"
)

// Parameters of the tentacle scene.
const (
	NumTentacles      = 5
	TentacleJoints    = 5
	TentacleLength    = 500
	TentacleThickness = 15
	TentacleRate      = 0.01
	TentacleMargin    = 100
)

// Tentacles is a row of chains rooted along the bottom of the viewport,
// all reaching for the target.
type Tentacles struct {
	Chains []*chain.Chain
}

// NewTentacles places [NumTentacles] chains evenly along the bottom
// margin of the viewport.  The seed is not used.
func NewTentacles(vp Viewport, _ uint64) (Scene, error) {
	t := &Tentacles{}
	for i := range NumTentacles {
		x := TentacleMargin + float64(i)*(vp.Width-2*TentacleMargin)/(NumTentacles-1)
		base := vec.Vec2{X: x, Y: vp.Height - TentacleMargin}
		ch, err := chain.New(base, TentacleJoints, TentacleLength, TentacleThickness, TentacleRate)
		if err != nil {
			return nil, err
		}
		t.Chains = append(t.Chains, ch)
	}
	return t, nil
}

// Step implements the [Scene] interface.  The movement keys shift all
// tentacle roots by one unit per frame.
func (t *Tentacles) Step(in Input, dt float64, s procanim.Settings) int {
	for _, ch := range t.Chains {
		ch.SetDampingOffset(s.Tuning.IKDampingOffset)
		if in.Move != (vec.Vec2{}) {
			ch.MoveBaseBy(in.Move)
		}
		ch.SolveTowards(in.Target, dt)
	}
	return 0
}

// Frame implements the [Scene] interface.
func (t *Tentacles) Frame(procanim.Settings) shape.Frame {
	var f shape.Frame
	for _, ch := range t.Chains {
		f.Append(ch.Draw(shape.Filled(lightBlue), shape.Filled(white), true))
	}
	return f
}
