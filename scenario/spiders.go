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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/procanim"
	"seehuhn.de/go/procanim/shape"
	"seehuhn.de/go/procanim/spider"
)

// Parameters of the spider scene.
const (
	NumSpiderKids = 25
	MotherRadius  = 75
	KidRadius     = 25
	KidDistance   = 2000
	kidScale      = 3
)

// Spiders is a large spider steered with the movement keys, together with
// a swarm of small spiders which walk forward while turning towards the
// target.
type Spiders struct {
	Mother *spider.Rig
	Kids   []*spider.Rig
}

// NewSpiders places the mother at the centre of the viewport.  Kid i
// starts at distance [KidDistance] from the centre, in direction
// 360/(i+1) radians.  Kids have a third of the leg length and thickness
// of the mother.  The seed is not used.
func NewSpiders(vp Viewport, _ uint64) (Scene, error) {
	center := vp.Center()
	mother, err := spider.New(center, MotherRadius, spider.DefaultConfig())
	if err != nil {
		return nil, err
	}
	res := &Spiders{Mother: mother}

	cfg := spider.DefaultConfig()
	cfg.LegLength /= kidScale
	cfg.LegThickness /= kidScale
	for i := range NumSpiderKids {
		angle := 360 / float64(i+1)
		pos := center.Add(vec.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Mul(KidDistance))
		kid, err := spider.New(pos, KidRadius, cfg)
		if err != nil {
			return nil, err
		}
		res.Kids = append(res.Kids, kid)
	}
	return res, nil
}

// Step implements the [Scene] interface.
//
// Every kid walks forward by dt·Speed and then turns towards the target.
// The mother turns towards the target, and the vertical and horizontal
// movement keys move her forward/backward and left/right.
func (sp *Spiders) Step(in Input, dt float64, s procanim.Settings) int {
	steps := 0
	dist := dt * s.Motion.Speed
	for _, kid := range sp.Kids {
		steps += kid.MoveForward(dist)
		steps += kid.PointTowards(in.Target, dt, s)
		kid.SolveLegs(dt)
	}

	m := sp.Mother
	steps += m.PointTowards(in.Target, dt, s)
	switch {
	case in.Move.Y < 0:
		steps += m.MoveForward(dist)
	case in.Move.Y > 0:
		steps += m.MoveBackward(dist)
	case in.Move.X < 0:
		steps += m.MoveLeft(dist)
	case in.Move.X > 0:
		steps += m.MoveRight(dist)
	}
	m.SolveLegs(dt)
	return steps
}

// Frame implements the [Scene] interface.  The mother is drawn on top.
func (sp *Spiders) Frame(s procanim.Settings) shape.Frame {
	var f shape.Frame
	for _, kid := range sp.Kids {
		f.Append(kid.Frame(s))
	}
	f.Append(sp.Mother.Frame(s))
	return f
}
