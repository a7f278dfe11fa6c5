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

	"github.com/MichaelTJones/pcg"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/procanim"
	"seehuhn.de/go/procanim/creature"
	"seehuhn.de/go/procanim/shape"
)

// Parameters of the creature scene.
const (
	NumCreatures      = 25
	CreatureSegments  = 12
	CreatureSpread    = 1000
	PaletteSaturation = 0.75
)

// CreatureSizes returns the segment radii of an n-segment creature:
// 5·log(n-i+1) for segment i, so that the body tapers towards the tail.
func CreatureSizes(n int) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = 5 * math.Log(float64(n-i+1))
	}
	return res
}

// Creatures is a school of creatures, all chasing the target.
type Creatures struct {
	Animals []*creature.Creature
}

// NewCreatures scatters [NumCreatures] creatures uniformly over a square
// of half-width [CreatureSpread] around the centre of the viewport, each
// with its own palette.
func NewCreatures(vp Viewport, seed uint64) (Scene, error) {
	rng := pcg.NewPCG32()
	rng.Seed(seed, pcgStream)
	uniform := func() float64 {
		u := float64(rng.Random()) / (1 << 32)
		return (2*u - 1) * CreatureSpread
	}

	res := &Creatures{}
	center := vp.Center()
	sizes := CreatureSizes(CreatureSegments)
	for _, pal := range Palettes(NumCreatures, PaletteSaturation) {
		head := center.Add(vec.Vec2{X: uniform(), Y: uniform()})
		c, err := creature.New(head, sizes, pal)
		if err != nil {
			return nil, err
		}
		res.Animals = append(res.Animals, c)
	}
	return res, nil
}

// pcgStream selects the PCG stream used for placement.
const pcgStream = 0x5851f42d4c957f2d

// Step implements the [Scene] interface.
func (c *Creatures) Step(in Input, dt float64, s procanim.Settings) int {
	steps := 0
	for _, a := range c.Animals {
		steps += a.Update(in.Target, dt, s)
	}
	return steps
}

// Frame implements the [Scene] interface.
func (c *Creatures) Frame(s procanim.Settings) shape.Frame {
	var f shape.Frame
	for _, a := range c.Animals {
		f.Append(a.Frame(s))
	}
	return f
}
