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

// Package body implements the spine of a creature: a sequence of round
// segments which follow the head at fixed distances.
//
// The head steers towards a target point.  All other segments are placed
// by a follow-the-leader rule: each segment is pulled straight towards its
// predecessor until the gap between them is exactly the required distance.
// The rule has no springs or damping, so the spine reacts to head motion
// in the same frame.
package body

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/procanim"
	"seehuhn.de/go/procanim/geometry"
)

// Segment is one round section of a spine.
type Segment struct {
	Pos    vec.Vec2
	Radius float64
}

// Chain is the spine of a creature.  Segment 0 is the head.
// The number of segments is fixed when the chain is created.
type Chain struct {
	segs    []Segment
	heading vec.Vec2

	// bends[i] is the signed angle between the direction of segment i
	// and the direction of segment i-1, from the last constraint pass.
	bends    []float64
	meanBend float64
}

// New creates a spine with one segment per radius, with the head at head.
// The remaining segments are lined up below the head (in -y direction),
// segment i at distance 2·radii[i] from segment i-1.  The heading is
// initially undefined (the zero vector).
func New(head vec.Vec2, radii []float64) (*Chain, error) {
	if len(radii) == 0 {
		return nil, fmt.Errorf("body without segments: %w", procanim.ErrInvalidConstruction)
	}
	segs := make([]Segment, len(radii))
	p := head
	for i, r := range radii {
		if !(r > 0) || math.IsInf(r, 0) {
			return nil, fmt.Errorf("segment %d has radius %g: %w",
				i, r, procanim.ErrInvalidConstruction)
		}
		if i > 0 {
			p = vec.Vec2{X: p.X, Y: p.Y - 2*r}
		}
		segs[i] = Segment{Pos: p, Radius: r}
	}
	return &Chain{
		segs:  segs,
		bends: make([]float64, len(segs)),
	}, nil
}

// Len returns the number of segments.
func (c *Chain) Len() int {
	return len(c.segs)
}

// Segments returns a copy of the segments, head first.
func (c *Chain) Segments() []Segment {
	return append([]Segment(nil), c.segs...)
}

// Positions returns the centres of all segments, head first.
func (c *Chain) Positions() []vec.Vec2 {
	res := make([]vec.Vec2, len(c.segs))
	for i, s := range c.segs {
		res[i] = s.Pos
	}
	return res
}

// Segment returns segment i.
func (c *Chain) Segment(i int) Segment {
	return c.segs[i]
}

// Head returns the position of the head.
func (c *Chain) Head() vec.Vec2 {
	return c.segs[0].Pos
}

// Heading returns the unit direction in which the head moves.
// Before the first call to [Chain.Advance] this is the zero vector.
func (c *Chain) Heading() vec.Vec2 {
	return c.heading
}

// AverageRadius returns the mean radius of all segments.
func (c *Chain) AverageRadius() float64 {
	var sum float64
	for _, s := range c.segs {
		sum += s.Radius
	}
	return sum / float64(len(c.segs))
}

// Gap returns the required distance between the centres of segment i
// and segment i-1.  Overlapping segments are kept as far apart as the
// larger of the two radii, otherwise as far as the sum of the radii.
func (c *Chain) Gap(i int, overlap bool) float64 {
	r0, r1 := c.segs[i-1].Radius, c.segs[i].Radius
	if overlap {
		return max(r0, r1)
	}
	return r0 + r1
}

// Direction returns the forward unit direction at segment i.
// For the head this is the heading; for all other segments it points
// from the segment towards its predecessor.  Where no direction is
// defined, the direction of the previous segment is used, and (1, 0)
// for a head which has neither a heading nor a follower.
func (c *Chain) Direction(i int) vec.Vec2 {
	if i > 0 {
		if d, ok := geometry.Normalize(c.segs[i-1].Pos.Sub(c.segs[i].Pos)); ok {
			return d
		}
		return c.Direction(i - 1)
	}
	if d, ok := geometry.Normalize(c.heading); ok {
		return d
	}
	if len(c.segs) > 1 {
		if d, ok := geometry.Normalize(c.segs[0].Pos.Sub(c.segs[1].Pos)); ok {
			return d
		}
	}
	return vec.Vec2{X: 1, Y: 0}
}

// Advance moves the head one step towards target and drags the rest of
// the spine along.
//
// The new heading is the normalised sum of the old heading, a small
// random wobble and the vector to the target scaled by dt·TurnRate.  If
// this sum vanishes, the old heading is kept.  The head then moves by
// dt·Speed along the heading, and [Chain.Constrain] restores the gaps.
func (c *Chain) Advance(target vec.Vec2, dt float64, s procanim.Settings) {
	j := s.JitterSource().Jitter(s.Tuning.JitterAmplitude)
	h := c.heading.Add(vec.Vec2{X: j, Y: j}).
		Add(target.Sub(c.segs[0].Pos).Mul(dt * s.Motion.TurnRate))
	if d, ok := geometry.Normalize(h); ok {
		c.heading = d
	}
	c.segs[0].Pos = c.segs[0].Pos.Add(c.heading.Mul(dt * s.Motion.Speed))
	c.Constrain(s.Flags.Overlap)
}

// Constrain places every segment after the head at exactly the required
// gap from its predecessor, moving it along the line between the two
// centres.  A segment which coincides with its predecessor is placed
// behind it, opposite to the predecessor's forward direction.
//
// The pass also records the bend between neighbouring segments, see
// [Chain.MeanBend].
func (c *Chain) Constrain(overlap bool) {
	// Without a heading, the head has no direction of its own and the
	// first bend is zero.
	prev, hasPrev := geometry.Normalize(c.heading)
	c.bends[0] = 0
	var sum float64
	for i := 1; i < len(c.segs); i++ {
		dir, ok := geometry.Normalize(c.segs[i-1].Pos.Sub(c.segs[i].Pos))
		switch {
		case !ok && hasPrev:
			dir = prev
		case !ok:
			dir = vec.Vec2{X: 0, Y: 1}
		}
		if !hasPrev {
			prev, hasPrev = dir, true
		}
		c.segs[i].Pos = c.segs[i-1].Pos.Sub(dir.Mul(c.Gap(i, overlap)))

		bend := geometry.SignedAngle(dir, prev)
		c.bends[i] = bend
		sum += bend
		prev = dir
	}
	c.meanBend = 0
	if n := len(c.segs); n > 1 {
		c.meanBend = sum / float64(n-1)
	}
}

// MeanBend returns the average signed angle between the directions of
// neighbouring segments, measured in the last constraint pass.  The value
// is positive if the spine curves counter-clockwise from tail to head.
// For the head segment, the heading counts as its direction.
func (c *Chain) MeanBend() float64 {
	return c.meanBend
}

// Bends returns a copy of the per-segment bend angles from the last
// constraint pass.  Entry 0 is always zero.
func (c *Chain) Bends() []float64 {
	return append([]float64(nil), c.bends...)
}
