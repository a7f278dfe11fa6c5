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

// Package chain implements jointed chains which bend towards a target.
//
// A chain is used on its own as a tentacle, and as the leg of a creature
// or a spider.  Each call to [Chain.SolveTowards] performs a single damped
// pass over the joints, so the tip reaches a stationary target gradually
// over several frames.
package chain

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/procanim"
	"seehuhn.de/go/procanim/geometry"
)

// Joint is a rigid segment of a chain.
type Joint struct {
	Base      vec.Vec2
	Heading   float64 // radians
	Length    float64
	Thickness float64
}

// Tip returns the end point of the joint.
func (j Joint) Tip() vec.Vec2 {
	return geometry.FromHeading(j.Base, j.Heading, j.Length)
}

// Chain is an ordered sequence of joints.  The base of every joint after
// the first coincides with the tip of its predecessor.
type Chain struct {
	joints []Joint
	rate   float64
	target vec.Vec2

	// dampingOffset is added to the distance from the tip to form the
	// damping divisor of the solver.
	dampingOffset float64
}

// DefaultDampingOffset is the damping offset used unless
// [Chain.SetDampingOffset] is called.
const DefaultDampingOffset = 2

// New creates a chain of n joints starting at base.
//
// Joint lengths and thicknesses taper logarithmically: joint i gets weight
// log(n-i+1), so the joint at the base is the longest and thickest.  The
// lengths add up to totalLength, the thicknesses to thickness.  The joints
// initially fan out clockwise by a quarter turn over the whole chain.
// The smoothing rate scales how far the chain bends per unit of time.
func New(base vec.Vec2, n int, totalLength, thickness, rate float64) (*Chain, error) {
	if n <= 0 {
		return nil, fmt.Errorf("chain with %d joints: %w", n, procanim.ErrInvalidConstruction)
	}
	if !(totalLength > 0) || thickness < 0 || rate < 0 {
		return nil, fmt.Errorf("chain length %g, thickness %g, rate %g: %w",
			totalLength, thickness, rate, procanim.ErrInvalidConstruction)
	}

	var weightSum float64
	for i := range n {
		weightSum += taperWeight(n, i)
	}

	c := &Chain{
		joints:        make([]Joint, n),
		rate:          rate,
		dampingOffset: DefaultDampingOffset,
	}
	p := base
	for i := range c.joints {
		w := taperWeight(n, i) / weightSum
		c.joints[i] = Joint{
			Base:      p,
			Heading:   -float64(i) * (math.Pi / 2) / float64(n),
			Length:    totalLength * w,
			Thickness: thickness * w,
		}
		p = c.joints[i].Tip()
	}
	c.target = p
	return c, nil
}

// FromJoints creates a chain from explicit joints.  The base points of all
// joints after the first are ignored and recomputed from their
// predecessors.
func FromJoints(joints []Joint, rate float64) (*Chain, error) {
	if len(joints) == 0 {
		return nil, fmt.Errorf("chain without joints: %w", procanim.ErrInvalidConstruction)
	}
	for i, j := range joints {
		if !(j.Length > 0) {
			return nil, fmt.Errorf("joint %d has length %g: %w",
				i, j.Length, procanim.ErrInvalidConstruction)
		}
	}
	c := &Chain{
		joints:        append([]Joint(nil), joints...),
		rate:          rate,
		dampingOffset: DefaultDampingOffset,
	}
	c.propagate(0)
	c.target = c.Tip()
	return c, nil
}

func taperWeight(n, i int) float64 {
	return math.Log(float64(n - i + 1))
}

// SetDampingOffset changes the damping offset of the solver.
// Values below 1 are replaced by 1.
func (c *Chain) SetDampingOffset(offset float64) {
	c.dampingOffset = max(offset, 1)
}

// Len returns the number of joints.
func (c *Chain) Len() int {
	return len(c.joints)
}

// Joints returns a copy of the joints, ordered from base to tip.
func (c *Chain) Joints() []Joint {
	return append([]Joint(nil), c.joints...)
}

// Joint returns joint i.
func (c *Chain) Joint(i int) Joint {
	return c.joints[i]
}

// Start returns the base point of the first joint.
func (c *Chain) Start() vec.Vec2 {
	return c.joints[0].Base
}

// Tip returns the end point of the last joint.
func (c *Chain) Tip() vec.Vec2 {
	return c.joints[len(c.joints)-1].Tip()
}

// TotalLength returns the sum of all joint lengths.
func (c *Chain) TotalLength() float64 {
	var l float64
	for _, j := range c.joints {
		l += j.Length
	}
	return l
}

// Target returns the most recent target of [Chain.SolveTowards].
func (c *Chain) Target() vec.Vec2 {
	return c.target
}

// SolveTowards bends the chain so that its tip approaches target.
//
// The joints are visited from the tip to the base.  Each joint is turned by
// a fraction of the angle between the current tip and the target, as seen
// from the base of the joint.  The fraction is dt·rate/(n-i+offset) for
// joint i, clamped to 1, so joints near the base move least and the chain
// curls from the tip.  After each joint, the joints beyond it are moved to
// keep the chain connected and the tip is measured again.
//
// If the tip already coincides with the target, nothing happens.
func (c *Chain) SolveTowards(target vec.Vec2, dt float64) {
	c.target = target
	tip := c.Tip()
	if tip == target {
		return
	}

	n := len(c.joints)
	for i := n - 1; i >= 0; i-- {
		base := c.joints[i].Base
		v1 := tip.Sub(base)
		v2 := target.Sub(base)
		if _, ok := geometry.Normalize(v1); !ok {
			continue
		}
		if _, ok := geometry.Normalize(v2); !ok {
			continue
		}
		angle := geometry.SignedAngle(v1, v2)
		step := min(1, dt*c.rate/(float64(n-i)+c.dampingOffset))
		c.joints[i].Heading += angle * step

		c.propagate(i + 1)
		tip = c.Tip()
	}
}

// MoveBaseTo moves the base of the chain to pos, keeping all headings.
func (c *Chain) MoveBaseTo(pos vec.Vec2) {
	c.joints[0].Base = pos
	c.propagate(1)
}

// MoveBaseBy moves the whole chain by delta.
func (c *Chain) MoveBaseBy(delta vec.Vec2) {
	c.MoveBaseTo(c.joints[0].Base.Add(delta))
}

// propagate places joints from..n-1 at the tips of their predecessors.
func (c *Chain) propagate(from int) {
	for j := max(from, 1); j < len(c.joints); j++ {
		c.joints[j].Base = c.joints[j-1].Tip()
	}
}
