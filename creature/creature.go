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

// Package creature implements fish-like creatures: a body chain with an
// outline, fins, eyes and optional legs.
//
// Each frame, [Creature.Update] advances the spine towards a target and
// then re-places the legs, and [Creature.Frame] derives the display
// shapes from the updated state.  Fins and eyes carry no state of their
// own and are recomputed from the spine every time.
package creature

import (
	"fmt"
	"image/color"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/procanim"
	"seehuhn.de/go/procanim/body"
	"seehuhn.de/go/procanim/chain"
	"seehuhn.de/go/procanim/geometry"
)

// Palette holds the two colours of a creature.
type Palette struct {
	// Base is used for the body.
	Base color.NRGBA

	// Contrast is used for fins and legs.
	Contrast color.NRGBA
}

// Side selects one side of the spine.
type Side int

// The two sides of a spine.  Dorsal is the side in direction
// [geometry.Perp] of the local forward direction.
const (
	Dorsal  Side = 1
	Ventral Side = -1
)

func (s Side) String() string {
	switch s {
	case Dorsal:
		return "dorsal"
	case Ventral:
		return "ventral"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// LegConfig describes a pair of legs, one on each side of the spine.
type LegConfig struct {
	// Index is the body segment the legs are attached to.
	Index int

	// Joints is the number of joints per leg.
	Joints int

	// Length and Thickness are the total length and thickness of each leg.
	Length    float64
	Thickness float64

	// Rate is the smoothing rate of the leg chains.  If this is zero,
	// the default leg smoothing rate is used.
	Rate float64
}

// Slot identifies where a leg is attached.
type Slot struct {
	Index int
	Side  Side
}

// Leg is a chain attached to the edge of the spine, which reaches for a
// support point on the ground.
type Leg struct {
	Slot  Slot
	Chain *chain.Chain
	Foot  chain.Foothold
}

// Creature is a fish-like animal.
type Creature struct {
	Body    *body.Chain
	Palette Palette

	// legs are fixed at construction.  Legs attached to the same segment
	// are stored next to each other, dorsal side first.
	legs []Leg

	target vec.Vec2
}

// New creates a creature with its head at head and one body segment per
// entry of sizes.  For every leg configuration, two legs are attached to
// the given segment, one on each side.
func New(head vec.Vec2, sizes []float64, palette Palette, legs ...LegConfig) (*Creature, error) {
	b, err := body.New(head, sizes)
	if err != nil {
		return nil, fmt.Errorf("creature: %w", err)
	}
	c := &Creature{
		Body:    b,
		Palette: palette,
		legs:    make([]Leg, 0, 2*len(legs)),
		target:  head,
	}

	defaults := procanim.DefaultTuning()
	for _, cfg := range legs {
		if cfg.Index < 0 || cfg.Index >= b.Len() {
			return nil, fmt.Errorf("creature: leg at segment %d of %d: %w",
				cfg.Index, b.Len(), procanim.ErrInvalidConstruction)
		}
		rate := cfg.Rate
		if rate == 0 {
			rate = defaults.LegSmoothing
		}
		for _, side := range []Side{Dorsal, Ventral} {
			slot := Slot{Index: cfg.Index, Side: side}
			anchor, attach := c.attachment(slot)
			ch, err := chain.New(anchor, cfg.Joints, cfg.Length, cfg.Thickness, rate)
			if err != nil {
				return nil, fmt.Errorf("creature: leg at segment %d: %w", cfg.Index, err)
			}
			reach := ch.TotalLength()
			c.legs = append(c.legs, Leg{
				Slot:  slot,
				Chain: ch,
				Foot: chain.Foothold{
					Support:      chain.Resting(anchor, attach, reach),
					Margin:       defaults.LegMarginRate * reach,
					AttachRadius: b.Segment(cfg.Index).Radius,
					Slack:        defaults.AttachSlack,
				},
			})
		}
	}
	return c, nil
}

// Target returns the target of the most recent update.
func (c *Creature) Target() vec.Vec2 {
	return c.target
}

// NumLegs returns the number of legs.
func (c *Creature) NumLegs() int {
	return len(c.legs)
}

// Leg returns leg i.  The returned value is owned by the creature and
// changes with every update.
func (c *Creature) Leg(i int) *Leg {
	return &c.legs[i]
}

// attachment returns the anchor of a leg on the edge of the spine, and the
// centre of the segment it is attached to.
func (c *Creature) attachment(slot Slot) (anchor, attach vec.Vec2) {
	seg := c.Body.Segment(slot.Index)
	perp := geometry.Perp(c.Body.Direction(slot.Index))
	anchor = seg.Pos.Add(perp.Mul(float64(slot.Side) * seg.Radius))
	return anchor, seg.Pos
}

// Update advances the creature by one frame.
//
// The spine moves first.  Then every leg is moved along with its anchor,
// its support point is re-evaluated, and the leg is bent towards the
// support point.  The return value is the number of legs which took a
// step in this frame.
func (c *Creature) Update(target vec.Vec2, dt float64, s procanim.Settings) int {
	c.target = target
	c.Body.Advance(target, dt, s)

	steps := 0
	for i := range c.legs {
		leg := &c.legs[i]
		anchor, attach := c.attachment(leg.Slot)
		reach := leg.Chain.TotalLength()

		leg.Chain.SetDampingOffset(s.Tuning.IKDampingOffset)
		leg.Foot.Margin = s.Tuning.LegMarginRate * reach
		leg.Foot.Slack = s.Tuning.AttachSlack

		leg.Chain.MoveBaseTo(anchor)
		if leg.Foot.Update(anchor, attach, reach) {
			steps++
		}
		leg.Chain.SolveTowards(leg.Foot.Support, dt)
	}
	return steps
}
