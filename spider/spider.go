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

// Package spider implements a radial rig: a rigid round body with legs
// on both sides.
//
// The legs are attached along two arcs of the rim, one on each side of the
// facing direction.  When the rig moves, each foot stays where it is until
// the body has moved too far away, and then steps to a new support point.
package spider

import (
	"fmt"
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/procanim"
	"seehuhn.de/go/procanim/chain"
	"seehuhn.de/go/procanim/geometry"
)

// Config holds the construction parameters of a rig.
type Config struct {
	// Legs is the number of legs.  This must be even and positive.
	Legs int

	// MarginAngle is the angle (in radians) between the facing direction
	// and the first leg on either side, and between the facing direction
	// reversed and the last leg.
	MarginAngle float64

	// LegLength, LegThickness and LegJoints describe each leg chain.
	LegLength    float64
	LegThickness float64
	LegJoints    int

	// LegRate is the smoothing rate of the leg chains.
	LegRate float64

	// MarginRate is the footfall margin as a multiple of the leg length.
	MarginRate float64

	// Slack is added to the squared body radius when testing whether a
	// foot has been dragged under the body.
	Slack float64

	BodyColor color.NRGBA
	LegColor  color.NRGBA
}

// Default values of a rig.
const (
	DefaultLegs         = 8
	DefaultMarginAngle  = 60 * math.Pi / 180
	DefaultLegLength    = 100
	DefaultLegThickness = 2.5
	DefaultLegJoints    = 2
)

// DefaultConfig returns the configuration of a full-size spider.
func DefaultConfig() Config {
	t := procanim.DefaultTuning()
	return Config{
		Legs:         DefaultLegs,
		MarginAngle:  DefaultMarginAngle,
		LegLength:    DefaultLegLength,
		LegThickness: DefaultLegThickness,
		LegJoints:    DefaultLegJoints,
		LegRate:      t.LegSmoothing,
		MarginRate:   t.LegMarginRate,
		Slack:        t.AttachSlack,
		BodyColor:    color.NRGBA{A: 255},
		LegColor:     color.NRGBA{A: 255},
	}
}

// Leg is one leg of a rig together with its foothold.
type Leg struct {
	Chain *chain.Chain
	Foot  chain.Foothold
}

// Rig is a spider: a round body with an even number of legs.
type Rig struct {
	center vec.Vec2
	radius float64
	facing float64
	legs   []Leg

	legLength float64
	bodyColor color.NRGBA
	legColor  color.NRGBA
}

// New creates a rig with the given centre and body radius, facing in the
// direction of the positive x-axis.
//
// Half of the legs are spread evenly over the arc from MarginAngle to
// π-MarginAngle (measured from the facing direction), the other half over
// the arc from π+MarginAngle to 2π-MarginAngle.  Both end points of each
// arc carry a leg.  Every foot starts at its resting point, straight out
// from the body at the distance of the leg length.
func New(center vec.Vec2, radius float64, cfg Config) (*Rig, error) {
	if cfg.Legs <= 0 || cfg.Legs%2 != 0 {
		return nil, fmt.Errorf("rig with %d legs: %w", cfg.Legs, procanim.ErrInvalidConstruction)
	}
	if !(radius > 0) {
		return nil, fmt.Errorf("rig with radius %g: %w", radius, procanim.ErrInvalidConstruction)
	}

	r := &Rig{
		center:    center,
		radius:    radius,
		legs:      make([]Leg, 0, cfg.Legs),
		legLength: cfg.LegLength,
		bodyColor: cfg.BodyColor,
		legColor:  cfg.LegColor,
	}
	m := cfg.MarginAngle
	angles := append(linspace(m, math.Pi-m, cfg.Legs/2), linspace(math.Pi+m, 2*math.Pi-m, cfg.Legs/2)...)
	for _, a := range angles {
		base := geometry.FromHeading(center, r.facing+a, radius)
		ch, err := chain.New(base, cfg.LegJoints, cfg.LegLength, cfg.LegThickness, cfg.LegRate)
		if err != nil {
			return nil, fmt.Errorf("rig leg: %w", err)
		}
		r.legs = append(r.legs, Leg{
			Chain: ch,
			Foot: chain.Foothold{
				Support:      chain.Resting(base, center, cfg.LegLength),
				Margin:       cfg.MarginRate * cfg.LegLength,
				AttachRadius: radius,
				Slack:        cfg.Slack,
			},
		})
	}
	return r, nil
}

// linspace returns n evenly spaced values from a to b, both included.
// For n == 1 the result is just a.
func linspace(a, b float64, n int) []float64 {
	res := make([]float64, n)
	for i := range res {
		if n == 1 {
			res[i] = a
			break
		}
		res[i] = a + (b-a)*float64(i)/float64(n-1)
	}
	return res
}

// Center returns the centre of the body.
func (r *Rig) Center() vec.Vec2 { return r.center }

// Radius returns the body radius.
func (r *Rig) Radius() float64 { return r.radius }

// Facing returns the facing angle in radians.
func (r *Rig) Facing() float64 { return r.facing }

// Forward returns the unit vector in the facing direction.
func (r *Rig) Forward() vec.Vec2 { return geometry.Unit(r.facing) }

// NumLegs returns the number of legs.
func (r *Rig) NumLegs() int { return len(r.legs) }

// Leg returns leg i.  The returned value is owned by the rig.
func (r *Rig) Leg(i int) *Leg { return &r.legs[i] }

// Rotate turns the rig around its centre by theta.  Each leg base is
// placed back onto the rim at exactly the body radius, so that repeated
// small rotations do not make the legs drift.  Support points are not
// re-evaluated.
func (r *Rig) Rotate(theta float64) {
	r.facing += theta
	for i := range r.legs {
		ch := r.legs[i].Chain
		ch.MoveBaseTo(geometry.RotateAround(ch.Start(), r.center, theta, r.radius))
	}
}

// MoveTo moves the rig so that its centre is at pos.  The legs move with
// the body, and every support point is re-evaluated.  The return value is
// the number of legs which took a step.
func (r *Rig) MoveTo(pos vec.Vec2) int {
	delta := pos.Sub(r.center)
	r.center = pos
	steps := 0
	for i := range r.legs {
		leg := &r.legs[i]
		leg.Chain.MoveBaseBy(delta)
		if leg.Foot.Update(leg.Chain.Start(), r.center, r.legLength) {
			steps++
		}
	}
	return steps
}

// MoveBy moves the rig by delta, see [Rig.MoveTo].
func (r *Rig) MoveBy(delta vec.Vec2) int {
	return r.MoveTo(r.center.Add(delta))
}

// MoveForward moves the rig by dist in the facing direction.
func (r *Rig) MoveForward(dist float64) int {
	return r.MoveBy(r.Forward().Mul(dist))
}

// MoveBackward moves the rig by dist against the facing direction.
func (r *Rig) MoveBackward(dist float64) int {
	return r.MoveBy(r.Forward().Mul(-dist))
}

// MoveLeft moves the rig sideways by dist, a quarter turn
// counter-clockwise from the facing direction.
func (r *Rig) MoveLeft(dist float64) int {
	return r.MoveBy(geometry.Perp(r.Forward()).Mul(-dist))
}

// MoveRight moves the rig sideways by dist, a quarter turn clockwise
// from the facing direction.
func (r *Rig) MoveRight(dist float64) int {
	return r.MoveBy(geometry.Perp(r.Forward()).Mul(dist))
}

// PointTowards turns the rig towards target.  The rotation angle is the
// angle between the facing direction and the direction to the target,
// scaled by dt·SpiderRotateRate (at most the full angle).  Afterwards the support points are
// re-evaluated.  The return value is the number of legs which took a step.
func (r *Rig) PointTowards(target vec.Vec2, dt float64, s procanim.Settings) int {
	angle := geometry.SignedAngle(r.Forward(), target.Sub(r.center))
	r.Rotate(angle * min(1, dt*s.Tuning.SpiderRotateRate))
	return r.MoveTo(r.center)
}

// SolveLegs bends every leg towards its support point.
func (r *Rig) SolveLegs(dt float64) {
	for i := range r.legs {
		r.legs[i].Chain.SolveTowards(r.legs[i].Foot.Support, dt)
	}
}
