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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/procanim/geometry"
)

// Foothold keeps the support point of a leg in place until the body has
// moved too far away from it.  Legs are solved towards their support point,
// so a foot stays planted over many frames and then steps to a new place,
// instead of sliding along with the body.
type Foothold struct {
	// Support is the current support point.
	Support vec.Vec2

	// Margin is the largest distance between the support point and the
	// resting point before the leg takes a step.
	Margin float64

	// AttachRadius and Slack describe the area around the attachment
	// point which a foot must not enter: the support point is replaced
	// once its squared distance from the attachment point is at most
	// AttachRadius² + Slack.
	AttachRadius float64
	Slack        float64
}

// Resting returns the natural support point of a leg whose base is at
// anchor: the point at distance reach from anchor, pointing away from the
// attachment point.  If anchor and attach coincide, anchor is returned.
func Resting(anchor, attach vec.Vec2, reach float64) vec.Vec2 {
	dir, ok := geometry.Normalize(anchor.Sub(attach))
	if !ok {
		return anchor
	}
	return anchor.Add(dir.Mul(reach))
}

// Update re-evaluates the support point after the leg base has moved to
// anchor.  The support point is replaced by the resting point if it is
// more than Margin away from it, or if it has come too close to the
// attachment point.  The return value reports whether a step took place.
func (f *Foothold) Update(anchor, attach vec.Vec2, reach float64) bool {
	resting := Resting(anchor, attach, reach)
	if geometry.DistSq(f.Support, resting) > f.Margin*f.Margin ||
		geometry.DistSq(f.Support, attach) <= f.AttachRadius*f.AttachRadius+f.Slack {
		f.Support = resting
		return true
	}
	return false
}
