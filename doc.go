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

// Package procanim animates articulated 2D creatures without authored
// animation data.
//
// The work is split over several packages:
//
//   - [seehuhn.de/go/procanim/geometry] holds the small vector helpers,
//   - [seehuhn.de/go/procanim/chain] solves jointed chains towards a target,
//   - [seehuhn.de/go/procanim/body] moves distance-constrained spines,
//   - [seehuhn.de/go/procanim/outline] turns spines into smooth closed curves,
//   - [seehuhn.de/go/procanim/creature] and [seehuhn.de/go/procanim/spider]
//     assemble complete animals from the pieces above.
//
// All packages are frame-stepped and single-threaded.  A driver calls into
// a creature once per frame with the elapsed time, a target point and a
// [Settings] value, and receives a [seehuhn.de/go/procanim/shape.Frame]
// to display.  This package contains the pieces shared by all of them:
// the per-frame settings, the error values and the jitter source.
package procanim
