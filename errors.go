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

package procanim

import "errors"

// Errors reported by the animation packages.  They are always wrapped with
// additional context; use [errors.Is] to test for them.
var (
	// ErrInvalidConstruction is returned when a chain, body or rig is
	// built from parameters which cannot describe a valid object, for
	// example a chain without joints or a radial rig with an odd number
	// of legs.
	ErrInvalidConstruction = errors.New("invalid construction parameters")

	// ErrPreconditionNotMet is returned by derived-geometry calls when
	// the underlying body is too short for the requested shape.
	ErrPreconditionNotMet = errors.New("precondition not met")

	// ErrInsufficientControlPoints is returned when a closed curve is
	// requested through fewer than four distinct points.  Callers
	// usually fall back to drawing the raw polygon.
	ErrInsufficientControlPoints = errors.New("insufficient control points")

	// ErrInvalidSettings is returned when a settings file contains
	// unknown keys or out-of-range values.
	ErrInvalidSettings = errors.New("invalid settings")
)
