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

import (
	"time"

	"github.com/MichaelTJones/pcg"
)

// Jitter is a source of small random perturbations.
type Jitter interface {
	// Jitter returns a value drawn uniformly from [-amplitude, amplitude].
	Jitter(amplitude float64) float64
}

// NoJitter is a [Jitter] which always returns zero.
// It makes creature motion deterministic.
type NoJitter struct{}

// Jitter implements the [Jitter] interface.
func (NoJitter) Jitter(float64) float64 { return 0 }

// PCGJitter draws perturbations from a PCG32 generator.
// A PCGJitter must not be used concurrently.
type PCGJitter struct {
	r *pcg.PCG32
}

// NewPCGJitter returns a generator with the given seed.
func NewPCGJitter(seed uint64) *PCGJitter {
	r := pcg.NewPCG32()
	r.Seed(seed, pcgSequence)
	return &PCGJitter{r: r}
}

// Jitter implements the [Jitter] interface.
func (j *PCGJitter) Jitter(amplitude float64) float64 {
	u := float64(j.r.Random()) / (1 << 32)
	return (2*u - 1) * amplitude
}

// pcgSequence selects the PCG stream; any odd constant will do.
const pcgSequence = 0xda3e39cb94b95bdb

// processJitter is shared by all settings without an explicit source.
var processJitter Jitter = NewPCGJitter(uint64(time.Now().UnixNano()))
