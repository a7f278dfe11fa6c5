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
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Settings is the configuration for one frame.  Settings values are passed
// explicitly into every advance, solve and frame-building call; no
// component keeps a reference to them or reads global state instead.
type Settings struct {
	Flags  Flags  `toml:"flags"`
	Motion Motion `toml:"motion"`
	Tuning Tuning `toml:"tuning"`

	// Jitter supplies the idle wobble of creature headings.
	// If this is nil, the process-wide generator is used.
	Jitter Jitter `toml:"-"`
}

// Flags selects optional behaviour and optional output.
type Flags struct {
	// Debug replaces smoothed outlines by their raw control points.
	Debug bool `toml:"debug"`

	// Overlap lets neighbouring body segments overlap: the gap between
	// segment centres is the larger of the two radii instead of their sum.
	Overlap bool `toml:"overlap"`

	DrawEyes bool `toml:"draw_eyes"`
	DrawFins bool `toml:"draw_fins"`
	DrawLegs bool `toml:"draw_legs"`

	// SpecialSmoothing emits three outline control points per interior
	// body segment instead of one.
	SpecialSmoothing bool `toml:"special_smoothing"`

	// ShowSupport adds markers for the support points of legs.
	ShowSupport bool `toml:"show_support"`
}

// Motion controls how fast creatures move and turn.
type Motion struct {
	// Speed is the distance a creature head travels per unit of time.
	Speed float64 `toml:"speed"`

	// TurnRate scales how strongly the heading is pulled towards the
	// target, per unit of time and per unit of distance to the target.
	TurnRate float64 `toml:"turn_rate"`
}

// Tuning collects the empirically chosen constants of the animation.
// The defaults give the demo scenes their look; there is no
// derivation behind them.
type Tuning struct {
	// IKDampingOffset is added to the distance of a joint from the tip
	// of its chain to form the damping divisor of the chain solver.
	IKDampingOffset float64 `toml:"ik_damping_offset"`

	// JitterAmplitude bounds the random heading perturbation per frame.
	JitterAmplitude float64 `toml:"jitter_amplitude"`

	// LegMarginRate is the footfall margin, as a multiple of the leg reach.
	LegMarginRate float64 `toml:"leg_margin_rate"`

	// AttachSlack is added to the squared attachment radius when testing
	// whether a foot has been dragged under the body.
	AttachSlack float64 `toml:"attach_slack"`

	// LegSmoothing is the smoothing rate of leg chains.
	LegSmoothing float64 `toml:"leg_smoothing"`

	// SpiderRotateRate scales how fast a radial rig turns towards its target.
	SpiderRotateRate float64 `toml:"spider_rotate_rate"`

	// TailFlickGain converts the mean bend angle of a body (in radians)
	// into the sideways offset of the tail fin tip.
	TailFlickGain float64 `toml:"tail_flick_gain"`
}

// Default values.
const (
	defaultSpeed            = 0.5
	defaultTurnRate         = 0.01
	defaultIKDampingOffset  = 2
	defaultJitterAmplitude  = 1e-2
	defaultLegMarginRate    = 1.25
	defaultAttachSlack      = 25
	defaultLegSmoothing     = 0.1
	defaultSpiderRotateRate = 0.001
	defaultTailFlickGain    = 180 / math.Pi
)

// DefaultSettings returns the settings used by the demo scenes.
func DefaultSettings() Settings {
	return Settings{
		Flags: Flags{
			DrawEyes: true,
			DrawFins: true,
			DrawLegs: true,
		},
		Motion: Motion{
			Speed:    defaultSpeed,
			TurnRate: defaultTurnRate,
		},
		Tuning: DefaultTuning(),
	}
}

// DefaultTuning returns the default tuning constants.
func DefaultTuning() Tuning {
	return Tuning{
		IKDampingOffset:  defaultIKDampingOffset,
		JitterAmplitude:  defaultJitterAmplitude,
		LegMarginRate:    defaultLegMarginRate,
		AttachSlack:      defaultAttachSlack,
		LegSmoothing:     defaultLegSmoothing,
		SpiderRotateRate: defaultSpiderRotateRate,
		TailFlickGain:    defaultTailFlickGain,
	}
}

// JitterSource returns the jitter source to use for these settings.
func (s Settings) JitterSource() Jitter {
	if s.Jitter == nil {
		return processJitter
	}
	return s.Jitter
}

// Validate checks that all numeric settings are in range.
func (s Settings) Validate() error {
	checks := []struct {
		name string
		val  float64
		ok   bool
	}{
		{"motion.speed", s.Motion.Speed, s.Motion.Speed >= 0},
		{"motion.turn_rate", s.Motion.TurnRate, s.Motion.TurnRate >= 0},
		{"tuning.ik_damping_offset", s.Tuning.IKDampingOffset, s.Tuning.IKDampingOffset >= 1},
		{"tuning.jitter_amplitude", s.Tuning.JitterAmplitude, s.Tuning.JitterAmplitude >= 0},
		{"tuning.leg_margin_rate", s.Tuning.LegMarginRate, s.Tuning.LegMarginRate > 0},
		{"tuning.attach_slack", s.Tuning.AttachSlack, s.Tuning.AttachSlack >= 0},
		{"tuning.leg_smoothing", s.Tuning.LegSmoothing, s.Tuning.LegSmoothing > 0},
		{"tuning.spider_rotate_rate", s.Tuning.SpiderRotateRate, s.Tuning.SpiderRotateRate >= 0},
		{"tuning.tail_flick_gain", s.Tuning.TailFlickGain, true},
	}
	for _, c := range checks {
		if !c.ok || math.IsNaN(c.val) || math.IsInf(c.val, 0) {
			return fmt.Errorf("%w: %s = %g", ErrInvalidSettings, c.name, c.val)
		}
	}
	return nil
}

// ParseSettings decodes TOML data on top of [DefaultSettings].
// Keys which are not present keep their default value; unknown keys
// are an error.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Settings{}, fmt.Errorf("%w: unknown keys %s",
			ErrInvalidSettings, strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadSettings reads a TOML settings file.
func LoadSettings(fname string) (Settings, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return Settings{}, err
	}
	s, err := ParseSettings(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", fname, err)
	}
	return s, nil
}
