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
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettingsValid(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestParseSettings(t *testing.T) {
	data := []byte(`
[flags]
debug = true
overlap = true

[motion]
speed = 2.5

[tuning]
ik_damping_offset = 3
`)
	s, err := ParseSettings(data)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Flags.Debug || !s.Flags.Overlap {
		t.Errorf("flags not decoded: %+v", s.Flags)
	}
	if !s.Flags.DrawEyes {
		t.Error("DrawEyes lost its default value")
	}
	if s.Motion.Speed != 2.5 {
		t.Errorf("speed = %g, want 2.5", s.Motion.Speed)
	}
	if s.Motion.TurnRate != defaultTurnRate {
		t.Errorf("turn rate = %g, want default %g", s.Motion.TurnRate, defaultTurnRate)
	}
	if s.Tuning.IKDampingOffset != 3 {
		t.Errorf("damping offset = %g, want 3", s.Tuning.IKDampingOffset)
	}
	if s.Tuning.LegMarginRate != defaultLegMarginRate {
		t.Errorf("leg margin = %g, want default", s.Tuning.LegMarginRate)
	}
}

func TestParseSettingsErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"unknown key", "[flags]\nwings = true\n"},
		{"negative speed", "[motion]\nspeed = -1\n"},
		{"small damping", "[tuning]\nik_damping_offset = 0.5\n"},
		{"syntax", "[motion\n"},
		{"nan flick gain", "[tuning]\ntail_flick_gain = nan\n"},
		{"infinite flick gain", "[tuning]\ntail_flick_gain = -inf\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseSettings([]byte(c.data))
			if !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("got %v, want ErrInvalidSettings", err)
			}
		})
	}
}

func TestLoadSettings(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "settings.toml")
	err := os.WriteFile(fname, []byte("[flags]\nspecial_smoothing = true\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	s, err := LoadSettings(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Flags.SpecialSmoothing {
		t.Error("special_smoothing not set")
	}

	_, err = LoadSettings(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Error("missing file accepted")
	}
}

func TestJitterBounds(t *testing.T) {
	j := NewPCGJitter(1)
	const amp = 0.25
	seenNeg, seenPos := false, false
	for range 10000 {
		x := j.Jitter(amp)
		if x < -amp || x > amp {
			t.Fatalf("jitter %g outside [-%g, %g]", x, amp, amp)
		}
		seenNeg = seenNeg || x < 0
		seenPos = seenPos || x > 0
	}
	if !seenNeg || !seenPos {
		t.Error("jitter is not symmetric around zero")
	}

	if got := (NoJitter{}).Jitter(amp); got != 0 {
		t.Errorf("NoJitter returned %g", got)
	}
	s := Settings{Jitter: NoJitter{}}
	if _, ok := s.JitterSource().(NoJitter); !ok {
		t.Error("explicit jitter source ignored")
	}
	if DefaultSettings().JitterSource() == nil {
		t.Error("no process-wide jitter source")
	}
}
