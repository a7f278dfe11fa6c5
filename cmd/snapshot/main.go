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

// Command snapshot runs scenes without a display and writes the final
// frame of each scene as a PNG image and as a PDF file.
//
// The target point circles around the centre of the viewport, so that
// the animals keep moving.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/procanim"
	"seehuhn.de/go/procanim/render"
	"seehuhn.de/go/procanim/scenario"
)

// targetPeriod is the time for one revolution of the target, in
// milliseconds.
const targetPeriod = 10000

func main() {
	scene := flag.String("scene", "", "scene to render (default: all scenes)")
	frames := flag.Int("frames", 300, "number of frames to simulate")
	dt := flag.Float64("dt", 16, "time step in milliseconds")
	width := flag.Int("width", 1024, "image width in pixels")
	height := flag.Int("height", 768, "image height in pixels")
	outDir := flag.String("out", "snapshots", "output directory")
	config := flag.String("config", "", "TOML settings file")
	seed := flag.Uint64("seed", 1, "seed for random placement and jitter")
	fit := flag.Bool("fit", false, "scale the image to show all animals")
	flag.Parse()

	if err := checkFlags(*frames, *dt, *width, *height); err != nil {
		panic(err)
	}

	s := procanim.DefaultSettings()
	if *config != "" {
		var err error
		s, err = procanim.LoadSettings(*config)
		if err != nil {
			panic(err)
		}
	}
	s.Jitter = procanim.NewPCGJitter(*seed)

	names := scenario.Names()
	if *scene != "" {
		if _, ok := scenario.All[*scene]; !ok {
			panic(fmt.Errorf("unknown scene %q", *scene))
		}
		names = []string{*scene}
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	vp := scenario.Viewport{Width: float64(*width), Height: float64(*height)}
	for _, name := range names {
		sc, err := scenario.All[name](vp, *seed)
		if err != nil {
			panic(fmt.Errorf("%s: %w", name, err))
		}

		stats := &render.Stats{Scene: name}
		for i := range *frames {
			in := scenario.Input{Target: target(vp, float64(i)*(*dt))}
			stats.Steps += sc.Step(in, *dt, s)
			stats.Frame++
		}
		f := sc.Frame(s)
		stats.Shapes = len(f.Shapes)

		c := render.NewCanvas(*width, *height)
		c.Background = scenario.Background
		if *fit {
			c.View = render.FitView(f.Bounds(), *width, *height, 10)
		}
		c.Clear()
		c.Draw(f)
		render.DrawStats(c.Image, stats, []render.Stat{render.StatScene, render.StatFrame, render.StatSteps}, color.White)

		pngPath := filepath.Join(*outDir, name+".png")
		if err := writePNG(pngPath, c); err != nil {
			panic(fmt.Errorf("%s: %w", name, err))
		}

		pdfPath := filepath.Join(*outDir, name+".pdf")
		err = render.WritePDF(pdfPath, f, *width, *height, c.View, scenario.Background)
		if err != nil {
			panic(fmt.Errorf("%s: %w", name, err))
		}

		fmt.Printf("%s: %d frames, %d shapes, %d footfalls\n",
			name, stats.Frame, stats.Shapes, stats.Steps)
	}
}

// checkFlags rejects simulation parameters which cannot produce a
// meaningful image.
func checkFlags(frames int, dt float64, width, height int) error {
	if frames < 1 {
		return fmt.Errorf("invalid frame count %d", frames)
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		return fmt.Errorf("invalid time step %g", dt)
	}
	if width < 1 || height < 1 {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}
	return nil
}

// target returns the position of the target at time t.
func target(vp scenario.Viewport, t float64) vec.Vec2 {
	phi := 2 * math.Pi * t / targetPeriod
	r := min(vp.Width, vp.Height) / 3
	return vp.Center().Add(vec.Vec2{X: math.Cos(phi), Y: math.Sin(phi)}.Mul(r))
}

func writePNG(fname string, c *render.Canvas) error {
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(out, c.Image); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
