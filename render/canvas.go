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

// Package render turns animation frames into pictures.
//
// A [Canvas] paints a [shape.Frame] into an RGBA image using an
// anti-aliasing scanline rasteriser.  The same frame can be written to a
// PDF page with [WritePDF], or reduced to terminal cells with
// [SampleCells].  World coordinates are mapped to pixels by a view matrix;
// as on screen, the y-axis points down.
package render

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/procanim/shape"
)

// Canvas is an RGBA image together with a rasteriser for drawing frames.
type Canvas struct {
	Image *image.RGBA

	// View maps world coordinates to pixel coordinates.
	View matrix.Matrix

	// Background is the color used by [Canvas.Clear].
	Background color.NRGBA

	r *Rasteriser
}

// NewCanvas allocates a canvas of the given size, with the identity view
// and a black background.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Canvas{
		Image:      img,
		View:       matrix.Identity,
		Background: color.NRGBA{A: 255},
		r:          NewRasteriser(clipRect(img.Bounds())),
	}
}

func clipRect(b image.Rectangle) rect.Rect {
	return rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
}

// Clear fills the whole image with the background color.
func (c *Canvas) Clear() {
	bg := color.RGBAModel.Convert(c.Background).(color.RGBA)
	pix := c.Image.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = bg.R
		pix[i+1] = bg.G
		pix[i+2] = bg.B
		pix[i+3] = bg.A
	}
}

// Draw paints all shapes of f, in order, on top of the current image.
// For every shape the interior is filled first and the outline is
// stroked afterwards.
func (c *Canvas) Draw(f shape.Frame) {
	c.r.CTM = c.View
	for _, s := range f.Shapes {
		st := s.Paint()
		fill := st.Fill.A > 0
		stroke := st.Stroke.A > 0 && st.StrokeWidth > 0
		if !fill && !stroke {
			continue
		}
		p := s.Path()
		if fill {
			c.r.FillPath(p, c.blend(st.Fill))
		}
		if stroke {
			c.r.StrokePath(p, st.StrokeWidth, c.blend(st.Stroke))
		}
	}
}

// blend returns a coverage callback which composites col over the image,
// with the coverage acting as additional opacity.
func (c *Canvas) blend(col color.NRGBA) func(y, xMin int, coverage []float32) {
	img := c.Image
	alpha := float32(col.A) / 255
	r, g, b := float32(col.R), float32(col.G), float32(col.B)
	return func(y, xMin int, coverage []float32) {
		off := img.PixOffset(xMin, y)
		row := img.Pix[off : off+4*len(coverage)]
		for i, cov := range coverage {
			a := cov * alpha
			p := row[4*i : 4*i+4 : 4*i+4]
			p[0] = uint8(float32(p[0])*(1-a) + r*a + 0.5)
			p[1] = uint8(float32(p[1])*(1-a) + g*a + 0.5)
			p[2] = uint8(float32(p[2])*(1-a) + b*a + 0.5)
			p[3] = uint8(float32(p[3])*(1-a) + 255*a + 0.5)
		}
	}
}

// FitView returns a view matrix which scales and centres the world
// rectangle bounds into a width×height image, leaving margin pixels on
// every side.  The aspect ratio is preserved.
func FitView(bounds rect.Rect, width, height int, margin float64) matrix.Matrix {
	bw := bounds.URx - bounds.LLx
	bh := bounds.URy - bounds.LLy
	if !(bw > 0) || !(bh > 0) {
		return matrix.Identity
	}
	aw := float64(width) - 2*margin
	ah := float64(height) - 2*margin
	s := min(aw/bw, ah/bh)
	if !(s > 0) {
		return matrix.Identity
	}
	tx := float64(width)/2 - s*(bounds.LLx+bounds.URx)/2
	ty := float64(height)/2 - s*(bounds.LLy+bounds.URy)/2
	return matrix.Matrix{s, 0, 0, s, tx, ty}
}
