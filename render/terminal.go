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

package render

import (
	"image"
	"image/color"
)

// Cell is one character cell of a terminal, showing two vertically
// stacked pixels: the upper half block "▀" in the Top color on a
// background of the Bottom color.
type Cell struct {
	Top, Bottom color.RGBA
}

// SampleCells reduces img to a grid of cols×rows terminal cells, in
// row-major order.  Every cell averages the pixels of its part of the
// image, separately for the upper and the lower half.
func SampleCells(img *image.RGBA, cols, rows int) []Cell {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	cells := make([]Cell, cols*rows)
	for j := range rows {
		y0 := b.Min.Y + j*h/rows
		y2 := b.Min.Y + (j+1)*h/rows
		y1 := (y0 + y2 + 1) / 2
		for i := range cols {
			x0 := b.Min.X + i*w/cols
			x1 := b.Min.X + (i+1)*w/cols
			cells[j*cols+i] = Cell{
				Top:    average(img, x0, x1, y0, y1),
				Bottom: average(img, x0, x1, y1, y2),
			}
		}
	}
	return cells
}

// average returns the mean color of the pixels in [x0,x1)×[y0,y1).
// An empty region yields the pixel at (x0, y0), or black outside the image.
func average(img *image.RGBA, x0, x1, y0, y1 int) color.RGBA {
	if x1 <= x0 || y1 <= y0 {
		if (image.Point{X: x0, Y: y0}).In(img.Bounds()) {
			return img.RGBAAt(x0, y0)
		}
		return color.RGBA{A: 255}
	}
	var r, g, b, a, n uint64
	for y := y0; y < y1; y++ {
		row := img.Pix[img.PixOffset(x0, y):img.PixOffset(x1, y)]
		for i := 0; i+3 < len(row); i += 4 {
			r += uint64(row[i])
			g += uint64(row[i+1])
			b += uint64(row[i+2])
			a += uint64(row[i+3])
			n++
		}
	}
	return color.RGBA{
		R: uint8(r / n),
		G: uint8(g / n),
		B: uint8(b / n),
		A: uint8(a / n),
	}
}
