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
	stdcolor "image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/procanim/shape"
)

// WritePDF writes f as a single-page PDF file of the given size (in PDF
// points, one point per pixel).  The view matrix maps world coordinates to
// the page, with the y-axis pointing down as on a [Canvas].
//
// Colors are written as DeviceRGB, and shapes are painted opaque.
func WritePDF(fname string, f shape.Frame, width, height int, view matrix.Matrix, bg stdcolor.NRGBA) error {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(rgb(bg))
	page.Rectangle(0, 0, float64(width), float64(height))
	page.Fill()

	// PDF has its origin at the bottom left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})
	page.Transform(view)

	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	for _, s := range f.Shapes {
		st := s.Paint()
		p := s.Path()
		if st.Fill.A > 0 {
			page.SetFillColor(rgb(st.Fill))
			tracePath(page, p)
			page.Fill()
		}
		if st.Stroke.A > 0 && st.StrokeWidth > 0 {
			page.SetStrokeColor(rgb(st.Stroke))
			page.SetLineWidth(st.StrokeWidth)
			tracePath(page, p)
			page.Stroke()
		}
	}

	return page.Close()
}

// pathWriter is the part of a PDF content stream writer used to construct
// paths.
type pathWriter interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// tracePath appends p to the current PDF path.  Quadratic segments are
// converted to cubic ones, since PDF has no quadratic curves.
func tracePath(page pathWriter, p path.Path) {
	for cmd, pts := range p.ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

// rgb converts c to a DeviceRGB color.  The alpha channel is ignored.
func rgb(c stdcolor.NRGBA) color.Color {
	return color.DeviceRGB{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}
