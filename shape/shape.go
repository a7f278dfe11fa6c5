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

// Package shape defines the display primitives produced by the animation
// packages.  A [Frame] is an ordered list of filled and/or stroked shapes;
// later shapes are drawn on top of earlier ones.
package shape

import (
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Style describes how a shape is painted.
// A color with zero alpha is not painted.
type Style struct {
	Fill        color.NRGBA
	Stroke      color.NRGBA
	StrokeWidth float64
}

// Filled returns a style which only fills.
func Filled(c color.NRGBA) Style {
	return Style{Fill: c}
}

// Outlined returns a style which only strokes.
func Outlined(c color.NRGBA, width float64) Style {
	return Style{Stroke: c, StrokeWidth: width}
}

// Shape is a single display primitive.
type Shape interface {
	// Path returns the outline of the shape.  The path consists of closed
	// subpaths only.  Point slices passed to the iterator callback are
	// only valid until the callback returns.
	Path() path.Path

	// Paint returns the paint style of the shape.
	Paint() Style

	// Bounds returns the smallest rectangle which contains the shape,
	// not including the stroke width.
	Bounds() rect.Rect
}

// Polygon is a closed polygon.
type Polygon struct {
	Points []vec.Vec2
	Style  Style
}

// Path implements the [Shape] interface.
func (p Polygon) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(p.Points) == 0 {
			return
		}
		var buf [1]vec.Vec2
		buf[0] = p.Points[0]
		if !yield(path.CmdMoveTo, buf[:]) {
			return
		}
		for _, pt := range p.Points[1:] {
			buf[0] = pt
			if !yield(path.CmdLineTo, buf[:]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// Paint implements the [Shape] interface.
func (p Polygon) Paint() Style { return p.Style }

// Bounds implements the [Shape] interface.
func (p Polygon) Bounds() rect.Rect {
	return pointBounds(p.Points)
}

// Curve is a closed path, typically the Bézier form of a smoothed outline.
type Curve struct {
	Outline path.Path
	Style   Style
}

// Path implements the [Shape] interface.
func (c Curve) Path() path.Path {
	if c.Outline == nil {
		return func(func(path.Command, []vec.Vec2) bool) {}
	}
	return c.Outline
}

// Paint implements the [Shape] interface.
func (c Curve) Paint() Style { return c.Style }

// Bounds implements the [Shape] interface.
// Control points are included, so the result may be slightly larger
// than the curve itself.
func (c Curve) Bounds() rect.Rect {
	if c.Outline == nil {
		return rect.Rect{}
	}
	return c.Outline.BBox()
}

// Circle is a disc.
type Circle struct {
	Center vec.Vec2
	Radius float64
	Style  Style
}

// kappa for cubic Bézier approximation of a quarter circle
const kappa = 0.5522847498307936

// Path implements the [Shape] interface.
// The circle is approximated by four cubic Bézier segments, traversed
// counter-clockwise in a y-up frame.
func (c Circle) Path() path.Path {
	x, y, r := c.Center.X, c.Center.Y, c.Radius
	k := r * kappa
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
	arcs := [4][3]vec.Vec2{
		{pt(x+r, y+k), pt(x+k, y+r), pt(x, y+r)},
		{pt(x-k, y+r), pt(x-r, y+k), pt(x-r, y)},
		{pt(x-r, y-k), pt(x-k, y-r), pt(x, y-r)},
		{pt(x+k, y-r), pt(x+r, y-k), pt(x+r, y)},
	}
	return func(yield func(path.Command, []vec.Vec2) bool) {
		start := [1]vec.Vec2{pt(x+r, y)}
		if !yield(path.CmdMoveTo, start[:]) {
			return
		}
		for i := range arcs {
			seg := arcs[i]
			if !yield(path.CmdCubeTo, seg[:]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// Paint implements the [Shape] interface.
func (c Circle) Paint() Style { return c.Style }

// Bounds implements the [Shape] interface.
func (c Circle) Bounds() rect.Rect {
	return rect.Rect{
		LLx: c.Center.X - c.Radius,
		LLy: c.Center.Y - c.Radius,
		URx: c.Center.X + c.Radius,
		URy: c.Center.Y + c.Radius,
	}
}

// Frame is the display list for one animation frame.
type Frame struct {
	Shapes []Shape
}

// Add appends shapes to the frame.
func (f *Frame) Add(s ...Shape) {
	f.Shapes = append(f.Shapes, s...)
}

// Append adds all shapes of other to f.
func (f *Frame) Append(other Frame) {
	f.Shapes = append(f.Shapes, other.Shapes...)
}

// Markers adds a circle of the given radius at every point.
func (f *Frame) Markers(points []vec.Vec2, radius float64, style Style) {
	for _, p := range points {
		f.Shapes = append(f.Shapes, Circle{Center: p, Radius: radius, Style: style})
	}
}

// Bounds returns the smallest rectangle containing all shapes,
// or the zero rectangle for an empty frame.
func (f Frame) Bounds() rect.Rect {
	var res rect.Rect
	first := true
	for _, s := range f.Shapes {
		b := s.Bounds()
		if first {
			res = b
			first = false
			continue
		}
		res.LLx = min(res.LLx, b.LLx)
		res.LLy = min(res.LLy, b.LLy)
		res.URx = max(res.URx, b.URx)
		res.URy = max(res.URy, b.URy)
	}
	return res
}

func pointBounds(pts []vec.Vec2) rect.Rect {
	if len(pts) == 0 {
		return rect.Rect{}
	}
	res := rect.Rect{LLx: pts[0].X, LLy: pts[0].Y, URx: pts[0].X, URy: pts[0].Y}
	for _, p := range pts[1:] {
		res.LLx = min(res.LLx, p.X)
		res.LLy = min(res.LLy, p.Y)
		res.URx = max(res.URx, p.X)
		res.URy = max(res.URy, p.Y)
	}
	return res
}
