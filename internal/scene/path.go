/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package scene

import "math"

// Path commands and shapes.

type PathOp uint8

const (
	MoveTo PathOp = iota
	LineTo
	QuadTo  // quadratic bezier (cx, cy, x, y)
	CubicTo // cubic bezier (cx1, cy1, cx2, cy2, x, y)
	Close
)

type PathCmd struct {
	Op   PathOp
	Data [6]float32 // enough for cubic; unused slots are zero
}

type Path struct{ Cmds []PathCmd }

func (p *Path) MoveTo(x, y float32) {
	p.Cmds = append(p.Cmds, PathCmd{Op: MoveTo, Data: [6]float32{x, y}})
}
func (p *Path) LineTo(x, y float32) {
	p.Cmds = append(p.Cmds, PathCmd{Op: LineTo, Data: [6]float32{x, y}})
}
func (p *Path) QuadTo(cx, cy, x, y float32) {
	p.Cmds = append(p.Cmds, PathCmd{Op: QuadTo, Data: [6]float32{cx, cy, x, y}})
}
func (p *Path) CubicTo(cx1, cy1, cx2, cy2, x, y float32) {
	p.Cmds = append(p.Cmds, PathCmd{Op: CubicTo, Data: [6]float32{cx1, cy1, cx2, cy2, x, y}})
}
func (p *Path) Close() { p.Cmds = append(p.Cmds, PathCmd{Op: Close}) }

// Transform returns a copy of the path with every point mapped through m.
func (p *Path) Transform(m Affine2D) *Path {
	out := &Path{Cmds: make([]PathCmd, len(p.Cmds))}
	for i, c := range p.Cmds {
		n := 0
		switch c.Op {
		case MoveTo, LineTo:
			n = 1
		case QuadTo:
			n = 2
		case CubicTo:
			n = 3
		}
		for j := 0; j < n; j++ {
			q := m.Apply(Pt{c.Data[2*j], c.Data[2*j+1]})
			c.Data[2*j], c.Data[2*j+1] = q.X, q.Y
		}
		out.Cmds[i] = c
	}
	return out
}

// Bounds returns an axis-aligned bounding box of the path. Control points are
// included, so curves may over-report; painters only use it to size buffers.
func (p *Path) Bounds() Rect {
	minX, minY := float32(+1e9), float32(+1e9)
	maxX, maxY := float32(-1e9), float32(-1e9)
	grow := func(x, y float32) {
		minX, minY = min(minX, x), min(minY, y)
		maxX, maxY = max(maxX, x), max(maxY, y)
	}
	for _, c := range p.Cmds {
		switch c.Op {
		case MoveTo, LineTo:
			grow(c.Data[0], c.Data[1])
		case QuadTo:
			grow(c.Data[0], c.Data[1])
			grow(c.Data[2], c.Data[3])
		case CubicTo:
			grow(c.Data[0], c.Data[1])
			grow(c.Data[2], c.Data[3])
			grow(c.Data[4], c.Data[5])
		}
	}
	if minX > maxX || minY > maxY {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// kappa is the cubic bezier handle length for a quarter circle.
const kappa = 0.5522847498

// RectPath returns a closed rectangle.
func RectPath(r Rect) *Path {
	p := &Path{}
	p.MoveTo(r.X, r.Y)
	p.LineTo(r.X+r.W, r.Y)
	p.LineTo(r.X+r.W, r.Y+r.H)
	p.LineTo(r.X, r.Y+r.H)
	p.Close()
	return p
}

// RoundedRect returns a closed rectangle with circular corners.
// The radius is clamped to half the shorter side.
func RoundedRect(r Rect, radius float32) *Path {
	radius = min(radius, min(r.W, r.H)/2)
	if radius <= 0 {
		return RectPath(r)
	}
	k := radius * kappa
	x0, y0, x1, y1 := r.X, r.Y, r.X+r.W, r.Y+r.H
	p := &Path{}
	p.MoveTo(x0+radius, y0)
	p.LineTo(x1-radius, y0)
	p.CubicTo(x1-radius+k, y0, x1, y0+radius-k, x1, y0+radius)
	p.LineTo(x1, y1-radius)
	p.CubicTo(x1, y1-radius+k, x1-radius+k, y1, x1-radius, y1)
	p.LineTo(x0+radius, y1)
	p.CubicTo(x0+radius-k, y1, x0, y1-radius+k, x0, y1-radius)
	p.LineTo(x0, y0+radius)
	p.CubicTo(x0, y0+radius-k, x0+radius-k, y0, x0+radius, y0)
	p.Close()
	return p
}

// Circle returns a closed circle built from four cubic arcs.
func Circle(c Pt, r float32) *Path {
	k := r * kappa
	p := &Path{}
	p.MoveTo(c.X, c.Y-r)
	p.CubicTo(c.X+k, c.Y-r, c.X+r, c.Y-k, c.X+r, c.Y)
	p.CubicTo(c.X+r, c.Y+k, c.X+k, c.Y+r, c.X, c.Y+r)
	p.CubicTo(c.X-k, c.Y+r, c.X-r, c.Y+k, c.X-r, c.Y)
	p.CubicTo(c.X-r, c.Y-k, c.X-k, c.Y-r, c.X, c.Y-r)
	p.Close()
	return p
}

// Ring returns an annular sector between angles a0 and a1 (radians, 0 at
// twelve o'clock, clockwise). inner may be zero for a plain pie wedge.
func Ring(c Pt, inner, outer float32, a0, a1 float64) *Path {
	steps := int(math.Ceil(math.Abs(a1-a0) / (math.Pi / 48)))
	if steps < 1 {
		steps = 1
	}
	p := &Path{}
	for i := 0; i <= steps; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(steps)
		q := polar(c, outer, a)
		if i == 0 {
			p.MoveTo(q.X, q.Y)
		} else {
			p.LineTo(q.X, q.Y)
		}
	}
	if inner <= 0 {
		p.LineTo(c.X, c.Y)
	} else {
		for i := steps; i >= 0; i-- {
			a := a0 + (a1-a0)*float64(i)/float64(steps)
			q := polar(c, inner, a)
			p.LineTo(q.X, q.Y)
		}
	}
	p.Close()
	return p
}

// Polyline returns an open path through pts.
func Polyline(pts ...Pt) *Path {
	p := &Path{}
	for i, q := range pts {
		if i == 0 {
			p.MoveTo(q.X, q.Y)
			continue
		}
		p.LineTo(q.X, q.Y)
	}
	return p
}

// Flatten approximates curves with line segments and returns one point list
// per subpath. closed reports whether each subpath ended with Close.
func (p *Path) Flatten(tolerance float32) (subpaths [][]Pt, closed []bool) {
	if tolerance <= 0 {
		tolerance = 0.5
	}
	var cur []Pt
	var start, last Pt
	flush := func(c bool) {
		if len(cur) > 1 {
			subpaths = append(subpaths, cur)
			closed = append(closed, c)
		}
		cur = nil
	}
	// begin reopens a subpath at the current point after Close.
	begin := func() {
		if cur == nil {
			start = last
			cur = []Pt{last}
		}
	}
	for _, c := range p.Cmds {
		switch c.Op {
		case MoveTo:
			flush(false)
			start = Pt{c.Data[0], c.Data[1]}
			last = start
			cur = []Pt{start}
		case LineTo:
			begin()
			last = Pt{c.Data[0], c.Data[1]}
			cur = append(cur, last)
		case QuadTo:
			begin()
			c1, end := Pt{c.Data[0], c.Data[1]}, Pt{c.Data[2], c.Data[3]}
			n := segments(dist(last, c1)+dist(c1, end), tolerance)
			for i := 1; i <= n; i++ {
				t := float32(i) / float32(n)
				u := 1 - t
				cur = append(cur, Pt{
					X: u*u*last.X + 2*u*t*c1.X + t*t*end.X,
					Y: u*u*last.Y + 2*u*t*c1.Y + t*t*end.Y,
				})
			}
			last = end
		case CubicTo:
			begin()
			c1, c2, end := Pt{c.Data[0], c.Data[1]}, Pt{c.Data[2], c.Data[3]}, Pt{c.Data[4], c.Data[5]}
			n := segments(dist(last, c1)+dist(c1, c2)+dist(c2, end), tolerance)
			for i := 1; i <= n; i++ {
				t := float32(i) / float32(n)
				u := 1 - t
				cur = append(cur, Pt{
					X: u*u*u*last.X + 3*u*u*t*c1.X + 3*u*t*t*c2.X + t*t*t*end.X,
					Y: u*u*u*last.Y + 3*u*u*t*c1.Y + 3*u*t*t*c2.Y + t*t*t*end.Y,
				})
			}
			last = end
		case Close:
			if len(cur) > 0 && cur[len(cur)-1] != start {
				cur = append(cur, start)
			}
			flush(true)
			last = start
		}
	}
	flush(false)
	return subpaths, closed
}

func segments(length, tolerance float32) int {
	n := int(math.Ceil(float64(length / (tolerance * 8))))
	if n < 2 {
		return 2
	}
	if n > 64 {
		return 64
	}
	return n
}

func dist(a, b Pt) float32 {
	return float32(math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y)))
}
