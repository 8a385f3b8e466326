/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package raster paints scene display lists into RGBA images at an arbitrary
// scale. One Painter may serve concurrent Paint calls; every call resolves
// its own font faces.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"pitchdeck/internal/scene"
	"pitchdeck/internal/textlayout"
)

// ErrEmptySurface is returned when a scene would paint to zero pixels.
var ErrEmptySurface = errors.New("raster: empty surface")

type Painter struct {
	lib *textlayout.FontLibrary
	// Tolerance is the curve flattening tolerance in device pixels.
	Tolerance float32
}

// New returns a painter backed by the bundled Go fonts.
func New() (*Painter, error) {
	lib, err := textlayout.GoFonts()
	if err != nil {
		return nil, fmt.Errorf("raster: load fonts: %w", err)
	}
	return NewWithLibrary(lib), nil
}

func NewWithLibrary(lib *textlayout.FontLibrary) *Painter {
	return &Painter{lib: lib, Tolerance: 0.35}
}

// Paint renders s into a new image of size s.Size*scale. A nil bg uses the
// scene's own background.
func (p *Painter) Paint(s *scene.Scene, scale float64, bg color.Color) (*image.RGBA, error) {
	if s == nil {
		return nil, errors.New("raster: nil scene")
	}
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("raster: invalid scale %v", scale)
	}
	w := int(math.Round(float64(s.Size.W) * scale))
	h := int(math.Round(float64(s.Size.H) * scale))
	if w <= 0 || h <= 0 {
		return nil, ErrEmptySurface
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if bg == nil {
		bg = nrgba(s.Background)
	}
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)
	p.items(dst, scene.Scale(float32(scale), float32(scale)), s, scale)
	return dst, nil
}

// PaintInto draws the items of s over dst with the scene origin at origin.
// The scene background is drawn too when it is not transparent.
func (p *Painter) PaintInto(dst *image.RGBA, origin image.Point, s *scene.Scene, scale float64) {
	m := scene.Translate(float32(origin.X), float32(origin.Y)).Mul(scene.Scale(float32(scale), float32(scale)))
	if s.Background.A > 0 {
		p.fill(dst, scene.RectPath(s.Bounds()).Transform(m), s.Background)
	}
	p.items(dst, m, s, scale)
}

func (p *Painter) items(dst *image.RGBA, m scene.Affine2D, s *scene.Scene, scale float64) {
	fonts := textlayout.NewOTProvider(p.lib, 72*scale)
	for i := range s.Items {
		it := &s.Items[i]
		if it.Color.A == 0 {
			continue
		}
		switch it.Kind {
		case scene.KindFill:
			if it.Path != nil {
				p.fill(dst, it.Path.Transform(m), it.Color)
			}
		case scene.KindStroke:
			if it.Path != nil {
				p.stroke(dst, it.Path.Transform(m), it.Width*float32(scale), scaleDash(it.Dash, float32(scale)), it.Color)
			}
		case scene.KindText:
			p.text(dst, fonts, m, float32(scale), it)
		}
	}
}

func (p *Painter) fill(dst *image.RGBA, path *scene.Path, c scene.Color) {
	subs, _ := path.Flatten(p.Tolerance)
	p.polygons(dst, subs, c)
}

// polygons rasterizes closed point lists with non-zero accumulation into a
// buffer covering only their clipped bounds.
func (p *Painter) polygons(dst *image.RGBA, polys [][]scene.Pt, c scene.Color) {
	if len(polys) == 0 {
		return
	}
	b := scene.Rect{X: polys[0][0].X, Y: polys[0][0].Y}
	for _, poly := range polys {
		for _, q := range poly {
			b = unionPt(b, q)
		}
	}
	area := image.Rect(
		int(math.Floor(float64(b.X))), int(math.Floor(float64(b.Y))),
		int(math.Ceil(float64(b.X+b.W)))+1, int(math.Ceil(float64(b.Y+b.H)))+1,
	).Intersect(dst.Bounds())
	if area.Empty() {
		return
	}
	z := vector.NewRasterizer(area.Dx(), area.Dy())
	ox, oy := float32(area.Min.X), float32(area.Min.Y)
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		z.MoveTo(poly[0].X-ox, poly[0].Y-oy)
		for _, q := range poly[1:] {
			z.LineTo(q.X-ox, q.Y-oy)
		}
		z.ClosePath()
	}
	z.Draw(dst, area, image.NewUniform(nrgba(c)), image.Point{})
}

func unionPt(b scene.Rect, q scene.Pt) scene.Rect {
	x0, y0 := min(b.X, q.X), min(b.Y, q.Y)
	x1, y1 := max(b.X+b.W, q.X), max(b.Y+b.H, q.Y)
	return scene.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// stroke expands each flattened segment into a quad and adds round joins
// for wide lines.
func (p *Painter) stroke(dst *image.RGBA, path *scene.Path, width float32, dash []float32, c scene.Color) {
	if width <= 0 {
		return
	}
	subs, _ := path.Flatten(p.Tolerance)
	if len(dash) > 0 {
		subs = applyDash(subs, dash)
	}
	hw := width / 2
	var polys [][]scene.Pt
	for _, pts := range subs {
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			dx, dy := b.X-a.X, b.Y-a.Y
			l := float32(math.Hypot(float64(dx), float64(dy)))
			if l == 0 {
				continue
			}
			nx, ny := -dy/l*hw, dx/l*hw
			polys = append(polys, []scene.Pt{
				{X: a.X - nx, Y: a.Y - ny}, {X: b.X - nx, Y: b.Y - ny},
				{X: b.X + nx, Y: b.Y + ny}, {X: a.X + nx, Y: a.Y + ny},
			})
			if width >= 3 && i < len(pts)-1 {
				joint, _ := scene.Circle(b, hw).Flatten(p.Tolerance)
				polys = append(polys, joint...)
			}
		}
	}
	p.polygons(dst, polys, c)
}

func scaleDash(d []float32, s float32) []float32 {
	if len(d) == 0 {
		return nil
	}
	out := make([]float32, len(d))
	for i, v := range d {
		out[i] = v * s
	}
	return out
}

// applyDash cuts polylines into the "on" intervals of the dash pattern.
func applyDash(subs [][]scene.Pt, dash []float32) [][]scene.Pt {
	var sum float32
	for _, d := range dash {
		sum += d
	}
	if sum <= 0 {
		return subs
	}
	var out [][]scene.Pt
	for _, pts := range subs {
		idx, left, on := 0, dash[0], true
		var cur []scene.Pt
		if on {
			cur = []scene.Pt{pts[0]}
		}
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			seg := float32(math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y)))
			pos := float32(0)
			for seg-pos > left {
				pos += left
				t := pos / seg
				q := scene.Pt{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
				if on {
					out = append(out, append(cur, q))
					cur = nil
				} else {
					cur = []scene.Pt{q}
				}
				on = !on
				idx = (idx + 1) % len(dash)
				left = dash[idx]
			}
			left -= seg - pos
			if on {
				cur = append(cur, b)
			}
		}
		if on && len(cur) > 1 {
			out = append(out, cur)
		}
	}
	return out
}

func (p *Painter) text(dst *image.RGBA, fonts textlayout.Provider, m scene.Affine2D, scale float32, it *scene.Item) {
	if strings.TrimSpace(it.Text) == "" {
		return
	}
	face, met := fonts.Resolve(it.Font)
	origin := m.Apply(it.Box.Min())
	boxW := it.Box.W * scale
	var lines []textlayout.Line
	if boxW > 0 {
		box, _ := textlayout.NewWordWrap(fonts).Layout([]textlayout.Span{{Text: it.Text, Font: it.Font}}, boxW)
		lines = box.Lines
	} else {
		for _, l := range strings.Split(it.Text, "\n") {
			w, _ := textlayout.Measure(fonts, []textlayout.Span{{Text: l, Font: it.Font}})
			lines = append(lines, textlayout.Line{Spans: []textlayout.Span{{Text: l, Font: it.Font}}, Width: w})
		}
	}
	leading := it.LineHeight
	if leading <= 0 {
		leading = 1.25
	}
	step := it.Font.SizePt * scale * leading
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(nrgba(it.Color)), Face: face}
	y := origin.Y + met.Ascent
	for _, l := range lines {
		x := origin.X
		switch it.Align {
		case scene.AlignCenter:
			if boxW > 0 {
				x += (boxW - l.Width) / 2
			} else {
				x -= l.Width / 2
			}
		case scene.AlignRight:
			if boxW > 0 {
				x += boxW - l.Width
			} else {
				x -= l.Width
			}
		}
		d.Dot = fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
		d.DrawString(l.Text())
		y += step
	}
}

func nrgba(c scene.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// ColorOf converts a scene color to an image color.
func ColorOf(c scene.Color) color.Color { return nrgba(c) }
