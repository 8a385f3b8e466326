/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package deck

import (
	"unicode/utf8"

	"pitchdeck/internal/scene"
)

// Drawing helpers shared by the panels. Boxes are top-left anchored; text
// boxes with a width wrap inside it.

func text(s *scene.Scene, box scene.Rect, str, style string, size float32, c scene.Color, align scene.Align) {
	f, lead := typeface(style, size)
	s.TextSpaced(box, str, f, c, align, lead)
}

func textItalic(s *scene.Scene, box scene.Rect, str, style string, size float32, c scene.Color, align scene.Align) {
	f, lead := typeface(style, size)
	s.TextSpaced(box, str, italic(f), c, align, lead)
}

// approxWidth estimates the advance of str; only used to size pills.
func approxWidth(str string, size float32) float32 {
	return float32(utf8.RuneCountInString(str)) * size * 0.56
}

func backdrop(s *scene.Scene) {
	s.Fill(scene.Circle(scene.Pt{X: 1720, Y: 80}, 460), colBlue.Alpha(0.05))
	s.Fill(scene.Circle(scene.Pt{X: 120, Y: 1040}, 380), colIndigo.Alpha(0.04))
}

// heading draws the numbered panel title used by most panels.
func heading(s *scene.Scene, number, title string) {
	textItalic(s, scene.R(120, 96, 150, 80), number+".", "Title", 64, colBlue, scene.AlignLeft)
	text(s, scene.R(260, 104, 1540, 80), title, "Title", 52, colText, scene.AlignLeft)
}

func glass(s *scene.Scene, r scene.Rect, radius float32) {
	s.FillRound(r, radius, colSurface.Alpha(0.72))
	s.Stroke(scene.RoundedRect(r, radius), 1.5, colBorder.Alpha(0.55))
}

func accentLeft(s *scene.Scene, r scene.Rect, c scene.Color) {
	s.FillRound(scene.R(r.X, r.Y+12, 8, r.H-24), 4, c)
}

func accentRight(s *scene.Scene, r scene.Rect, c scene.Color) {
	s.FillRound(scene.R(r.X+r.W-8, r.Y+12, 8, r.H-24), 4, c)
}

func accentTop(s *scene.Scene, r scene.Rect, c scene.Color) {
	s.FillRound(scene.R(r.X+12, r.Y, r.W-24, 8), 4, c)
}

func checkMark(s *scene.Scene, c scene.Pt, col scene.Color) {
	s.Stroke(scene.Circle(c, 13), 2.5, col)
	s.Stroke(scene.Polyline(
		scene.Pt{X: c.X - 6, Y: c.Y},
		scene.Pt{X: c.X - 1.5, Y: c.Y + 5},
		scene.Pt{X: c.X + 6.5, Y: c.Y - 5},
	), 2.5, col)
}

func bullet(s *scene.Scene, x, y, w float32, str string) {
	checkMark(s, scene.Pt{X: x + 14, Y: y + 17}, colGreen)
	text(s, scene.R(x+44, y, w-44, 80), str, "Body", 24, colText2, scene.AlignLeft)
}

// stat draws a large centered figure with a small uppercase label below.
func stat(s *scene.Scene, r scene.Rect, value, label string, vc scene.Color, size float32) {
	text(s, scene.R(r.X, r.Y, r.W, size*1.2), value, "Stat", size, vc, scene.AlignCenter)
	text(s, scene.R(r.X, r.Y+size*1.25, r.W, 30), label, "Kicker", 15, colMuted, scene.AlignCenter)
}

func pill(s *scene.Scene, r scene.Rect, str string, c scene.Color, size float32) {
	s.FillRound(r, r.H/2, c.Alpha(0.12))
	s.Stroke(scene.RoundedRect(r, r.H/2), 1.5, c.Alpha(0.4))
	text(s, scene.R(r.X, r.Y+(r.H-size*1.15)/2, r.W, size*1.3), str, "Kicker", size, c, scene.AlignCenter)
}

// pillRow lays out tags left to right starting at (x, y).
func pillRow(s *scene.Scene, x, y float32, tags []string, c scene.Color, size float32) {
	for _, t := range tags {
		w := approxWidth(t, size) + 2*size
		pill(s, scene.R(x, y, w, size*2.2), t, c, size)
		x += w + 12
	}
}

// arrow draws a shaft from a to b with a filled head at b.
func arrow(s *scene.Scene, a, b scene.Pt, width float32, c scene.Color) {
	s.Line(a, b, width, c)
	head := &scene.Path{}
	dx, dy := b.X-a.X, b.Y-a.Y
	l := float32(1)
	if d := dx*dx + dy*dy; d > 0 {
		l = sqrt32(d)
	}
	ux, uy := dx/l, dy/l
	size := width * 3.5
	head.MoveTo(b.X+ux*size*0.6, b.Y+uy*size*0.6)
	head.LineTo(b.X-ux*size*0.6-uy*size*0.7, b.Y-uy*size*0.6+ux*size*0.7)
	head.LineTo(b.X-ux*size*0.6+uy*size*0.7, b.Y-uy*size*0.6-ux*size*0.7)
	head.Close()
	s.Fill(head, c)
}

// bolt is the lightning glyph used for "current" and automation markers.
func bolt(s *scene.Scene, c scene.Pt, h float32, col scene.Color) {
	k := h / 20
	pts := []scene.Pt{{X: 13, Y: 2}, {X: 3, Y: 14}, {X: 12, Y: 14}, {X: 11, Y: 22}, {X: 21, Y: 10}, {X: 12, Y: 10}}
	p := &scene.Path{}
	for i, q := range pts {
		x, y := c.X+(q.X-12)*k, c.Y+(q.Y-12)*k
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	s.Fill(p, col)
}

// quote draws a tinted box with centered italic copy.
func quote(s *scene.Scene, r scene.Rect, str string, size float32) {
	s.FillRound(r, 24, colBlue.Alpha(0.06))
	s.Stroke(scene.RoundedRect(r, 24), 1.5, colBlue.Alpha(0.14))
	textItalic(s, scene.R(r.X+48, r.Y+(r.H-size*2.7)/2, r.W-96, size*3), str, "Lead", size, colText2, scene.AlignCenter)
}
