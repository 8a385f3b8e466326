/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package scene is the display list every panel renders into. A Scene is
// plain data: the live view and the export pipeline paint the same list at
// different scales.
package scene

import (
	"fmt"
	"strconv"
	"strings"

	"pitchdeck/internal/textlayout"
)

type Color struct{ R, G, B, A uint8 }

var (
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Transparent = Color{0, 0, 0, 0}
)

// Hex parses "#rrggbb" or "#rrggbbaa".
func Hex(s string) (Color, error) {
	v := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(v) != 6 && len(v) != 8 {
		return Color{}, fmt.Errorf("scene: bad color %q", s)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("scene: bad color %q: %w", s, err)
	}
	if len(v) == 6 {
		return Color{uint8(n >> 16), uint8(n >> 8), uint8(n), 255}, nil
	}
	return Color{uint8(n >> 24), uint8(n >> 16), uint8(n >> 8), uint8(n)}, nil
}

// MustHex is Hex for compile-time palette constants.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Alpha returns c with its alpha scaled by f (0..1).
func (c Color) Alpha(f float32) Color {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	c.A = uint8(float32(c.A)*f + 0.5)
	return c
}

type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type ItemKind uint8

const (
	KindFill ItemKind = iota
	KindStroke
	KindText
)

// Item is one drawing operation. Only the fields relevant to Kind are set.
type Item struct {
	Kind  ItemKind
	Color Color

	// fill / stroke
	Path  *Path
	Width float32   // stroke width
	Dash  []float32 // on/off lengths, nil for solid

	// text
	Text       string
	Font       textlayout.FontSpec
	Box        Rect // top-left anchor; W > 0 enables wrapping and alignment
	Align      Align
	LineHeight float32 // multiple of the font size, 0 means 1.25
}

// Hotspot is an interactive region. Action may be nil for export renders.
type Hotspot struct {
	Name   string
	Rect   Rect
	Action func()
}

// Scene is an ordered display list over a fixed logical surface.
type Scene struct {
	Size       Size
	Background Color
	Items      []Item
	Hotspots   []Hotspot
}

func New(w, h float32, bg Color) *Scene {
	return &Scene{Size: Size{W: w, H: h}, Background: bg}
}

func (s *Scene) Bounds() Rect { return Rect{W: s.Size.W, H: s.Size.H} }

func (s *Scene) Fill(p *Path, c Color) {
	s.Items = append(s.Items, Item{Kind: KindFill, Path: p, Color: c})
}

func (s *Scene) FillRect(r Rect, c Color) { s.Fill(RectPath(r), c) }

func (s *Scene) FillRound(r Rect, radius float32, c Color) { s.Fill(RoundedRect(r, radius), c) }

func (s *Scene) Stroke(p *Path, width float32, c Color) {
	s.Items = append(s.Items, Item{Kind: KindStroke, Path: p, Width: width, Color: c})
}

func (s *Scene) StrokeDashed(p *Path, width float32, dash []float32, c Color) {
	s.Items = append(s.Items, Item{Kind: KindStroke, Path: p, Width: width, Dash: dash, Color: c})
}

func (s *Scene) Line(a, b Pt, width float32, c Color) {
	s.Stroke(Polyline(a, b), width, c)
}

// Text places a single run. With box.W > 0 the run wraps inside the box.
func (s *Scene) Text(box Rect, text string, f textlayout.FontSpec, c Color, align Align) {
	s.Items = append(s.Items, Item{Kind: KindText, Text: text, Font: f, Box: box, Color: c, Align: align})
}

// TextSpaced is Text with an explicit line height multiple.
func (s *Scene) TextSpaced(box Rect, text string, f textlayout.FontSpec, c Color, align Align, lineHeight float32) {
	s.Items = append(s.Items, Item{Kind: KindText, Text: text, Font: f, Box: box, Color: c, Align: align, LineHeight: lineHeight})
}

func (s *Scene) AddHotspot(name string, r Rect, action func()) {
	s.Hotspots = append(s.Hotspots, Hotspot{Name: name, Rect: r, Action: action})
}

// HitTest returns the topmost hotspot containing p.
func (s *Scene) HitTest(p Pt) (Hotspot, bool) {
	for i := len(s.Hotspots) - 1; i >= 0; i-- {
		if s.Hotspots[i].Rect.Contains(p) {
			return s.Hotspots[i], true
		}
	}
	return Hotspot{}, false
}

// Fade scales the alpha of every item by f. The background is untouched.
func (s *Scene) Fade(f float32) {
	for i := range s.Items {
		s.Items[i].Color = s.Items[i].Color.Alpha(f)
	}
}

// Texts returns the text runs in paint order.
func (s *Scene) Texts() []string {
	var out []string
	for _, it := range s.Items {
		if it.Kind == KindText {
			out = append(out, it.Text)
		}
	}
	return out
}
