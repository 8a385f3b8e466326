/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package render turns panels into what the audience or the exporter sees:
// the live view follows the presentation state, the staging area holds one
// fully active instance of every panel for export.
package render

import (
	"errors"
	"fmt"
	"image"
	"math"
	"time"

	xdraw "golang.org/x/image/draw"

	"pitchdeck/internal/deck"
	"pitchdeck/internal/raster"
	"pitchdeck/internal/scene"
	"pitchdeck/internal/session"
)

// TransitionDuration is the length of the slide-in animation.
const TransitionDuration = 700 * time.Millisecond

// transitionOffset is the horizontal travel of the slide-in, in logical px.
const transitionOffset = 30

// LiveFrame is everything a front-end needs to draw the current panel and
// its controls.
type LiveFrame struct {
	Scene     *scene.Scene
	Index     int
	Total     int
	Direction session.Direction
	Indicator string
	Progress  float64

	PrevEnabled   bool
	NextEnabled   bool
	StartVisible  bool
	ExportEnabled bool
	ExportBusy    bool
}

// Motion is the cosmetic transform applied while a panel slides in.
type Motion struct {
	Offset  float32 // logical px, positive shifts right
	Opacity float32
}

// Settled is the resting motion.
var Settled = Motion{Opacity: 1}

type LiveView struct {
	reg     *deck.Registry
	st      *session.State
	onStart func()
	painter *raster.Painter
}

// NewLiveView builds the live view. onStart is wired into the cover panel
// only; painter may be nil when the caller never paints.
func NewLiveView(reg *deck.Registry, st *session.State, onStart func(), painter *raster.Painter) *LiveView {
	return &LiveView{reg: reg, st: st, onStart: onStart, painter: painter}
}

// Frame renders the panel at the current index.
func (v *LiveView) Frame() LiveFrame {
	snap := v.st.Snapshot()
	total := v.reg.Len()
	opts := deck.RenderOptions{Active: true}
	if snap.Index == 0 {
		opts.OnStart = v.onStart
	}
	var sc *scene.Scene
	if p, ok := v.reg.At(snap.Index); ok {
		sc = p.Render(opts)
	} else {
		sc = scene.New(deck.Width, deck.Height, deck.Background)
	}
	return LiveFrame{
		Scene:         sc,
		Index:         snap.Index,
		Total:         total,
		Direction:     snap.Direction,
		Indicator:     Indicator(snap.Index, total),
		Progress:      float64(snap.Index+1) / float64(total),
		PrevEnabled:   snap.Index > 0,
		NextEnabled:   snap.Index < total-1,
		StartVisible:  snap.Index == 0,
		ExportEnabled: !snap.Exporting,
		ExportBusy:    snap.Exporting,
	}
}

// Indicator formats the position as "01 / 12".
func Indicator(index, total int) string {
	return fmt.Sprintf("%02d / %02d", index+1, total)
}

// Transition returns the slide-in motion at progress t in [0,1]. Forward
// moves enter from the right, backward moves from the left.
func Transition(dir session.Direction, t float64) Motion {
	t = math.Max(0, math.Min(1, t))
	e := 1 - math.Pow(1-t, 3)
	sign := float32(1)
	if dir == session.Backward {
		sign = -1
	}
	return Motion{
		Offset:  sign * transitionOffset * float32(1-e),
		Opacity: float32(e),
	}
}

// Paint draws the settled frame aspect-fit and letterboxed into w x h pixels.
func (v *LiveView) Paint(f LiveFrame, w, h int) (*image.RGBA, error) {
	return v.PaintMotion(f, w, h, Settled)
}

// PaintMotion is Paint with a transition applied.
func (v *LiveView) PaintMotion(f LiveFrame, w, h int, m Motion) (*image.RGBA, error) {
	if v.painter == nil {
		return nil, errors.New("render: live view has no painter")
	}
	if f.Scene == nil {
		return nil, errors.New("render: empty frame")
	}
	if w <= 0 || h <= 0 {
		return nil, raster.ErrEmptySurface
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(raster.ColorOf(deck.Background)), image.Point{}, xdraw.Src)
	fit := viewport(w, h)
	scale := float64(fit.Dx()) / deck.Width
	sc := *f.Scene
	sc.Background = scene.Transparent
	if m.Opacity < 1 {
		sc.Items = append([]scene.Item(nil), f.Scene.Items...)
		sc.Fade(m.Opacity)
	}
	origin := fit.Min.Add(image.Pt(int(math.Round(float64(m.Offset)*scale)), 0))
	v.painter.PaintInto(dst, origin, &sc, scale)
	return dst, nil
}

func viewport(w, h int) image.Rectangle {
	return raster.FitRect(image.Rect(0, 0, deck.Width, deck.Height), w, h)
}

// ToLogical maps a viewport pixel to panel coordinates. ok is false in the
// letterbox bands.
func ToLogical(w, h int, x, y float64) (scene.Pt, bool) {
	fit := viewport(w, h)
	if fit.Empty() {
		return scene.Pt{}, false
	}
	scale := float64(fit.Dx()) / deck.Width
	p := scene.Pt{X: float32((x - float64(fit.Min.X)) / scale), Y: float32((y - float64(fit.Min.Y)) / scale)}
	if p.X < 0 || p.Y < 0 || p.X > deck.Width || p.Y > deck.Height {
		return p, false
	}
	return p, true
}

// HitTest finds the hotspot under a viewport pixel.
func HitTest(f LiveFrame, w, h int, x, y float64) (scene.Hotspot, bool) {
	if f.Scene == nil {
		return scene.Hotspot{}, false
	}
	p, ok := ToLogical(w, h, x, y)
	if !ok {
		return scene.Hotspot{}, false
	}
	return f.Scene.HitTest(p)
}
