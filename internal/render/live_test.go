/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package render

import (
	"image/color"
	"math"
	"testing"

	"pitchdeck/internal/deck"
	"pitchdeck/internal/raster"
	"pitchdeck/internal/session"
)

func newLive(t *testing.T, onStart func()) (*LiveView, *session.Navigator) {
	t.Helper()
	p, err := raster.New()
	if err != nil {
		t.Fatalf("raster.New: %v", err)
	}
	reg := deck.Default()
	st := session.NewState(reg.Len())
	return NewLiveView(reg, st, onStart, p), session.NewNavigator(st)
}

func TestFrameOnCover(t *testing.T) {
	started := 0
	lv, _ := newLive(t, func() { started++ })
	f := lv.Frame()
	if f.Index != 0 || f.Total != 12 || f.Indicator != "01 / 12" {
		t.Fatalf("frame header = %+v", f)
	}
	if f.PrevEnabled || !f.NextEnabled || !f.StartVisible || !f.ExportEnabled || f.ExportBusy {
		t.Fatalf("control states on cover = %+v", f)
	}
	if math.Abs(f.Progress-1.0/12) > 1e-9 {
		t.Fatalf("progress = %v", f.Progress)
	}
	h, ok := f.Scene.HitTest(deck.StartButton.Center())
	if !ok {
		t.Fatalf("cover frame lacks the start hotspot")
	}
	h.Action()
	if started != 1 {
		t.Fatalf("start callback not wired")
	}
}

func TestFrameAwayFromCover(t *testing.T) {
	lv, nav := newLive(t, func() {})
	nav.JumpTo(5)
	f := lv.Frame()
	if f.Indicator != "06 / 12" || f.Progress != 0.5 {
		t.Fatalf("indicator/progress = %q %v", f.Indicator, f.Progress)
	}
	if !f.PrevEnabled || !f.NextEnabled || f.StartVisible {
		t.Fatalf("control states = %+v", f)
	}
	if len(f.Scene.Hotspots) != 0 {
		t.Fatalf("start hotspot leaked onto panel 6")
	}
	nav.JumpTo(11)
	if f := lv.Frame(); f.NextEnabled || f.Progress != 1 {
		t.Fatalf("last frame = %+v", f)
	}
}

func TestFrameReflectsExport(t *testing.T) {
	lv, nav := newLive(t, nil)
	release, _ := nav.State().BeginExport()
	f := lv.Frame()
	release()
	if f.ExportEnabled || !f.ExportBusy {
		t.Fatalf("export states while busy = %+v", f)
	}
}

func TestTransition(t *testing.T) {
	if m := Transition(session.Forward, 0); m.Offset != 30 || m.Opacity != 0 {
		t.Fatalf("forward start = %+v", m)
	}
	if m := Transition(session.Backward, 0); m.Offset != -30 {
		t.Fatalf("backward start = %+v", m)
	}
	if m := Transition(session.Forward, 1); m != Settled {
		t.Fatalf("end = %+v", m)
	}
	if m := Transition(session.Forward, 7); m != Settled {
		t.Fatalf("t is not clamped: %+v", m)
	}
	mid := Transition(session.Forward, 0.5)
	if mid.Offset <= 0 || mid.Offset >= 30 || mid.Opacity <= 0 || mid.Opacity >= 1 {
		t.Fatalf("mid = %+v", mid)
	}
}

func TestPaintLetterboxes(t *testing.T) {
	lv, _ := newLive(t, nil)
	img, err := lv.Paint(lv.Frame(), 480, 400)
	if err != nil {
		t.Fatalf("Paint: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 480 || b.Dy() != 400 {
		t.Fatalf("bounds = %v", b)
	}
	bg := raster.ColorOf(deck.Background)
	if got := img.At(10, 5); !sameColor(got, bg) {
		t.Fatalf("letterbox band = %v", got)
	}
	if _, err := lv.Paint(LiveFrame{}, 10, 10); err == nil {
		t.Fatalf("expected error for empty frame")
	}
}

func TestEveryPanelPaintsInLiveView(t *testing.T) {
	lv, nav := newLive(t, func() {})
	for i := 0; i < 12; i++ {
		nav.JumpTo(i)
		if _, err := lv.PaintMotion(lv.Frame(), 320, 180, Transition(session.Forward, 0.3)); err != nil {
			t.Fatalf("panel %d: %v", i, err)
		}
	}
}

func TestHitTestMapsViewport(t *testing.T) {
	lv, _ := newLive(t, func() {})
	f := lv.Frame()
	c := deck.StartButton.Center()
	if _, ok := HitTest(f, 960, 540, float64(c.X)/2, float64(c.Y)/2); !ok {
		t.Fatalf("start button not hit at half scale")
	}
	if _, ok := HitTest(f, 960, 740, 10, 5); ok {
		t.Fatalf("letterbox band should not hit")
	}
	if p, ok := ToLogical(960, 540, 480, 270); !ok || p.X != 960 || p.Y != 540 {
		t.Fatalf("ToLogical centre = %+v %v", p, ok)
	}
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
