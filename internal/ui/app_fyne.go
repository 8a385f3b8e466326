//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pitchdeck/internal/export"
	"pitchdeck/internal/input"
	applog "pitchdeck/internal/log"
	"pitchdeck/internal/render"
	"pitchdeck/internal/session"
)

// Run opens the desktop live view and blocks until the window closes or
// ctx ends.
func Run(ctx context.Context, d Deps) error {
	if d.Live == nil || d.Router == nil || d.State == nil {
		return fmt.Errorf("ui: incomplete dependencies")
	}
	l := applog.WithComponent("ui")
	l.Info("starting desktop view")

	fyneApp := app.NewWithID("pitchdeck")
	w := fyneApp.NewWindow("Stainless Smart Manufacturing Roadshow")
	// Restore window size from preferences (with sane minimums)
	prefs := fyneApp.Preferences()
	winW := max(prefs.IntWithFallback("window.width", 1280), 640)
	winH := max(prefs.IntWithFallback("window.height", 800), 400)
	w.Resize(fyne.NewSize(float32(winW), float32(winH)))

	v := newDeckView(d)
	w.SetContent(v.content)
	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if input.Matches(string(ev.Name), d.Router.Keys().Quit) {
			w.Close()
			return
		}
		v.typedKey(ev)
	})
	d.State.OnChange(func(session.Snapshot) { fyne.Do(v.sync) })
	if d.Bridge != nil {
		d.Bridge.set(func(r export.Result) { fyne.Do(func() { v.showResult(r) }) })
		defer d.Bridge.set(nil)
	}
	w.SetCloseIntercept(func() {
		sz := w.Canvas().Size()
		prefs.SetInt("window.width", int(sz.Width))
		prefs.SetInt("window.height", int(sz.Height))
		w.Close()
	})
	go func() {
		<-ctx.Done()
		fyne.Do(fyneApp.Quit)
	}()
	w.ShowAndRun()
	l.Info("desktop view closed", slog.Int("index", d.State.Snapshot().Index))
	return nil
}

// panelCanvas paints the live frame and forwards taps to its hotspots.
type panelCanvas struct {
	widget.BaseWidget

	live   *render.LiveView
	mu     sync.Mutex
	frame  render.LiveFrame
	motion render.Motion
	raster *canvas.Raster
}

func newPanelCanvas(live *render.LiveView) *panelCanvas {
	pc := &panelCanvas{live: live, frame: live.Frame(), motion: render.Settled}
	pc.raster = canvas.NewRaster(pc.paint)
	pc.ExtendBaseWidget(pc)
	return pc
}

func (pc *panelCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(pc.raster)
}

func (pc *panelCanvas) MinSize() fyne.Size { return fyne.NewSize(480, 270) }

func (pc *panelCanvas) paint(w, h int) image.Image {
	pc.mu.Lock()
	f, m := pc.frame, pc.motion
	pc.mu.Unlock()
	img, err := pc.live.PaintMotion(f, w, h, m)
	if err != nil {
		return image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	}
	return img
}

func (pc *panelCanvas) set(f render.LiveFrame, m render.Motion) {
	pc.mu.Lock()
	pc.frame, pc.motion = f, m
	pc.mu.Unlock()
	pc.raster.Refresh()
}

func (pc *panelCanvas) setMotion(m render.Motion) {
	pc.mu.Lock()
	pc.motion = m
	pc.mu.Unlock()
	pc.raster.Refresh()
}

// Tapped runs the hotspot under the pointer, if any.
func (pc *panelCanvas) Tapped(e *fyne.PointEvent) {
	pc.mu.Lock()
	f := pc.frame
	pc.mu.Unlock()
	sz := pc.Size()
	if h, ok := render.HitTest(f, int(sz.Width), int(sz.Height), float64(e.Position.X), float64(e.Position.Y)); ok && h.Action != nil {
		h.Action()
	}
}

// deckView owns the widgets of the window.
type deckView struct {
	d       Deps
	panel   *panelCanvas
	prev    *widget.Button
	next    *widget.Button
	start   *widget.Button
	export  *widget.Button
	counter *widget.Label
	status  *widget.Label
	bar     *widget.ProgressBar
	content fyne.CanvasObject

	index int
	anim  *fyne.Animation
}

func newDeckView(d Deps) *deckView {
	ctx := context.Background()
	v := &deckView{d: d, panel: newPanelCanvas(d.Live)}
	v.prev = widget.NewButtonWithIcon("Previous", theme.NavigateBackIcon(), func() { d.Router.Press(ctx, input.ButtonPrev) })
	v.next = widget.NewButtonWithIcon("Next", theme.NavigateNextIcon(), func() { d.Router.Press(ctx, input.ButtonNext) })
	v.next.IconPlacement = widget.ButtonIconTrailingText
	v.start = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), func() { d.Router.Press(ctx, input.ButtonStart) })
	v.start.Importance = widget.HighImportance
	v.export = widget.NewButtonWithIcon("Export PDF", theme.DocumentSaveIcon(), func() {
		if d.Router.Press(ctx, input.ButtonExport) {
			v.status.SetText("Exporting…")
		}
	})
	v.counter = widget.NewLabel("")
	v.counter.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
	v.status = widget.NewLabel("")
	v.bar = widget.NewProgressBar()
	v.bar.TextFormatter = func() string { return "" }

	controls := container.NewHBox(v.prev, v.counter, v.next, v.start, layout.NewSpacer(), v.status, v.export)
	v.content = container.NewBorder(nil, container.NewVBox(v.bar, controls), nil, nil, v.panel)
	v.index = v.panel.frame.Index
	v.sync()
	return v
}

// typedKey routes navigation and export keys.
func (v *deckView) typedKey(ev *fyne.KeyEvent) {
	name := string(ev.Name)
	if input.Matches(name, v.d.Router.Keys().Export) {
		v.export.OnTapped()
		return
	}
	v.d.Router.HandleKey(name)
}

// sync pulls a fresh frame and updates every control.
func (v *deckView) sync() {
	f := v.d.Live.Frame()
	v.counter.SetText(f.Indicator)
	v.bar.SetValue(f.Progress)
	setEnabled(v.prev, f.PrevEnabled)
	setEnabled(v.next, f.NextEnabled)
	if f.StartVisible {
		v.start.Show()
	} else {
		v.start.Hide()
	}
	setEnabled(v.export, f.ExportEnabled)
	if f.ExportBusy {
		v.export.SetText("Exporting…")
	} else {
		v.export.SetText("Export PDF")
	}

	if f.Index == v.index {
		v.panel.set(f, render.Settled)
		return
	}
	v.index = f.Index
	if v.anim != nil {
		v.anim.Stop()
	}
	v.panel.set(f, render.Transition(f.Direction, 0))
	dir := f.Direction
	v.anim = fyne.NewAnimation(render.TransitionDuration, func(p float32) {
		v.panel.setMotion(render.Transition(dir, float64(p)))
	})
	// Transition applies its own easing
	v.anim.Curve = fyne.AnimationLinear
	v.anim.Start()
}

func (v *deckView) showResult(r export.Result) {
	switch r.Outcome {
	case export.OutcomeSaved:
		v.status.SetText(fmt.Sprintf("Saved %s", filepath.Base(v.d.Output)))
	case export.OutcomeFellBack:
		v.status.SetText("Export failed, sent to the printer")
	}
	v.sync()
}

func setEnabled(b *widget.Button, on bool) {
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}
