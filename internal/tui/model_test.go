/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pitchdeck/internal/deck"
	"pitchdeck/internal/export"
	"pitchdeck/internal/input"
	"pitchdeck/internal/raster"
	"pitchdeck/internal/render"
	"pitchdeck/internal/session"
)

type countingExporter struct{ n int }

func (c *countingExporter) Trigger(context.Context) bool { c.n++; return true }

type harness struct {
	st  *session.State
	exp *countingExporter
	m   Model
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	p, err := raster.New()
	if err != nil {
		t.Fatal(err)
	}
	reg := deck.Default()
	st := session.NewState(reg.Len())
	exp := &countingExporter{}
	router := input.NewRouter(session.NewNavigator(st), exp)
	live := render.NewLiveView(reg, st, router.StartAction(), p)
	h := &harness{st: st, exp: exp, m: New(context.Background(), live, router, "/tmp/deck.pdf")}
	h.send(t, tea.WindowSizeMsg{Width: 80, Height: 30})
	return h
}

func (h *harness) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := h.m.Update(msg)
	m, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	h.m = m
	return cmd
}

func TestKeysNavigate(t *testing.T) {
	h := newHarness(t)
	if !strings.Contains(h.m.View(), "01 / 12") {
		t.Fatalf("cover indicator missing")
	}
	if cmd := h.send(t, tea.KeyMsg{Type: tea.KeyRight}); cmd == nil {
		t.Fatalf("navigation should start the slide-in")
	}
	if h.st.Snapshot().Index != 1 || !strings.Contains(h.m.View(), "02 / 12") {
		t.Fatalf("right arrow did not advance")
	}
	h.send(t, tea.KeyMsg{Type: tea.KeySpace})
	h.send(t, tea.KeyMsg{Type: tea.KeyPgDown})
	h.send(t, tea.KeyMsg{Type: tea.KeyLeft})
	if got := h.st.Snapshot().Index; got != 2 {
		t.Fatalf("index = %d, want 2", got)
	}
	if cmd := h.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}); cmd != nil {
		t.Fatalf("unbound key produced a command")
	}
}

func TestQuitKey(t *testing.T) {
	h := newHarness(t)
	cmd := h.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q did not quit")
	}
}

func TestExportKeyTriggersOnce(t *testing.T) {
	h := newHarness(t)
	h.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	if h.exp.n != 1 {
		t.Fatalf("trigger count = %d", h.exp.n)
	}
	release, _ := h.st.BeginExport()
	h.send(t, stateMsg(h.st.Snapshot()))
	h.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	if h.exp.n != 1 {
		t.Fatalf("export triggered while busy")
	}
	if !strings.Contains(h.m.View(), "Exporting…") {
		t.Fatalf("busy export button missing")
	}
	release()
	h.send(t, exportDoneMsg(export.Result{Outcome: export.OutcomeSaved, Pages: 12}))
	if v := h.m.View(); !strings.Contains(v, "Saved deck.pdf (12 pages)") || !strings.Contains(v, "Export PDF") {
		t.Fatalf("status after export:\n%s", v)
	}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestFooterButtons(t *testing.T) {
	h := newHarness(t)
	_, ch := h.m.canvasCells()
	var next, prev zone
	for _, z := range h.m.zones() {
		switch z.button {
		case input.ButtonNext:
			next = z
		case input.ButtonPrev:
			prev = z
		}
	}
	if prev.enabled {
		t.Fatalf("prev enabled on cover")
	}
	h.send(t, click(prev.x0, ch+1))
	if h.st.Snapshot().Index != 0 {
		t.Fatalf("disabled prev moved")
	}
	h.send(t, click(next.x0, ch+1))
	if h.st.Snapshot().Index != 1 {
		t.Fatalf("next button did not advance")
	}
	h.send(t, click(next.x0, ch+2))
	if h.st.Snapshot().Index != 1 {
		t.Fatalf("click on help line moved")
	}
}

func TestStartHotspotClick(t *testing.T) {
	h := newHarness(t)
	cw, ch := h.m.canvasCells()
	for y := 0; y < ch; y++ {
		for x := 0; x < cw; x++ {
			if _, ok := render.HitTest(h.m.frame, cw, ch*2, float64(x)+0.5, float64(y*2)+1); ok {
				h.send(t, click(x, y))
				if got := h.st.Snapshot(); got.Index != 1 || got.Direction != session.Forward {
					t.Fatalf("start hotspot gave %+v", got)
				}
				return
			}
		}
	}
	t.Fatalf("no start hotspot reachable in the canvas")
}

func TestSlideInSettles(t *testing.T) {
	h := newHarness(t)
	base := time.Now()
	h.m.now = func() time.Time { return base }
	h.send(t, tea.KeyMsg{Type: tea.KeyRight})
	if h.m.motion == render.Settled {
		t.Fatalf("motion settled immediately")
	}
	if cmd := h.send(t, tickMsg(base.Add(render.TransitionDuration/2))); cmd == nil {
		t.Fatalf("animation stopped early")
	}
	if cmd := h.send(t, tickMsg(base.Add(render.TransitionDuration))); cmd != nil {
		t.Fatalf("animation kept ticking after settling")
	}
	if h.m.motion != render.Settled {
		t.Fatalf("motion = %+v", h.m.motion)
	}
}

func TestViewHasCanvasRows(t *testing.T) {
	h := newHarness(t)
	if got := strings.Count(h.m.View(), "\n") + 1; got != 30 {
		t.Fatalf("view lines = %d, want 30", got)
	}
}
