/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package tui is the terminal live view: the current panel drawn with
// half-block cells, a progress bar and clickable controls.
package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pitchdeck/internal/export"
	"pitchdeck/internal/input"
	"pitchdeck/internal/raster"
	"pitchdeck/internal/render"
	"pitchdeck/internal/session"
)

const (
	footerLines  = 3
	supersample  = 3
	tickInterval = 40 * time.Millisecond
)

type (
	stateMsg      session.Snapshot
	exportDoneMsg export.Result
	tickMsg       time.Time
)

// zone is a clickable footer control on the button row.
type zone struct {
	button  input.Button
	label   string
	x0, x1  int // cells, x1 exclusive
	enabled bool
	busy    bool
	primary bool
}

// Model is the bubbletea model of the live view.
type Model struct {
	ctx    context.Context
	live   *render.LiveView
	router *input.Router
	keys   input.KeyMap
	output string
	now    func() time.Time

	width, height int
	frame         render.LiveFrame
	canvas        string
	animStart     time.Time
	motion        render.Motion
	status        string
	statusErr     bool
}

// New builds the model. output is the path the export is saved to, shown
// in the status line.
func New(ctx context.Context, live *render.LiveView, router *input.Router, output string) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	return Model{
		ctx:    ctx,
		live:   live,
		router: router,
		keys:   router.Keys(),
		output: output,
		now:    time.Now,
		frame:  live.Frame(),
		motion: render.Settled,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.repaint()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case stateMsg:
		return m.refresh()
	case exportDoneMsg:
		m.reportExport(export.Result(msg))
		return m.refresh()
	case tickMsg:
		return m.animate(time.Time(msg))
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Export):
		m.press(input.ButtonExport)
		return m.refresh()
	}
	if m.router.HandleKey(msg.String()) {
		return m.refresh()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	cw, ch := m.canvasCells()
	if msg.Y < ch {
		px, py := float64(msg.X)+0.5, float64(msg.Y*2)+1
		if h, ok := render.HitTest(m.frame, cw, ch*2, px, py); ok && h.Action != nil {
			h.Action()
			return m.refresh()
		}
		return m, nil
	}
	if msg.Y != ch+1 {
		return m, nil
	}
	for _, z := range m.zones() {
		if msg.X >= z.x0 && msg.X < z.x1 && z.enabled {
			m.press(z.button)
			return m.refresh()
		}
	}
	return m, nil
}

func (m *Model) press(b input.Button) {
	if m.router.Press(m.ctx, b) && b == input.ButtonExport {
		m.status, m.statusErr = "Exporting…", false
	}
}

// refresh re-renders the current panel and starts the slide-in when the
// index changed.
func (m Model) refresh() (tea.Model, tea.Cmd) {
	prev := m.frame.Index
	m.frame = m.live.Frame()
	if m.frame.Index == prev {
		m.repaint()
		return m, nil
	}
	m.animStart = m.now()
	m.motion = render.Transition(m.frame.Direction, 0)
	m.repaint()
	return m, tick()
}

func (m Model) animate(at time.Time) (tea.Model, tea.Cmd) {
	if m.motion == render.Settled {
		return m, nil
	}
	t := float64(at.Sub(m.animStart)) / float64(render.TransitionDuration)
	m.motion = render.Transition(m.frame.Direction, t)
	m.repaint()
	if m.motion == render.Settled {
		return m, nil
	}
	return m, tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) reportExport(r export.Result) {
	switch r.Outcome {
	case export.OutcomeSaved:
		m.status, m.statusErr = fmt.Sprintf("Saved %s (%d pages)", filepath.Base(m.output), r.Pages), false
	case export.OutcomeFellBack:
		m.status, m.statusErr = "Export failed, sent to the printer instead", true
	}
}

func (m Model) canvasCells() (int, int) {
	return max(m.width, 1), max(m.height-footerLines, 1)
}

func (m *Model) repaint() {
	if m.width <= 0 || m.height <= 0 {
		m.canvas = ""
		return
	}
	cw, ch := m.canvasCells()
	img, err := m.live.PaintMotion(m.frame, cw*supersample, ch*2*supersample, m.motion)
	if err != nil {
		m.canvas = errorStyle.Render(err.Error())
		return
	}
	m.canvas = halfBlocks(raster.Thumbnail(img, cw, ch*2))
}

// zones lays out the button row. The indicator sits between the
// navigation buttons.
func (m Model) zones() []zone {
	f := m.frame
	exportLabel := " Export PDF "
	if f.ExportBusy {
		exportLabel = " Exporting… "
	}
	zs := []zone{{button: input.ButtonPrev, label: " ◀ Prev ", enabled: f.PrevEnabled}}
	if f.StartVisible {
		zs = append(zs, zone{button: input.ButtonStart, label: " Start ", enabled: true, primary: true})
	}
	zs = append(zs,
		zone{button: input.ButtonNext, label: " Next ▶ ", enabled: f.NextEnabled},
		zone{button: input.ButtonExport, label: exportLabel, enabled: f.ExportEnabled, busy: f.ExportBusy},
	)
	x := 1
	for i := range zs {
		if zs[i].button == input.ButtonNext {
			x += lipgloss.Width(f.Indicator) + 2
		}
		zs[i].x0 = x
		zs[i].x1 = x + lipgloss.Width(zs[i].label)
		x = zs[i].x1 + 1
	}
	return zs
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "loading…"
	}
	return strings.Join([]string{m.canvas, m.progressBar(), m.buttonRow(), m.helpLine()}, "\n")
}

func (m Model) progressBar() string {
	on := int(m.frame.Progress*float64(m.width) + 0.5)
	return progressOn.Render(strings.Repeat("━", on)) + progressOff.Render(strings.Repeat("━", max(m.width-on, 0)))
}

func (m Model) buttonRow() string {
	var sb strings.Builder
	x := 0
	for _, z := range m.zones() {
		if z.button == input.ButtonNext {
			sb.WriteString(strings.Repeat(" ", max(z.x0-x-lipgloss.Width(m.frame.Indicator)-2, 0)))
			sb.WriteString(" " + indicatorStyle.Render(m.frame.Indicator) + " ")
			x = z.x0
		}
		sb.WriteString(strings.Repeat(" ", max(z.x0-x, 0)))
		st := buttonStyle
		switch {
		case z.busy:
			st = buttonBusyStyle
		case !z.enabled:
			st = buttonDisabledStyle
		case z.primary:
			st = buttonPrimaryStyle
		}
		sb.WriteString(st.Render(z.label))
		x = z.x1
	}
	return sb.String()
}

func (m Model) helpLine() string {
	parts := make([]string, 0, 4)
	for _, b := range m.keys.ShortHelp() {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	line := helpStyle.Render(strings.Join(parts, " • "))
	if m.status == "" {
		return line
	}
	st := statusStyle
	if m.statusErr {
		st = errorStyle
	}
	return line + "   " + st.Render(m.status)
}
