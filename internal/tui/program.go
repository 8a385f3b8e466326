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
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"pitchdeck/internal/export"
	"pitchdeck/internal/session"
)

// Bridge forwards events raised on other goroutines into a running
// program. Events before Attach are dropped.
type Bridge struct {
	mu sync.Mutex
	p  *tea.Program
}

func (b *Bridge) Attach(p *tea.Program) {
	b.mu.Lock()
	b.p = p
	b.mu.Unlock()
}

func (b *Bridge) send(msg tea.Msg) {
	b.mu.Lock()
	p := b.p
	b.mu.Unlock()
	if p == nil {
		return
	}
	// Send blocks until the event loop reads it, and state changes are
	// also raised from inside Update.
	go p.Send(msg)
}

// OnChange is a session change listener.
func (b *Bridge) OnChange(s session.Snapshot) { b.send(stateMsg(s)) }

// ExportFinished makes the bridge an export.Observer.
func (b *Bridge) ExportFinished(r export.Result) { b.send(exportDoneMsg(r)) }

// Run shows the model full screen until the user quits or ctx ends.
func Run(ctx context.Context, m Model, b *Bridge) error {
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if b != nil {
		b.Attach(p)
		defer b.Attach(nil)
	}
	_, err := p.Run()
	return err
}
