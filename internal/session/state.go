/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package session owns the presentation state: which panel is showing, the
// direction of the last move and whether an export is in flight.
package session

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Direction of the last navigation. Cosmetic only.
type Direction int8

const (
	Forward  Direction = 1
	Backward Direction = -1
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Snapshot is a comparable copy of the state at one instant.
type Snapshot struct {
	Index     int
	Direction Direction
	Exporting bool
}

// State is safe for concurrent use. Index and Direction change only through
// a Navigator; the exporting flag only through BeginExport.
type State struct {
	count int

	mu        sync.RWMutex
	index     int
	dir       Direction
	listeners []func(Snapshot)

	exporting atomic.Bool
}

// NewState creates the state for a deck of panelCount panels.
func NewState(panelCount int) *State {
	if panelCount < 1 {
		panic(fmt.Sprintf("session: panel count %d < 1", panelCount))
	}
	return &State{count: panelCount, dir: Forward}
}

// Len is the panel count the state was created with.
func (s *State) Len() int { return s.count }

func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Index: s.index, Direction: s.dir, Exporting: s.exporting.Load()}
}

func (s *State) Exporting() bool { return s.exporting.Load() }

// BeginExport claims the export guard. ok is false when an export is already
// in flight. release is idempotent and must be called exactly once on every
// exit path of the export, typically via defer.
func (s *State) BeginExport() (release func(), ok bool) {
	if !s.exporting.CompareAndSwap(false, true) {
		return func() {}, false
	}
	s.notify()
	var once sync.Once
	return func() {
		once.Do(func() {
			s.exporting.Store(false)
			s.notify()
		})
	}, true
}

// OnChange registers fn to be called after every effective state change.
// Listeners run on the goroutine that made the change.
func (s *State) OnChange(fn func(Snapshot)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// move sets index and direction, reporting whether anything changed.
func (s *State) move(index int, dir Direction) bool {
	s.mu.Lock()
	if s.index == index && s.dir == dir {
		s.mu.Unlock()
		return false
	}
	s.index, s.dir = index, dir
	s.mu.Unlock()
	s.notify()
	return true
}

func (s *State) notify() {
	s.mu.RLock()
	ls := append([]func(Snapshot){}, s.listeners...)
	snap := Snapshot{Index: s.index, Direction: s.dir, Exporting: s.exporting.Load()}
	s.mu.RUnlock()
	for _, fn := range ls {
		fn(snap)
	}
}
