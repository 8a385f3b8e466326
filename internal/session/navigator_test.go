/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package session

import (
	"sync"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestNewStateInitialValues(t *testing.T) {
	st := NewState(12)
	if got := st.Snapshot(); got != (Snapshot{Index: 0, Direction: Forward}) {
		t.Fatalf("initial snapshot = %+v", got)
	}
	if st.Len() != 12 {
		t.Fatalf("Len = %d", st.Len())
	}
}

func TestNewStatePanicsOnEmptyDeck(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	NewState(0)
}

func TestAdvanceAtLastIsNoop(t *testing.T) {
	nav := NewNavigator(NewState(12))
	nav.JumpTo(11)
	before := nav.State().Snapshot()
	if nav.Advance() {
		t.Fatalf("Advance at last index reported a change")
	}
	if after := nav.State().Snapshot(); after != before {
		t.Fatalf("snapshot changed: %+v -> %+v", before, after)
	}
}

func TestRetreatAtFirstIsNoop(t *testing.T) {
	nav := NewNavigator(NewState(12))
	before := nav.State().Snapshot()
	if nav.Retreat() {
		t.Fatalf("Retreat at 0 reported a change")
	}
	if after := nav.State().Snapshot(); after != before {
		t.Fatalf("snapshot changed: %+v -> %+v", before, after)
	}
}

func TestJumpToFromCover(t *testing.T) {
	nav := NewNavigator(NewState(12))
	if !nav.JumpTo(1) {
		t.Fatalf("JumpTo(1) from 0 should change state")
	}
	if got := nav.State().Snapshot(); got.Index != 1 || got.Direction != Forward {
		t.Fatalf("after JumpTo(1): %+v", got)
	}
}

func TestJumpToClampsAndResetsDirection(t *testing.T) {
	nav := NewNavigator(NewState(12))
	nav.JumpTo(5)
	nav.Retreat()
	if nav.State().Snapshot().Direction != Backward {
		t.Fatalf("Retreat should set Backward")
	}
	nav.JumpTo(99)
	if got := nav.State().Snapshot(); got.Index != 11 || got.Direction != Forward {
		t.Fatalf("JumpTo(99) = %+v", got)
	}
	nav.JumpTo(-3)
	if got := nav.State().Snapshot(); got.Index != 0 {
		t.Fatalf("JumpTo(-3) = %+v", got)
	}
}

func TestSequenceTable(t *testing.T) {
	cases := []struct {
		name string
		ops  string // a=advance r=retreat
		want Snapshot
	}{
		{"empty", "", Snapshot{Index: 0, Direction: Forward}},
		{"three forward", "aaa", Snapshot{Index: 3, Direction: Forward}},
		{"back and forth", "aar", Snapshot{Index: 1, Direction: Backward}},
		{"retreat at start", "rrr", Snapshot{Index: 0, Direction: Forward}},
		{"overshoot end", "aaaaaaaaaaaaaaaa", Snapshot{Index: 11, Direction: Forward}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nav := NewNavigator(NewState(12))
			for _, op := range tc.ops {
				if op == 'a' {
					nav.Advance()
				} else {
					nav.Retreat()
				}
			}
			if got := nav.State().Snapshot(); got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestIndexStaysInRangeProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("index stays within [0, n-1] for any move sequence", prop.ForAll(
		func(n int, moves []bool) bool {
			nav := NewNavigator(NewState(n))
			for _, fwd := range moves {
				if fwd {
					nav.Advance()
				} else {
					nav.Retreat()
				}
				if i := nav.State().Snapshot().Index; i < 0 || i > n-1 {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 30),
		gen.SliceOf(gen.Bool()),
	))

	properties.Property("a change is reported iff the snapshot differs", prop.ForAll(
		func(moves []int) bool {
			nav := NewNavigator(NewState(12))
			for _, m := range moves {
				before := nav.State().Snapshot()
				var changed bool
				switch m % 3 {
				case 0:
					changed = nav.Advance()
				case 1:
					changed = nav.Retreat()
				default:
					changed = nav.JumpTo(m)
				}
				if changed != (nav.State().Snapshot() != before) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 40)),
	))

	properties.TestingRun(t)
}

func TestOnChangeFiresOnEffectiveChangesOnly(t *testing.T) {
	nav := NewNavigator(NewState(3))
	var got []Snapshot
	nav.OnChange(func(s Snapshot) { got = append(got, s) })
	nav.Retreat() // no-op
	nav.Advance()
	nav.Advance()
	nav.Advance() // no-op
	if len(got) != 2 || got[1].Index != 2 {
		t.Fatalf("notifications = %+v", got)
	}
}

func TestBeginExportIsExclusive(t *testing.T) {
	st := NewState(12)
	var notes []bool
	st.OnChange(func(s Snapshot) { notes = append(notes, s.Exporting) })
	release, ok := st.BeginExport()
	if !ok || !st.Exporting() {
		t.Fatalf("first BeginExport should succeed")
	}
	if _, ok := st.BeginExport(); ok {
		t.Fatalf("second BeginExport should be refused while exporting")
	}
	release()
	release()
	if st.Exporting() {
		t.Fatalf("release did not clear the flag")
	}
	if len(notes) != 2 || !notes[0] || notes[1] {
		t.Fatalf("export notifications = %v", notes)
	}
}

func TestBeginExportConcurrentSingleWinner(t *testing.T) {
	st := NewState(12)
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := st.BeginExport(); ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if wins != 1 {
		t.Fatalf("winners = %d, want 1", wins)
	}
}

func TestNavigationDoesNotTouchExportFlag(t *testing.T) {
	st := NewState(12)
	nav := NewNavigator(st)
	release, _ := st.BeginExport()
	defer release()
	nav.Advance()
	if got := st.Snapshot(); got.Index != 1 || !got.Exporting {
		t.Fatalf("snapshot = %+v", got)
	}
}
