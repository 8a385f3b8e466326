/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package input

import (
	"context"
	"sync/atomic"
	"testing"

	"pitchdeck/internal/session"
)

type countingExporter struct{ calls atomic.Int32 }

func (c *countingExporter) Trigger(context.Context) bool {
	c.calls.Add(1)
	return true
}

func newRouter(exp Exporter) (*Router, *session.State) {
	st := session.NewState(12)
	return NewRouter(session.NewNavigator(st), exp), st
}

func TestNavigationKeys(t *testing.T) {
	for _, k := range []string{"right", " ", "space", "pgdown", "ArrowRight", "PageDown", "Right", "Space", "Next"} {
		r, st := newRouter(nil)
		if !r.HandleKey(k) || st.Snapshot().Index != 1 {
			t.Fatalf("key %q did not advance", k)
		}
	}
	for _, k := range []string{"left", "pgup", "ArrowLeft", "PageUp", "Left", "Prior"} {
		r, st := newRouter(nil)
		r.HandleKey("right")
		r.HandleKey("right")
		if !r.HandleKey(k) || st.Snapshot().Index != 1 {
			t.Fatalf("key %q did not retreat", k)
		}
	}
}

func TestUnboundKeysAreIgnored(t *testing.T) {
	r, st := newRouter(nil)
	for _, k := range []string{"x", "enter", "up", "down", "e", ""} {
		if r.HandleKey(k) {
			t.Fatalf("key %q should be ignored", k)
		}
	}
	if got := st.Snapshot(); got.Index != 0 {
		t.Fatalf("state moved: %+v", got)
	}
}

func TestButtons(t *testing.T) {
	r, st := newRouter(nil)
	ctx := context.Background()
	if r.Press(ctx, ButtonPrev) {
		t.Fatalf("prev at first panel should be a no-op")
	}
	if !r.Press(ctx, ButtonStart) || st.Snapshot().Index != 1 {
		t.Fatalf("start should jump to panel 1")
	}
	if r.Press(ctx, ButtonStart) {
		t.Fatalf("start away from the cover should be ignored")
	}
	if !r.Press(ctx, ButtonNext) || st.Snapshot().Index != 2 {
		t.Fatalf("next did not advance")
	}
	if r.Press(ctx, ButtonExport) {
		t.Fatalf("export without exporter should be refused")
	}
}

func TestStartActionJumps(t *testing.T) {
	r, st := newRouter(nil)
	r.StartAction()()
	if got := st.Snapshot(); got.Index != 1 || got.Direction != session.Forward {
		t.Fatalf("after start: %+v", got)
	}
}

func TestExportButtonTriggersUnlessBusy(t *testing.T) {
	exp := &countingExporter{}
	r, st := newRouter(exp)
	if !r.Press(context.Background(), ButtonExport) {
		t.Fatalf("export should be triggered")
	}
	release, _ := st.BeginExport()
	if r.Press(context.Background(), ButtonExport) {
		t.Fatalf("export while exporting should be refused")
	}
	release()
	if got := exp.calls.Load(); got != 1 {
		t.Fatalf("Trigger calls = %d", got)
	}
	if st.Snapshot().Index != 0 {
		t.Fatalf("export changed navigation")
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) != 4 {
		t.Fatalf("unexpected help bindings")
	}
	if !Matches("Q", km.Quit) || !Matches("e", km.Export) {
		t.Fatalf("front-end bindings not matched")
	}
	if Button(9).String() != "unknown" || ButtonExport.String() != "export" {
		t.Fatalf("button names")
	}
}
