/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package printing

import (
	"context"
	"errors"
	"image/png"
	"os"
	"sync"
	"testing"

	"pitchdeck/internal/config"
	"pitchdeck/internal/deck"
	"pitchdeck/internal/raster"
)

type call struct {
	name string
	args []string
}

// recordingRunner captures invocations and checks the spooled files exist
// while the command runs.
type recordingRunner struct {
	t     *testing.T
	mu    sync.Mutex
	calls []call
	err   error
}

func (r *recordingRunner) Run(_ context.Context, name string, args ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range args {
		if a == "-d" || a == "office" {
			continue
		}
		f, err := os.Open(a)
		if err != nil {
			r.t.Errorf("spooled page missing: %v", err)
			continue
		}
		cfg, err := png.DecodeConfig(f)
		_ = f.Close()
		if err != nil {
			r.t.Errorf("page %s is not a png: %v", a, err)
		} else if cfg.Width != 160 || cfg.Height != 120 {
			r.t.Errorf("page %s is %dx%d", a, cfg.Width, cfg.Height)
		}
	}
	r.calls = append(r.calls, call{name: name, args: append([]string(nil), args...)})
	return r.err
}

func newTestSystem(t *testing.T, r Runner) *System {
	t.Helper()
	p, err := raster.New()
	if err != nil {
		t.Fatal(err)
	}
	s := NewSystem(deck.Default(), p, config.PrintConfig{Command: "lp", Args: []string{"-d", "office"}})
	s.Runner = r
	s.Scale = 0.1
	s.Sheet.X, s.Sheet.Y = 160, 120
	s.PerPage = false
	s.TempDir = t.TempDir()
	return s
}

func TestPrintSpoolsEveryPanel(t *testing.T) {
	r := &recordingRunner{t: t}
	s := newTestSystem(t, r)
	s.Print(context.Background())
	s.Wait()

	if len(r.calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(r.calls))
	}
	c := r.calls[0]
	if c.name != "lp" || c.args[0] != "-d" || c.args[1] != "office" {
		t.Fatalf("unexpected invocation %+v", c)
	}
	if got := len(c.args) - 2; got != 12 {
		t.Fatalf("pages = %d, want 12", got)
	}
	entries, _ := os.ReadDir(s.TempDir)
	if len(entries) != 0 {
		t.Fatalf("spool dir not cleaned up: %v", entries)
	}
}

func TestPrintPerPage(t *testing.T) {
	r := &recordingRunner{t: t}
	s := newTestSystem(t, r)
	s.PerPage = true
	s.Print(context.Background())
	s.Wait()
	if len(r.calls) != 12 {
		t.Fatalf("calls = %d, want 12", len(r.calls))
	}
}

func TestPrintFailureIsContained(t *testing.T) {
	r := &recordingRunner{t: t, err: errors.New("no printer")}
	s := newTestSystem(t, r)
	s.Print(context.Background())
	s.Wait()
	if len(r.calls) != 1 {
		t.Fatalf("calls = %d", len(r.calls))
	}
	entries, _ := os.ReadDir(s.TempDir)
	if len(entries) != 0 {
		t.Fatalf("spool dir not cleaned up after failure")
	}
}

func TestPrintWithoutCommand(t *testing.T) {
	r := &recordingRunner{t: t}
	s := newTestSystem(t, r)
	s.Command = ""
	s.Print(context.Background())
	s.Wait()
	if len(r.calls) != 0 {
		t.Fatalf("runner invoked without a command")
	}
}

func TestLayoutKeepsPanelSizeWithoutSheet(t *testing.T) {
	r := &recordingRunner{t: t}
	s := newTestSystem(t, r)
	s.Sheet.X, s.Sheet.Y = 0, 0
	pages, err := s.Layout()
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 12 {
		t.Fatalf("pages = %d", len(pages))
	}
	if b := pages[0].Bounds(); b.Dx() != 192 || b.Dy() != 108 {
		t.Fatalf("page bounds = %v", b)
	}
}
