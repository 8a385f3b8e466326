/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package printing is the fallback used when a document export fails: it
// lays out every panel as a page image and hands the pages to the host's
// print command.
package printing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"pitchdeck/internal/config"
	"pitchdeck/internal/deck"
	applog "pitchdeck/internal/log"
	"pitchdeck/internal/raster"
)

// Printer prints the deck. Results are not reported to the caller.
type Printer interface {
	Print(ctx context.Context)
}

// Runner runs an external command.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// A4Landscape is an A4 sheet at 150 dpi.
var A4Landscape = image.Pt(1754, 1240)

// System prints through the host print command.
type System struct {
	Command string
	Args    []string
	Runner  Runner
	// Sheet is the page size pages are fitted onto; zero keeps the panel size.
	Sheet image.Point
	// Scale applied when painting a panel.
	Scale float64
	// PerPage runs the command once per page instead of once for all pages.
	PerPage bool
	// TempDir is the parent of the spool directory; empty uses os.TempDir.
	TempDir string

	reg     *deck.Registry
	painter *raster.Painter
	log     *slog.Logger
	wg      sync.WaitGroup
}

// NewSystem builds a printer for reg using the configured command.
func NewSystem(reg *deck.Registry, painter *raster.Painter, cfg config.PrintConfig) *System {
	return &System{
		Command: cfg.Command,
		Args:    append([]string(nil), cfg.Args...),
		Runner:  ExecRunner{},
		Sheet:   A4Landscape,
		Scale:   1,
		PerPage: runtime.GOOS == "windows",
		reg:     reg,
		painter: painter,
		log:     applog.WithComponent("print"),
	}
}

// Print lays out and prints in the background. Failures are logged.
func (s *System) Print(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.run(ctx); err != nil {
			s.log.Error("print fallback failed", slog.Any("err", err))
			return
		}
		s.log.Info("print job submitted", slog.String("command", s.Command))
	}()
}

// Wait blocks until every started print job has finished.
func (s *System) Wait() { s.wg.Wait() }

// Layout paints the print pages in registry order.
func (s *System) Layout() ([]image.Image, error) {
	if s.reg == nil || s.reg.Len() == 0 {
		return nil, errors.New("printing: nothing to print")
	}
	if s.painter == nil {
		return nil, errors.New("printing: no painter")
	}
	scale := s.Scale
	if scale <= 0 {
		scale = 1
	}
	pages := make([]image.Image, 0, s.reg.Len())
	for i := 0; i < s.reg.Len(); i++ {
		p, _ := s.reg.At(i)
		img, err := s.painter.Paint(p.Render(deck.RenderOptions{Active: true}), scale, nil)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		if s.Sheet.X > 0 && s.Sheet.Y > 0 {
			pages = append(pages, raster.Fit(img, s.Sheet.X, s.Sheet.Y, color.White))
			continue
		}
		pages = append(pages, img)
	}
	return pages, nil
}

func (s *System) run(ctx context.Context) error {
	if s.Command == "" {
		return errors.New("printing: no print command configured")
	}
	pages, err := s.Layout()
	if err != nil {
		return err
	}
	dir, err := os.MkdirTemp(s.TempDir, "pitchdeck-print-*")
	if err != nil {
		return fmt.Errorf("spool dir: %w", err)
	}
	defer os.RemoveAll(dir)

	files := make([]string, 0, len(pages))
	var buf bytes.Buffer
	for i, img := range pages {
		buf.Reset()
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("page %d: encode png: %w", i+1, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("page-%02d.png", i+1))
		if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
		files = append(files, path)
	}

	runner := s.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	if !s.PerPage {
		return runner.Run(ctx, s.Command, append(append([]string(nil), s.Args...), files...)...)
	}
	for _, f := range files {
		if err := runner.Run(ctx, s.Command, append(append([]string(nil), s.Args...), f)...); err != nil {
			return err
		}
	}
	return nil
}
