/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package export assembles the deck into a multi-page raster PDF and falls
// back to printing when that fails.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"pitchdeck/internal/config"
	applog "pitchdeck/internal/log"
	"pitchdeck/internal/printing"
	"pitchdeck/internal/render"
	"pitchdeck/internal/scene"
	"pitchdeck/internal/session"
)

// Outcome is the result of one Export call.
type Outcome uint8

const (
	OutcomeSkipped Outcome = iota
	OutcomeSaved
	OutcomeFellBack
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSaved:
		return "saved"
	case OutcomeFellBack:
		return "fallback"
	default:
		return "skipped"
	}
}

// Options controls page rendering.
type Options struct {
	Scale      float64
	Quality    int
	Background scene.Color
	Filename   string
	Title      string
	// Timeout bounds a whole export; zero means no deadline.
	Timeout time.Duration
}

// DefaultOptions are 2x JPEG pages at quality 92 on the deck background.
func DefaultOptions() Options {
	return Options{
		Scale:      2,
		Quality:    92,
		Background: render.StagingBackground,
		Filename:   config.DefaultFilename,
		Title:      "Stainless Smart Manufacturing Roadshow",
	}
}

// OptionsFrom maps the export config section onto Options.
func OptionsFrom(c config.ExportConfig) (Options, error) {
	o := DefaultOptions()
	if c.Scale > 0 {
		o.Scale = c.Scale
	}
	if c.JPEGQuality > 0 {
		o.Quality = c.JPEGQuality
	}
	if c.Background != "" {
		bg, err := scene.Hex(c.Background)
		if err != nil {
			return o, fmt.Errorf("export background: %w", err)
		}
		o.Background = bg
	}
	if c.Filename != "" {
		o.Filename = c.Filename
	}
	o.Timeout = c.Timeout()
	return o, nil
}

// Result is reported to the Observer after every Export call.
type Result struct {
	Outcome Outcome
	Pages   int
	Elapsed time.Duration
	Err     error
}

type Observer interface {
	ExportFinished(Result)
}

type ObserverFunc func(Result)

func (f ObserverFunc) ExportFinished(r Result) { f(r) }

// Deps are the collaborators of a Pipeline. Rasterizer and Saver are
// required; Encoder defaults to JPEGEncoder.
type Deps struct {
	Rasterizer Rasterizer
	Encoder    Encoder
	Saver      Saver
	Printer    printing.Printer
	Observer   Observer
}

// Pipeline exports the staged deck. It never changes the presentation
// index or direction.
type Pipeline struct {
	st      *session.State
	staging *render.Staging
	deps    Deps
	opts    Options
	log     *slog.Logger
	wg      sync.WaitGroup
}

func New(st *session.State, staging *render.Staging, deps Deps, opts Options) *Pipeline {
	if deps.Encoder == nil {
		deps.Encoder = JPEGEncoder{}
	}
	return &Pipeline{
		st:      st,
		staging: staging,
		deps:    deps,
		opts:    opts,
		log:     applog.WithComponent("export"),
	}
}

// Trigger starts an export on its own goroutine. It reports false when an
// export is already running.
func (p *Pipeline) Trigger(ctx context.Context) bool {
	if p.st.Exporting() {
		return false
	}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.Export(context.WithoutCancel(ctx))
	}()
	return true
}

// Wait blocks until every triggered export has returned.
func (p *Pipeline) Wait() { p.wg.Wait() }

// Export renders every staged panel, in order, into one document and saves
// it. Any failure falls back to printing once.
func (p *Pipeline) Export(ctx context.Context) Outcome {
	start := time.Now()
	res := p.run(applog.ContextWithOperation(ctx, "export"))
	res.Elapsed = time.Since(start)
	if p.deps.Observer != nil {
		p.deps.Observer.ExportFinished(res)
	}
	return res.Outcome
}

func (p *Pipeline) run(ctx context.Context) Result {
	if p.staging == nil {
		return Result{Outcome: OutcomeSkipped}
	}
	release, ok := p.st.BeginExport()
	if !ok {
		p.log.Debug("export already in progress")
		return Result{Outcome: OutcomeSkipped}
	}
	defer func() {
		p.staging.Hide()
		release()
	}()

	if p.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.Timeout)
		defer cancel()
	}

	doc, err := p.assemble(ctx)
	if err == nil {
		err = p.save(ctx, doc)
	}
	if err != nil {
		p.log.ErrorContext(ctx, "export failed, falling back to print", slog.Any("err", err))
		p.fallback(ctx)
		return Result{Outcome: OutcomeFellBack, Err: err}
	}
	p.log.InfoContext(ctx, "export saved", slog.String("file", p.opts.Filename), slog.Int("pages", doc.Len()))
	return Result{Outcome: OutcomeSaved, Pages: doc.Len()}
}

func (p *Pipeline) assemble(ctx context.Context) (*Document, error) {
	if p.deps.Rasterizer == nil {
		return nil, errors.New("no rasterizer configured")
	}
	if err := p.staging.Show(); err != nil {
		return nil, fmt.Errorf("stage panels: %w", err)
	}
	staged, err := p.staging.Instances()
	if err != nil {
		return nil, fmt.Errorf("stage panels: %w", err)
	}
	doc := NewDocument(p.opts.Title)
	var buf bytes.Buffer
	for _, in := range staged {
		l := applog.WithPanel(p.log, in.Index)
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("panel %d: %w", in.Index+1, err)
		}
		img, err := p.deps.Rasterizer.Rasterize(ctx, in.Scene, p.opts.Scale, p.opts.Background)
		if err != nil {
			return nil, fmt.Errorf("panel %d: %w", in.Index+1, err)
		}
		buf.Reset()
		if err := p.deps.Encoder.Encode(&buf, img, p.opts.Quality); err != nil {
			return nil, fmt.Errorf("panel %d: %w", in.Index+1, err)
		}
		if err := doc.AddPage(in.Index, bytes.Clone(buf.Bytes())); err != nil {
			return nil, fmt.Errorf("panel %d: %w", in.Index+1, err)
		}
		l.DebugContext(ctx, "page added", slog.Int("bytes", buf.Len()), slog.Any("size", img.Bounds().Size()))
	}
	return doc, nil
}

func (p *Pipeline) save(ctx context.Context, doc *Document) error {
	if p.deps.Saver == nil {
		return errors.New("no saver configured")
	}
	if err := p.deps.Saver.Save(ctx, doc, p.opts.Filename); err != nil {
		return fmt.Errorf("save %s: %w", p.opts.Filename, err)
	}
	return nil
}

func (p *Pipeline) fallback(ctx context.Context) {
	if p.deps.Printer == nil {
		p.log.Warn("no print fallback configured")
		return
	}
	// the fallback outlives an expired export deadline
	p.deps.Printer.Print(context.WithoutCancel(ctx))
}
