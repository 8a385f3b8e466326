/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"pitchdeck/internal/config"
	"pitchdeck/internal/crash"
	"pitchdeck/internal/deck"
	"pitchdeck/internal/export"
	"pitchdeck/internal/input"
	applog "pitchdeck/internal/log"
	"pitchdeck/internal/printing"
	"pitchdeck/internal/raster"
	"pitchdeck/internal/render"
	"pitchdeck/internal/session"
	"pitchdeck/internal/telemetry"
	"pitchdeck/internal/tui"
	"pitchdeck/internal/ui"
	"pitchdeck/internal/version"
)

func usage() {
	fmt.Println("pitchdeck: Stainless Smart Manufacturing Roadshow")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  pitchdeck [present]              Present in the terminal (default)")
	fmt.Println("  pitchdeck ui                     Present in a desktop window (build with -tags fyne)")
	fmt.Println("  pitchdeck export [dir]           Export the deck to PDF, printing it if the export fails")
	fmt.Println("  pitchdeck slides                 List the panels")
	fmt.Println("  pitchdeck version|-v|--version   Show version")
}

// deckSession wires one presentation: a single state shared by navigation,
// input, both renderers and the exporter.
type deckSession struct {
	cfg      config.AppConfig
	reg      *deck.Registry
	st       *session.State
	nav      *session.Navigator
	live     *render.LiveView
	router   *input.Router
	pipeline *export.Pipeline
	printer  *printing.System
}

func newSession(cfg config.AppConfig, observer export.Observer) (*deckSession, error) {
	painter, err := raster.New()
	if err != nil {
		return nil, err
	}
	opts, err := export.OptionsFrom(cfg.Export)
	if err != nil {
		return nil, err
	}
	reg := deck.Default()
	st := session.NewState(reg.Len())
	nav := session.NewNavigator(st)
	printer := printing.NewSystem(reg, painter, cfg.Print)
	pipeline := export.New(st, render.NewStaging(reg), export.Deps{
		Rasterizer: &export.PainterRasterizer{Painter: painter},
		Saver:      export.FileSaver{Dir: cfg.Export.Dir},
		Printer:    printer,
		Observer:   export.Observers(export.TelemetryObserver(nil), observer),
	}, opts)
	router := input.NewRouter(nav, pipeline)
	return &deckSession{
		cfg:      cfg,
		reg:      reg,
		st:       st,
		nav:      nav,
		live:     render.NewLiveView(reg, st, router.StartAction(), painter),
		router:   router,
		pipeline: pipeline,
		printer:  printer,
	}, nil
}

// drain waits for a running export and any print job it started.
func (s *deckSession) drain() {
	s.pipeline.Wait()
	s.printer.Wait()
}

func loggingOptions(cfg config.AppConfig, noConsole bool) applog.Options {
	return applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
		NoConsole: noConsole,
	}
}

func main() {
	// initialize structured logging using environment defaults
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")

	cfg, err := config.Load()
	if err != nil {
		l.Error("config load failed", slog.Any("err", err))
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	defer crash.Recover(cfg.Export.Dir)

	tc := telemetry.FromEnv()
	tc.OptIn = cfg.General.TelemetryOptIn
	telemetry.SetDefault(telemetry.New(tc))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := os.Args
	cmd := "present"
	if len(args) > 1 {
		cmd = args[1]
	}
	l.Debug("start", slog.String("cmd", cmd), slog.Int("args", len(args)))

	code := 0
	switch cmd {
	case "version", "--version", "-v":
		fmt.Println("pitchdeck")
		fmt.Println(version.String())
	case "slides":
		for i, title := range deck.Default().Titles() {
			fmt.Printf("%02d  %s\n", i+1, title)
		}
	case "present":
		code = present(ctx, cfg)
	case "ui":
		code = desktop(ctx, cfg)
	case "export":
		if len(args) >= 3 {
			abs, _ := filepath.Abs(args[2])
			cfg.Export.Dir = abs
		}
		code = exportOnce(ctx, cfg)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Println("unknown command:", cmd)
		usage()
		code = 2
	}

	telemetry.Default().Flush(ctx)
	telemetry.Default().Close()
	if code != 0 {
		os.Exit(code)
	}
}

func present(ctx context.Context, cfg config.AppConfig) int {
	// the terminal view owns the screen
	applog.Init(loggingOptions(cfg, true))
	bridge := &tui.Bridge{}
	s, err := newSession(cfg, bridge)
	if err != nil {
		fmt.Println("Error:", err)
		return 1
	}
	s.st.OnChange(bridge.OnChange)
	if err := tui.Run(ctx, tui.New(ctx, s.live, s.router, cfg.Export.OutputPath()), bridge); err != nil {
		applog.WithComponent("cli").Error("terminal view failed", slog.Any("err", err))
		fmt.Println("Error:", err)
		return 1
	}
	if s.st.Exporting() {
		fmt.Println("Waiting for the export to finish…")
	}
	s.drain()
	return 0
}

func desktop(ctx context.Context, cfg config.AppConfig) int {
	applog.Init(loggingOptions(cfg, false))
	bridge := &ui.Bridge{}
	s, err := newSession(cfg, bridge)
	if err != nil {
		fmt.Println("Error:", err)
		return 1
	}
	err = ui.Run(ctx, ui.Deps{
		State:  s.st,
		Live:   s.live,
		Router: s.router,
		Output: cfg.Export.OutputPath(),
		Bridge: bridge,
	})
	if err != nil {
		fmt.Println("Error:", err)
		return 1
	}
	s.drain()
	return 0
}

func exportOnce(ctx context.Context, cfg config.AppConfig) int {
	applog.Init(loggingOptions(cfg, false))
	l := applog.WithComponent("cli")
	s, err := newSession(cfg, nil)
	if err != nil {
		fmt.Println("Error:", err)
		return 1
	}
	l.Info("export", slog.String("out", cfg.Export.OutputPath()))
	outcome := s.pipeline.Export(ctx)
	s.drain()
	switch outcome {
	case export.OutcomeSaved:
		fmt.Println("Saved", cfg.Export.OutputPath())
		return 0
	case export.OutcomeFellBack:
		fmt.Println("Export failed; the deck was sent to the printer instead")
		return 1
	default:
		fmt.Println("Export skipped")
		return 1
	}
}
