/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package input translates key presses and control activations into
// navigation and export requests.
package input

import (
	"context"
	"log/slog"

	applog "pitchdeck/internal/log"
	"pitchdeck/internal/session"
)

type Button uint8

const (
	ButtonNext Button = iota
	ButtonPrev
	ButtonStart
	ButtonExport
)

func (b Button) String() string {
	switch b {
	case ButtonNext:
		return "next"
	case ButtonPrev:
		return "prev"
	case ButtonStart:
		return "start"
	case ButtonExport:
		return "export"
	}
	return "unknown"
}

// Exporter starts an export in the background. Trigger reports whether a
// new export was started; it must not block on the export itself.
type Exporter interface {
	Trigger(ctx context.Context) bool
}

// Router holds no state of its own; it only dispatches.
type Router struct {
	nav  *session.Navigator
	exp  Exporter
	keys KeyMap
	log  *slog.Logger
}

// NewRouter wires a navigator and an optional exporter.
func NewRouter(nav *session.Navigator, exp Exporter) *Router {
	return &Router{nav: nav, exp: exp, keys: DefaultKeyMap(), log: applog.WithComponent("input")}
}

func (r *Router) Keys() KeyMap { return r.keys }

// HandleKey applies a navigation key. Unbound keys return false.
func (r *Router) HandleKey(name string) bool {
	switch {
	case Matches(name, r.keys.Next):
		return r.nav.Advance()
	case Matches(name, r.keys.Prev):
		return r.nav.Retreat()
	}
	return false
}

// Press activates a control. It returns whether something happened.
func (r *Router) Press(ctx context.Context, b Button) bool {
	switch b {
	case ButtonNext:
		return r.nav.Advance()
	case ButtonPrev:
		return r.nav.Retreat()
	case ButtonStart:
		if r.nav.State().Snapshot().Index != 0 {
			return false
		}
		return r.nav.JumpTo(1)
	case ButtonExport:
		if r.exp == nil || r.nav.State().Exporting() {
			return false
		}
		started := r.exp.Trigger(ctx)
		r.log.Debug("export requested", slog.Bool("started", started))
		return started
	}
	return false
}

// StartAction is the callback handed to the cover panel.
func (r *Router) StartAction() func() {
	return func() { r.Press(context.Background(), ButtonStart) }
}
