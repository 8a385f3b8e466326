/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"sync"

	"pitchdeck/internal/export"
	"pitchdeck/internal/input"
	"pitchdeck/internal/render"
	"pitchdeck/internal/session"
)

// Deps is what the desktop view is built from.
type Deps struct {
	State  *session.State
	Live   *render.LiveView
	Router *input.Router
	Output string // export path shown after a save
	Bridge *Bridge
}

// Bridge carries export results from the pipeline into the window. It is
// handed to the pipeline as its observer before the window exists.
type Bridge struct {
	mu sync.Mutex
	fn func(export.Result)
}

func (b *Bridge) set(fn func(export.Result)) {
	b.mu.Lock()
	b.fn = fn
	b.mu.Unlock()
}

func (b *Bridge) ExportFinished(r export.Result) {
	b.mu.Lock()
	fn := b.fn
	b.mu.Unlock()
	if fn != nil {
		fn(r)
	}
}
