/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package deck holds the twelve built-in panels of the roadshow deck and the
// registry that orders them. A panel only knows how to describe itself as a
// scene; where and how large it is painted is decided by the caller.
package deck

import "pitchdeck/internal/scene"

// Intrinsic logical size of every panel.
const (
	Width  = 1920
	Height = 1080
)

// inactiveAlpha is applied to panels rendered with Active=false.
const inactiveAlpha = 0.15

// RenderOptions parameterize one render of a panel.
type RenderOptions struct {
	Active bool
	// OnStart is honoured by the cover panel only. When non-nil the cover
	// draws its start button and registers a hotspot that calls it.
	OnStart func()
}

// Panel is a presentable unit. Render must be side-effect free.
type Panel interface {
	Render(opts RenderOptions) *scene.Scene
}

// Titled is implemented by panels that can name themselves.
type Titled interface {
	Title() string
}

type slide struct {
	title string
	draw  func(s *scene.Scene, opts RenderOptions)
}

func (p slide) Title() string { return p.title }

func (p slide) Render(opts RenderOptions) *scene.Scene {
	s := scene.New(Width, Height, Background)
	backdrop(s)
	p.draw(s, opts)
	if !opts.Active {
		s.Fade(inactiveAlpha)
		s.Hotspots = nil
	}
	return s
}
