/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package render

import (
	"errors"
	"sync"

	"pitchdeck/internal/deck"
	"pitchdeck/internal/scene"
)

// ErrHidden is returned by Instances while the staging area is hidden.
var ErrHidden = errors.New("render: staging area is hidden")

// StagingBackground is the fixed opaque background of staged instances.
var StagingBackground = deck.Background

// Staged is one laid out panel instance.
type Staged struct {
	Index int
	Panel deck.Panel
	Scene *scene.Scene
}

// Staging is the off-screen area the exporter reads from. It is hidden and
// empty by default. Only the export pipeline toggles it.
type Staging struct {
	reg *deck.Registry

	mu        sync.Mutex
	visible   bool
	instances []Staged
}

func NewStaging(reg *deck.Registry) *Staging {
	return &Staging{reg: reg}
}

// Show lays out every panel active, without a start callback, at intrinsic
// size, and marks the area visible.
func (s *Staging) Show() error {
	if s.reg == nil || s.reg.Len() == 0 {
		return errors.New("render: nothing to stage")
	}
	out := make([]Staged, 0, s.reg.Len())
	for i := 0; i < s.reg.Len(); i++ {
		p, _ := s.reg.At(i)
		sc := p.Render(deck.RenderOptions{Active: true})
		if sc == nil {
			return errors.New("render: panel produced no scene")
		}
		sc.Size = scene.Size{W: deck.Width, H: deck.Height}
		sc.Background = StagingBackground
		out = append(out, Staged{Index: i, Panel: p, Scene: sc})
	}
	s.mu.Lock()
	s.instances = out
	s.visible = true
	s.mu.Unlock()
	return nil
}

// Hide drops the instances.
func (s *Staging) Hide() {
	s.mu.Lock()
	s.instances = nil
	s.visible = false
	s.mu.Unlock()
}

func (s *Staging) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// Instances returns the staged panels in registry order.
func (s *Staging) Instances() ([]Staged, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.visible {
		return nil, ErrHidden
	}
	return append([]Staged(nil), s.instances...), nil
}
