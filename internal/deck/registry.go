/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package deck

import "fmt"

// Registry is the fixed, ordered list of panels of one deck.
type Registry struct {
	panels []Panel
}

func NewRegistry(panels ...Panel) *Registry {
	return &Registry{panels: append([]Panel(nil), panels...)}
}

// Default returns the twelve-panel roadshow deck.
func Default() *Registry {
	return NewRegistry(
		Cover(),
		industryBackground(),
		positioning(),
		digitalEye(),
		energyHeart(),
		precisionHand(),
		controlSystem(),
		businessModel(),
		progress(),
		collaboration(),
		team(),
		closing(),
	)
}

func (r *Registry) Len() int { return len(r.panels) }

// At returns the panel at index i.
func (r *Registry) At(i int) (Panel, bool) {
	if i < 0 || i >= len(r.panels) {
		return nil, false
	}
	return r.panels[i], true
}

// Titles lists panel titles in order. Untitled panels are numbered.
func (r *Registry) Titles() []string {
	out := make([]string, len(r.panels))
	for i, p := range r.panels {
		if t, ok := p.(Titled); ok && t.Title() != "" {
			out[i] = t.Title()
			continue
		}
		out[i] = fmt.Sprintf("Panel %d", i+1)
	}
	return out
}
