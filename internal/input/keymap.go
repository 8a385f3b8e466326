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
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap is the single binding table shared by the router and the help
// lines of every front-end.
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Export key.Binding
	Quit   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "space", "pgdown"),
			key.WithHelp("→/space/pgdn", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "pgup"),
			key.WithHelp("←/pgup", "previous"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export pdf"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp lists the bindings in display order.
func (k KeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Prev, k.Next, k.Export, k.Quit} }

var aliases = map[string]string{
	" ":          "space",
	"arrowright": "right",
	"pagedown":   "pgdown",
	"next":       "pgdown",
	"arrowleft":  "left",
	"pageup":     "pgup",
	"prior":      "pgup",
}

// Normalize maps key names from terminals, browsers and Fyne onto the
// canonical names used in KeyMap.
func Normalize(name string) string {
	if name == " " {
		return "space"
	}
	n := strings.ToLower(strings.TrimSpace(name))
	if a, ok := aliases[n]; ok {
		return a
	}
	return n
}

// Matches reports whether the normalized name is bound by b.
func Matches(name string, b key.Binding) bool {
	return b.Enabled() && slices.Contains(b.Keys(), Normalize(name))
}
