/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package session

import (
	"log/slog"

	applog "pitchdeck/internal/log"
)

// Navigator applies the navigation rules to a State. Boundary moves are
// no-ops; every method reports whether the state changed.
type Navigator struct {
	st  *State
	log *slog.Logger
}

func NewNavigator(st *State) *Navigator {
	return &Navigator{st: st, log: applog.WithComponent("navigator")}
}

func (n *Navigator) State() *State { return n.st }

// Advance moves to the next panel unless already on the last one.
func (n *Navigator) Advance() bool {
	cur := n.st.Snapshot()
	if cur.Index >= n.st.Len()-1 {
		return false
	}
	return n.moved("advance", n.st.move(cur.Index+1, Forward))
}

// Retreat moves to the previous panel unless already on the first one.
func (n *Navigator) Retreat() bool {
	cur := n.st.Snapshot()
	if cur.Index <= 0 {
		return false
	}
	return n.moved("retreat", n.st.move(cur.Index-1, Backward))
}

// JumpTo moves to target clamped into range, always marking the move forward.
func (n *Navigator) JumpTo(target int) bool {
	target = max(0, min(n.st.Len()-1, target))
	return n.moved("jump", n.st.move(target, Forward))
}

// OnChange registers a listener on the underlying state.
func (n *Navigator) OnChange(fn func(Snapshot)) { n.st.OnChange(fn) }

func (n *Navigator) moved(op string, changed bool) bool {
	if changed {
		n.log.Debug(op, slog.Int("index", n.st.Snapshot().Index))
	}
	return changed
}
