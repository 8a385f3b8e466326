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

import (
	"pitchdeck/internal/scene"
	"pitchdeck/internal/textlayout"
)

// Background is the deck colour shared by live, export and print renders.
var Background = scene.MustHex("#020617")

var (
	colSurface  = scene.MustHex("#0f172a")
	colSurface2 = scene.MustHex("#1e293b")
	colBorder   = scene.MustHex("#334155")
	colSubtle   = scene.MustHex("#475569")
	colMuted    = scene.MustHex("#64748b")
	colText2    = scene.MustHex("#94a3b8")
	colText     = scene.MustHex("#f8fafc")
	colBlue     = scene.MustHex("#3b82f6")
	colBlueDeep = scene.MustHex("#2563eb")
	colBlueSoft = scene.MustHex("#60a5fa")
	colBlueTint = scene.MustHex("#bfdbfe")
	colCyan     = scene.MustHex("#22d3ee")
	colIndigo   = scene.MustHex("#818cf8")
	colGreen    = scene.MustHex("#22c55e")
	colGreenHi  = scene.MustHex("#4ade80")
	colRed      = scene.MustHex("#ef4444")
	colRedSoft  = scene.MustHex("#f87171")
	colOrange   = scene.MustHex("#f97316")
	colYellow   = scene.MustHex("#eab308")
	colPurple   = scene.MustHex("#a855f7")
)

// typeface returns the named builtin style, optionally resized.
func typeface(name string, size float32) (textlayout.FontSpec, float32) {
	st := textlayout.MustStyle(name)
	if size > 0 {
		st.Font.SizePt = size
	}
	return st.Font, st.Leading
}

func italic(f textlayout.FontSpec) textlayout.FontSpec {
	f.Italic = true
	return f
}
