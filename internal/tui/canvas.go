/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package tui

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// halfBlocks renders img two pixel rows per terminal line: the upper pixel
// is the foreground of "▀", the lower one its background. Runs of equal
// cells share one style.
func halfBlocks(img *image.RGBA) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		var run int
		var top, bot string
		flush := func() {
			if run == 0 {
				return
			}
			st := lipgloss.NewStyle().Foreground(lipgloss.Color(top)).Background(lipgloss.Color(bot))
			sb.WriteString(st.Render(strings.Repeat("▀", run)))
			run = 0
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			t := hexAt(img, x, y)
			l := t
			if y+1 < b.Max.Y {
				l = hexAt(img, x, y+1)
			}
			if run > 0 && (t != top || l != bot) {
				flush()
			}
			top, bot = t, l
			run++
		}
		flush()
	}
	return sb.String()
}

func hexAt(img *image.RGBA, x, y int) string {
	c := img.RGBAAt(x, y)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
