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

import "github.com/charmbracelet/lipgloss"

const (
	colorBase    lipgloss.Color = "#020617"
	colorSurface lipgloss.Color = "#1e293b"
	colorBorder  lipgloss.Color = "#334155"
	colorMuted   lipgloss.Color = "#64748b"
	colorText    lipgloss.Color = "#f8fafc"
	colorBlue    lipgloss.Color = "#3b82f6"
	colorCyan    lipgloss.Color = "#22d3ee"
	colorYellow  lipgloss.Color = "#eab308"
	colorRed     lipgloss.Color = "#f87171"
)

var (
	buttonStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface).
			Bold(true)
	buttonDisabledStyle = lipgloss.NewStyle().
				Foreground(colorBorder).
				Background(colorBase)
	buttonPrimaryStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorBlue).
				Bold(true)
	buttonBusyStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorYellow).
			Bold(true)
	indicatorStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	progressOn     = lipgloss.NewStyle().Foreground(colorBlue)
	progressOff    = lipgloss.NewStyle().Foreground(colorBorder)
	helpStyle      = lipgloss.NewStyle().Foreground(colorMuted)
	statusStyle    = lipgloss.NewStyle().Foreground(colorText)
	errorStyle     = lipgloss.NewStyle().Foreground(colorRed)
)
