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
	"fmt"
	"math"

	"pitchdeck/internal/scene"
)

var gridDash = []float32{3, 3}

type bar struct {
	Label string
	Value float64
	Color scene.Color
}

type series struct {
	Values []float64
	Stroke scene.Color
	Fill   scene.Color
	Width  float32
	Dash   []float32
}

func sqrt32(v float32) float32 { return float32(math.Sqrt(float64(v))) }

// plotArea reserves room for the y-axis labels and the category row.
func plotArea(r scene.Rect) scene.Rect {
	return scene.R(r.X+90, r.Y+24, r.W-120, r.H-90)
}

// barChart draws vertical bars from zero to value on a 0..maxV axis.
func barChart(s *scene.Scene, r scene.Rect, bars []bar, maxV float64, ticks int) {
	if len(bars) == 0 || maxV <= 0 {
		return
	}
	pr := plotArea(r)
	base := pr.Y + pr.H
	for i := 0; i <= ticks; i++ {
		y := base - pr.H*float32(i)/float32(ticks)
		s.StrokeDashed(scene.Polyline(scene.Pt{X: pr.X, Y: y}, scene.Pt{X: pr.X + pr.W, Y: y}), 1.5, gridDash, colSurface2)
		text(s, scene.R(r.X, y-12, 75, 24), fmt.Sprintf("%.0f", maxV*float64(i)/float64(ticks)), "Caption", 18, colMuted, scene.AlignRight)
	}
	slot := pr.W / float32(len(bars))
	for i, b := range bars {
		bw := slot * 0.5
		x := pr.X + slot*float32(i) + (slot-bw)/2
		h := pr.H * float32(b.Value/maxV)
		topRounded(s, scene.R(x, base-h, bw, h), 12, b.Color)
		text(s, scene.R(x, base-h-44, bw, 36), fmt.Sprintf("%.0f", b.Value), "Heading", 28, colText, scene.AlignCenter)
		text(s, scene.R(pr.X+slot*float32(i), base+18, slot, 30), b.Label, "Caption", 20, colMuted, scene.AlignCenter)
	}
}

func topRounded(s *scene.Scene, r scene.Rect, radius float32, c scene.Color) {
	if r.H <= 0 {
		return
	}
	s.FillRound(r, radius, c)
	if r.H > radius {
		s.FillRect(scene.R(r.X, r.Y+r.H-radius, r.W, radius), c)
	}
}

// areaChart draws smoothed series filled towards the zero line.
func areaChart(s *scene.Scene, r scene.Rect, labels []string, minV, maxV, step float64, all ...series) {
	n := len(labels)
	if n < 2 || maxV <= minV {
		return
	}
	pr := plotArea(r)
	yOf := func(v float64) float32 {
		return pr.Y + pr.H - pr.H*float32((v-minV)/(maxV-minV))
	}
	xOf := func(i int) float32 { return pr.X + pr.W*float32(i)/float32(n-1) }
	for v := minV; v <= maxV+step/2; v += step {
		y := yOf(v)
		s.StrokeDashed(scene.Polyline(scene.Pt{X: pr.X, Y: y}, scene.Pt{X: pr.X + pr.W, Y: y}), 1.5, gridDash, colSurface2)
		text(s, scene.R(r.X, y-12, 75, 24), fmt.Sprintf("%.0f", v), "Caption", 18, colMuted, scene.AlignRight)
	}
	for i, l := range labels {
		x := xOf(i)
		s.StrokeDashed(scene.Polyline(scene.Pt{X: x, Y: pr.Y}, scene.Pt{X: x, Y: pr.Y + pr.H}), 1.5, gridDash, colSurface2)
		text(s, scene.R(x-60, pr.Y+pr.H+18, 120, 30), l, "Caption", 20, colMuted, scene.AlignCenter)
	}
	zero := yOf(math.Max(minV, math.Min(maxV, 0)))
	for _, ser := range all {
		if len(ser.Values) != n {
			continue
		}
		pts := make([]scene.Pt, n)
		for i, v := range ser.Values {
			pts[i] = scene.Pt{X: xOf(i), Y: yOf(v)}
		}
		area := smooth(pts)
		area.LineTo(pts[n-1].X, zero)
		area.LineTo(pts[0].X, zero)
		area.Close()
		s.Fill(area, ser.Fill)
		if ser.Dash != nil {
			s.StrokeDashed(smooth(pts), ser.Width, ser.Dash, ser.Stroke)
		} else {
			s.Stroke(smooth(pts), ser.Width, ser.Stroke)
		}
	}
}

// smooth fits a Catmull-Rom spline through pts.
func smooth(pts []scene.Pt) *scene.Path {
	p := &scene.Path{}
	p.MoveTo(pts[0].X, pts[0].Y)
	at := func(i int) scene.Pt {
		return pts[max(0, min(len(pts)-1, i))]
	}
	for i := 0; i < len(pts)-1; i++ {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)
		p.CubicTo(
			p1.X+(p2.X-p0.X)/6, p1.Y+(p2.Y-p0.Y)/6,
			p2.X-(p3.X-p1.X)/6, p2.Y-(p3.Y-p1.Y)/6,
			p2.X, p2.Y,
		)
	}
	return p
}

// donut draws shares clockwise from twelve o'clock.
func donut(s *scene.Scene, c scene.Pt, inner, outer float32, shares []Share, colors []scene.Color) {
	var total float64
	for _, sh := range shares {
		total += sh.Value
	}
	if total <= 0 || len(colors) == 0 {
		return
	}
	a0 := 0.0
	for i, sh := range shares {
		a1 := a0 + 2*math.Pi*sh.Value/total
		s.Fill(scene.Ring(c, inner, outer, a0, a1), colors[i%len(colors)])
		a0 = a1
	}
}

func energyBars() []bar {
	cols := []scene.Color{colSubtle, colGreen}
	out := make([]bar, len(EnergyData))
	for i, row := range EnergyData {
		out[i] = bar{Label: row.Name, Value: row.Consumption, Color: cols[i%len(cols)]}
	}
	return out
}

func roiSeries() (labels []string, investment, returns []float64) {
	for _, row := range ROIData {
		labels = append(labels, row.Month)
		investment = append(investment, row.Investment)
		returns = append(returns, row.Return)
	}
	return labels, investment, returns
}
