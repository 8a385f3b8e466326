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

	"pitchdeck/internal/scene"
)

// StartButton is the cover's start hotspot area.
var StartButton = scene.R(740, 676, 440, 88)

// Cover is the title panel. It is the only panel that honours OnStart.
func Cover() Panel {
	return slide{title: "Stainless Steel Green Smart Manufacturing", draw: drawCover}
}

func drawCover(s *scene.Scene, opts RenderOptions) {
	for x := float32(0); x <= Width; x += 120 {
		s.Line(scene.Pt{X: x, Y: 0}, scene.Pt{X: x, Y: Height}, 1, colText.Alpha(0.025))
	}
	pill(s, scene.R(560, 196, 800, 50), "NEW QUALITY PRODUCTIVITY · COLLABORATIVE ENABLEMENT", colBlueSoft, 18)
	text(s, scene.R(120, 286, 1680, 120), "Stainless Steel Full Value Chain", "Display", 96, colText, scene.AlignCenter)
	text(s, scene.R(120, 404, 1680, 120), "Green Smart Manufacturing Demonstration", "Display", 88, colBlueSoft, scene.AlignCenter)
	text(s, scene.R(330, 552, 1260, 100),
		"Rebuilding the profit model of traditional manufacturing with the Suzhou equipment supply chain and in-house AI algorithms",
		"Lead", 30, colText2, scene.AlignCenter)

	if opts.OnStart != nil {
		b := StartButton
		s.FillRound(b.Inset(-14, -14), 34, colBlue.Alpha(0.16))
		s.FillRound(b, 22, colBlueDeep)
		play := &scene.Path{}
		play.MoveTo(b.X+48, b.Y+26)
		play.LineTo(b.X+76, b.Y+44)
		play.LineTo(b.X+48, b.Y+62)
		play.Close()
		s.Fill(play, colText)
		text(s, scene.R(b.X+96, b.Y+24, 280, 44), "Start presentation", "Heading", 32, colText, scene.AlignLeft)
		s.Stroke(scene.Polyline(
			scene.Pt{X: b.X + b.W - 56, Y: b.Y + 32},
			scene.Pt{X: b.X + b.W - 44, Y: b.Y + 44},
			scene.Pt{X: b.X + b.W - 56, Y: b.Y + 56},
		), 4, colText)
		s.AddHotspot("start", b, opts.OnStart)
	}

	s.Line(scene.Pt{X: 480, Y: 820}, scene.Pt{X: 1440, Y: 820}, 2, colSurface2)
	people := []struct{ role, name, note string }{
		{"CEO / STRATEGY", "Zhou Jun", "Former ¥10B fund manager"},
		{"CTO / TECHNICAL ARCHITECTURE", "Chen Fang", "SSE master's · AI specialist"},
	}
	for i, p := range people {
		x := float32(520 + i*520)
		text(s, scene.R(x, 852, 440, 24), p.role, "Kicker", 16, colMuted, scene.AlignLeft)
		text(s, scene.R(x, 888, 440, 56), p.name, "Heading", 44, colText, scene.AlignLeft)
		text(s, scene.R(x, 950, 440, 30), p.note, "Body", 22, colText2, scene.AlignLeft)
	}
}

func industryBackground() Panel {
	return slide{title: "Industry background: from nickel mines to shop-floor pain points", draw: func(s *scene.Scene, _ RenderOptions) {
		heading(s, "02", "Industry background: from nickel mines to shop-floor pain points")
		items := []struct {
			title, desc, detail string
			color               scene.Color
		}{
			{"Testing losses", "LONG LEAD TIMES, COSTLY SAMPLE CUTS",
				"Quality checks rely on manual sampling and off-site labs, which severely limits turnover.", colRed},
			{"Energy pressure", "RIGID 1050°C THERMAL PROCESS",
				"Gas is over 40% of processing cost and single-preheat furnaces have hit their efficiency limit.", colOrange},
			{"Process bottleneck", "NO LONG-RUN INLINE WELDING",
				"Kilometre-scale runs stop often and narrow strip cannot be joined into wide coil.", colYellow},
			{"Efficiency gap", "POLISHING AND PACKING BARELY AUTOMATED",
				"Complex parts depend on manual labour and delivery data is fragmented, leaving no closed digital loop.", colPurple},
		}
		for i, r := range scene.R(120, 260, 1680, 520).Split(len(items), 32) {
			it := items[i]
			glass(s, r, 28)
			accentTop(s, r, it.color)
			s.Fill(scene.Circle(scene.Pt{X: r.X + 72, Y: r.Y + 84}, 36), it.color.Alpha(0.16))
			text(s, scene.R(r.X+36, r.Y+70, 72, 30), fmt.Sprintf("%02d", i+1), "Kicker", 22, it.color, scene.AlignCenter)
			text(s, scene.R(r.X+36, r.Y+150, r.W-72, 44), it.title, "Heading", 32, colText, scene.AlignLeft)
			s.FillRound(scene.R(r.X+36, r.Y+208, r.W-72, 64), 8, colRed.Alpha(0.12))
			text(s, scene.R(r.X+48, r.Y+216, r.W-96, 56), it.desc, "Mono", 16, colRedSoft, scene.AlignLeft)
			text(s, scene.R(r.X+36, r.Y+300, r.W-72, 200), it.detail, "Body", 23, colText2, scene.AlignLeft)
		}
		quote(s, scene.R(120, 830, 1680, 110),
			"“Field conversations while surveying nickel mines in Indonesia showed us how outdated processes silently eat industrial profit.”", 26)
	}}
}

func positioning() Panel {
	return slide{title: "Positioning: Suzhou hardware base + in-house algorithm core", draw: func(s *scene.Scene, _ RenderOptions) {
		heading(s, "03", "Positioning: Suzhou hardware base + in-house algorithm core")
		cols := scene.R(120, 270, 1680, 620).Split(3, 48)

		r := cols[0]
		glass(s, r, 32)
		accentLeft(s, r, colMuted)
		text(s, scene.R(r.X+48, r.Y+48, r.W-96, 24), "BASE LAYER / HARDWARE", "Kicker", 16, colMuted, scene.AlignLeft)
		text(s, scene.R(r.X+48, r.Y+96, r.W-96, 160), "Integrating Suzhou's world-class equipment supply chain", "Heading", 36, colText, scene.AlignLeft)
		for i, b := range []string{"High-precision spectrometer integration", "Industrial high-power lasers", "Advanced ceramic heat-storage media"} {
			bullet(s, r.X+48, r.Y+300+float32(i)*72, r.W-96, b)
		}

		r = cols[1].Inset(-12, -18)
		s.FillRound(r.Inset(-16, -16), 48, colBlue.Alpha(0.14))
		s.FillRound(r, 32, colBlueDeep)
		text(s, scene.R(r.X+48, r.Y+64, r.W-96, 24), "CORE LOGIC / ALGORITHM", "Kicker", 16, colBlueTint, scene.AlignLeft)
		textItalic(s, scene.R(r.X+48, r.Y+112, r.W-96, 60), "In-house AI algorithms", "Heading", 40, colText, scene.AlignLeft)
		text(s, scene.R(r.X+48, r.Y+200, r.W-96, 300),
			"Investment research thinking applied to industry: the logic built for massive financial datasets now rebuilds machine vision, energy models and motion-control protocols.",
			"Body", 25, colBlueTint, scene.AlignLeft)
		s.FillRound(scene.R(r.X+48, r.Y+r.H-90, 80, 5), 2.5, colText.Alpha(0.3))

		r = cols[2]
		glass(s, r, 32)
		accentRight(s, r, colIndigo)
		text(s, scene.R(r.X+48, r.Y+48, r.W-96, 24), "APPLICATION / ROLLOUT", "Kicker", 16, colIndigo, scene.AlignLeft)
		text(s, scene.R(r.X+48, r.Y+96, r.W-96, 110), "First stop Foshan, then nationwide", "Heading", 36, colText, scene.AlignLeft)
		text(s, scene.R(r.X+48, r.Y+230, r.W-96, 300),
			"Starting in the Foshan stainless cluster, a validated closed loop is migrated quickly to non-ferrous metals and general manufacturing across China.",
			"Body", 25, colText2, scene.AlignLeft)
	}}
}

func digitalEye() Panel {
	return slide{title: "Module 1: the Digital Eye quality control system", draw: func(s *scene.Scene, _ RenderOptions) {
		heading(s, "04", "Module 1: the Digital Eye, full-spectrum quality control")
		cols := scene.R(120, 250, 1680, 660).Split(2, 64)

		r := cols[0]
		glass(s, r, 28)
		accentLeft(s, r, colCyan)
		textItalic(s, scene.R(r.X+r.W-360, r.Y+24, 320, 170), "XRF", "Display", 150, colText.Alpha(0.05), scene.AlignRight)
		text(s, scene.R(r.X+56, r.Y+52, r.W-112, 50), "Smart composition control", "Heading", 40, colCyan, scene.AlignLeft)
		text(s, scene.R(r.X+56, r.Y+140, 340, 80), "R² > 0.99", "Stat", 64, colText, scene.AlignLeft)
		s.Line(scene.Pt{X: r.X + 410, Y: r.Y + 148}, scene.Pt{X: r.X + 410, Y: r.Y + 214}, 2, colSurface2)
		textItalic(s, scene.R(r.X+440, r.Y+150, r.W-490, 70), "Goodness of fit at laboratory precision", "Body", 24, colText2, scene.AlignLeft)
		bullet(s, r.X+56, r.Y+290, r.W-112, "10-second non-destructive screening replaces slow, costly off-site sample testing.")
		bullet(s, r.X+56, r.Y+410, r.W-112, "Automatic grade recognition pins down 200, 300 or 400 series material in seconds.")

		r = cols[1]
		glass(s, r, 28)
		accentLeft(s, r, colIndigo)
		text(s, scene.R(r.X+56, r.Y+52, r.W-112, 50), "Smart defect interception", "Heading", 40, colIndigo, scene.AlignLeft)
		in := scene.R(r.X+56, r.Y+140, r.W-112, 220)
		s.FillRound(in, 20, colSurface.Alpha(0.6))
		s.Stroke(scene.RoundedRect(in, 20), 1.5, colSurface2)
		textItalic(s, scene.R(in.X+32, in.Y+28, in.W-64, 40), "Beating mirror-reflection interference", "Heading", 28, colText, scene.AlignLeft)
		text(s, scene.R(in.X+32, in.Y+84, in.W-64, 120),
			"Custom high-frequency strip lighting algorithms catch scratches and pits on mirror-finish stainless with high accuracy.",
			"Body", 22, colText2, scene.AlignLeft)
		stats := [][2]string{{"3 lines", "VISION DEFENCES"}, {"< 50 ms", "RESPONSE LATENCY"}, {"99.8%", "DETECTION RATE"}}
		for i, sr := range scene.R(r.X+56, r.Y+420, r.W-112, 130).Split(3, 24) {
			stat(s, sr, stats[i][0], stats[i][1], colIndigo, 44)
		}
	}}
}

func energyHeart() Panel {
	return slide{title: "Module 2: the Energy Heart, HTAC green thermal energy", draw: func(s *scene.Scene, _ RenderOptions) {
		text(s, scene.R(120, 104, 1260, 80), "Module 2: the Energy Heart, HTAC green thermal energy", "Title", 52, colText, scene.AlignLeft)
		text(s, scene.R(120, 186, 1260, 40), "A ground-up rebuild of the 1050°C solution annealing and hot rolling process", "Lead", 28, colText2, scene.AlignLeft)
		box := scene.R(1420, 92, 380, 170)
		glass(s, box, 28)
		s.Stroke(scene.RoundedRect(box, 28), 2, colGreen.Alpha(0.3))
		stat(s, box.Inset(0, 24), "20-25%", "EXTRA GAS SAVINGS", colGreenHi, 64)

		chart := scene.R(120, 320, 800, 580)
		glass(s, chart, 40)
		text(s, scene.R(chart.X, chart.Y+220, chart.W, 160), "ENERGY", "Display", 140, colText.Alpha(0.03), scene.AlignCenter)
		barChart(s, chart.Inset(40, 40), energyBars(), 100, 4)

		cards := []struct {
			r            scene.Rect
			accent       scene.Color
			title, body  string
		}{
			{scene.R(984, 350, 816, 240), colGreen, "Ceramic regenerator technology",
				"Ceramic regenerators preheat combustion air above 800°C, breaking the industry's 600°C ceiling."},
			{scene.R(984, 630, 816, 240), colBlue, "Annual financial value",
				fmt.Sprintf("Each line saves roughly ¥4 million in gas per year, straight to net profit. Cost index %.1f vs %.1f.",
					EnergyData[1].Cost, EnergyData[0].Cost)},
		}
		for _, c := range cards {
			glass(s, c.r, 28)
			accentLeft(s, c.r, c.accent)
			text(s, scene.R(c.r.X+48, c.r.Y+40, c.r.W-96, 44), c.title, "Heading", 32, colText, scene.AlignLeft)
			text(s, scene.R(c.r.X+48, c.r.Y+100, c.r.W-96, 120), c.body, "Body", 25, colText2, scene.AlignLeft)
		}
	}}
}

func precisionHand() Panel {
	return slide{title: "Module 3: the Precision Hand, welding and smart finishing", draw: func(s *scene.Scene, _ RenderOptions) {
		heading(s, "06", "Module 3: the Precision Hand, welding and smart finishing")
		text(s, scene.R(120, 256, 800, 50), "Coil-to-Coil inline continuous welding", "Heading", 40, colText, scene.AlignLeft)
		text(s, scene.R(120, 318, 800, 130),
			"Solves kilometre-scale continuous runs, stabilises laser welding of highly reflective material and turns narrow strip into wide coil.",
			"Body", 26, colText2, scene.AlignLeft)
		for i, r := range scene.R(120, 470, 800, 170).Split(2, 32) {
			glass(s, r, 24)
			label, value, c := "GROSS MARGIN PER TONNE", "+¥1,164", colGreenHi
			if i == 1 {
				label, value, c = "SEAMLESS WIDENING", "100%", colBlueSoft
			}
			text(s, scene.R(r.X+32, r.Y+32, r.W-64, 24), label, "Kicker", 16, colMuted, scene.AlignLeft)
			text(s, scene.R(r.X+32, r.Y+70, r.W-64, 70), value, "Stat", 56, c, scene.AlignLeft)
		}
		pack := scene.R(120, 680, 800, 190)
		glass(s, pack, 24)
		accentLeft(s, pack, colYellow)
		bolt(s, scene.Pt{X: pack.X + 66, Y: pack.Y + 58}, 34, colYellow)
		text(s, scene.R(pack.X+96, pack.Y+38, pack.W-140, 40), "Unmanned packing matrix", "Heading", 30, colText, scene.AlignLeft)
		text(s, scene.R(pack.X+48, pack.Y+96, pack.W-96, 80),
			"Machine-vision guided end-of-line packing links finished goods straight into inventory.", "Body", 24, colText2, scene.AlignLeft)

		d := scene.R(984, 256, 816, 614)
		glass(s, d, 32)
		for _, y := range []float32{400, 560} {
			coil := scene.R(1040, y, 280, 110)
			s.FillRound(coil, 16, colSurface2)
			s.Stroke(scene.RoundedRect(coil, 16), 1.5, colBorder)
			text(s, scene.R(coil.X, coil.Y+42, coil.W, 30), "NARROW_COIL", "Mono", 20, colText2, scene.AlignCenter)
		}
		arrow(s, scene.Pt{X: 1340, Y: 535}, scene.Pt{X: 1450, Y: 535}, 6, colBlue)
		wide := scene.R(1480, 400, 270, 270)
		s.FillRound(wide, 20, colBlue.Alpha(0.18))
		s.Stroke(scene.RoundedRect(wide, 20), 2, colBlue)
		s.StrokeDashed(scene.Polyline(scene.Pt{X: wide.X, Y: 535}, scene.Pt{X: wide.X + wide.W, Y: 535}), 4, []float32{14, 8}, colCyan)
		text(s, scene.R(wide.X, wide.Y+60, wide.W, 40), "Wide Hybrid", "Heading", 30, colText, scene.AlignCenter)
		text(s, scene.R(wide.X, wide.Y+170, wide.W, 30), "LASER_SEAM_ACTIVE", "Mono", 18, colCyan, scene.AlignCenter)
	}}
}

func controlSystem() Panel {
	return slide{title: "In-house SCG smart control system", draw: func(s *scene.Scene, _ RenderOptions) {
		text(s, scene.R(120, 96, 1680, 70), "In-house SCG smart control system", "Title", 56, colText, scene.AlignLeft)
		text(s, scene.R(120, 176, 1680, 44),
			"Investment-grade judgement plus in-house AI: the digital brain of the stainless steel industry", "Lead", 30, colBlueSoft, scene.AlignLeft)

		main := scene.R(120, 280, 1120, 640)
		glass(s, main, 32)
		text(s, scene.R(main.X+48, main.Y+40, 640, 44), "SCG smart control platform", "Heading", 34, colText, scene.AlignLeft)
		pill(s, scene.R(main.X+main.W-380, main.Y+40, 332, 42), "AGENT_01: MTC_VALIDATOR", colGreenHi, 16)

		flow := scene.R(main.X+48, main.Y+116, main.W-96, 250)
		s.FillRound(flow, 24, colSurface.Alpha(0.6))
		s.Stroke(scene.RoundedRect(flow, 24), 1.5, colSurface2)
		text(s, scene.R(flow.X+36, flow.Y+28, flow.W-72, 36), "OCR parsing of MTC quality certificates", "Heading", 26, colText, scene.AlignLeft)
		steps := []struct {
			code, label string
			c           scene.Color
		}{
			{"PDF/SCAN", "Source documents", colMuted},
			{"AI_EXTRACTION", "Structured parameters", colBlueSoft},
			{"VERIFIED", "Three-way cross-check", colGreenHi},
		}
		boxes := scene.R(flow.X+36, flow.Y+96, flow.W-72, 120).Split(len(steps), 90)
		for i, b := range boxes {
			st := steps[i]
			s.FillRound(b, 16, st.c.Alpha(0.1))
			s.Stroke(scene.RoundedRect(b, 16), 1.5, st.c.Alpha(0.45))
			text(s, scene.R(b.X, b.Y+26, b.W, 28), st.code, "Mono", 20, st.c, scene.AlignCenter)
			text(s, scene.R(b.X, b.Y+66, b.W, 30), st.label, "Caption", 20, colText2, scene.AlignCenter)
			if i > 0 {
				prev := boxes[i-1]
				arrow(s, scene.Pt{X: prev.X + prev.W + 18, Y: b.Y + b.H/2}, scene.Pt{X: b.X - 24, Y: b.Y + b.H/2}, 4, colMuted)
			}
		}
		notes := [][2]string{
			{"AI-native advantage", "Applies the sequence logic of large language models to complex industrial time-series protocols."},
			{"Closed data loop", "From incoming screening to final delivery, every coil carries a tamper-proof digital identity."},
		}
		for i, r := range scene.R(main.X+48, main.Y+396, main.W-96, 200).Split(2, 32) {
			s.FillRound(r, 20, colSurface2.Alpha(0.5))
			text(s, scene.R(r.X+32, r.Y+28, r.W-64, 36), notes[i][0], "Heading", 26, colBlueSoft, scene.AlignLeft)
			text(s, scene.R(r.X+32, r.Y+76, r.W-64, 110), notes[i][1], "Body", 22, colText2, scene.AlignLeft)
		}

		side := scene.R(1280, 280, 520, 640)
		s.FillRound(side, 32, colBlueDeep.Alpha(0.16))
		s.Stroke(scene.RoundedRect(side, 32), 2, colBlue.Alpha(0.4))
		c := scene.Pt{X: side.X + side.W/2, Y: side.Y + 150}
		hex := &scene.Path{}
		for i, q := range []scene.Pt{{X: 0, Y: -64}, {X: 56, Y: -32}, {X: 56, Y: 32}, {X: 0, Y: 64}, {X: -56, Y: 32}, {X: -56, Y: -32}} {
			if i == 0 {
				hex.MoveTo(c.X+q.X, c.Y+q.Y)
				continue
			}
			hex.LineTo(c.X+q.X, c.Y+q.Y)
		}
		hex.Close()
		s.Stroke(hex, 4, colBlue)
		s.Stroke(scene.Polyline(scene.Pt{X: c.X - 56, Y: c.Y - 32}, c, scene.Pt{X: c.X + 56, Y: c.Y - 32}), 4, colBlue)
		s.Line(c, scene.Pt{X: c.X, Y: c.Y + 64}, 4, colBlue)
		text(s, scene.R(side.X, side.Y+260, side.W, 50), "Digital brain", "Heading", 38, colText, scene.AlignCenter)
		text(s, scene.R(side.X+48, side.Y+330, side.W-96, 260),
			"Studying model logic since the arrival of ChatGPT, we bridge the leap from text processing to physical factory control.",
			"Body", 24, colText2, scene.AlignCenter)
	}}
}

func businessModel() Panel {
	return slide{title: "Business model: lightweight entry, rapid ROI", draw: func(s *scene.Scene, _ RenderOptions) {
		heading(s, "08", "Business model: lightweight entry, rapid ROI")
		chart := scene.R(120, 250, 1040, 670)
		glass(s, chart, 40)
		labels, investment, returns := roiSeries()
		areaChart(s, scene.R(chart.X+30, chart.Y+70, chart.W-60, chart.H-150), labels, -2500, 3500, 1000,
			series{Values: returns, Stroke: colBlue, Fill: colBlue.Alpha(0.2), Width: 4},
			series{Values: investment, Stroke: colRed, Fill: colRed.Alpha(0.07), Width: 2, Dash: []float32{5, 5}},
		)
		legend := []struct {
			name string
			c    scene.Color
		}{{"Cumulative return", colBlue}, {"Remaining investment", colRed}}
		for i, l := range legend {
			x := chart.X + chart.W - 560 + float32(i)*280
			s.FillRound(scene.R(x, chart.Y+36, 28, 12), 6, l.c)
			text(s, scene.R(x+40, chart.Y+28, 230, 28), l.name, "Caption", 18, colText2, scene.AlignLeft)
		}
		text(s, scene.R(chart.X, chart.Y+chart.H-56, chart.W, 28), "14-MONTH PAYBACK CYCLE PROJECTED (¥10K)", "Mono", 18, colMuted, scene.AlignCenter)

		entry := scene.R(1200, 250, 600, 390)
		s.FillRound(entry, 32, colBlue.Alpha(0.1))
		s.Stroke(scene.RoundedRect(entry, 32), 2, colBlue.Alpha(0.3))
		text(s, scene.R(entry.X+48, entry.Y+48, entry.W-96, 50), "Entry module: just ¥300K", "Heading", 36, colText, scene.AlignLeft)
		text(s, scene.R(entry.X+48, entry.Y+120, entry.W-96, 250),
			"No full-line retrofit needed. Deploy the composition-control module alone: stopping one truckload of mixed material, or saving three months of external testing, pays it back.",
			"Body", 24, colText2, scene.AlignLeft)
		kpis := []struct{ label, value, note string }{
			{"COST COMPARISON", "-70%", "vs imported equipment"},
			{"ESTIMATED PAYBACK", "14 mo", "full programme"},
		}
		for i, r := range scene.R(1200, 680, 600, 240).Split(2, 32) {
			k := kpis[i]
			glass(s, r, 28)
			c := colGreenHi
			if i == 1 {
				c = colBlueSoft
			}
			text(s, scene.R(r.X, r.Y+36, r.W, 24), k.label, "Kicker", 15, colMuted, scene.AlignCenter)
			text(s, scene.R(r.X, r.Y+78, r.W, 80), k.value, "Stat", 60, c, scene.AlignCenter)
			text(s, scene.R(r.X, r.Y+168, r.W, 30), k.note, "Caption", 18, colText2, scene.AlignCenter)
		}
	}}
}

func progress() Panel {
	return slide{title: "Progress and Suzhou supply-chain collaboration", draw: func(s *scene.Scene, _ RenderOptions) {
		badge := scene.R(120, 100, 400, 46)
		s.FillRound(badge, 23, colBlue.Alpha(0.12))
		s.Fill(scene.Circle(scene.Pt{X: badge.X + 30, Y: badge.Y + 23}, 6), colBlueSoft)
		text(s, scene.R(badge.X+48, badge.Y+12, badge.W-60, 24), "PROJECT STRATEGY 2026", "Kicker", 18, colBlueSoft, scene.AlignLeft)
		text(s, scene.R(120, 176, 1680, 76), "Current progress and Suzhou supply-chain collaboration", "Title", 56, colText, scene.AlignLeft)
		text(s, scene.R(120, 266, 1500, 100),
			"With our R&D centre as the brain and leading Suzhou equipment suppliers alongside, we are building an integrated smart manufacturing ecosystem driven by algorithms and precision equipment.",
			"Lead", 28, colText2, scene.AlignLeft)

		s.FillRound(scene.R(120, 424, 8, 36), 4, colBlue)
		text(s, scene.R(148, 424, 800, 40), "Key milestones", "Heading", 32, colText, scene.AlignLeft)
		text(s, scene.R(1400, 432, 400, 30), "Updated: 2026 Q1", "Caption", 20, colMuted, scene.AlignRight)
		s.Line(scene.Pt{X: 120, Y: 484}, scene.Pt{X: 1800, Y: 484}, 1.5, colSurface2)

		xs := []float32{300, 960, 1620}
		y := float32(600)
		s.Line(scene.Pt{X: xs[0], Y: y}, scene.Pt{X: xs[2], Y: y}, 6, colSurface2)
		s.Line(scene.Pt{X: xs[0], Y: y}, scene.Pt{X: xs[1], Y: y}, 6, colBlue)
		milestones := []struct {
			when, title, body string
			c                 scene.Color
		}{
			{"2026 Q1", "Strategic agreement", "Framework cooperation agreement signed with a leading Foshan stainless steel company.", colBlueSoft},
			{"2026 Q1 (current)", "R&D investment", "Core algorithm simulation and system architecture design are under way.", colCyan},
			{"Next step", "Integration testing", "Lock in core Suzhou equipment suppliers and move into system integration and line testing.", colMuted},
		}
		for i, m := range milestones {
			c := scene.Pt{X: xs[i], Y: y}
			fill := m.c.Alpha(0.2)
			if i == 2 {
				fill = colSurface
			}
			s.Fill(scene.Circle(c, 44), fill)
			s.Stroke(scene.Circle(c, 44), 4, m.c)
			switch i {
			case 0:
				s.Stroke(scene.Polyline(scene.Pt{X: c.X - 16, Y: c.Y}, scene.Pt{X: c.X - 4, Y: c.Y + 12}, scene.Pt{X: c.X + 18, Y: c.Y - 12}), 5, m.c)
			case 1:
				bolt(s, c, 40, m.c)
			default:
				s.Line(scene.Pt{X: c.X - 14, Y: c.Y}, scene.Pt{X: c.X + 14, Y: c.Y}, 4, m.c)
				s.Line(scene.Pt{X: c.X, Y: c.Y - 14}, scene.Pt{X: c.X, Y: c.Y + 14}, 4, m.c)
			}
			col := scene.R(c.X-240, y+72, 480, 300)
			text(s, scene.R(col.X, col.Y, col.W, 28), m.when, "Mono", 20, m.c, scene.AlignCenter)
			text(s, scene.R(col.X, col.Y+40, col.W, 44), m.title, "Heading", 32, colText, scene.AlignCenter)
			text(s, scene.R(col.X+20, col.Y+96, col.W-40, 120), m.body, "Body", 22, colText2, scene.AlignCenter)
		}
	}}
}

func collaboration() Panel {
	return slide{title: "Suzhou brain + body collaboration system", draw: func(s *scene.Scene, _ RenderOptions) {
		s.FillRound(scene.R(120, 108, 8, 52), 4, colBlue)
		text(s, scene.R(148, 96, 1200, 70), "Suzhou “brain + body” collaboration system", "Title", 52, colText, scene.AlignLeft)
		text(s, scene.R(148, 176, 1200, 36), "Supplier negotiations in progress · covering Suzhou's core manufacturing clusters", "Body", 24, colText2, scene.AlignLeft)
		s.Fill(scene.Circle(scene.Pt{X: 1452, Y: 124}, 8), colBlue)
		text(s, scene.R(1470, 110, 300, 28), "Central R&D", "Caption", 20, colText2, scene.AlignLeft)
		s.Stroke(scene.Circle(scene.Pt{X: 1452, Y: 168}, 7), 2, colMuted)
		text(s, scene.R(1470, 154, 300, 28), "Prospective suppliers", "Caption", 20, colText2, scene.AlignLeft)

		hub := scene.R(120, 270, 460, 650)
		glass(s, hub, 28)
		s.Fill(scene.Circle(scene.Pt{X: hub.X + 52, Y: hub.Y + 64}, 7), colCyan)
		text(s, scene.R(hub.X+72, hub.Y+48, hub.W-100, 36), "Hub functions", "Heading", 28, colText, scene.AlignLeft)
		funcs := [][2]string{
			{"AI vision algorithms", "Computer Vision"},
			{"HTAC energy-control algorithms", "Energy Optimization"},
			{"SCG digital control platform", "Smart Control"},
		}
		for i, f := range funcs {
			y := hub.Y + 140 + float32(i)*160
			s.Line(scene.Pt{X: hub.X + 40, Y: y - 24}, scene.Pt{X: hub.X + hub.W - 40, Y: y - 24}, 1, colSurface2)
			text(s, scene.R(hub.X+40, y, hub.W-80, 70), f[0], "Heading", 26, colText, scene.AlignLeft)
			text(s, scene.R(hub.X+40, y+76, hub.W-80, 26), f[1], "Mono", 18, colMuted, scene.AlignLeft)
		}

		centre := scene.Pt{X: 1210, Y: 595}
		nodes := []struct {
			r         scene.Rect
			title     string
			suppliers string
		}{
			{scene.R(640, 280, 320, 160), "Automation & logistics", "Bozhon Precision\nInovance Technology"},
			{scene.R(1460, 280, 320, 160), "Inline quality control", "Skyray Instrument\nTianlong Technology"},
			{scene.R(640, 750, 320, 160), "Green thermal energy", "Xinchangguang Thermal"},
			{scene.R(1460, 750, 320, 160), "Precision machining", "Xinlong Laser\nLingchuang Laser"},
		}
		for _, n := range nodes {
			s.StrokeDashed(scene.Polyline(centre, n.r.Center()), 2, []float32{8, 8}, colBlue.Alpha(0.4))
		}
		s.Fill(scene.Circle(centre, 150), colBlue.Alpha(0.12))
		s.Fill(scene.Circle(centre, 120), colBlueDeep.Alpha(0.45))
		s.Stroke(scene.Circle(centre, 150), 3, colBlue)
		text(s, scene.R(centre.X-120, centre.Y-82, 240, 24), "THE BRAIN", "Kicker", 18, colBlueTint, scene.AlignCenter)
		text(s, scene.R(centre.X-110, centre.Y-46, 220, 80), "In-house R&D centre", "Heading", 28, colText, scene.AlignCenter)
		text(s, scene.R(centre.X-110, centre.Y+42, 220, 26), "Suzhou", "Caption", 20, colBlueTint, scene.AlignCenter)
		for i := -1; i <= 1; i++ {
			s.Fill(scene.Circle(scene.Pt{X: centre.X + float32(i)*18, Y: centre.Y + 96}, 4), colCyan)
		}
		for _, n := range nodes {
			glass(s, n.r, 24)
			s.Fill(scene.Circle(scene.Pt{X: n.r.X + 32, Y: n.r.Y + 36}, 6), colMuted)
			text(s, scene.R(n.r.X+52, n.r.Y+22, n.r.W-72, 30), n.title, "Heading", 24, colText, scene.AlignLeft)
			text(s, scene.R(n.r.X+32, n.r.Y+70, n.r.W-64, 80), n.suppliers, "Body", 20, colText2, scene.AlignLeft)
		}
	}}
}

func team() Panel {
	return slide{title: "Team DNA: investment partners who know industry", draw: func(s *scene.Scene, _ RenderOptions) {
		heading(s, "11", "Team DNA: investment partners who know industry")
		people := []struct {
			badge, name, role, creds, bio string
			c                             scene.Color
		}{
			{"CEO", "Zhou Jun", "FOUNDER / CEO", "MSc Engineering · former manager of a ¥10B private fund",
				"Brings top-tier industrial risk control and capital markets experience, choosing suppliers with an investor's financial rigour so every yuan invested has measurable ROI.", colBlueDeep},
			{"CTO", "Chen Fang", "CO-FOUNDER / CTO", "SSE master's · AI and embedded systems expert",
				"Former investment director at a leading tech private fund who led several unicorn deals, now turning top AI algorithms into reliable code on the production line.", scene.MustHex("#4f46e5")},
		}
		for i, r := range scene.R(120, 260, 1680, 470).Split(2, 48) {
			p := people[i]
			glass(s, r, 32)
			b := scene.R(r.X+48, r.Y+48, 140, 140)
			s.FillRound(b, 28, p.c)
			text(s, scene.R(b.X, b.Y+46, b.W, 50), p.badge, "Heading", 40, colText, scene.AlignCenter)
			text(s, scene.R(r.X+224, r.Y+52, r.W-272, 70), p.name, "Title", 52, colText, scene.AlignLeft)
			text(s, scene.R(r.X+224, r.Y+138, r.W-272, 24), p.role, "Kicker", 18, colBlueSoft, scene.AlignLeft)
			text(s, scene.R(r.X+48, r.Y+226, r.W-96, 34), p.creds, "Heading", 24, colBlueSoft, scene.AlignLeft)
			text(s, scene.R(r.X+48, r.Y+276, r.W-96, 170), p.bio, "Body", 23, colText2, scene.AlignLeft)
		}
		quote(s, scene.R(300, 790, 1320, 130),
			"“The two partners met on the front line of investing and chose to move from evaluating projects to building one.”", 28)
	}}
}

func closing() Panel {
	return slide{title: "Developed in Suzhou, empowering the nation", draw: func(s *scene.Scene, _ RenderOptions) {
		text(s, scene.R(120, 80, 1680, 100), "Developed in Suzhou, empowering the nation", "Display", 80, colText, scene.AlignCenter)
		text(s, scene.R(120, 192, 1680, 40), "Suzhou hardware plus in-house algorithms, defining new quality productivity", "Lead", 30, colText2, scene.AlignCenter)

		d := scene.R(220, 270, 1480, 320)
		glass(s, d, 36)
		ends := []struct {
			c           scene.Pt
			col         scene.Color
			name, role  string
		}{
			{scene.Pt{X: 540, Y: 370}, colBlue, "Suzhou Xiangcheng", "R&D brain + supply-chain centre"},
			{scene.Pt{X: 1380, Y: 370}, colIndigo, "Foshan / nationwide", "Application sites + data feedback"},
		}
		for _, e := range ends {
			s.Fill(scene.Circle(e.c, 58), e.col.Alpha(0.15))
			s.Stroke(scene.Circle(e.c, 58), 3, e.col)
			s.Stroke(scene.Circle(scene.Pt{X: e.c.X, Y: e.c.Y - 6}, 12), 3, e.col)
			s.Stroke(scene.Polyline(scene.Pt{X: e.c.X - 20, Y: e.c.Y - 2}, scene.Pt{X: e.c.X, Y: e.c.Y + 26}, scene.Pt{X: e.c.X + 20, Y: e.c.Y - 2}), 3, e.col)
			text(s, scene.R(e.c.X-220, e.c.Y+76, 440, 40), e.name, "Heading", 30, colText, scene.AlignCenter)
			text(s, scene.R(e.c.X-220, e.c.Y+120, 440, 30), e.role, "Caption", 20, colText2, scene.AlignCenter)
		}
		a, b := scene.Pt{X: 630, Y: 370}, scene.Pt{X: 1290, Y: 370}
		s.StrokeDashed(scene.Polyline(a, b), 3, []float32{12, 8}, colBlue.Alpha(0.6))
		arrow(s, scene.Pt{X: a.X + 40, Y: a.Y}, a, 3, colBlue)
		arrow(s, scene.Pt{X: b.X - 40, Y: b.Y}, b, 3, colIndigo)
		text(s, scene.R(760, 330, 400, 28), "DATA_FEEDBACK", "Mono", 18, colBlueSoft, scene.AlignCenter)
		textItalic(s, scene.R(300, 540, 1320, 34),
			"“Rooted in Suzhou's high-end manufacturing and powered by algorithms, we capture the upgrade dividend of traditional industry.”",
			"Body", 22, colText2, scene.AlignCenter)

		cards := scene.R(220, 620, 1480, 280).Split(2, 40)
		r := cards[0]
		glass(s, r, 28)
		c := scene.Pt{X: r.X + 120, Y: r.Y + 140}
		donut(s, c, 60, 88, SupplyChainData, []scene.Color{colGreen, colSurface2})
		text(s, scene.R(c.X-60, c.Y-20, 120, 40), fmt.Sprintf("%.0f%%", SupplyChainData[0].Value), "Heading", 30, colText, scene.AlignCenter)
		text(s, scene.R(r.X+240, r.Y+36, r.W-280, 40), "Deep supply-chain collaboration", "Heading", 28, colText, scene.AlignLeft)
		text(s, scene.R(r.X+240, r.Y+86, r.W-280, 120),
			"Core hardware is sourced from leading local Suzhou suppliers in spectroscopy, lasers, thermal engineering and industrial control.",
			"Body", 20, colText2, scene.AlignLeft)
		pillRow(s, r.X+240, r.Y+210, []string{"Spectroscopy", "Lasers", "Thermal", "Industrial control"}, colGreenHi, 14)

		r = cards[1]
		glass(s, r, 28)
		text(s, scene.R(r.X+48, r.Y+36, r.W-96, 40), "National rollout plan", "Heading", 28, colText, scene.AlignLeft)
		text(s, scene.R(r.X+48, r.Y+86, r.W-96, 170),
			"An algorithm R&D headquarters in Xiangcheng draws on Suzhou's digital economy to reach the nation's trillion-yuan non-ferrous metal processing market.",
			"Body", 22, colText2, scene.AlignLeft)

		text(s, scene.R(120, 928, 1680, 50), "Let's build the future of digital industry together", "Heading", 40, colText, scene.AlignCenter)
		s.FillRound(scene.R(880, 990, 160, 4), 2, colBlue)
		text(s, scene.R(120, 1008, 1680, 28), "Suzhou Algorithm Center / National Industrial Node", "Mono", 18, colMuted, scene.AlignCenter)
	}}
}
