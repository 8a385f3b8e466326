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
	"reflect"
	"strings"
	"testing"

	"pitchdeck/internal/scene"
)

func TestDefaultHasTwelveTitledPanels(t *testing.T) {
	reg := Default()
	if reg.Len() != 12 {
		t.Fatalf("Len = %d, want 12", reg.Len())
	}
	seen := map[string]bool{}
	for i, title := range reg.Titles() {
		if title == "" || strings.HasPrefix(title, "Panel ") {
			t.Fatalf("panel %d has no title", i)
		}
		if seen[title] {
			t.Fatalf("duplicate title %q", title)
		}
		seen[title] = true
	}
	if _, ok := reg.At(12); ok {
		t.Fatalf("At(12) should be out of range")
	}
	if _, ok := reg.At(-1); ok {
		t.Fatalf("At(-1) should be out of range")
	}
}

func TestEveryPanelRendersAtIntrinsicSize(t *testing.T) {
	reg := Default()
	for i := 0; i < reg.Len(); i++ {
		p, _ := reg.At(i)
		s := p.Render(RenderOptions{Active: true})
		if s.Size != (scene.Size{W: Width, H: Height}) {
			t.Fatalf("panel %d size = %+v", i, s.Size)
		}
		if s.Background != Background {
			t.Fatalf("panel %d background = %+v", i, s.Background)
		}
		if len(s.Texts()) == 0 {
			t.Fatalf("panel %d has no text", i)
		}
		if len(s.Hotspots) != 0 {
			t.Fatalf("panel %d registered hotspots without OnStart", i)
		}
	}
}

func TestCoverStartHotspotInvokesCallback(t *testing.T) {
	calls := 0
	s := Cover().Render(RenderOptions{Active: true, OnStart: func() { calls++ }})
	h, ok := s.HitTest(StartButton.Center())
	if !ok || h.Name != "start" {
		t.Fatalf("expected start hotspot, got %+v %v", h, ok)
	}
	h.Action()
	if calls != 1 {
		t.Fatalf("OnStart calls = %d", calls)
	}
	var hasLabel bool
	for _, txt := range s.Texts() {
		hasLabel = hasLabel || txt == "Start presentation"
	}
	if !hasLabel {
		t.Fatalf("start button label missing")
	}
}

func TestCoverWithoutStartHasNoButton(t *testing.T) {
	s := Cover().Render(RenderOptions{Active: true})
	if _, ok := s.HitTest(StartButton.Center()); ok {
		t.Fatalf("unexpected hotspot")
	}
	for _, txt := range s.Texts() {
		if txt == "Start presentation" {
			t.Fatalf("start label drawn without callback")
		}
	}
}

func TestOnlyCoverHonoursOnStart(t *testing.T) {
	reg := Default()
	for i := 1; i < reg.Len(); i++ {
		p, _ := reg.At(i)
		s := p.Render(RenderOptions{Active: true, OnStart: func() {}})
		if len(s.Hotspots) != 0 {
			t.Fatalf("panel %d registered a start hotspot", i)
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	reg := Default()
	for i := 0; i < reg.Len(); i++ {
		p, _ := reg.At(i)
		a := p.Render(RenderOptions{Active: true})
		b := p.Render(RenderOptions{Active: true})
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("panel %d renders differ between calls", i)
		}
	}
}

func TestInactiveRenderIsFadedAndInert(t *testing.T) {
	active := Cover().Render(RenderOptions{Active: true, OnStart: func() {}})
	idle := Cover().Render(RenderOptions{Active: false, OnStart: func() {}})
	if len(idle.Hotspots) != 0 {
		t.Fatalf("inactive cover should not be interactive")
	}
	for i := range idle.Items {
		if idle.Items[i].Color.A > active.Items[i].Color.A {
			t.Fatalf("item %d not faded", i)
		}
	}
}

func TestDatasetsMatchDeckFigures(t *testing.T) {
	if len(ROIData) != 6 || ROIData[5].Month != "M14" || ROIData[5].Investment != 600 || ROIData[5].Return != 3100 {
		t.Fatalf("unexpected ROI data: %+v", ROIData)
	}
	if EnergyData[0].Consumption != 100 || EnergyData[1].Consumption != 77 {
		t.Fatalf("unexpected energy data: %+v", EnergyData)
	}
	var total float64
	for _, sh := range SupplyChainData {
		total += sh.Value
	}
	if total != 100 {
		t.Fatalf("supply chain shares sum to %v", total)
	}
}

func TestCustomRegistryNumbersUntitledPanels(t *testing.T) {
	blank := panelFunc(func(RenderOptions) *scene.Scene { return scene.New(Width, Height, Background) })
	reg := NewRegistry(Cover(), blank)
	if got := reg.Titles(); got[1] != "Panel 2" {
		t.Fatalf("Titles = %q", got)
	}
}

type panelFunc func(RenderOptions) *scene.Scene

func (f panelFunc) Render(o RenderOptions) *scene.Scene { return f(o) }
