/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package textlayout

import (
	"reflect"
	"testing"
)

func lineTexts(box TextBox) []string {
	var out []string
	for _, l := range box.Lines {
		out = append(out, l.Text())
	}
	return out
}

func TestWordWrap_Naive(t *testing.T) {
	l := NewWordWrap(BasicProvider{})
	box, err := l.Layout([]Span{{Text: "Hello world from Go", Font: FontSpec{}}}, 50)
	if err != nil {
		t.Fatalf("layout error: %v", err)
	}
	if got, want := lineTexts(box), []string{"Hello", "world", "from Go"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	// 7px per glyph; trailing spaces do not count
	if box.Lines[0].Width != 35 || box.Width != 49 {
		t.Fatalf("widths: first=%v box=%v", box.Lines[0].Width, box.Width)
	}
	if box.Height <= 0 {
		t.Fatalf("expected positive box height: %+v", box)
	}
}

func TestWordWrapHonorsNewlines(t *testing.T) {
	box, _ := NewWordWrap(nil).Layout([]Span{{Text: "a\nb c"}}, 0)
	if got := lineTexts(box); !reflect.DeepEqual(got, []string{"a", "b c"}) {
		t.Fatalf("lines = %q", got)
	}
}

func TestMeasure_Deterministic(t *testing.T) {
	w1, h1 := Measure(BasicProvider{}, []Span{{Text: "ABC"}})
	w2, h2 := Measure(BasicProvider{}, []Span{{Text: "A"}, {Text: "BC"}})
	if w1 != w2 || h1 != h2 {
		t.Fatalf("expected same measure, got w1=%v h1=%v vs w2=%v h2=%v", w1, h1, w2, h2)
	}
}

func TestOTProvider_Fallback(t *testing.T) {
	otp := NewOTProvider(NewFontLibrary(), 0)
	w, h := Measure(otp, []Span{{Text: "Hello", Font: FontSpec{Family: "Nonexistent", SizePt: 12}}})
	if w <= 0 || h <= 0 {
		t.Fatalf("expected positive measure with fallback: w=%v h=%v", w, h)
	}
}

func TestGoFontsScaleWithDPI(t *testing.T) {
	lib, err := GoFonts()
	if err != nil {
		t.Fatalf("GoFonts: %v", err)
	}
	if lib.Len() != 6 {
		t.Fatalf("expected 6 bundled faces, got %d", lib.Len())
	}
	spans := []Span{{Text: "Stainless", Font: FontSpec{Family: FamilySans, SizePt: 24, Weight: 700}}}
	w1, _ := Measure(NewOTProvider(lib, 72), spans)
	w2, _ := Measure(NewOTProvider(lib, 144), spans)
	if w1 <= 0 || w2 < 1.9*w1 || w2 > 2.1*w1 {
		t.Fatalf("expected width to double with DPI: %v vs %v", w1, w2)
	}
}

func TestFontLibraryNearestWeight(t *testing.T) {
	lib, err := GoFonts()
	if err != nil {
		t.Fatal(err)
	}
	bold := lib.find(FontSpec{Family: FamilySans, Weight: 700})
	if got := lib.find(FontSpec{Family: FamilySans, Weight: 800}); got != bold {
		t.Fatalf("weight 800 should resolve to the bold face")
	}
	if lib.find(FontSpec{Family: "serif"}) != nil {
		t.Fatalf("unknown family should not resolve")
	}
}
