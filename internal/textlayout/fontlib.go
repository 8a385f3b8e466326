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
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Logical families registered by GoFonts.
const (
	FamilySans = "sans"
	FamilyMono = "mono"
)

// FontLibrary stores loaded OpenType fonts mapped by family/weight/italic.
// A populated library is read-only and may be shared between providers.
type FontLibrary struct {
	fonts map[fontKey]*opentype.Font
}

type fontKey struct {
	family string
	weight int
	italic bool
}

func NewFontLibrary() *FontLibrary { return &FontLibrary{fonts: make(map[fontKey]*opentype.Font)} }

// LoadTTF loads a font file into the library under the given family/weight/italic.
func (fl *FontLibrary) LoadTTF(family string, weight int, italic bool, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font %s: %w", path, err)
	}
	return fl.LoadBytes(family, weight, italic, data)
}

// LoadBytes registers an in-memory TrueType/OpenType font.
func (fl *FontLibrary) LoadBytes(family string, weight int, italic bool, data []byte) error {
	if fl.fonts == nil {
		fl.fonts = make(map[fontKey]*opentype.Font)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %s/%d: %w", family, weight, err)
	}
	fl.fonts[fontKey{family: family, weight: weight, italic: italic}] = f
	return nil
}

// Len reports how many faces are registered.
func (fl *FontLibrary) Len() int {
	if fl == nil {
		return 0
	}
	return len(fl.fonts)
}

func (fl *FontLibrary) find(spec FontSpec) *opentype.Font {
	if fl == nil || fl.fonts == nil {
		return nil
	}
	weight := spec.Weight
	if weight == 0 {
		weight = 400
	}
	if f, ok := fl.fonts[fontKey{family: spec.Family, weight: weight, italic: spec.Italic}]; ok {
		return f
	}
	// nearest weight with the same slant, then anything in the family
	var best *opentype.Font
	bestDist := 1 << 30
	for k, f := range fl.fonts {
		if k.family != spec.Family || k.italic != spec.Italic {
			continue
		}
		d := k.weight - weight
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = f, d
		}
	}
	if best != nil {
		return best
	}
	for k, f := range fl.fonts {
		if k.family == spec.Family {
			return f
		}
	}
	return nil
}

var goFonts = sync.OnceValues(func() (*FontLibrary, error) {
	fl := NewFontLibrary()
	for _, e := range []struct {
		family string
		weight int
		italic bool
		data   []byte
	}{
		{FamilySans, 400, false, goregular.TTF},
		{FamilySans, 700, false, gobold.TTF},
		{FamilySans, 400, true, goitalic.TTF},
		{FamilySans, 700, true, gobolditalic.TTF},
		{FamilyMono, 400, false, gomono.TTF},
		{FamilyMono, 700, false, gomonobold.TTF},
	} {
		if err := fl.LoadBytes(e.family, e.weight, e.italic, e.data); err != nil {
			return nil, err
		}
	}
	return fl, nil
})

// GoFonts returns the shared library of the bundled Go font family.
func GoFonts() (*FontLibrary, error) { return goFonts() }

// OTProvider resolves FontSpec using a FontLibrary and falls back to another Provider.
// Faces are cached per spec; a provider must not be shared across goroutines
// that draw concurrently, because opentype faces are not safe for that.
type OTProvider struct {
	Lib      *FontLibrary
	DPI      float64 // default 72 if zero
	Fallback Provider

	mu    sync.Mutex
	faces map[FontSpec]resolved
}

type resolved struct {
	face font.Face
	met  Metrics
}

func NewOTProvider(lib *FontLibrary, dpi float64) *OTProvider {
	return &OTProvider{Lib: lib, DPI: dpi}
}

func (p *OTProvider) Resolve(spec FontSpec) (font.Face, Metrics) {
	if spec.SizePt <= 0 {
		spec.SizePt = 12
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if r, ok := p.faces[spec]; ok {
		return r.face, r.met
	}
	dpi := p.DPI
	if dpi <= 0 {
		dpi = 72
	}
	if f := p.Lib.find(spec); f != nil {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(spec.SizePt), DPI: dpi, Hinting: font.HintingFull})
		if err == nil {
			r := resolved{face: face, met: metricsOf(face)}
			if p.faces == nil {
				p.faces = make(map[FontSpec]resolved)
			}
			p.faces[spec] = r
			return r.face, r.met
		}
	}
	fb := p.Fallback
	if fb == nil {
		fb = BasicProvider{}
	}
	return fb.Resolve(spec)
}

func metricsOf(face font.Face) Metrics {
	m := face.Metrics()
	return Metrics{
		Ascent:  float32(m.Ascent.Round()),
		Descent: float32(m.Descent.Round()),
		LineGap: float32(m.Height.Round() - m.Ascent.Round() - m.Descent.Round()),
	}
}
