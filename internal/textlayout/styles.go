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

// TextStyle is a named typography preset. Sizes are logical pixels on the
// 1920x1080 design surface; Leading is a multiple of the font size.
type TextStyle struct {
	Name    string
	Font    FontSpec
	Leading float32
}

var builtinStyles = map[string]TextStyle{
	"Display": {Name: "Display", Font: FontSpec{Family: FamilySans, SizePt: 112, Weight: 700}, Leading: 1.05},
	"Title":   {Name: "Title", Font: FontSpec{Family: FamilySans, SizePt: 64, Weight: 700}, Leading: 1.1},
	"Kicker":  {Name: "Kicker", Font: FontSpec{Family: FamilyMono, SizePt: 22, Weight: 700}, Leading: 1.2},
	"Lead":    {Name: "Lead", Font: FontSpec{Family: FamilySans, SizePt: 34, Weight: 400}, Leading: 1.35},
	"Heading": {Name: "Heading", Font: FontSpec{Family: FamilySans, SizePt: 32, Weight: 700}, Leading: 1.2},
	"Body":    {Name: "Body", Font: FontSpec{Family: FamilySans, SizePt: 24, Weight: 400}, Leading: 1.45},
	"Caption": {Name: "Caption", Font: FontSpec{Family: FamilySans, SizePt: 18, Weight: 400}, Leading: 1.3},
	"Stat":    {Name: "Stat", Font: FontSpec{Family: FamilySans, SizePt: 72, Weight: 700}, Leading: 1},
	"Mono":    {Name: "Mono", Font: FontSpec{Family: FamilyMono, SizePt: 18, Weight: 400}, Leading: 1.3},
}

// GetStyle returns a builtin style preset by name. The second return value is false if
// the style is not found.
func GetStyle(name string) (TextStyle, bool) { s, ok := builtinStyles[name]; return s, ok }

// MustStyle is GetStyle for names known at compile time.
func MustStyle(name string) TextStyle {
	s, ok := builtinStyles[name]
	if !ok {
		panic("textlayout: unknown style " + name)
	}
	return s
}

// ListStyles lists the names of the builtin styles in stable order.
func ListStyles() []string {
	return []string{"Display", "Title", "Kicker", "Lead", "Heading", "Body", "Caption", "Stat", "Mono"}
}
