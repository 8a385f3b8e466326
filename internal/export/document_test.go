/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"image"
	"testing"
)

func jpegOf(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := (JPEGEncoder{}).Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)), 92); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDocumentPages(t *testing.T) {
	doc := NewDocument("deck")
	a, b := jpegOf(t, 16, 9), jpegOf(t, 32, 18)
	if err := doc.AddPage(0, a); err != nil {
		t.Fatal(err)
	}
	if err := doc.AddPage(1, b); err != nil {
		t.Fatal(err)
	}
	pages := doc.Pages()
	if len(pages) != 2 || pages[0].Number != 1 || pages[1].Number != 2 {
		t.Fatalf("pages = %+v", pages)
	}
	if pages[0].Digest == pages[1].Digest {
		t.Fatalf("distinct images share a digest")
	}
	var out bytes.Buffer
	if err := doc.Write(&out); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(out.Bytes(), []byte("%PDF-")) {
		t.Fatalf("not a pdf")
	}
}

func TestDocumentRejectsBadInput(t *testing.T) {
	doc := NewDocument("deck")
	if err := doc.AddPage(0, nil); err == nil {
		t.Fatalf("empty image accepted")
	}
	if err := doc.Write(&bytes.Buffer{}); err == nil {
		t.Fatalf("empty document written")
	}
	if err := (JPEGEncoder{}).Encode(&bytes.Buffer{}, image.NewRGBA(image.Rect(0, 0, 2, 2)), 0); err == nil {
		t.Fatalf("quality 0 accepted")
	}
}
