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
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"pitchdeck/internal/version"
)

// Page size in PDF points. One logical panel unit maps to one point.
const (
	PageWidth  = 1920
	PageHeight = 1080
)

// PageInfo describes one assembled page.
type PageInfo struct {
	Number int     // 1-based
	Panel  int     // registry index
	Width  float64 // pt
	Height float64 // pt
	Digest string  // sha256 of the embedded JPEG, hex
}

// Document is the PDF being assembled for one export call.
type Document struct {
	pdf   *gofpdf.Fpdf
	pages []PageInfo
}

// NewDocument starts an empty document. Pages are added in order by AddPage.
func NewDocument(title string) *Document {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: PageWidth, Ht: PageHeight},
		// empty orientation keeps Wd x Ht as given
		OrientationStr: "",
	})
	pdf.SetTitle(title, true)
	pdf.SetCreator("pitchdeck "+version.String(), true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	return &Document{pdf: pdf}
}

// AddPage appends a page holding the JPEG image of panel, stretched to the
// full page.
func (d *Document) AddPage(panel int, jpegData []byte) error {
	if len(jpegData) == 0 {
		return fmt.Errorf("page %d: empty image", len(d.pages)+1)
	}
	num := len(d.pages) + 1
	name := fmt.Sprintf("panel-%02d", num)
	opts := gofpdf.ImageOptions{ImageType: "JPG", ReadDpi: false}

	d.pdf.AddPageFormat("", gofpdf.SizeType{Wd: PageWidth, Ht: PageHeight})
	d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(jpegData))
	if err := d.pdf.Error(); err != nil {
		return fmt.Errorf("page %d: register image: %w", num, err)
	}
	d.pdf.ImageOptions(name, 0, 0, PageWidth, PageHeight, false, opts, 0, "")
	if err := d.pdf.Error(); err != nil {
		return fmt.Errorf("page %d: place image: %w", num, err)
	}

	sum := sha256.Sum256(jpegData)
	w, h := d.pdf.GetPageSize()
	d.pages = append(d.pages, PageInfo{
		Number: num,
		Panel:  panel,
		Width:  w,
		Height: h,
		Digest: hex.EncodeToString(sum[:]),
	})
	return nil
}

// Pages returns a copy of the page list.
func (d *Document) Pages() []PageInfo { return append([]PageInfo(nil), d.pages...) }

func (d *Document) Len() int { return len(d.pages) }

// Write serializes the document. The document is closed afterwards.
func (d *Document) Write(w io.Writer) error {
	if len(d.pages) == 0 {
		return fmt.Errorf("write pdf: document has no pages")
	}
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// WriteFile serializes the document to path.
func (d *Document) WriteFile(path string) error {
	if len(d.pages) == 0 {
		return fmt.Errorf("write pdf: document has no pages")
	}
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
