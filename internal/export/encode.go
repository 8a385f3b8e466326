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
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"

	"pitchdeck/internal/raster"
	"pitchdeck/internal/scene"
)

// Rasterizer turns a staged scene into a bitmap.
type Rasterizer interface {
	Rasterize(ctx context.Context, s *scene.Scene, scale float64, bg scene.Color) (image.Image, error)
}

// Encoder writes a bitmap in the page image format.
type Encoder interface {
	Encode(w io.Writer, img image.Image, quality int) error
}

// PainterRasterizer adapts a raster.Painter.
type PainterRasterizer struct {
	Painter *raster.Painter
}

// NewPainterRasterizer loads the bundled fonts.
func NewPainterRasterizer() (*PainterRasterizer, error) {
	p, err := raster.New()
	if err != nil {
		return nil, err
	}
	return &PainterRasterizer{Painter: p}, nil
}

func (r *PainterRasterizer) Rasterize(ctx context.Context, s *scene.Scene, scale float64, bg scene.Color) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var bgc color.Color
	if bg.A > 0 {
		bgc = raster.ColorOf(bg)
	}
	img, err := r.Painter.Paint(s, scale, bgc)
	if err != nil {
		return nil, fmt.Errorf("rasterize: %w", err)
	}
	return img, nil
}

// JPEGEncoder encodes baseline JPEG.
type JPEGEncoder struct{}

func (JPEGEncoder) Encode(w io.Writer, img image.Image, quality int) error {
	if quality < 1 || quality > 100 {
		return fmt.Errorf("encode jpeg: quality %d out of range", quality)
	}
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("encode jpeg: %w", err)
	}
	return nil
}
