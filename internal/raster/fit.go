/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package raster

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// FitRect returns the largest rectangle with the aspect ratio of src that
// fits centered inside a w x h surface.
func FitRect(src image.Rectangle, w, h int) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	if sw <= 0 || sh <= 0 || w <= 0 || h <= 0 {
		return image.Rectangle{}
	}
	fw, fh := w, sh*w/sw
	if fh > h {
		fw, fh = sw*h/sh, h
	}
	x := (w - fw) / 2
	y := (h - fh) / 2
	return image.Rect(x, y, x+fw, y+fh)
}

// Fit scales src into a new w x h image, letterboxed over bg.
func Fit(src image.Image, w, h int, bg color.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if bg != nil {
		xdraw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)
	}
	r := FitRect(src.Bounds(), w, h)
	if r.Empty() {
		return dst
	}
	if r.Size() == src.Bounds().Size() {
		xdraw.Copy(dst, r.Min, src, src.Bounds(), xdraw.Over, nil)
		return dst
	}
	xdraw.CatmullRom.Scale(dst, r, src, src.Bounds(), xdraw.Over, nil)
	return dst
}

// Thumbnail is a fast, lower quality Fit for small previews.
func Thumbnail(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	r := FitRect(src.Bounds(), w, h)
	if !r.Empty() {
		xdraw.ApproxBiLinear.Scale(dst, r, src, src.Bounds(), xdraw.Src, nil)
	}
	return dst
}
