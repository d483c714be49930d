// This file is part of Gigascreen No-Flick.
//
// Gigascreen No-Flick is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gigascreen No-Flick is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gigascreen No-Flick.  If not, see <https://www.gnu.org/licenses/>.

package rgb565

import (
	"image"
	"image/color"
)

// Color is the color.Color implementation for a Pixel.
type Color struct {
	Pixel Pixel
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.Pixel.To888()
	r = uint32(r8)
	r |= r << 8
	g = uint32(g8)
	g |= g << 8
	b = uint32(b8)
	b |= b << 8
	return r, g, b, 0xffff
}

// Model converts any color to the nearest RGB565 Color.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return Color{Pixel: From888(uint8(r>>8), uint8(g>>8), uint8(b>>8))}
})

// Image wraps a Frame so that it can be used with the image packages. For
// example, for encoding a screenshot.
type Image struct {
	Frame Frame
}

// ColorModel implements the image.Image interface.
func (img Image) ColorModel() color.Model {
	return Model
}

// Bounds implements the image.Image interface.
func (img Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Frame.Width, img.Frame.Height)
}

// At implements the image.Image interface.
func (img Image) At(x, y int) color.Color {
	return Color{Pixel: img.Frame.At(x, y)}
}

// Set implements the draw.Image interface.
func (img Image) Set(x, y int, c color.Color) {
	img.Frame.Set(x, y, Model.Convert(c).(Color).Pixel)
}
