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

import "encoding/binary"

// Frame is a window onto a row-major buffer of pixels. Stride is the number
// of pixels between the start of one row and the start of the next and is
// never less than Width.
type Frame struct {
	Pix    []Pixel
	Width  int
	Height int
	Stride int
}

// NewFrame allocates a frame with a stride equal to its width.
func NewFrame(width, height int) Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Frame{
		Pix:    make([]Pixel, width*height),
		Width:  width,
		Height: height,
		Stride: width,
	}
}

// Valid returns true if the frame's buffer is large enough for its width,
// height and stride.
func (f Frame) Valid() bool {
	if f.Width < 0 || f.Height < 0 || f.Stride < f.Width {
		return false
	}
	if f.Width == 0 || f.Height == 0 {
		return true
	}
	return len(f.Pix) >= (f.Height-1)*f.Stride+f.Width
}

// Row returns the visible pixels of row y.
func (f Frame) Row(y int) []Pixel {
	i := y * f.Stride
	return f.Pix[i : i+f.Width]
}

// At returns the pixel at x, y. Coordinates outside of the frame return zero.
func (f Frame) At(x, y int) Pixel {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return 0
	}
	return f.Pix[y*f.Stride+x]
}

// Set changes the pixel at x, y. Coordinates outside of the frame are
// ignored.
func (f Frame) Set(x, y int, p Pixel) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	f.Pix[y*f.Stride+x] = p
}

// Fill sets every visible pixel of the frame to p.
func (f Frame) Fill(p Pixel) {
	for y := 0; y < f.Height; y++ {
		row := f.Row(y)
		for x := range row {
			row[x] = p
		}
	}
}

// Clone returns a copy of the frame with a stride equal to its width.
func (f Frame) Clone() Frame {
	c := NewFrame(f.Width, f.Height)
	for y := 0; y < f.Height; y++ {
		copy(c.Row(y), f.Row(y))
	}
	return c
}

// Equal compares the visible pixels of two frames. Strides may differ.
func (f Frame) Equal(o Frame) bool {
	if f.Width != o.Width || f.Height != o.Height {
		return false
	}
	for y := 0; y < f.Height; y++ {
		a := f.Row(y)
		b := o.Row(y)
		for x := range a {
			if a[x] != b[x] {
				return false
			}
		}
	}
	return true
}

// PutBytes writes the visible pixels to buf as little-endian values. Pitch is
// the number of bytes from the start of one row in buf to the start of the
// next. Rows that do not fit in buf are not written.
func (f Frame) PutBytes(buf []byte, pitch int) {
	for y := 0; y < f.Height; y++ {
		i := y * pitch
		if i+f.Width*2 > len(buf) {
			return
		}
		for _, p := range f.Row(y) {
			binary.LittleEndian.PutUint16(buf[i:], uint16(p))
			i += 2
		}
	}
}
