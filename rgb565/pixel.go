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

import "fmt"

// Channel widths and masks.
const (
	Bits5 = 5
	Bits6 = 6

	Mask5 = 0x1f
	Mask6 = 0x3f

	shiftRed   = 11
	shiftGreen = 5
)

// Pixel is a single RGB565 value.
type Pixel uint16

// Pack creates a Pixel from channel values. Channel values are masked to
// their bit width.
func Pack(r, g, b uint8) Pixel {
	return Pixel(uint16(r&Mask5)<<shiftRed | uint16(g&Mask6)<<shiftGreen | uint16(b&Mask5))
}

// R returns the 5-bit red channel.
func (p Pixel) R() uint8 {
	return uint8(p>>shiftRed) & Mask5
}

// G returns the 6-bit green channel.
func (p Pixel) G() uint8 {
	return uint8(p>>shiftGreen) & Mask6
}

// B returns the 5-bit blue channel.
func (p Pixel) B() uint8 {
	return uint8(p) & Mask5
}

// IsPure returns true if no more than one channel of the pixel is non-zero.
// Black is pure. A pixel that is already a mix of channels is not.
func (p Pixel) IsPure() bool {
	n := 0
	if p.R() != 0 {
		n++
	}
	if p.G() != 0 {
		n++
	}
	if p.B() != 0 {
		n++
	}
	return n <= 1
}

func (p Pixel) String() string {
	return fmt.Sprintf("%#04x (%d,%d,%d)", uint16(p), p.R(), p.G(), p.B())
}

// From888 converts 8-bit per channel values to a Pixel by truncating the low
// order bits.
func From888(r, g, b uint8) Pixel {
	return Pixel(uint16(r>>3)<<shiftRed | uint16(g>>2)<<shiftGreen | uint16(b>>3))
}

// To888 expands the pixel to 8-bit per channel values. The high order bits
// are replicated into the low order bits so that full intensity channels
// become 0xff.
func (p Pixel) To888() (r, g, b uint8) {
	r = p.R()<<3 | p.R()>>2
	g = p.G()<<2 | p.G()>>4
	b = p.B()<<3 | p.B()>>2
	return r, g, b
}
