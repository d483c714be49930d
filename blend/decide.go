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

package blend

import (
	"github.com/dotkoval/spectaculator-gigascreen-noflick/lut"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/rgb565"
)

// Flags alter the behaviour of the modes. They are not part of the mode
// state.
type Flags struct {
	// Fullbright replaces the gamma correct three colour average with a
	// bitwise OR of the three colours
	Fullbright bool

	// MotionCheck only allows two frame blending when a pixel has been
	// alternating between two values
	MotionCheck bool
}

// Samples is the current pixel followed by the pixels at the same position in
// the five previous frames, most recent first.
type Samples [6]rgb565.Pixel

// Blend2 returns the gamma correct blend of the current and previous pixel.
func Blend2(tab *lut.Tables, p0, p1 rgb565.Pixel) rgb565.Pixel {
	return rgb565.Pack(
		tab.C5.Blend(p1.R(), p0.R()),
		tab.C6.Blend(p1.G(), p0.G()),
		tab.C5.Blend(p1.B(), p0.B()),
	)
}

// Blend3 returns the gamma correct average of three pixels.
func Blend3(tab *lut.Tables, p0, p1, p2 rgb565.Pixel) rgb565.Pixel {
	return rgb565.Pack(
		tab.C5.Average3(p0.R(), p1.R(), p2.R()),
		tab.C6.Average3(p0.G(), p1.G(), p2.G()),
		tab.C5.Average3(p0.B(), p1.B(), p2.B()),
	)
}

// Alternating returns true if the pixel has been switching between two values
// over the last three frames.
func Alternating(p0, p1, p2 rgb565.Pixel) bool {
	return p0 == p2 && p0 != p1 && p1 != p2
}

// Tricolor returns true if the samples show two complete cycles of three pure
// colours.
func Tricolor(s *Samples) bool {
	if !s[0].IsPure() || !s[1].IsPure() || !s[2].IsPure() {
		return false
	}
	return s[0] == s[3] && s[1] == s[4] && s[2] == s[5]
}

func twoFrame(tab *lut.Tables, flags Flags, s *Samples) rgb565.Pixel {
	if flags.MotionCheck && !Alternating(s[0], s[1], s[2]) {
		return s[0]
	}
	return Blend2(tab, s[0], s[1])
}

// Decide the output value for the samples.
func Decide(tab *lut.Tables, mode Mode, flags Flags, s *Samples) rgb565.Pixel {
	switch mode {
	case TwoFrame:
		return twoFrame(tab, flags, s)
	case Auto:
		if Tricolor(s) {
			if flags.Fullbright {
				return s[0] | s[1] | s[2]
			}
			return Blend3(tab, s[0], s[1], s[2])
		}
		return twoFrame(tab, flags, s)
	}
	return s[0]
}
