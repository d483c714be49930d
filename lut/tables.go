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

package lut

import (
	"fmt"
	"math"
)

// Dimensions of the tables for each channel width.
const (
	Dim5 = 1 << 5
	Dim6 = 1 << 6
)

// Default parameters.
const (
	DefaultGamma = 2.2
	DefaultRatio = 0.5
)

// Limits of the parameters. A gamma at or below MinGamma results in linear
// blending.
const (
	MinGamma = 1.0
	MinRatio = 0.5
	MaxRatio = 1.0
)

// thresholds of the linear segment of the transfer functions
const (
	forwardLinearThreshold = 0.0031308
	reverseLinearThreshold = 0.04045
	linearSlope            = 12.92
	curveOffset            = 0.055
	curveScale             = 1.055
)

// Channel is the set of tables for one channel width. The blend table is
// stored in a flat slice, indexed by older*dim+newer.
type Channel struct {
	dim     int
	forward []uint8
	reverse []uint8
	blend   []uint8
}

// Dim returns the number of entries in the channel's one dimensional tables.
func (c *Channel) Dim() int {
	return c.dim
}

// Forward converts a linear intensity value to an encoded value.
func (c *Channel) Forward(linear uint8) uint8 {
	return c.forward[linear]
}

// Reverse converts an encoded value to a linear intensity value.
func (c *Channel) Reverse(encoded uint8) uint8 {
	return c.reverse[encoded]
}

// Blend returns the gamma correct mix of an older and newer encoded value,
// weighted by the ratio the tables were built with. Values outside the
// channel's range cause a panic.
func (c *Channel) Blend(older, newer uint8) uint8 {
	if int(older) >= c.dim || int(newer) >= c.dim {
		panic(fmt.Sprintf("lut: blend index [%d][%d] out of range for %d bit channel", older, newer, bits(c.dim)))
	}
	return c.blend[int(older)*c.dim+int(newer)]
}

// Average3 returns the gamma correct average of three encoded values. Linear
// values are summed and divided by three, truncating.
func (c *Channel) Average3(a, b, d uint8) uint8 {
	s := int(c.reverse[a]) + int(c.reverse[b]) + int(c.reverse[d])
	return c.forward[s/3]
}

// ForwardTable returns a copy of the forward table.
func (c *Channel) ForwardTable() []uint8 {
	return append([]uint8(nil), c.forward...)
}

// ReverseTable returns a copy of the reverse table.
func (c *Channel) ReverseTable() []uint8 {
	return append([]uint8(nil), c.reverse...)
}

// BlendRow returns a copy of the row of the blend table for the older value.
func (c *Channel) BlendRow(older uint8) []uint8 {
	if int(older) >= c.dim {
		panic(fmt.Sprintf("lut: blend row %d out of range for %d bit channel", older, bits(c.dim)))
	}
	i := int(older) * c.dim
	return append([]uint8(nil), c.blend[i:i+c.dim]...)
}

// Tables is the complete set of lookup tables for a gamma/ratio pair.
type Tables struct {
	// the parameters after clamping
	Gamma float64
	Ratio float64

	// red and blue channels
	C5 Channel

	// green channel
	C6 Channel
}

// ClampGamma returns a usable gamma value. Non-finite values are replaced
// with the default.
func ClampGamma(gamma float64) float64 {
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) {
		return DefaultGamma
	}
	return math.Max(MinGamma, gamma)
}

// ClampRatio returns a usable ratio value. Non-finite values are replaced
// with the default.
func ClampRatio(ratio float64) float64 {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return DefaultRatio
	}
	return math.Min(math.Max(ratio, MinRatio), MaxRatio)
}

// Build the tables for the gamma and ratio values. The values are clamped
// before use.
//
// The ratio is the weight given to the newer sample in a two frame blend. The
// older sample is weighted by 1-ratio.
func Build(gamma float64, ratio float64) *Tables {
	tab := &Tables{
		Gamma: ClampGamma(gamma),
		Ratio: ClampRatio(ratio),
	}
	tab.C5 = buildChannel(Dim5, tab.Gamma, tab.Ratio)
	tab.C6 = buildChannel(Dim6, tab.Gamma, tab.Ratio)
	return tab
}

// number of bits in a channel of the dimension
func bits(dim int) int {
	if dim == Dim6 {
		return 6
	}
	return 5
}

func clampRound(v float64, top float64) uint8 {
	return uint8(math.Min(math.Max(v, 0), top) + 0.5)
}

func buildChannel(dim int, gamma float64, ratio float64) Channel {
	c := Channel{
		dim:     dim,
		forward: make([]uint8, dim),
		reverse: make([]uint8, dim),
		blend:   make([]uint8, dim*dim),
	}

	irate := 1.0 - ratio
	igamma := 1.0 / gamma
	top := float64(dim - 1)

	for i := 0; i < dim; i++ {
		v := float64(i) / top

		var fwd float64
		if v <= forwardLinearThreshold {
			fwd = linearSlope * v * top
		} else {
			fwd = (curveScale*math.Pow(v, igamma) - curveOffset) * top
		}
		c.forward[i] = clampRound(fwd, top)

		var rev float64
		if v <= reverseLinearThreshold {
			rev = (v / linearSlope) * top
		} else {
			rev = math.Pow((v+curveOffset)/curveScale, gamma) * top
		}
		c.reverse[i] = clampRound(rev, top)
	}

	for i := 0; i < dim; i++ {
		row := c.blend[i*dim : (i+1)*dim]
		for j := 0; j < dim; j++ {
			mix := float64(c.reverse[i])*irate + float64(c.reverse[j])*ratio
			row[j] = c.forward[clampRound(mix, top)]
		}
	}

	return c
}
